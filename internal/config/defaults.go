package config

import (
	_ "embed"
)

//go:embed defaults/arcade.yaml
var defaultArcadeYAML []byte

// Default returns the built-in configuration. It mirrors defaults/arcade.yaml
// and is used when the embedded file cannot be parsed.
func Default() Config {
	return Config{
		TickRate: 60,
		Keys: KeyConfig{
			Left:    []string{"left", "a"},
			Right:   []string{"right", "d"},
			Up:      []string{"up", "w"},
			Down:    []string{"down", "s"},
			Fire:    []string{" ", "f"},
			Start:   []string{"enter"},
			Restart: []string{"r"},
			Back:    []string{"esc", "b"},
			Quit:    []string{"q", "ctrl+c"},
		},
		Racing: RacingView{
			CarGlyph:      "◢█◣",
			ObstacleGlyph: "▓▓",
			LaneGlyph:     "┊",
			CarColor:      "bright_cyan",
			ObstacleColor: "red",
			LaneColor:     "gray",
		},
		Shooting: ShootingView{
			TargetGlyph:    "◎",
			CrosshairGlyph: "+",
			TargetColor:    "bright_yellow",
			CrosshairColor: "bright_green",
			CrosshairStep:  4,
			WarnAt:         10,
		},
	}
}
