// Package config provides YAML-based configuration for the arcade host:
// frame rate, key bindings and how each game is drawn. Gameplay rules
// (cadences, collision band, round length) are constants in the game
// packages and deliberately absent here.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/pocket-arcade/internal/core"
)

// Config is the full arcade configuration.
type Config struct {
	TickRate int          `yaml:"tick_rate"`
	Keys     KeyConfig    `yaml:"keys"`
	Racing   RacingView   `yaml:"racing"`
	Shooting ShootingView `yaml:"shooting"`
}

// KeyConfig lists the terminal key names bound to each action.
// Names follow Bubble Tea's KeyMsg.String() ("left", "ctrl+c", " ").
type KeyConfig struct {
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Up      []string `yaml:"up"`
	Down    []string `yaml:"down"`
	Fire    []string `yaml:"fire"`
	Start   []string `yaml:"start"`
	Restart []string `yaml:"restart"`
	Back    []string `yaml:"back"`
	Quit    []string `yaml:"quit"`
}

// RacingView defines how the racing game is drawn.
type RacingView struct {
	CarGlyph      string `yaml:"car_glyph"`
	ObstacleGlyph string `yaml:"obstacle_glyph"`
	LaneGlyph     string `yaml:"lane_glyph"`
	CarColor      string `yaml:"car_color"`
	ObstacleColor string `yaml:"obstacle_color"`
	LaneColor     string `yaml:"lane_color"`
}

// ShootingView defines how the target shooting game is drawn.
type ShootingView struct {
	TargetGlyph    string  `yaml:"target_glyph"`
	CrosshairGlyph string  `yaml:"crosshair_glyph"`
	TargetColor    string  `yaml:"target_color"`
	CrosshairColor string  `yaml:"crosshair_color"`
	CrosshairStep  float64 `yaml:"crosshair_step"` // Percent of the arena per key press
	WarnAt         int     `yaml:"warn_at"`        // Countdown turns red at or below this many seconds
}

// maxGlyphRunes bounds sprite width so hit-testing stays close to the
// entity's position.
const maxGlyphRunes = 3

// Validate reports the first problem that would make the config unusable.
func (c Config) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("config: tick_rate must be positive, got %d", c.TickRate)
	}

	keys := map[string][]string{
		"left": c.Keys.Left, "right": c.Keys.Right, "up": c.Keys.Up, "down": c.Keys.Down,
		"fire": c.Keys.Fire, "start": c.Keys.Start, "restart": c.Keys.Restart,
		"back": c.Keys.Back, "quit": c.Keys.Quit,
	}
	for name, list := range keys {
		if len(list) == 0 {
			return fmt.Errorf("config: keys.%s must list at least one key", name)
		}
	}

	glyphs := map[string]string{
		"racing.car_glyph":         c.Racing.CarGlyph,
		"racing.obstacle_glyph":    c.Racing.ObstacleGlyph,
		"racing.lane_glyph":        c.Racing.LaneGlyph,
		"shooting.target_glyph":    c.Shooting.TargetGlyph,
		"shooting.crosshair_glyph": c.Shooting.CrosshairGlyph,
	}
	for name, g := range glyphs {
		if n := utf8.RuneCountInString(g); n == 0 || n > maxGlyphRunes {
			return fmt.Errorf("config: %s must be 1-%d characters, got %q", name, maxGlyphRunes, g)
		}
	}

	colors := map[string]string{
		"racing.car_color":         c.Racing.CarColor,
		"racing.obstacle_color":    c.Racing.ObstacleColor,
		"racing.lane_color":        c.Racing.LaneColor,
		"shooting.target_color":    c.Shooting.TargetColor,
		"shooting.crosshair_color": c.Shooting.CrosshairColor,
	}
	for name, col := range colors {
		if _, ok := core.ParseColor(col); !ok {
			return fmt.Errorf("config: %s: unknown color %q", name, col)
		}
	}

	if c.Shooting.CrosshairStep <= 0 {
		return errors.New("config: shooting.crosshair_step must be positive")
	}
	if c.Shooting.WarnAt < 0 {
		return errors.New("config: shooting.warn_at must not be negative")
	}
	return nil
}

// Color resolves a validated color name, falling back to the default color.
func Color(name string) core.Color {
	c, _ := core.ParseColor(name)
	return c
}

// KeyLabel names the first key of a binding for on-screen hints.
func KeyLabel(keys []string) string {
	if len(keys) == 0 {
		return "?"
	}
	switch keys[0] {
	case " ":
		return "space"
	case "esc":
		return "Esc"
	case "enter":
		return "Enter"
	}
	return keys[0]
}
