package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// isolate points HOME and the working directory at an empty temp dir so
// the search path finds nothing but what the test writes.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded config differs from Default():\n got  %+v\n want %+v", cfg, Default())
	}
	if err := Default().Validate(); err != nil {
		t.Errorf("Default() is invalid: %v", err)
	}
}

func TestLoadCustomPathOverridesDefaults(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "mine.yaml")
	writeFile(t, path, "tick_rate: 30\nkeys:\n  left: [\"h\"]\nracing:\n  car_glyph: \"A\"\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) error: %v", path, err)
	}
	if cfg.TickRate != 30 {
		t.Errorf("TickRate = %d, expected 30", cfg.TickRate)
	}
	if !reflect.DeepEqual(cfg.Keys.Left, []string{"h"}) {
		t.Errorf("Keys.Left = %v, expected [h]", cfg.Keys.Left)
	}
	if cfg.Racing.CarGlyph != "A" {
		t.Errorf("CarGlyph = %q, expected A", cfg.Racing.CarGlyph)
	}

	// Untouched keys keep their defaults
	if !reflect.DeepEqual(cfg.Keys.Right, Default().Keys.Right) {
		t.Errorf("Keys.Right = %v, expected default", cfg.Keys.Right)
	}
	if cfg.Shooting != Default().Shooting {
		t.Errorf("Shooting = %+v, expected default", cfg.Shooting)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := isolate(t)

	tests := []struct {
		name    string
		content string // empty means the file is not created
		errPart string
	}{
		{"missing", "", "config: cannot read"},
		{"malformed", "tick_rate: [", "config: cannot parse"},
		{"invalid", "tick_rate: 0\n", "tick_rate"},
		{"unknown color", "shooting:\n  target_color: chartreuse\n", "chartreuse"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name+".yaml")
			if tc.content != "" {
				writeFile(t, path, tc.content)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.errPart) {
				t.Errorf("error %q should mention %q", err, tc.errPart)
			}
		})
	}
}

func TestLoadSearchOrder(t *testing.T) {
	dir := isolate(t)

	writeFile(t, filepath.Join(dir, "configs", FileName), "tick_rate: 20\n")
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.TickRate != 20 {
		t.Errorf("local config: TickRate = %d, expected 20", cfg.TickRate)
	}

	// The user directory wins over the local one
	writeFile(t, filepath.Join(dir, ".arcade", "configs", FileName), "tick_rate: 40\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.TickRate != 40 {
		t.Errorf("user config: TickRate = %d, expected 40", cfg.TickRate)
	}
}

func TestLoadSkipsBrokenSearchFiles(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, ".arcade", "configs", FileName), "tick_rate: -5\n")
	writeFile(t, filepath.Join(dir, "configs", FileName), "keys: [")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("broken search files should be skipped, got %v", err)
	}
	if cfg.TickRate != Default().TickRate {
		t.Errorf("TickRate = %d, expected the default", cfg.TickRate)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"default", func(*Config) {}, true},
		{"zero tick rate", func(c *Config) { c.TickRate = 0 }, false},
		{"no quit key", func(c *Config) { c.Keys.Quit = nil }, false},
		{"empty glyph", func(c *Config) { c.Racing.ObstacleGlyph = "" }, false},
		{"wide glyph", func(c *Config) { c.Shooting.TargetGlyph = "(())" }, false},
		{"three rune glyph", func(c *Config) { c.Shooting.TargetGlyph = "(o)" }, true},
		{"unknown color", func(c *Config) { c.Racing.LaneColor = "mauve" }, false},
		{"empty color", func(c *Config) { c.Racing.LaneColor = "" }, true},
		{"zero crosshair step", func(c *Config) { c.Shooting.CrosshairStep = 0 }, false},
		{"negative warning", func(c *Config) { c.Shooting.WarnAt = -1 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err == nil) != tc.ok {
				t.Errorf("Validate() = %v, expected ok=%v", err, tc.ok)
			}
		})
	}
}

func TestColor(t *testing.T) {
	if Color("red") == Color("green") {
		t.Error("distinct names should resolve to distinct colors")
	}
	if Color("nope") != Color("") {
		t.Error("unknown names should fall back to the default color")
	}
}

func TestKeyLabel(t *testing.T) {
	tests := []struct {
		keys []string
		want string
	}{
		{nil, "?"},
		{[]string{" ", "f"}, "space"},
		{[]string{"enter"}, "Enter"},
		{[]string{"esc", "b"}, "Esc"},
		{[]string{"r"}, "r"},
	}
	for _, tc := range tests {
		if got := KeyLabel(tc.keys); got != tc.want {
			t.Errorf("KeyLabel(%q) = %q, expected %q", tc.keys, got, tc.want)
		}
	}
}
