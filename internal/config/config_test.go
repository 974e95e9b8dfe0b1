package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default config failed validation: %v", err)
	}
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() of a missing file = %+v, want defaults", cfg)
	}
}

func TestLoadReaderOverridesDefaults(t *testing.T) {
	src := `
[touchpad]
mouse_sensitivity = 2.0
invert_scroll = true

[gesture]
edge_margin = 24

[script]
path = "gestures.lua"

[log]
level = "debug"
`
	cfg, err := LoadReader(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadReader() error = %v", err)
	}

	if cfg.Touchpad.MouseSensitivity != 2.0 {
		t.Errorf("MouseSensitivity = %v, want 2.0", cfg.Touchpad.MouseSensitivity)
	}
	if !cfg.Touchpad.InvertScroll {
		t.Error("InvertScroll should be true")
	}
	if cfg.Gesture.EdgeMargin != 24 {
		t.Errorf("EdgeMargin = %d, want 24", cfg.Gesture.EdgeMargin)
	}
	if cfg.Script.Path != "gestures.lua" {
		t.Errorf("Script.Path = %q, want gestures.lua", cfg.Script.Path)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}

	// Untouched fields keep their defaults.
	if cfg.Gesture.SwipeThreshold != 32 {
		t.Errorf("SwipeThreshold = %d, want default 32", cfg.Gesture.SwipeThreshold)
	}
	if !cfg.Touchpad.ShowButtons {
		t.Error("ShowButtons should keep its default true")
	}
}

func TestLoadReaderMalformedTOML(t *testing.T) {
	_, err := LoadReader(strings.NewReader("[touchpad\nbroken"))
	if err == nil {
		t.Fatal("LoadReader() should fail on malformed TOML")
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Errorf("error = %v, want *ParseError", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"zero mouse sensitivity", func(c *Config) { c.Touchpad.MouseSensitivity = 0 }, ErrBadSensitivity},
		{"negative scroll sensitivity", func(c *Config) { c.Touchpad.ScrollSensitivity = -1 }, ErrBadSensitivity},
		{"zero bar height", func(c *Config) { c.Touchpad.ButtonBarHeight = 0 }, ErrBadBarHeight},
		{"zero edge margin", func(c *Config) { c.Gesture.EdgeMargin = 0 }, ErrBadMargin},
		{"zero swipe threshold", func(c *Config) { c.Gesture.SwipeThreshold = 0 }, ErrBadThreshold},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }, ErrBadLogLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "touchpad.toml")
	src := "[gesture]\nedge_margin = -5\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); !errors.Is(err, ErrBadMargin) {
		t.Errorf("Load() error = %v, want %v", err, ErrBadMargin)
	}
}
