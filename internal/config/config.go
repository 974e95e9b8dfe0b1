// Package config loads and validates the touchpad configuration.
//
// Configuration is stored in a TOML file. A missing file is not an error;
// every field has a default so the application can run unconfigured. The
// Watcher reloads the file when it changes on disk.
package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration validation.
var (
	ErrBadSensitivity = errors.New("sensitivity must be positive")
	ErrBadMargin      = errors.New("edge margin must be positive")
	ErrBadThreshold   = errors.New("swipe threshold must be positive")
	ErrBadBarHeight   = errors.New("button bar height must be positive")
	ErrBadLogLevel    = errors.New("unknown log level")
)

// Config is the root configuration.
type Config struct {
	Touchpad TouchpadConfig `toml:"touchpad"`
	Gesture  GestureConfig  `toml:"gesture"`
	Script   ScriptConfig   `toml:"script"`
	Log      LogConfig      `toml:"log"`
}

// TouchpadConfig configures the view and its pointer translation.
type TouchpadConfig struct {
	// ShowButtons enables the button bar overlay.
	ShowButtons bool `toml:"show_buttons"`

	// MouseSensitivity scales touch movement into pointer movement.
	MouseSensitivity float64 `toml:"mouse_sensitivity"`

	// ScrollSensitivity scales touch movement into wheel ticks.
	ScrollSensitivity float64 `toml:"scroll_sensitivity"`

	// InvertScroll flips the scroll direction.
	InvertScroll bool `toml:"invert_scroll"`

	// FlingScroll keeps scrolling after a fast release.
	FlingScroll bool `toml:"fling_scroll"`

	// ButtonBarHeight is the height of the button bar strip.
	ButtonBarHeight int `toml:"button_bar_height"`

	// MiddleButtonWidth is the width of the middle button strip.
	MiddleButtonWidth int `toml:"middle_button_width"`
}

// GestureConfig configures gesture detection thresholds.
type GestureConfig struct {
	// EdgeMargin is how close to an edge a touch must start to be an
	// edge-swipe candidate.
	EdgeMargin int `toml:"edge_margin"`

	// SwipeThreshold is the travel required to recognize a swipe.
	SwipeThreshold int `toml:"swipe_threshold"`
}

// ScriptConfig configures the Lua gesture hook.
type ScriptConfig struct {
	// Path is the Lua script to load. Empty disables scripting.
	Path string `toml:"path"`
}

// LogConfig configures logging output.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`

	// File is the log destination. Empty logs to stderr.
	File string `toml:"file"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Touchpad: TouchpadConfig{
			ShowButtons:       true,
			MouseSensitivity:  1.0,
			ScrollSensitivity: 0.25,
			InvertScroll:      false,
			FlingScroll:       true,
			ButtonBarHeight:   48,
			MiddleButtonWidth: 48,
		},
		Gesture: GestureConfig{
			EdgeMargin:     16,
			SwipeThreshold: 32,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks the configuration for out-of-range values.
func (c Config) Validate() error {
	if c.Touchpad.MouseSensitivity <= 0 {
		return fmt.Errorf("touchpad.mouse_sensitivity %v: %w", c.Touchpad.MouseSensitivity, ErrBadSensitivity)
	}
	if c.Touchpad.ScrollSensitivity <= 0 {
		return fmt.Errorf("touchpad.scroll_sensitivity %v: %w", c.Touchpad.ScrollSensitivity, ErrBadSensitivity)
	}
	if c.Touchpad.ButtonBarHeight <= 0 {
		return fmt.Errorf("touchpad.button_bar_height %d: %w", c.Touchpad.ButtonBarHeight, ErrBadBarHeight)
	}
	if c.Gesture.EdgeMargin <= 0 {
		return fmt.Errorf("gesture.edge_margin %d: %w", c.Gesture.EdgeMargin, ErrBadMargin)
	}
	if c.Gesture.SwipeThreshold <= 0 {
		return fmt.Errorf("gesture.swipe_threshold %d: %w", c.Gesture.SwipeThreshold, ErrBadThreshold)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q: %w", c.Log.Level, ErrBadLogLevel)
	}
	return nil
}
