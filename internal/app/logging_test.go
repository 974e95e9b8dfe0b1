package app

import (
	"strings"
	"testing"
)

type logBuffer struct {
	strings.Builder
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf logBuffer
	log := NewLogger(LoggerConfig{Level: LogLevelWarn, Output: &buf, Prefix: "test"})

	log.Debug("debug message")
	log.Info("info message")
	log.Warn("warn message")
	log.Error("error message")

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("Output contains filtered levels:\n%s", out)
	}
	if !strings.Contains(out, "warn message") || !strings.Contains(out, "error message") {
		t.Errorf("Output missing enabled levels:\n%s", out)
	}
}

func TestLoggerFields(t *testing.T) {
	var buf logBuffer
	log := NewLogger(LoggerConfig{Level: LogLevelDebug, Output: &buf})

	log.WithField("session", "abc123").WithComponent("sink").Info("attached")

	out := buf.String()
	if !strings.Contains(out, "session=abc123") {
		t.Errorf("Output missing session field:\n%s", out)
	}
	if !strings.Contains(out, "component=sink") {
		t.Errorf("Output missing component field:\n%s", out)
	}
}

func TestLoggerFormatArgs(t *testing.T) {
	var buf logBuffer
	log := NewLogger(LoggerConfig{Level: LogLevelDebug, Output: &buf})

	log.Info("move %d,%d", 4, -2)

	if !strings.Contains(buf.String(), "move 4,-2") {
		t.Errorf("Output missing formatted message:\n%s", buf.String())
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LogLevelDebug},
		{"DEBUG", LogLevelDebug},
		{"info", LogLevelInfo},
		{"warn", LogLevelWarn},
		{"warning", LogLevelWarn},
		{"error", LogLevelError},
		{"bogus", LogLevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNullLoggerSilent(t *testing.T) {
	// Must not panic and must write nowhere.
	NullLogger.Error("dropped")
}
