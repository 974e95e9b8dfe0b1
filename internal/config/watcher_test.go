package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, path, src string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "touchpad.toml")
	writeConfig(t, path, "[touchpad]\nmouse_sensitivity = 1.0\n")

	reloaded := make(chan Config, 1)
	w, err := NewWatcher(path, func(cfg Config) {
		select {
		case reloaded <- cfg:
		default:
		}
	}, WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	writeConfig(t, path, "[touchpad]\nmouse_sensitivity = 3.0\n")

	select {
	case cfg := <-reloaded:
		if cfg.Touchpad.MouseSensitivity != 3.0 {
			t.Errorf("Reloaded MouseSensitivity = %v, want 3.0", cfg.Touchpad.MouseSensitivity)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Timed out waiting for reload")
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "touchpad.toml")
	writeConfig(t, path, "")

	reloaded := make(chan Config, 1)
	w, err := NewWatcher(path, func(cfg Config) {
		select {
		case reloaded <- cfg:
		default:
		}
	}, WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	writeConfig(t, filepath.Join(dir, "other.toml"), "unrelated = true\n")

	select {
	case <-reloaded:
		t.Error("Watcher reloaded on a sibling file change")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherReportsLoadErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "touchpad.toml")
	writeConfig(t, path, "")

	errs := make(chan error, 1)
	w, err := NewWatcher(path,
		func(Config) { t.Error("Reload handler called for a broken file") },
		WithDebounce(20*time.Millisecond),
		WithErrorHandler(func(err error) {
			select {
			case errs <- err:
			default:
			}
		}),
	)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	writeConfig(t, path, "[touchpad\nbroken")

	select {
	case <-errs:
	case <-time.After(5 * time.Second):
		t.Fatal("Timed out waiting for the load error")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "touchpad.toml")
	writeConfig(t, path, "")

	w, err := NewWatcher(path, func(Config) {})
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}

	if err := w.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Second Close() error = %v", err)
	}
}
