//go:build !linux

// Package uinput provides a hid.Mouse backed by a Linux virtual input
// device. On other platforms Open always fails with ErrUnsupported.
package uinput

import "github.com/dshills/touchpad/internal/hid"

// Mouse is a stub on platforms without uinput. Open never returns one.
type Mouse struct {
	hid.StateMouse
}

// Open fails with ErrUnsupported.
func Open(Config) (*Mouse, error) {
	return nil, ErrUnsupported
}

// Close is a no-op on the stub.
func (m *Mouse) Close() error { return nil }

// IsConnected always reports false on the stub.
func (m *Mouse) IsConnected() bool { return false }

// Err always returns nil on the stub.
func (m *Mouse) Err() error { return nil }

// PressButton is a no-op on the stub.
func (m *Mouse) PressButton(hid.Button) {}

// ReleaseButton is a no-op on the stub.
func (m *Mouse) ReleaseButton(hid.Button) {}

// ClickButton is a no-op on the stub.
func (m *Mouse) ClickButton(hid.Button) {}

// MoveMouse is a no-op on the stub.
func (m *Mouse) MoveMouse(int, int) {}

// ScrollWheel is a no-op on the stub.
func (m *Mouse) ScrollWheel(int, int) {}

var _ hid.Mouse = (*Mouse)(nil)
