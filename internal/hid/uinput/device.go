package uinput

import "errors"

// DefaultPath is the uinput device node on stock kernels.
const DefaultPath = "/dev/uinput"

// ErrUnsupported is returned by Open on platforms without uinput.
var ErrUnsupported = errors.New("uinput not supported on this platform")

// Config describes the virtual device to create.
type Config struct {
	// Path is the uinput device node. Empty uses DefaultPath.
	Path string

	// Name is the device name shown to the input stack.
	Name string

	// Vendor and Product identify the virtual device.
	Vendor  uint16
	Product uint16
}

// DefaultDeviceConfig returns the config for the standard virtual mouse.
func DefaultDeviceConfig() Config {
	return Config{
		Path:    DefaultPath,
		Name:    "touchpad-virtual-mouse",
		Vendor:  0x1234,
		Product: 0x5678,
	}
}
