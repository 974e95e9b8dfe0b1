//go:build linux

// Package uinput provides a hid.Mouse backed by a Linux virtual input
// device. The device is created through /dev/uinput and emits relative
// movement, wheel, and button events like a physical USB mouse.
package uinput

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/dshills/touchpad/internal/hid"
)

const uinputMaxNameSize = 80

// uinput ioctl requests, from uinput.h.
const (
	uiDevCreate  = 0x5501
	uiDevDestroy = 0x5502
	uiSetEvBit   = 0x40045564
	uiSetKeyBit  = 0x40045565
	uiSetRelBit  = 0x40045566
)

// Event types and codes, from input-event-codes.h.
const (
	evSyn = 0x00
	evKey = 0x01
	evRel = 0x02

	synReport = 0x00

	relX      = 0x00
	relY      = 0x01
	relHWheel = 0x06
	relWheel  = 0x08

	btnLeft   = 0x110
	btnRight  = 0x111
	btnMiddle = 0x112
	btnSide   = 0x113
	btnExtra  = 0x114

	busUSB = 0x03
)

type inputID struct {
	Bustype uint16
	Vendor  uint16
	Product uint16
	Version uint16
}

type uinputUserDev struct {
	Name         [uinputMaxNameSize]byte
	ID           inputID
	FfEffectsMax uint32
	Absmax       [64]int32
	Absmin       [64]int32
	Absfuzz      [64]int32
	Absflat      [64]int32
}

type inputEvent struct {
	Time  unix.Timeval
	Type  uint16
	Code  uint16
	Value int32
}

// buttonCodes maps HID buttons to kernel key codes.
var buttonCodes = map[hid.Button]uint16{
	hid.ButtonFirst:  btnLeft,
	hid.ButtonSecond: btnRight,
	hid.ButtonMiddle: btnMiddle,
	hid.Button4:      btnSide,
	hid.Button5:      btnExtra,
}

// Mouse is a hid.Mouse writing to a kernel virtual input device. Press and
// click notifications come from the embedded StateMouse.
type Mouse struct {
	hid.StateMouse

	file    *os.File
	lastErr error
}

// Open creates the virtual mouse device. The caller needs write access to
// the uinput node, typically root or the input group.
func Open(cfg Config) (*Mouse, error) {
	path := cfg.Path
	if path == "" {
		path = DefaultPath
	}
	if cfg.Name == "" || len(cfg.Name) > uinputMaxNameSize-1 {
		return nil, fmt.Errorf("invalid device name %q", cfg.Name)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|unix.O_NONBLOCK, 0o660)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	if err := setupDevice(file, cfg); err != nil {
		file.Close()
		return nil, err
	}
	return &Mouse{file: file}, nil
}

func setupDevice(file *os.File, cfg Config) error {
	if err := ioctl(file, uiSetEvBit, evKey); err != nil {
		return fmt.Errorf("registering key events: %w", err)
	}
	for _, code := range buttonCodes {
		if err := ioctl(file, uiSetKeyBit, uintptr(code)); err != nil {
			return fmt.Errorf("registering button 0x%x: %w", code, err)
		}
	}

	if err := ioctl(file, uiSetEvBit, evRel); err != nil {
		return fmt.Errorf("registering relative events: %w", err)
	}
	for _, code := range []uint16{relX, relY, relWheel, relHWheel} {
		if err := ioctl(file, uiSetRelBit, uintptr(code)); err != nil {
			return fmt.Errorf("registering relative axis 0x%x: %w", code, err)
		}
	}

	dev := uinputUserDev{
		ID: inputID{
			Bustype: busUSB,
			Vendor:  cfg.Vendor,
			Product: cfg.Product,
			Version: 1,
		},
	}
	copy(dev.Name[:], cfg.Name)

	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, dev); err != nil {
		return fmt.Errorf("encoding device descriptor: %w", err)
	}
	if _, err := file.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writing device descriptor: %w", err)
	}

	if err := ioctl(file, uiDevCreate, 0); err != nil {
		return fmt.Errorf("creating device: %w", err)
	}
	return nil
}

// Close destroys the virtual device.
func (m *Mouse) Close() error {
	if m.file == nil {
		return nil
	}
	destroyErr := ioctl(m.file, uiDevDestroy, 0)
	closeErr := m.file.Close()
	m.file = nil
	if destroyErr != nil {
		return destroyErr
	}
	return closeErr
}

// IsConnected reports whether the device is open and the last write
// succeeded.
func (m *Mouse) IsConnected() bool {
	return m.file != nil && m.lastErr == nil
}

// Err returns the error that disconnected the device, if any.
func (m *Mouse) Err() error {
	return m.lastErr
}

// PressButton emits a button-down event.
func (m *Mouse) PressButton(b hid.Button) {
	code, ok := buttonCodes[b]
	if !ok {
		return
	}
	if !m.SetPressed(b, true) {
		return
	}
	m.send(evKey, code, 1)
	m.sync()
}

// ReleaseButton emits a button-up event.
func (m *Mouse) ReleaseButton(b hid.Button) {
	code, ok := buttonCodes[b]
	if !ok {
		return
	}
	if !m.SetPressed(b, false) {
		return
	}
	m.send(evKey, code, 0)
	m.sync()
}

// ClickButton emits a press immediately followed by a release and notifies
// the click listener.
func (m *Mouse) ClickButton(b hid.Button) {
	code, ok := buttonCodes[b]
	if !ok {
		return
	}
	m.send(evKey, code, 1)
	m.sync()
	m.send(evKey, code, 0)
	m.sync()
	m.NotifyClick(b)
}

// MoveMouse emits a relative movement event.
func (m *Mouse) MoveMouse(dx, dy int) {
	if dx == 0 && dy == 0 {
		return
	}
	if dx != 0 {
		m.send(evRel, relX, int32(dx))
	}
	if dy != 0 {
		m.send(evRel, relY, int32(dy))
	}
	m.sync()
}

// ScrollWheel emits wheel events. Positive dy scrolls up; positive dx
// scrolls right.
func (m *Mouse) ScrollWheel(dy, dx int) {
	if dy == 0 && dx == 0 {
		return
	}
	if dy != 0 {
		m.send(evRel, relWheel, int32(dy))
	}
	if dx != 0 {
		m.send(evRel, relHWheel, int32(dx))
	}
	m.sync()
}

func (m *Mouse) send(eventType, code uint16, value int32) {
	if m.file == nil || m.lastErr != nil {
		return
	}
	buf := bytes.NewBuffer(make([]byte, 0, 24))
	if err := binary.Write(buf, binary.LittleEndian, inputEvent{
		Type:  eventType,
		Code:  code,
		Value: value,
	}); err != nil {
		m.lastErr = err
		return
	}
	if _, err := m.file.Write(buf.Bytes()); err != nil {
		// A failed write means the device is gone; stop emitting.
		m.lastErr = err
	}
}

func (m *Mouse) sync() {
	m.send(evSyn, synReport, 0)
}

func ioctl(file *os.File, cmd, arg uintptr) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, file.Fd(), cmd, arg)
	if errno != 0 {
		return errno
	}
	return nil
}

var _ hid.Mouse = (*Mouse)(nil)
