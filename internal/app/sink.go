package app

import (
	"github.com/dshills/touchpad/internal/hid"
)

// logMouse is a dry-run HID sink that logs every operation instead of
// driving a device. It is the default sink, useful for trying gestures
// without uinput access.
type logMouse struct {
	hid.StateMouse
	log *Logger
}

func newLogMouse(log *Logger) *logMouse {
	return &logMouse{log: log.WithComponent("sink")}
}

// IsConnected always reports true; the log never goes away.
func (m *logMouse) IsConnected() bool { return true }

func (m *logMouse) PressButton(b hid.Button) {
	if !m.SetPressed(b, true) {
		return
	}
	m.log.Info("press %s", b)
}

func (m *logMouse) ReleaseButton(b hid.Button) {
	if !m.SetPressed(b, false) {
		return
	}
	m.log.Info("release %s", b)
}

func (m *logMouse) ClickButton(b hid.Button) {
	if b == hid.ButtonNone {
		return
	}
	m.log.Info("click %s", b)
	m.NotifyClick(b)
}

func (m *logMouse) MoveMouse(dx, dy int) {
	m.log.Debug("move %d,%d", dx, dy)
}

func (m *logMouse) ScrollWheel(dy, dx int) {
	m.log.Debug("scroll %d,%d", dy, dx)
}

var _ hid.Mouse = (*logMouse)(nil)
