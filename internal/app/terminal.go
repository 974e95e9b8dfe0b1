package app

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/touchpad/internal/touch/button"
	"github.com/dshills/touchpad/internal/touchpad"
)

// Terminal owns the tcell screen: input polling, rendering, and the beep
// used for haptic feedback.
type Terminal struct {
	screen tcell.Screen
}

// NewTerminal creates a terminal frontend.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// NewTerminalWithScreen wraps an existing screen. Tests use this with a
// tcell simulation screen.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Init initializes the screen and enables mouse reporting.
func (t *Terminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnableMouse()
	return nil
}

// Shutdown restores the terminal.
func (t *Terminal) Shutdown() {
	t.screen.Fini()
}

// Size returns the screen dimensions.
func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

// PollEvent blocks for the next terminal event. It returns nil after the
// screen is finalized.
func (t *Terminal) PollEvent() tcell.Event {
	return t.screen.PollEvent()
}

// LongPress rings the terminal bell. Terminal implements touchpad.Haptics;
// the beep stands in for the vibrator pulse on scroll mode changes.
func (t *Terminal) LongPress() {
	_ = t.screen.Beep()
}

var (
	styleDefault = tcell.StyleDefault
	stylePad     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleButton  = tcell.StyleDefault.Reverse(true)
	stylePressed = tcell.StyleDefault.Reverse(true).Bold(true).Foreground(tcell.ColorGreen)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// Render draws the touch area, the button bar, and a status line on the
// bottom row.
func (t *Terminal) Render(v *touchpad.View, status string) {
	t.screen.Clear()
	width, height := t.screen.Size()
	if width <= 0 || height <= 1 {
		t.screen.Show()
		return
	}

	padBottom := v.PadHeight()
	for y := 0; y < padBottom && y < height-1; y++ {
		for x := 0; x < width; x++ {
			t.screen.SetContent(x, y, '·', nil, stylePad)
		}
	}

	if v.ShowButtons() {
		t.renderZone(v, button.ZoneFirst, "left", height-1)
		t.renderZone(v, button.ZoneSecond, "right", height-1)
		t.renderZone(v, button.ZoneMiddle, "mid", height-1)
	}

	t.renderText(0, height-1, width, status, styleStatus)
	t.screen.Show()
}

// renderZone fills a button rect, label centered, pressed zones
// highlighted.
func (t *Terminal) renderZone(v *touchpad.View, z button.Zone, label string, maxY int) {
	r := v.ButtonRect(z)
	if r.Empty() {
		return
	}
	style := styleButton
	if v.ZoneDisplayPressed(z) {
		style = stylePressed
	}

	for y := r.Top; y < r.Bottom && y < maxY; y++ {
		for x := r.Left; x < r.Right; x++ {
			t.screen.SetContent(x, y, ' ', nil, style)
		}
	}

	labelY := r.Top + (r.Bottom-r.Top)/2
	labelX := r.Left + (r.Right-r.Left-len(label))/2
	if labelY < maxY {
		t.renderText(labelX, labelY, r.Right-labelX, label, style)
	}
}

func (t *Terminal) renderText(x, y, maxWidth int, text string, style tcell.Style) {
	for i, r := range text {
		if i >= maxWidth {
			return
		}
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}

// StatusLine formats the bottom-row summary for the current view state.
func StatusLine(v *touchpad.View, session, sink string) string {
	conn := "disconnected"
	if v.Active() {
		conn = "connected"
	}
	return fmt.Sprintf(" %s [%s] scroll:%s session:%s  q:quit b:buttons i:invert v/h/a/n:scroll-mode",
		sink, conn, v.ScrollMode(), session)
}
