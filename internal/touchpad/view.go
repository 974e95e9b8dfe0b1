package touchpad

import (
	"time"

	"github.com/dshills/touchpad/internal/hid"
	"github.com/dshills/touchpad/internal/touch"
	"github.com/dshills/touchpad/internal/touch/button"
	"github.com/dshills/touchpad/internal/touch/gesture"
)

const (
	// clickFlashDuration is how long a zone renders pressed after a
	// simulated click.
	clickFlashDuration = 100 * time.Millisecond

	// Fling tuning. Speeds are pad units per second.
	flingInterval   = 30 * time.Millisecond
	flingDecay      = 0.85
	flingStartSpeed = 300.0
	flingStopSpeed  = 30.0
)

// Config configures a View.
type Config struct {
	// ShowButtons enables the button bar overlay and its hit testing.
	ShowButtons bool

	// MouseSensitivity scales touch movement into pointer movement.
	MouseSensitivity float64

	// ScrollSensitivity scales touch movement into wheel ticks.
	ScrollSensitivity float64

	// InvertScroll flips the scroll direction.
	InvertScroll bool

	// FlingScroll keeps scrolling with decaying velocity after a fast
	// release.
	FlingScroll bool

	// ButtonBarHeight is the height of the button bar strip.
	ButtonBarHeight int

	// MiddleButtonWidth is the width of the middle button strip centered
	// on the first/second split.
	MiddleButtonWidth int

	// Gesture holds the detection thresholds.
	Gesture gesture.Config
}

// DefaultConfig returns sensible view defaults.
func DefaultConfig() Config {
	return Config{
		ShowButtons:       true,
		MouseSensitivity:  1.0,
		ScrollSensitivity: 0.25,
		InvertScroll:      false,
		FlingScroll:       true,
		ButtonBarHeight:   48,
		MiddleButtonWidth: 48,
		Gesture:           gesture.DefaultConfig(),
	}
}

// View is the touchpad composition layer. It owns the routing of raw touch
// events to the button tracker and gesture detector and translates their
// output into HID mouse activity.
//
// View implements gesture.Listener, gesture.ScrollModeListener, and
// hid.ClickListener.
type View struct {
	cfg   Config
	sched Scheduler

	mouse    hid.Mouse
	tracker  *button.Tracker
	detector *gesture.Detector
	haptics  Haptics
	fallback gesture.Listener

	width  int
	height int

	// Transient click flash per zone. flashGen guards scheduled clears so
	// a superseded timer is a no-op.
	clickFlash [button.ZoneCount]bool
	flashGen   [button.ZoneCount]uint64

	fling    flingTracker
	flingGen uint64

	// Fractional remainders carried between events so low sensitivities
	// still accumulate.
	moveRemX, moveRemY     float64
	scrollRemY, scrollRemX float64
}

// New creates a view. The scheduler must post callbacks onto the thread
// that will deliver touch events.
func New(cfg Config, sched Scheduler) *View {
	v := &View{
		cfg:      cfg,
		sched:    sched,
		tracker:  button.NewTracker(),
		detector: gesture.NewDetector(cfg.Gesture),
	}
	v.detector.SetListener(v)
	v.detector.SetScrollModeListener(v)
	return v
}

// SetMouse attaches the HID sink. Detaching (nil) or attaching a
// disconnected sink releases all held buttons and drops the scroll mode.
func (v *View) SetMouse(m hid.Mouse) {
	v.mouse = m
	v.tracker.SetMouse(m)
	if !v.Active() {
		v.tracker.ReleaseAll()
		v.stopFling()
		v.detector.Reset()
		v.detector.DeactivateScrollMode()
	}
}

// Mouse returns the attached HID sink, or nil.
func (v *View) Mouse() hid.Mouse {
	return v.mouse
}

// SetHaptics sets the haptic feedback collaborator. May be nil.
func (v *View) SetHaptics(h Haptics) {
	v.haptics = h
}

// SetGestureFallback sets a listener for gestures the built-in dispatch
// policy leaves unconsumed, such as a user script hook.
func (v *View) SetGestureFallback(l gesture.Listener) {
	v.fallback = l
}

// Active reports whether a connected HID sink is attached.
func (v *View) Active() bool {
	return v.mouse != nil && v.mouse.IsConnected()
}

// Resize sets the view dimensions and recomputes the button layout.
func (v *View) Resize(width, height int) {
	v.width = width
	v.height = height
	v.layoutButtons()
	v.detector.SetSize(width, v.PadHeight())
}

// PadHeight returns the height of the touch area above the button bar.
func (v *View) PadHeight() int {
	if v.cfg.ShowButtons && v.height > v.cfg.ButtonBarHeight {
		return v.height - v.cfg.ButtonBarHeight
	}
	return v.height
}

// ButtonRect returns the layout rectangle of a zone.
func (v *View) ButtonRect(z button.Zone) button.Rect {
	return v.tracker.Rect(z)
}

// ScrollMode returns the current scroll mode.
func (v *View) ScrollMode() gesture.ScrollMode {
	return v.detector.ScrollMode()
}

// ActivateScrollMode switches the scroll mode, for callers outside the
// gesture dispatch policy (programmatic activation, script hooks).
func (v *View) ActivateScrollMode(mode gesture.ScrollMode) {
	v.detector.ActivateScrollMode(mode)
}

// DeactivateScrollMode resets the scroll mode to none.
func (v *View) DeactivateScrollMode() {
	v.detector.DeactivateScrollMode()
}

// ShowButtons reports whether the button overlay is enabled.
func (v *View) ShowButtons() bool {
	return v.cfg.ShowButtons
}

// SetShowButtons toggles the button overlay and recomputes the layout.
func (v *View) SetShowButtons(show bool) {
	if show == v.cfg.ShowButtons {
		return
	}
	v.cfg.ShowButtons = show
	if !show {
		v.tracker.ReleaseAll()
	}
	v.Resize(v.width, v.height)
}

// SetButtonBarHeight sets the button bar height and recomputes the layout.
func (v *View) SetButtonBarHeight(h int) {
	if h <= 0 || h == v.cfg.ButtonBarHeight {
		return
	}
	v.cfg.ButtonBarHeight = h
	v.Resize(v.width, v.height)
}

// SetMiddleButtonWidth sets the middle button width and recomputes the
// layout.
func (v *View) SetMiddleButtonWidth(w int) {
	if w <= 0 || w == v.cfg.MiddleButtonWidth {
		return
	}
	v.cfg.MiddleButtonWidth = w
	v.Resize(v.width, v.height)
}

// MouseSensitivity returns the pointer movement multiplier.
func (v *View) MouseSensitivity() float64 { return v.cfg.MouseSensitivity }

// SetMouseSensitivity sets the pointer movement multiplier.
func (v *View) SetMouseSensitivity(s float64) { v.cfg.MouseSensitivity = s }

// ScrollSensitivity returns the wheel multiplier.
func (v *View) ScrollSensitivity() float64 { return v.cfg.ScrollSensitivity }

// SetScrollSensitivity sets the wheel multiplier.
func (v *View) SetScrollSensitivity(s float64) { v.cfg.ScrollSensitivity = s }

// InvertScroll reports whether scroll direction is inverted.
func (v *View) InvertScroll() bool { return v.cfg.InvertScroll }

// SetInvertScroll sets scroll inversion.
func (v *View) SetInvertScroll(invert bool) { v.cfg.InvertScroll = invert }

// FlingScroll reports whether fling scrolling is enabled.
func (v *View) FlingScroll() bool { return v.cfg.FlingScroll }

// SetFlingScroll enables or disables fling scrolling.
func (v *View) SetFlingScroll(fling bool) {
	v.cfg.FlingScroll = fling
	if !fling {
		v.stopFling()
	}
}

// HandleTouch processes one raw touch event. It returns true if the event
// was consumed by a button zone; pad events always return false so callers
// can layer additional handling.
func (v *View) HandleTouch(ev touch.Event) bool {
	// Guard against stuck buttons when connectivity drops mid-gesture:
	// release everything on cancel or an inactive sink, whatever the
	// coordinates say.
	if !v.Active() || ev.Action == touch.ActionCancel {
		v.tracker.ReleaseAll()
	}

	if v.cfg.ShowButtons && v.handleButtonsTouch(ev) {
		return true
	}

	v.handlePadTouch(ev)
	return false
}

// handleButtonsTouch routes an event to the button tracker. It returns
// true only when the tracker consumed the event.
func (v *View) handleButtonsTouch(ev touch.Event) bool {
	if !v.Active() || ev.Action == touch.ActionCancel {
		return false
	}

	switch ev.Action {
	case touch.ActionDown, touch.ActionPointerDown:
		pos, ok := ev.ActingPosition()
		if !ok {
			return false
		}
		return v.tracker.PointerDown(ev.Pointer, pos)
	case touch.ActionPointerUp:
		return v.tracker.PointerUp(ev.Pointer)
	case touch.ActionUp:
		// The final lift releases everything but is not consumed; the
		// detector still needs to close its sequence.
		v.tracker.ReleaseAll()
	}
	return false
}

// handlePadTouch feeds an event to the gesture detector and translates the
// resulting movement into pointer or wheel output.
func (v *View) handlePadTouch(ev touch.Event) {
	switch ev.Action {
	case touch.ActionDown:
		// A fresh touch interrupts any running fling.
		v.stopFling()
		v.fling.reset()
	case touch.ActionCancel:
		v.stopFling()
		v.detector.HandleEvent(ev)
		// No gesture state survives a cancel, the scroll mode included.
		v.detector.DeactivateScrollMode()
		return
	}

	mv := v.detector.HandleEvent(ev)

	if !mv.IsZero() {
		if mode := v.detector.ScrollMode(); mode != gesture.ScrollNone {
			v.fling.observe(mv.DX, mv.DY, ev.Timestamp)
			if v.Active() {
				v.applyScroll(mv.DX, mv.DY, mode)
			}
		} else if v.Active() {
			v.applyMove(mv.DX, mv.DY)
		}
	}

	if ev.Action == touch.ActionUp {
		v.maybeFling()
	}
}

// OnTouchpadGesture applies the gesture dispatch policy. Unmatched
// combinations go to the fallback listener if one is set, otherwise the
// gesture is not consumed.
func (v *View) OnTouchpadGesture(ev gesture.Event) bool {
	if v.dispatchGesture(ev) {
		return true
	}
	if v.fallback != nil {
		return v.fallback.OnTouchpadGesture(ev)
	}
	return false
}

// dispatchGesture is the deterministic built-in policy table.
func (v *View) dispatchGesture(ev gesture.Event) bool {
	switch ev.Kind {
	case gesture.KindEdgeRight:
		if ev.Direction.IsVertical() {
			v.detector.ActivateScrollMode(gesture.ScrollVertical)
			return true
		}
	case gesture.KindTwoFinger:
		switch {
		case ev.Direction.IsVertical():
			v.detector.ActivateScrollMode(gesture.ScrollVertical)
			return true
		case ev.Direction == gesture.DirectionLeft:
			if v.mouse != nil {
				v.mouse.ClickButton(hid.Button4)
				return true
			}
			return false
		case ev.Direction == gesture.DirectionRight:
			if v.mouse != nil {
				v.mouse.ClickButton(hid.Button5)
				return true
			}
			return false
		}
	}
	return false
}

// OnScrollModeChanged triggers haptic feedback when scrolling engages or
// disengages. Transitions between two active modes are silent.
func (v *View) OnScrollModeChanged(newMode, oldMode gesture.ScrollMode) {
	if newMode == gesture.ScrollNone {
		v.stopFling()
	}
	if newMode == gesture.ScrollNone || oldMode == gesture.ScrollNone {
		if v.haptics != nil {
			v.haptics.LongPress()
		}
	}
}

// OnMouseButtonClick flashes the zone of a simulated click for
// clickFlashDuration. A real press during the window composes by union;
// the flash clear never clears the real press.
func (v *View) OnMouseButtonClick(clickType hid.ClickType, b hid.Button) {
	if clickType != hid.ClickSimulated {
		return
	}
	z, ok := button.ZoneForButton(b)
	if !ok {
		return
	}

	v.clickFlash[z] = true
	v.flashGen[z]++
	gen := v.flashGen[z]

	if v.sched == nil {
		return
	}
	v.sched.PostDelayed(clickFlashDuration, func() {
		// A newer flash or a teardown may have superseded this timer.
		if v.flashGen[z] == gen {
			v.clickFlash[z] = false
		}
	})
}

// ZonePressed reports whether a zone is pressed: a transient click flash
// or the sink reporting its mapped button held.
func (v *View) ZonePressed(z button.Zone) bool {
	if z >= button.ZoneCount {
		return false
	}
	if v.clickFlash[z] {
		return true
	}
	return v.mouse != nil && v.mouse.IsButtonPressed(z.Button())
}

// ZoneDisplayPressed reports whether a zone should render pressed. The
// first and second halves also light up while the overlapping middle
// button is held.
func (v *View) ZoneDisplayPressed(z button.Zone) bool {
	if v.ZonePressed(z) {
		return true
	}
	if z == button.ZoneFirst || z == button.ZoneSecond {
		return v.ZonePressed(button.ZoneMiddle)
	}
	return false
}

// layoutButtons computes the zone rectangles: first/second split the
// button bar at the horizontal center, the middle strip is centered on the
// split and overlaps both.
func (v *View) layoutButtons() {
	if !v.cfg.ShowButtons || v.width <= 0 || v.height <= v.cfg.ButtonBarHeight {
		for z := button.ZoneFirst; z < button.ZoneCount; z++ {
			v.tracker.SetRect(z, button.Rect{})
		}
		return
	}

	barTop := v.height - v.cfg.ButtonBarHeight
	center := v.width / 2
	middleLeft := center - v.cfg.MiddleButtonWidth/2
	middleRight := middleLeft + v.cfg.MiddleButtonWidth

	v.tracker.SetRect(button.ZoneFirst, button.Rect{Left: 0, Top: barTop, Right: center, Bottom: v.height})
	v.tracker.SetRect(button.ZoneSecond, button.Rect{Left: center, Top: barTop, Right: v.width, Bottom: v.height})
	v.tracker.SetRect(button.ZoneMiddle, button.Rect{Left: middleLeft, Top: barTop, Right: middleRight, Bottom: v.height})
}

// applyMove converts a touch delta into pointer movement, carrying
// fractional remainders between events.
func (v *View) applyMove(dx, dy int) {
	fx := float64(dx)*v.cfg.MouseSensitivity + v.moveRemX
	fy := float64(dy)*v.cfg.MouseSensitivity + v.moveRemY
	ix, iy := int(fx), int(fy)
	v.moveRemX = fx - float64(ix)
	v.moveRemY = fy - float64(iy)
	if ix != 0 || iy != 0 {
		v.mouse.MoveMouse(ix, iy)
	}
}

// applyScroll converts a touch delta into wheel ticks for the active
// scroll mode. Moving the finger up scrolls up; InvertScroll flips that.
func (v *View) applyScroll(dx, dy int, mode gesture.ScrollMode) {
	var wy, wx float64
	if mode == gesture.ScrollVertical || mode == gesture.ScrollAll {
		wy = -float64(dy) * v.cfg.ScrollSensitivity
	}
	if mode == gesture.ScrollHorizontal || mode == gesture.ScrollAll {
		wx = float64(dx) * v.cfg.ScrollSensitivity
	}
	if v.cfg.InvertScroll {
		wy, wx = -wy, -wx
	}

	fy := wy + v.scrollRemY
	fx := wx + v.scrollRemX
	iy, ix := int(fy), int(fx)
	v.scrollRemY = fy - float64(iy)
	v.scrollRemX = fx - float64(ix)
	if iy != 0 || ix != 0 {
		v.mouse.ScrollWheel(iy, ix)
	}
}

// maybeFling starts a fling if the scroll release was fast enough.
func (v *View) maybeFling() {
	if !v.cfg.FlingScroll || v.sched == nil {
		return
	}
	if v.detector.ScrollMode() == gesture.ScrollNone {
		return
	}
	if v.fling.speed() < flingStartSpeed {
		return
	}

	vx, vy := v.fling.velocity()
	v.flingGen++
	v.scheduleFlingTick(v.flingGen, vx, vy)
}

// stopFling invalidates any scheduled fling ticks.
func (v *View) stopFling() {
	v.flingGen++
}

func (v *View) scheduleFlingTick(gen uint64, vx, vy float64) {
	v.sched.PostDelayed(flingInterval, func() {
		if gen != v.flingGen {
			return
		}
		mode := v.detector.ScrollMode()
		if mode == gesture.ScrollNone || !v.Active() {
			return
		}

		dt := flingInterval.Seconds()
		v.applyScroll(int(vx*dt), int(vy*dt), mode)

		vx *= flingDecay
		vy *= flingDecay
		if maxAbsFloat(vx, vy) < flingStopSpeed {
			return
		}
		v.scheduleFlingTick(gen, vx, vy)
	})
}

func maxAbsFloat(a, b float64) float64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	if a > b {
		return a
	}
	return b
}
