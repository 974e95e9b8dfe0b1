package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/dshills/touchpad/internal/config"
	"github.com/dshills/touchpad/internal/hid"
	"github.com/dshills/touchpad/internal/hid/uinput"
	"github.com/dshills/touchpad/internal/script"
	"github.com/dshills/touchpad/internal/touch/gesture"
	"github.com/dshills/touchpad/internal/touchpad"
)

// ErrQuit signals a normal user-requested exit.
var ErrQuit = errors.New("quit")

// Options are the command line options.
type Options struct {
	// ConfigPath is the TOML configuration file. Empty uses defaults with
	// no file watching.
	ConfigPath string

	// LogLevel overrides the configured log level when non-empty.
	LogLevel string

	// Sink selects the HID backend: "log" or "uinput".
	Sink string

	// ScriptPath overrides the configured gesture script when non-empty.
	ScriptPath string
}

// Application wires the view, sink, script hook, and terminal frontend
// around a single event loop.
type Application struct {
	opts Options
	cfg  config.Config
	log  *Logger

	loop *Loop
	view *touchpad.View
	term *Terminal

	mouse       hid.Mouse
	mouseCloser io.Closer
	engine      *script.Engine
	watcher     *config.Watcher

	translator touchTranslator
	sessionID  string
	sinkName   string
}

// New builds the application from options. The terminal screen is not
// touched until Run.
func New(opts Options) (*Application, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	level := cfg.Log.Level
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}

	var output io.Writer // nil logs to stderr
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		output = f
	}

	sessionID := uuid.NewString()[:8]
	log := NewLogger(LoggerConfig{
		Level:  ParseLogLevel(level),
		Output: output,
		Prefix: "touchpad",
	}).WithField("session", sessionID)

	a := &Application{
		opts:      opts,
		cfg:       cfg,
		log:       log,
		loop:      NewLoop(0),
		sessionID: sessionID,
	}

	a.view = touchpad.New(viewConfig(cfg), a.loop)

	if err := a.attachSink(opts.Sink); err != nil {
		return nil, err
	}
	if err := a.loadScript(); err != nil {
		a.closeSink()
		return nil, err
	}
	if err := a.watchConfig(); err != nil {
		a.closeScript()
		a.closeSink()
		return nil, err
	}

	return a, nil
}

// View returns the touchpad view, for tests.
func (a *Application) View() *touchpad.View {
	return a.view
}

// attachSink creates the HID backend and connects it to the view.
func (a *Application) attachSink(name string) error {
	switch name {
	case "", "log":
		a.sinkName = "log"
		m := newLogMouse(a.log)
		m.SetClickListener(a.view)
		a.mouse = m
	case "uinput":
		a.sinkName = "uinput"
		m, err := uinput.Open(uinput.DefaultDeviceConfig())
		if err != nil {
			return fmt.Errorf("opening uinput sink: %w", err)
		}
		m.SetClickListener(a.view)
		a.mouse = m
		a.mouseCloser = m
	default:
		return fmt.Errorf("unknown sink %q (want log or uinput)", name)
	}

	a.view.SetMouse(a.mouse)
	a.log.Info("sink %s attached", a.sinkName)
	return nil
}

// loadScript loads the Lua gesture hook if one is configured and installs
// it as the gesture fallback.
func (a *Application) loadScript() error {
	path := a.cfg.Script.Path
	if a.opts.ScriptPath != "" {
		path = a.opts.ScriptPath
	}
	if path == "" {
		return nil
	}

	engine, err := script.New(path, a.view)
	if err != nil {
		return err
	}
	a.engine = engine
	a.view.SetGestureFallback(&scriptFallback{engine: engine, log: a.log.WithComponent("script")})
	a.log.Info("gesture script %s loaded", path)
	return nil
}

// watchConfig starts live reload when a config path was given.
func (a *Application) watchConfig() error {
	if a.opts.ConfigPath == "" {
		return nil
	}

	log := a.log.WithComponent("config")
	w, err := config.NewWatcher(a.opts.ConfigPath,
		func(cfg config.Config) {
			// Apply on the loop goroutine; the view is not thread-safe.
			_ = a.loop.Post(func() { a.applyConfig(cfg) })
		},
		config.WithErrorHandler(func(err error) {
			log.Warn("reload failed: %v", err)
		}),
	)
	if err != nil {
		return fmt.Errorf("watching config: %w", err)
	}
	a.watcher = w
	return nil
}

// applyConfig applies a reloaded configuration to the running view.
// Gesture thresholds take effect for new touch sequences.
func (a *Application) applyConfig(cfg config.Config) {
	a.cfg = cfg
	a.view.SetMouseSensitivity(cfg.Touchpad.MouseSensitivity)
	a.view.SetScrollSensitivity(cfg.Touchpad.ScrollSensitivity)
	a.view.SetInvertScroll(cfg.Touchpad.InvertScroll)
	a.view.SetFlingScroll(cfg.Touchpad.FlingScroll)
	a.view.SetShowButtons(cfg.Touchpad.ShowButtons)
	a.log.WithComponent("config").Info("configuration reloaded")
}

// Run drives the terminal until quit. It owns the loop goroutine; every
// view mutation happens here.
func (a *Application) Run() error {
	term, err := NewTerminal()
	if err != nil {
		return fmt.Errorf("creating terminal: %w", err)
	}
	return a.RunWith(term)
}

// RunWith runs against a prepared terminal. Tests pass a simulation
// screen.
func (a *Application) RunWith(term *Terminal) error {
	if err := term.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	a.term = term
	defer term.Shutdown()

	a.view.SetHaptics(term)
	w, h := term.Size()
	a.resizeView(w, h)
	a.render()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := term.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case <-a.loop.Done():
			return nil
		case fn := <-a.loop.Funcs():
			fn()
			a.render()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := a.handleEvent(ev); err != nil {
				return err
			}
			a.render()
		}
	}
}

func (a *Application) handleEvent(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		a.resizeView(w, h)

	case *tcell.EventMouse:
		for _, te := range a.translator.Translate(ev) {
			a.view.HandleTouch(te)
		}

	case *tcell.EventKey:
		return a.handleKey(ev)
	}
	return nil
}

func (a *Application) handleKey(ev *tcell.EventKey) error {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ErrQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return ErrQuit
		case 'b':
			a.view.SetShowButtons(!a.view.ShowButtons())
		case 'i':
			a.view.SetInvertScroll(!a.view.InvertScroll())
		case 'v':
			a.view.ActivateScrollMode(gesture.ScrollVertical)
		case 'h':
			a.view.ActivateScrollMode(gesture.ScrollHorizontal)
		case 'a':
			a.view.ActivateScrollMode(gesture.ScrollAll)
		case 'n':
			a.view.DeactivateScrollMode()
		}
	}
	return nil
}

// resizeView fits the view into the screen, keeping the bottom row for the
// status line. Configured bar dimensions target touch-device units, far
// coarser than terminal cells, so they are clamped to the screen.
func (a *Application) resizeView(w, h int) {
	viewH := h - 1
	if viewH < 0 {
		viewH = 0
	}

	barH := a.cfg.Touchpad.ButtonBarHeight
	if barH > viewH/3 {
		barH = viewH / 3
	}
	if barH < 1 {
		barH = 1
	}
	a.view.SetButtonBarHeight(barH)

	midW := a.cfg.Touchpad.MiddleButtonWidth
	if midW > w/4 {
		midW = w / 4
	}
	if midW < 1 {
		midW = 1
	}
	a.view.SetMiddleButtonWidth(midW)

	a.view.Resize(w, viewH)
}

func (a *Application) render() {
	if a.term == nil {
		return
	}
	a.term.Render(a.view, StatusLine(a.view, a.sessionID, a.sinkName))
}

// Shutdown releases every resource. Safe to call more than once.
func (a *Application) Shutdown() {
	// Cancel any touch in flight so held buttons release before the sink
	// goes away.
	for _, te := range a.translator.Cancel() {
		a.view.HandleTouch(te)
	}

	if a.watcher != nil {
		_ = a.watcher.Close()
		a.watcher = nil
	}
	a.closeScript()
	a.closeSink()
	a.loop.Close()
}

func (a *Application) closeScript() {
	if a.engine != nil {
		a.engine.Close()
		a.engine = nil
	}
}

func (a *Application) closeSink() {
	if a.mouseCloser != nil {
		if err := a.mouseCloser.Close(); err != nil {
			a.log.Error("closing sink: %v", err)
		}
		a.mouseCloser = nil
	}
}

// scriptFallback adapts a script engine to the gesture listener the view
// expects. Script errors are logged and leave the gesture unconsumed.
type scriptFallback struct {
	engine *script.Engine
	log    *Logger
}

func (f *scriptFallback) OnTouchpadGesture(ev gesture.Event) bool {
	consumed, err := f.engine.OnGesture(ev)
	if err != nil {
		f.log.Error("gesture hook: %v", err)
		return false
	}
	return consumed
}

// viewConfig maps the file configuration onto the view configuration.
func viewConfig(cfg config.Config) touchpad.Config {
	return touchpad.Config{
		ShowButtons:       cfg.Touchpad.ShowButtons,
		MouseSensitivity:  cfg.Touchpad.MouseSensitivity,
		ScrollSensitivity: cfg.Touchpad.ScrollSensitivity,
		InvertScroll:      cfg.Touchpad.InvertScroll,
		FlingScroll:       cfg.Touchpad.FlingScroll,
		ButtonBarHeight:   cfg.Touchpad.ButtonBarHeight,
		MiddleButtonWidth: cfg.Touchpad.MiddleButtonWidth,
		Gesture: gesture.Config{
			EdgeMargin:     cfg.Gesture.EdgeMargin,
			SwipeThreshold: cfg.Gesture.SwipeThreshold,
		},
	}
}
