package app

import (
	"errors"
	"sync"
	"time"
)

// ErrLoopClosed is returned when posting to a closed loop.
var ErrLoopClosed = errors.New("event loop is closed")

// Loop serializes work onto the single goroutine that owns the touchpad
// view and gesture detector. Delayed callbacks, like click flash clears and
// fling ticks, are timers that re-post into the queue, so they too run on
// the loop goroutine.
//
// Loop implements touchpad.Scheduler.
type Loop struct {
	funcs chan func()

	mu     sync.Mutex
	closed bool
	done   chan struct{}
}

// NewLoop creates a loop with the given queue depth.
func NewLoop(size int) *Loop {
	if size <= 0 {
		size = 256
	}
	return &Loop{
		funcs: make(chan func(), size),
		done:  make(chan struct{}),
	}
}

// Post queues fn for execution on the loop goroutine.
func (l *Loop) Post(fn func()) error {
	l.mu.Lock()
	closed := l.closed
	l.mu.Unlock()
	if closed {
		return ErrLoopClosed
	}

	select {
	case l.funcs <- fn:
		return nil
	case <-l.done:
		return ErrLoopClosed
	}
}

// PostDelayed schedules fn to run on the loop goroutine after d. Callbacks
// landing after Close are dropped.
func (l *Loop) PostDelayed(d time.Duration, fn func()) {
	time.AfterFunc(d, func() {
		_ = l.Post(fn)
	})
}

// Close stops the loop. Pending work is dropped. Safe to call more than
// once.
func (l *Loop) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.closed = true
	close(l.done)
}

// Done returns a channel closed when the loop is closed.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Funcs exposes the work queue for the owning select loop.
func (l *Loop) Funcs() <-chan func() {
	return l.funcs
}
