package app

import (
	"errors"
	"testing"
	"time"
)

// drain runs queued work until the queue is empty or the timeout hits.
func drain(t *testing.T, l *Loop, want int) {
	t.Helper()
	for i := 0; i < want; i++ {
		select {
		case fn := <-l.Funcs():
			fn()
		case <-time.After(5 * time.Second):
			t.Fatalf("Timed out draining the loop after %d of %d tasks", i, want)
		}
	}
}

func TestLoopPostOrder(t *testing.T) {
	l := NewLoop(8)
	defer l.Close()

	var got []int
	for i := 1; i <= 3; i++ {
		i := i
		if err := l.Post(func() { got = append(got, i) }); err != nil {
			t.Fatalf("Post() error = %v", err)
		}
	}

	drain(t, l, 3)
	for i, v := range got {
		if v != i+1 {
			t.Fatalf("Execution order = %v, want [1 2 3]", got)
		}
	}
}

func TestLoopPostDelayed(t *testing.T) {
	l := NewLoop(8)
	defer l.Close()

	done := make(chan struct{})
	l.PostDelayed(10*time.Millisecond, func() { close(done) })

	select {
	case fn := <-l.Funcs():
		fn()
	case <-time.After(5 * time.Second):
		t.Fatal("Timed out waiting for the delayed task")
	}

	select {
	case <-done:
	default:
		t.Error("Delayed task did not run")
	}
}

func TestLoopClosedRejectsPost(t *testing.T) {
	l := NewLoop(8)
	l.Close()
	l.Close() // idempotent

	if err := l.Post(func() {}); !errors.Is(err, ErrLoopClosed) {
		t.Errorf("Post() on a closed loop error = %v, want %v", err, ErrLoopClosed)
	}

	select {
	case <-l.Done():
	default:
		t.Error("Done() should be closed after Close()")
	}
}

func TestLoopDelayedAfterCloseDropped(t *testing.T) {
	l := NewLoop(8)
	ran := false
	l.PostDelayed(10*time.Millisecond, func() { ran = true })
	l.Close()

	time.Sleep(50 * time.Millisecond)
	select {
	case fn := <-l.Funcs():
		fn()
	default:
	}
	if ran {
		t.Error("Delayed task ran after the loop closed")
	}
}
