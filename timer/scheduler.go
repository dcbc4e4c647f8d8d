package timer

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// CancelFunc stops a repeating callback. Calling it more than once is a
// no-op.
type CancelFunc func()

// Scheduler runs fn every d until cancelled.
type Scheduler interface {
	Every(d time.Duration, fn func()) CancelFunc
}

// Loop is a Scheduler whose callbacks are delivered on Calls instead of
// being run on the ticker goroutine. The consumer of Calls runs them, which
// keeps every callback serialised with the consumer's own event handling.
type Loop struct {
	calls chan func()
}

// NewLoop returns a Loop with an unbuffered call channel.
func NewLoop() *Loop {
	return &Loop{
		calls: make(chan func()),
	}
}

// Calls returns the channel on which due callbacks are delivered.
func (l *Loop) Calls() <-chan func() {
	return l.calls
}

// Every starts a ticker that posts fn to Calls every d.
func (l *Loop) Every(d time.Duration, fn func()) CancelFunc {
	var (
		stopped atomic.Bool
		once    sync.Once
	)

	done := make(chan struct{})
	ticker := time.NewTicker(d)

	call := func() {
		// a call already in flight when the ticker is cancelled is dropped
		if !stopped.Load() {
			fn()
		}
	}

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				select {
				case l.calls <- call:
				case <-done:
					return
				}
			}
		}
	}()

	return func() {
		once.Do(func() {
			stopped.Store(true)
			close(done)
		})
	}
}

// Run executes delivered callbacks until ctx is done. It is for consumers
// that have no event loop of their own.
func (l *Loop) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case fn := <-l.calls:
			fn()
		}
	}
}
