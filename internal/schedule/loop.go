package schedule

import (
	"context"
	"sync"
	"time"

	"swayn-kiosk/internal/domain"
)

// Loop serializes every state mutation of a visit on one goroutine. Timer
// callbacks are posted back into the loop, so they never race with input.
type Loop struct {
	tasks chan func()
	done  chan struct{}
	once  sync.Once
}

// NewLoop starts a loop goroutine. Callers must Close it.
func NewLoop() *Loop {
	l := &Loop{
		tasks: make(chan func(), 64),
		done:  make(chan struct{}),
	}
	go l.run()
	return l
}

func (l *Loop) run() {
	for {
		select {
		case task := <-l.tasks:
			task()
		case <-l.done:
			return
		}
	}
}

// Post enqueues fn without waiting. It is dropped once the loop is closed.
func (l *Loop) Post(fn func()) {
	select {
	case l.tasks <- fn:
	case <-l.done:
	}
}

// Do runs fn on the loop and waits for it to return.
func (l *Loop) Do(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	task := func() {
		defer close(finished)
		fn()
	}
	select {
	case l.tasks <- task:
	case <-l.done:
		return domain.ErrVisitClosed
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-finished:
		return nil
	case <-l.done:
		return domain.ErrVisitClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// After schedules fn to run on the loop once d has elapsed. Stop must be
// called from the loop goroutine to guarantee the callback will not run.
func (l *Loop) After(d time.Duration, fn func()) Timer {
	t := &loopTimer{}
	t.timer = time.AfterFunc(d, func() {
		l.Post(func() {
			if t.stopped {
				return
			}
			t.stopped = true
			fn()
		})
	})
	return t
}

// Close stops the loop. Pending tasks and timers are discarded.
func (l *Loop) Close() {
	l.once.Do(func() { close(l.done) })
}

// loopTimer state is only touched on the loop goroutine.
type loopTimer struct {
	timer   *time.Timer
	stopped bool
}

func (t *loopTimer) Stop() bool {
	t.timer.Stop()
	if t.stopped {
		return false
	}
	t.stopped = true
	return true
}
