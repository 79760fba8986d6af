package schedule

import (
	"sort"
	"time"
)

// Manual is a fake clock for tests. Callbacks run synchronously inside Advance.
type Manual struct {
	now     time.Duration
	seq     int
	pending []*manualTimer
}

// NewManual returns a clock at time zero.
func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) After(d time.Duration, fn func()) Timer {
	m.seq++
	t := &manualTimer{due: m.now + d, seq: m.seq, fn: fn}
	m.pending = append(m.pending, t)
	return t
}

// Advance moves the clock forward by d and fires every timer that became
// due, including timers scheduled by callbacks fired during the advance.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for {
		next := m.nextDue(target)
		if next == nil {
			break
		}
		m.now = next.due
		next.fired = true
		next.fn()
	}
	m.now = target
}

// Pending reports how many timers are still waiting to fire.
func (m *Manual) Pending() int {
	n := 0
	for _, t := range m.pending {
		if !t.fired && !t.stopped {
			n++
		}
	}
	return n
}

func (m *Manual) nextDue(limit time.Duration) *manualTimer {
	live := m.pending[:0]
	for _, t := range m.pending {
		if !t.fired && !t.stopped {
			live = append(live, t)
		}
	}
	m.pending = live
	sort.SliceStable(m.pending, func(i, j int) bool {
		if m.pending[i].due != m.pending[j].due {
			return m.pending[i].due < m.pending[j].due
		}
		return m.pending[i].seq < m.pending[j].seq
	})
	if len(m.pending) == 0 || m.pending[0].due > limit {
		return nil
	}
	return m.pending[0]
}

type manualTimer struct {
	due     time.Duration
	seq     int
	fn      func()
	fired   bool
	stopped bool
}

func (t *manualTimer) Stop() bool {
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}
