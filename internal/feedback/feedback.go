// Package feedback is the boundary to audio and haptic output. Every call is
// fire-and-forget: implementations swallow their own failures so a blocked
// speaker or a missing vibration motor never reaches the state machines.
package feedback

import (
	"io"
	"log/slog"
	"sync"
)

// Delegate plays the cues the kiosk asks for.
type Delegate interface {
	PlayTapCue()
	PlayTransitionCue()
	PulseHaptic()
}

// Nop ignores every cue.
type Nop struct{}

func (Nop) PlayTapCue()        {}
func (Nop) PlayTransitionCue() {}
func (Nop) PulseHaptic()       {}

// Recorder counts cues; handy in tests.
type Recorder struct {
	mu          sync.Mutex
	Taps        int
	Transitions int
	Haptics     int
}

func (r *Recorder) PlayTapCue() {
	r.mu.Lock()
	r.Taps++
	r.mu.Unlock()
}

func (r *Recorder) PlayTransitionCue() {
	r.mu.Lock()
	r.Transitions++
	r.mu.Unlock()
}

func (r *Recorder) PulseHaptic() {
	r.mu.Lock()
	r.Haptics++
	r.mu.Unlock()
}

// Counts returns a consistent copy of the counters.
func (r *Recorder) Counts() (taps, transitions, haptics int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Taps, r.Transitions, r.Haptics
}

// Bell rings the terminal bell for sound cues. Terminals have no haptics.
type Bell struct {
	w      io.Writer
	logger *slog.Logger
}

func NewBell(w io.Writer, logger *slog.Logger) *Bell {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bell{w: w, logger: logger}
}

func (b *Bell) PlayTapCue()        { b.ring() }
func (b *Bell) PlayTransitionCue() { b.ring() }
func (b *Bell) PulseHaptic()       {}

func (b *Bell) ring() {
	if _, err := b.w.Write([]byte("\a")); err != nil {
		b.logger.Debug("bell failed", "error", err)
	}
}

// Gate suppresses sound cues while muted() is true. Haptics still pass.
func Gate(next Delegate, muted func() bool) Delegate {
	return gate{next: next, muted: muted}
}

type gate struct {
	next  Delegate
	muted func() bool
}

func (g gate) PlayTapCue() {
	if !g.muted() {
		safely(g.next.PlayTapCue)
	}
}

func (g gate) PlayTransitionCue() {
	if !g.muted() {
		safely(g.next.PlayTransitionCue)
	}
}

func (g gate) PulseHaptic() { safely(g.next.PulseHaptic) }

// safely keeps a misbehaving delegate from unwinding into the caller.
func safely(fn func()) {
	defer func() { _ = recover() }()
	fn()
}
