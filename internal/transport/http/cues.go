package http

import "errors"

var (
	errInvalidPayload = errors.New("invalid payload")
	errUnsupported    = errors.New("unsupported message type")
)

// cueSink forwards sound and haptic cues to the browser, which owns the
// speaker and the vibration motor. Cues are dropped when the client lags.
type cueSink struct {
	ch   chan string
	done <-chan struct{}
}

func newCueSink(done <-chan struct{}) *cueSink {
	return &cueSink{ch: make(chan string, 8), done: done}
}

func (s *cueSink) PlayTapCue()        { s.emit("tap") }
func (s *cueSink) PlayTransitionCue() { s.emit("transition") }
func (s *cueSink) PulseHaptic()       { s.emit("haptic") }

func (s *cueSink) emit(cue string) {
	select {
	case <-s.done:
	case s.ch <- cue:
	default:
	}
}
