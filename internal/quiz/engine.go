// Package quiz sequences the questions of one quiz run and scores the answers.
package quiz

import (
	"fmt"
	"time"

	"swayn-kiosk/internal/domain"
	"swayn-kiosk/internal/feedback"
	"swayn-kiosk/internal/schedule"
)

// DefaultSettleDelay matches the exit animation of a question card.
const DefaultSettleDelay = 400 * time.Millisecond

// Engine holds one quiz run. It is not safe for concurrent use; drive it
// from the goroutine that owns its scheduler.
type Engine struct {
	questions  []domain.Question
	scheduler  schedule.Scheduler
	cues       feedback.Delegate
	settle     time.Duration
	onComplete func(domain.Category)
	onChange   func()

	index   int
	answers []domain.Option
	locked  bool
	pending schedule.Timer
	done    bool
	result  domain.Category
}

// NewEngine starts a run over questions. onComplete receives the result once
// the last answer has settled.
func NewEngine(questions []domain.Question, scheduler schedule.Scheduler, cues feedback.Delegate, settle time.Duration, onComplete func(domain.Category)) *Engine {
	if len(questions) == 0 {
		panic("quiz: engine needs at least one question")
	}
	if cues == nil {
		cues = feedback.Nop{}
	}
	if settle <= 0 {
		settle = DefaultSettleDelay
	}
	return &Engine{
		questions:  questions,
		scheduler:  scheduler,
		cues:       cues,
		settle:     settle,
		onComplete: onComplete,
	}
}

// OnChange registers a hook fired after every timer-driven mutation.
func (e *Engine) OnChange(fn func()) {
	e.onChange = fn
}

// Submit records option for the current question once the settle delay has
// passed. It reports false when a transition is already in flight.
func (e *Engine) Submit(option domain.Option) bool {
	if e.done || e.index >= len(e.questions) {
		panic(fmt.Sprintf("quiz: submit at index %d of %d", e.index, len(e.questions)))
	}
	if e.locked {
		return false
	}

	e.cues.PlayTapCue()
	e.cues.PulseHaptic()
	e.locked = true
	e.pending = e.scheduler.After(e.settle, func() {
		e.pending = nil
		e.apply(option)
		if e.onChange != nil {
			e.onChange()
		}
	})
	return true
}

func (e *Engine) apply(option domain.Option) {
	e.answers = append(e.answers, option)
	if e.index < len(e.questions)-1 {
		e.index++
		e.locked = false
		return
	}

	e.index = len(e.questions)
	e.done = true
	e.result = Score(e.answers)
	if e.onComplete != nil {
		e.onComplete(e.result)
	}
}

// Back undoes the previous answer. exit is true when there is nothing to
// undo and the caller should leave the quiz instead.
func (e *Engine) Back() (exit bool) {
	if e.locked {
		return false
	}
	e.cues.PlayTapCue()
	e.cues.PulseHaptic()
	if e.index == 0 {
		return true
	}
	e.index--
	e.answers = e.answers[:len(e.answers)-1]
	return false
}

// Reset returns the engine to the state of a fresh run.
func (e *Engine) Reset() {
	e.Close()
	e.index = 0
	e.answers = nil
	e.locked = false
	e.done = false
	e.result = ""
}

// Close cancels a pending settle so it can no longer touch the run.
func (e *Engine) Close() {
	if e.pending != nil {
		e.pending.Stop()
		e.pending = nil
	}
}

// Question returns the question on screen.
func (e *Engine) Question() domain.Question {
	return e.questions[min(e.index, len(e.questions)-1)]
}

// Progress returns the 1-based question number on screen and the total.
func (e *Engine) Progress() (current, total int) {
	total = len(e.questions)
	return min(e.index+1, total), total
}

func (e *Engine) Index() int { return e.index }

func (e *Engine) Locked() bool { return e.locked }

// Answers returns a copy of the collected answers.
func (e *Engine) Answers() []domain.Option {
	return append([]domain.Option(nil), e.answers...)
}

// Result returns the computed category once the run is complete.
func (e *Engine) Result() (domain.Category, bool) {
	return e.result, e.done
}
