package nav

import (
	"strings"
	"time"

	"swayn-kiosk/internal/domain"
	"swayn-kiosk/internal/feedback"
	"swayn-kiosk/internal/schedule"
)

const DefaultStepDelay = 500 * time.Millisecond

var introOrder = map[domain.IntroStep]domain.IntroStep{
	domain.StepWelcome: domain.StepIntro1,
	domain.StepIntro1:  domain.StepIntro2,
	domain.StepIntro2:  domain.StepIntro3,
	domain.StepIntro3:  domain.StepMeet,
	domain.StepMeet:    domain.StepChat,
}

// Intro is the onboarding sequence shown on the quiz-intro page.
type Intro struct {
	scheduler schedule.Scheduler
	cues      feedback.Delegate
	delay     time.Duration
	onChange  func()

	step    domain.IntroStep
	locked  bool
	pending schedule.Timer
}

func NewIntro(scheduler schedule.Scheduler, cues feedback.Delegate, delay time.Duration) *Intro {
	if cues == nil {
		cues = feedback.Nop{}
	}
	if delay <= 0 {
		delay = DefaultStepDelay
	}
	return &Intro{scheduler: scheduler, cues: cues, delay: delay, step: domain.StepWelcome}
}

// OnChange registers a hook fired when the step animation lock is released.
func (i *Intro) OnChange(fn func()) {
	i.onChange = fn
}

// Next moves to the following step. On the story step it reports begin so
// the caller can start the quiz. The chat step only advances through SubmitName.
func (i *Intro) Next() (begin bool) {
	if i.locked {
		return false
	}
	if i.step == domain.StepStory {
		i.cues.PlayTapCue()
		i.cues.PulseHaptic()
		return true
	}
	next, ok := introOrder[i.step]
	if !ok {
		return false
	}
	i.moveTo(next)
	return false
}

// SubmitName accepts the visitor's name on the chat step. Blank input is ignored.
func (i *Intro) SubmitName(name string) bool {
	if i.locked || i.step != domain.StepChat || strings.TrimSpace(name) == "" {
		return false
	}
	i.moveTo(domain.StepStory)
	return true
}

// Skip abandons onboarding. It is offered on every step but the welcome page.
func (i *Intro) Skip() (begin bool) {
	if i.step == domain.StepWelcome {
		return false
	}
	i.cues.PlayTapCue()
	i.cues.PulseHaptic()
	return true
}

func (i *Intro) moveTo(step domain.IntroStep) {
	i.cues.PlayTapCue()
	i.cues.PulseHaptic()
	i.step = step
	i.locked = true
	i.pending = i.scheduler.After(i.delay, func() {
		i.pending = nil
		i.locked = false
		if i.onChange != nil {
			i.onChange()
		}
	})
}

// Reset rewinds to the welcome step.
func (i *Intro) Reset() {
	i.Close()
	i.step = domain.StepWelcome
	i.locked = false
}

// Close cancels a pending step animation.
func (i *Intro) Close() {
	if i.pending != nil {
		i.pending.Stop()
		i.pending = nil
	}
}

func (i *Intro) Step() domain.IntroStep { return i.step }

func (i *Intro) Locked() bool { return i.locked }
