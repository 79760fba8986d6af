// Package nav owns screen navigation: which page is shown, and the timed
// exit/enter transition between pages.
package nav

import (
	"time"

	"swayn-kiosk/internal/domain"
	"swayn-kiosk/internal/feedback"
	"swayn-kiosk/internal/schedule"
)

const (
	DefaultExitDelay  = 500 * time.Millisecond
	DefaultEnterDelay = 500 * time.Millisecond
)

// Hooks let the owner react to transitions. Both run on the scheduler's goroutine.
type Hooks struct {
	// Swap runs when the exit animation finishes and the page changes.
	Swap func(from, to domain.Screen)
	// Change runs after every timer-driven phase change.
	Change func()
}

// Controller is the page transition state machine:
// idle -> exiting(target) -> entering -> idle.
type Controller struct {
	scheduler schedule.Scheduler
	cues      feedback.Delegate
	exit      time.Duration
	enter     time.Duration
	hooks     Hooks

	current domain.Screen
	phase   domain.Phase
	target  domain.Screen
	pending schedule.Timer
}

// NewController shows start with its enter animation already running.
func NewController(start domain.Screen, scheduler schedule.Scheduler, cues feedback.Delegate, exit, enter time.Duration, hooks Hooks) *Controller {
	if cues == nil {
		cues = feedback.Nop{}
	}
	if exit <= 0 {
		exit = DefaultExitDelay
	}
	if enter <= 0 {
		enter = DefaultEnterDelay
	}
	c := &Controller{
		scheduler: scheduler,
		cues:      cues,
		exit:      exit,
		enter:     enter,
		hooks:     hooks,
		current:   start,
		phase:     domain.PhaseEntering,
	}
	c.arm(enter)
	return c
}

// Request asks to move to target. It is accepted only while idle and when
// target differs from the current page; anything else is dropped.
func (c *Controller) Request(target domain.Screen) bool {
	if c.phase != domain.PhaseIdle || target == c.current {
		return false
	}
	c.cues.PlayTransitionCue()
	c.target = target
	c.phase = domain.PhaseExiting
	c.arm(c.exit)
	return true
}

// step is the transition function fired by the scheduler.
func (c *Controller) step() {
	switch c.phase {
	case domain.PhaseExiting:
		if c.target == "" {
			return
		}
		from, to := c.current, c.target
		c.current = to
		c.target = ""
		c.phase = domain.PhaseEntering
		if c.hooks.Swap != nil {
			c.hooks.Swap(from, to)
		}
		c.arm(c.enter)
	case domain.PhaseEntering:
		c.phase = domain.PhaseIdle
	}
}

func (c *Controller) arm(d time.Duration) {
	c.pending = c.scheduler.After(d, func() {
		c.pending = nil
		c.step()
		if c.hooks.Change != nil {
			c.hooks.Change()
		}
	})
}

// Close cancels an in-flight transition.
func (c *Controller) Close() {
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
}

func (c *Controller) Current() domain.Screen { return c.current }

func (c *Controller) Phase() domain.Phase { return c.phase }

// Target is the pending destination while exiting, otherwise "".
func (c *Controller) Target() domain.Screen { return c.target }

// Busy reports whether a transition is in flight.
func (c *Controller) Busy() bool { return c.phase != domain.PhaseIdle }
