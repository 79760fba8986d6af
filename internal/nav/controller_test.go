package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"swayn-kiosk/internal/domain"
	"swayn-kiosk/internal/feedback"
	"swayn-kiosk/internal/schedule"
)

type swap struct{ from, to domain.Screen }

func newIdleController(t *testing.T) (*Controller, *schedule.Manual, *feedback.Recorder, *[]swap) {
	t.Helper()
	clock := schedule.NewManual()
	cues := &feedback.Recorder{}
	swaps := &[]swap{}
	c := NewController(domain.ScreenInvitation, clock, cues, DefaultExitDelay, DefaultEnterDelay, Hooks{
		Swap: func(from, to domain.Screen) { *swaps = append(*swaps, swap{from, to}) },
	})
	require.Equal(t, domain.PhaseEntering, c.Phase())
	clock.Advance(DefaultEnterDelay)
	require.Equal(t, domain.PhaseIdle, c.Phase())
	return c, clock, cues, swaps
}

func TestControllerFullCycle(t *testing.T) {
	c, clock, cues, swaps := newIdleController(t)

	require.True(t, c.Request(domain.ScreenQuizIntro))
	assert.Equal(t, domain.PhaseExiting, c.Phase())
	assert.Equal(t, domain.ScreenQuizIntro, c.Target())
	assert.Equal(t, domain.ScreenInvitation, c.Current())

	clock.Advance(DefaultExitDelay)
	assert.Equal(t, domain.PhaseEntering, c.Phase())
	assert.Equal(t, domain.ScreenQuizIntro, c.Current())
	assert.Empty(t, c.Target())
	assert.Equal(t, []swap{{domain.ScreenInvitation, domain.ScreenQuizIntro}}, *swaps)

	clock.Advance(DefaultEnterDelay)
	assert.Equal(t, domain.PhaseIdle, c.Phase())
	assert.False(t, c.Busy())

	_, transitions, _ := cues.Counts()
	assert.Equal(t, 1, transitions)
}

func TestControllerDropsRequestsWhileBusy(t *testing.T) {
	c, clock, _, swaps := newIdleController(t)

	require.True(t, c.Request(domain.ScreenQuizIntro))
	assert.False(t, c.Request(domain.ScreenLocation))

	clock.Advance(DefaultExitDelay)
	assert.False(t, c.Request(domain.ScreenLocation), "entering phase still drops requests")

	clock.Advance(DefaultEnterDelay)
	assert.Equal(t, domain.ScreenQuizIntro, c.Current())
	assert.Len(t, *swaps, 1)
}

func TestControllerIgnoresSameScreen(t *testing.T) {
	c, _, cues, _ := newIdleController(t)

	assert.False(t, c.Request(domain.ScreenInvitation))
	assert.Equal(t, domain.PhaseIdle, c.Phase())
	_, transitions, _ := cues.Counts()
	assert.Zero(t, transitions)
}

func TestControllerCloseCancelsTransition(t *testing.T) {
	c, clock, _, swaps := newIdleController(t)

	require.True(t, c.Request(domain.ScreenLocation))
	c.Close()
	clock.Advance(DefaultExitDelay + DefaultEnterDelay)

	assert.Equal(t, domain.ScreenInvitation, c.Current())
	assert.Empty(t, *swaps)
}

func TestControllerInitialEnterBlocksRequests(t *testing.T) {
	clock := schedule.NewManual()
	c := NewController(domain.ScreenInvitation, clock, nil, 0, 0, Hooks{})

	assert.False(t, c.Request(domain.ScreenLocation))
	clock.Advance(DefaultEnterDelay)
	assert.True(t, c.Request(domain.ScreenLocation))
}
