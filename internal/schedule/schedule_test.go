package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"swayn-kiosk/internal/domain"
)

func TestManualFiresInDueOrder(t *testing.T) {
	clock := NewManual()
	var fired []string

	clock.After(500*time.Millisecond, func() { fired = append(fired, "late") })
	clock.After(100*time.Millisecond, func() {
		fired = append(fired, "early")
		clock.After(100*time.Millisecond, func() { fired = append(fired, "chained") })
	})

	clock.Advance(150 * time.Millisecond)
	assert.Equal(t, []string{"early"}, fired)

	clock.Advance(time.Second)
	assert.Equal(t, []string{"early", "chained", "late"}, fired)
	assert.Zero(t, clock.Pending())
}

func TestManualStop(t *testing.T) {
	clock := NewManual()
	ran := false
	timer := clock.After(time.Millisecond, func() { ran = true })

	require.True(t, timer.Stop())
	require.False(t, timer.Stop())
	clock.Advance(time.Second)
	assert.False(t, ran)
}

func TestLoopDoAndAfter(t *testing.T) {
	loop := NewLoop()
	defer loop.Close()

	fired := make(chan struct{})
	err := loop.Do(context.Background(), func() {
		loop.After(5*time.Millisecond, func() { close(fired) })
	})
	require.NoError(t, err)

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("timer never fired")
	}
}

func TestLoopStopCancelsPendingCallback(t *testing.T) {
	loop := NewLoop()
	defer loop.Close()

	ran := make(chan struct{}, 1)
	var timer Timer
	require.NoError(t, loop.Do(context.Background(), func() {
		timer = loop.After(time.Millisecond, func() { ran <- struct{}{} })
	}))
	// Let the underlying timer expire so the callback is already queued.
	time.Sleep(20 * time.Millisecond)
	require.NoError(t, loop.Do(context.Background(), func() { timer.Stop() }))
	require.NoError(t, loop.Do(context.Background(), func() {}))

	select {
	case <-ran:
		// The callback may have run before Stop was queued; Stop must then report false.
		assert.False(t, timer.Stop())
	default:
	}
}

func TestLoopDoAfterClose(t *testing.T) {
	loop := NewLoop()
	loop.Close()

	err := loop.Do(context.Background(), func() {})
	assert.ErrorIs(t, err, domain.ErrVisitClosed)
}
