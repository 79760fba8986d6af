package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"swayn-kiosk/internal/domain"
	"swayn-kiosk/internal/schedule"
)

func TestIntroWalksToChat(t *testing.T) {
	clock := schedule.NewManual()
	intro := NewIntro(clock, nil, DefaultStepDelay)

	want := []domain.IntroStep{domain.StepIntro1, domain.StepIntro2, domain.StepIntro3, domain.StepMeet, domain.StepChat}
	for _, step := range want {
		assert.False(t, intro.Next())
		assert.Equal(t, step, intro.Step())
		clock.Advance(DefaultStepDelay)
	}

	assert.False(t, intro.Next(), "chat needs a name")
	assert.Equal(t, domain.StepChat, intro.Step())
}

func TestIntroLocksDuringAnimation(t *testing.T) {
	clock := schedule.NewManual()
	intro := NewIntro(clock, nil, DefaultStepDelay)

	intro.Next()
	intro.Next()
	assert.Equal(t, domain.StepIntro1, intro.Step())

	clock.Advance(DefaultStepDelay)
	intro.Next()
	assert.Equal(t, domain.StepIntro2, intro.Step())
}

func TestIntroNameAndBegin(t *testing.T) {
	clock := schedule.NewManual()
	intro := NewIntro(clock, nil, DefaultStepDelay)
	for intro.Step() != domain.StepChat {
		intro.Next()
		clock.Advance(DefaultStepDelay)
	}

	assert.False(t, intro.SubmitName("   "))
	assert.Equal(t, domain.StepChat, intro.Step())

	require.True(t, intro.SubmitName("Mina"))
	assert.Equal(t, domain.StepStory, intro.Step())
	clock.Advance(DefaultStepDelay)

	assert.True(t, intro.Next())
}

func TestIntroSkip(t *testing.T) {
	clock := schedule.NewManual()
	intro := NewIntro(clock, nil, DefaultStepDelay)

	assert.False(t, intro.Skip(), "welcome page has no skip")
	intro.Next()
	assert.True(t, intro.Skip())

	intro.Reset()
	assert.Equal(t, domain.StepWelcome, intro.Step())
	assert.False(t, intro.Locked())
	assert.Zero(t, clock.Pending())
}
