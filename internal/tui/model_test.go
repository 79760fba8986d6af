package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"swayn-kiosk/internal/app"
	"swayn-kiosk/internal/content"
	"swayn-kiosk/internal/domain"
)

func newTestModel(t *testing.T) (Model, *app.Visit, <-chan app.Snapshot) {
	t.Helper()
	settings := app.Settings{Timing: app.Timing{
		PageExit:     5 * time.Millisecond,
		PageEnter:    5 * time.Millisecond,
		AnswerSettle: 5 * time.Millisecond,
		IntroStep:    5 * time.Millisecond,
	}}
	visit := app.NewVisit("tui", content.Default(), nil, settings, nil)
	t.Cleanup(visit.Close)

	updates, cancel, err := visit.Subscribe(context.Background())
	require.NoError(t, err)
	t.Cleanup(cancel)
	return NewModel(context.Background(), visit, updates), visit, updates
}

// settle feeds snapshots into the model until match holds.
func settle(t *testing.T, m Model, updates <-chan app.Snapshot, match func(app.Snapshot) bool) Model {
	t.Helper()
	timeout := time.After(3 * time.Second)
	for {
		select {
		case s := <-updates:
			next, _ := m.Update(snapshotMsg(s))
			m = next.(Model)
			if match(s) {
				return m
			}
		case <-timeout:
			t.Fatalf("timed out waiting for snapshot")
		}
	}
}

func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	if cmd != nil {
		if out := cmd(); out != nil {
			next, _ = next.Update(out)
		}
	}
	return next.(Model)
}

func idleOn(screen domain.Screen) func(app.Snapshot) bool {
	return func(s app.Snapshot) bool { return s.Screen == screen && s.Phase == domain.PhaseIdle }
}

func TestViewBeforeFirstSnapshot(t *testing.T) {
	m, _, _ := newTestModel(t)
	assert.Contains(t, m.View(), "loading")
}

func TestKeysDriveVisit(t *testing.T) {
	m, visit, updates := newTestModel(t)
	m = settle(t, m, updates, idleOn(domain.ScreenInvitation))
	assert.Contains(t, m.View(), "Sway'n")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = settle(t, m, updates, idleOn(domain.ScreenQuizIntro))

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = settle(t, m, updates, func(s app.Snapshot) bool {
		return s.Intro != nil && s.Intro.Step == domain.StepIntro1 && !s.Intro.Locked
	})

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = settle(t, m, updates, idleOn(domain.ScreenQuiz))
	assert.Contains(t, m.View(), "Q1 / ")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	m = settle(t, m, updates, func(s app.Snapshot) bool { return s.Quiz != nil && s.Quiz.Number == 2 && !s.Quiz.Locked })
	assert.Equal(t, 0, m.cursor)

	snap, err := visit.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, snap.Quiz.Number)
}

func TestNameInputCapturesLetters(t *testing.T) {
	m, _, updates := newTestModel(t)
	m = settle(t, m, updates, idleOn(domain.ScreenInvitation))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = settle(t, m, updates, idleOn(domain.ScreenQuizIntro))

	for m.snap.Intro.Step != domain.StepChat {
		step := m.snap.Intro.Step
		m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
		m = settle(t, m, updates, func(s app.Snapshot) bool {
			return s.Intro != nil && s.Intro.Step != step && !s.Intro.Locked
		})
	}
	require.True(t, m.name.Focused())

	// "q" and "h" are shortcuts elsewhere; here they are part of the name.
	for _, r := range "qh" {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model)
	}
	assert.False(t, m.quitting)
	assert.Equal(t, "qh", m.name.Value())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = settle(t, m, updates, func(s app.Snapshot) bool { return s.Intro != nil && s.Intro.Step == domain.StepStory })
	assert.False(t, m.name.Focused())
	assert.Contains(t, m.View(), "qh, 반가워")
}

func TestQuitKey(t *testing.T) {
	m, _, updates := newTestModel(t)
	m = settle(t, m, updates, idleOn(domain.ScreenInvitation))

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.True(t, next.(Model).quitting)
	assert.Empty(t, next.(Model).View())
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "█████░░░░░", progressBar(50, 10))
	assert.Equal(t, "░░░░░░░░░░", progressBar(0, 10))
	assert.Equal(t, "██████████", progressBar(120, 10))
}
