package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"swayn-kiosk/internal/app"
	"swayn-kiosk/internal/content"
	"swayn-kiosk/internal/domain"
	"swayn-kiosk/internal/feedback"
	"swayn-kiosk/internal/infra/memory"
)

func TestOpenAndClose(t *testing.T) {
	ctx := context.Background()
	service := newTestService()

	visit, err := service.Open(ctx, content.DefaultCatalogID, nil)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if service.Active() != 1 {
		t.Fatalf("expected 1 active visit, got %d", service.Active())
	}
	if got, err := service.Get(visit.ID()); err != nil || got != visit {
		t.Fatalf("expected to find visit, got %v", err)
	}

	snap, err := visit.Snapshot(ctx)
	if err != nil {
		t.Fatalf("snapshot failed: %v", err)
	}
	if snap.Screen != domain.ScreenInvitation {
		t.Fatalf("expected invitation screen, got %s", snap.Screen)
	}

	service.Close(visit.ID())
	if service.Active() != 0 {
		t.Fatalf("expected no active visits, got %d", service.Active())
	}
	if _, err := service.Get(visit.ID()); !errors.Is(err, domain.ErrVisitNotFound) {
		t.Fatalf("expected visit not found, got %v", err)
	}
	if err := visit.Do(ctx, func(*app.Kiosk) {}); !errors.Is(err, domain.ErrVisitClosed) {
		t.Fatalf("expected visit closed, got %v", err)
	}
}

func TestOpenUnknownCatalog(t *testing.T) {
	_, err := newTestService().Open(context.Background(), "missing", nil)
	if !errors.Is(err, domain.ErrCatalogNotFound) {
		t.Fatalf("expected catalog error, got %v", err)
	}
}

func TestSubscribeReceivesUpdates(t *testing.T) {
	ctx := context.Background()
	service := newTestService()
	cues := &feedback.Recorder{}

	visit, err := service.Open(ctx, content.DefaultCatalogID, cues)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer service.Close(visit.ID())

	ch, cancel, err := visit.Subscribe(ctx)
	if err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}
	defer cancel()

	// The first snapshot arrives immediately; wait out the opening enter animation.
	waitFor(t, ch, func(s app.Snapshot) bool { return s.Phase == domain.PhaseIdle })

	var accepted bool
	if err := visit.Do(ctx, func(k *app.Kiosk) { accepted = k.GoToQuizIntro() }); err != nil {
		t.Fatalf("do failed: %v", err)
	}
	if !accepted {
		t.Fatalf("expected navigation to be accepted")
	}

	update := waitFor(t, ch, func(s app.Snapshot) bool {
		return s.Screen == domain.ScreenQuizIntro && s.Phase == domain.PhaseIdle
	})
	if update.Intro == nil || update.Intro.Step != domain.StepWelcome {
		t.Fatalf("expected welcome step, got %+v", update.Intro)
	}
	if _, transitions, _ := cues.Counts(); transitions != 1 {
		t.Fatalf("expected one transition cue, got %d", transitions)
	}
}

func TestCloseEndsSubscriptions(t *testing.T) {
	ctx := context.Background()
	service := newTestService()

	visit, err := service.Open(ctx, content.DefaultCatalogID, nil)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	ch, cancel, err := visit.Subscribe(ctx)
	if err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}
	defer cancel()

	service.Close(visit.ID())

	timeout := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-timeout:
			t.Fatalf("subscription not closed")
		}
	}
}

func TestPreloadListsCatalogImages(t *testing.T) {
	visit := app.NewVisit("v", content.Default(), nil, app.Settings{}, nil)
	defer visit.Close()

	if len(visit.Preload()) == 0 {
		t.Fatalf("expected preload images")
	}
}

func waitFor(t *testing.T, ch <-chan app.Snapshot, match func(app.Snapshot) bool) app.Snapshot {
	t.Helper()
	timeout := time.After(3 * time.Second)
	for {
		select {
		case s, ok := <-ch:
			if !ok {
				t.Fatalf("subscription closed")
			}
			if match(s) {
				return s
			}
		case <-timeout:
			t.Fatalf("timed out waiting for snapshot")
		}
	}
}

func newTestService() *app.Service {
	registry := memory.NewVisitRegistry()
	catalogs := memory.NewCatalogRepository(memory.NewStaticCatalogLoader(content.Default()), 5*time.Minute)
	timing := app.Timing{
		PageExit:     20 * time.Millisecond,
		PageEnter:    20 * time.Millisecond,
		AnswerSettle: 10 * time.Millisecond,
		IntroStep:    10 * time.Millisecond,
	}
	return app.NewService(registry, catalogs, app.Settings{Timing: timing}, nil)
}
