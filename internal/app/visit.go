package app

import (
	"context"
	"log/slog"
	"sync"

	"swayn-kiosk/internal/content"
	"swayn-kiosk/internal/domain"
	"swayn-kiosk/internal/feedback"
	"swayn-kiosk/internal/schedule"
)

// Visit runs one Kiosk on its own event loop and fans its snapshots out to
// subscribers.
type Visit struct {
	id      string
	catalog domain.Catalog
	loop    *schedule.Loop
	kiosk   *Kiosk

	mu          sync.Mutex
	closed      bool
	subscribers map[chan Snapshot]struct{}
}

// NewVisit is exported for infrastructure layers and front ends that run a
// visit without a Service.
func NewVisit(id string, catalog domain.Catalog, cues feedback.Delegate, settings Settings, logger *slog.Logger) *Visit {
	return newVisit(id, catalog, cues, settings, logger)
}

func newVisit(id string, catalog domain.Catalog, cues feedback.Delegate, settings Settings, logger *slog.Logger) *Visit {
	if logger == nil {
		logger = slog.Default()
	}
	v := &Visit{
		id:          id,
		catalog:     catalog,
		loop:        schedule.NewLoop(),
		subscribers: make(map[chan Snapshot]struct{}),
	}
	// The kiosk arms its first timer on construction, so build it on the loop.
	_ = v.loop.Do(context.Background(), func() {
		v.kiosk = NewKiosk(catalog, v.loop, cues, settings, v.broadcast, logger.With("visit", id))
	})
	return v
}

func (v *Visit) ID() string { return v.id }

// Preload lists the images a front end should fetch ahead of time.
func (v *Visit) Preload() []string {
	return content.Images(v.catalog)
}

// Do runs fn against the kiosk on the visit's loop.
func (v *Visit) Do(ctx context.Context, fn func(k *Kiosk)) error {
	return v.loop.Do(ctx, func() { fn(v.kiosk) })
}

// Snapshot returns the current view state.
func (v *Visit) Snapshot(ctx context.Context) (Snapshot, error) {
	var s Snapshot
	err := v.Do(ctx, func(k *Kiosk) { s = k.Snapshot() })
	return s, err
}

// Subscribe returns a channel that receives a snapshot after every change,
// starting with the current state. The caller must invoke cancel to avoid leaks.
func (v *Visit) Subscribe(ctx context.Context) (<-chan Snapshot, func(), error) {
	ch := make(chan Snapshot, 8)
	err := v.Do(ctx, func(k *Kiosk) {
		v.mu.Lock()
		v.subscribers[ch] = struct{}{}
		v.mu.Unlock()
		ch <- k.Snapshot()
	})
	if err != nil {
		return nil, nil, err
	}

	cancel := func() {
		v.mu.Lock()
		if _, ok := v.subscribers[ch]; ok {
			delete(v.subscribers, ch)
			close(ch)
		}
		v.mu.Unlock()
	}
	return ch, cancel, nil
}

func (v *Visit) broadcast(s Snapshot) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for ch := range v.subscribers {
		select {
		case ch <- s:
		default:
			// Drop the oldest update so a slow front end never stalls the loop.
			select {
			case <-ch:
			default:
			}
			ch <- s
		}
	}
}

func (v *Visit) close() {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	v.closed = true
	v.mu.Unlock()

	_ = v.loop.Do(context.Background(), func() { v.kiosk.Close() })
	v.loop.Close()

	v.mu.Lock()
	for ch := range v.subscribers {
		delete(v.subscribers, ch)
		close(ch)
	}
	v.mu.Unlock()
}

// Close ends a visit that was opened without a Service.
func (v *Visit) Close() {
	v.close()
}
