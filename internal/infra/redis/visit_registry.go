package redis

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"swayn-kiosk/internal/app"
)

// VisitRegistry is a Redis-aware implementation of app.VisitRegistry.
// Notes:
//   - Visits themselves live in a local map; their event loops cannot move
//     between processes.
//   - Redis only carries a liveness marker per visit so operators can count
//     live kiosks across instances. No answers or names are written.
type VisitRegistry struct {
	client *redis.Client
	ttl    time.Duration
	mu     sync.RWMutex
	visits map[string]*app.Visit
}

func NewVisitRegistry(client *redis.Client, ttl time.Duration) *VisitRegistry {
	return &VisitRegistry{
		client: client,
		ttl:    ttl,
		visits: make(map[string]*app.Visit),
	}
}

func (r *VisitRegistry) Add(visit *app.Visit) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.visits[visit.ID()] = visit
	// best-effort liveness marker
	_ = r.client.Set(context.Background(), visitKey(visit.ID()), "1", r.ttl).Err()
}

// Get also refreshes the liveness marker, so a visit in use never expires.
func (r *VisitRegistry) Get(visitID string) (*app.Visit, bool) {
	r.mu.RLock()
	visit, ok := r.visits[visitID]
	r.mu.RUnlock()
	if ok && r.ttl > 0 {
		_ = r.client.Expire(context.Background(), visitKey(visitID), r.ttl).Err()
	}
	return visit, ok
}

func (r *VisitRegistry) Remove(visitID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.visits[visitID]; !ok {
		return
	}
	delete(r.visits, visitID)
	_ = r.client.Del(context.Background(), visitKey(visitID)).Err()
}

func (r *VisitRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.visits)
}

// Live counts liveness markers of every instance sharing this Redis.
func (r *VisitRegistry) Live(ctx context.Context) (int, error) {
	var (
		cursor uint64
		count  int
	)
	for {
		keys, next, err := r.client.Scan(ctx, cursor, visitKey("*"), 100).Result()
		if err != nil {
			return 0, err
		}
		count += len(keys)
		if next == 0 {
			return count, nil
		}
		cursor = next
	}
}

func visitKey(visitID string) string {
	return "kiosk:visit:" + visitID
}
