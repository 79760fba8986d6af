package memory

import (
	"sync"

	"swayn-kiosk/internal/app"
)

// VisitRegistry is an in-memory implementation of app.VisitRegistry.
type VisitRegistry struct {
	mu     sync.RWMutex
	visits map[string]*app.Visit
}

func NewVisitRegistry() *VisitRegistry {
	return &VisitRegistry{
		visits: make(map[string]*app.Visit),
	}
}

func (r *VisitRegistry) Add(visit *app.Visit) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.visits[visit.ID()] = visit
}

func (r *VisitRegistry) Get(visitID string) (*app.Visit, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	visit, ok := r.visits[visitID]
	return visit, ok
}

func (r *VisitRegistry) Remove(visitID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.visits, visitID)
}

func (r *VisitRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.visits)
}
