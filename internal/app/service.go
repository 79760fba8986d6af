package app

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"swayn-kiosk/internal/domain"
	"swayn-kiosk/internal/feedback"
)

// VisitRegistry abstracts where live visits are tracked (in-memory, Redis, etc).
type VisitRegistry interface {
	Add(visit *Visit)
	Get(visitID string) (*Visit, bool)
	Remove(visitID string)
	Len() int
}

// CatalogRepository loads quiz content (from cache/backing store).
type CatalogRepository interface {
	GetCatalog(ctx context.Context, catalogID string) (domain.Catalog, error)
}

// Service opens and closes kiosk visits.
type Service struct {
	visits   VisitRegistry
	catalogs CatalogRepository
	settings Settings
	logger   *slog.Logger
}

func NewService(visits VisitRegistry, catalogs CatalogRepository, settings Settings, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{visits: visits, catalogs: catalogs, settings: settings, logger: logger}
}

// Open starts a visit on the invitation page. cues receives the visit's
// sound and haptic requests.
func (s *Service) Open(ctx context.Context, catalogID string, cues feedback.Delegate) (*Visit, error) {
	// Visitors cannot start on unknown content.
	catalog, err := s.catalogs.GetCatalog(ctx, catalogID)
	if err != nil {
		return nil, err
	}

	visit := newVisit(uuid.NewString(), catalog, cues, s.settings, s.logger)
	s.visits.Add(visit)
	s.logger.Info("visit opened", "visit", visit.ID(), "catalog", catalog.ID, "active", s.visits.Len())
	return visit, nil
}

// Get looks up a live visit.
func (s *Service) Get(visitID string) (*Visit, error) {
	visit, ok := s.visits.Get(visitID)
	if !ok {
		return nil, domain.ErrVisitNotFound
	}
	return visit, nil
}

// Close ends a visit and cancels its timers.
func (s *Service) Close(visitID string) {
	visit, ok := s.visits.Get(visitID)
	if !ok {
		return
	}
	visit.close()
	s.visits.Remove(visitID)
	s.logger.Info("visit closed", "visit", visitID, "active", s.visits.Len())
}

// Active reports how many visits are live.
func (s *Service) Active() int {
	return s.visits.Len()
}
