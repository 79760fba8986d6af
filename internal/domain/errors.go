package domain

import "errors"

var (
	// ErrCatalogNotFound indicates the quiz content could not be loaded.
	ErrCatalogNotFound = errors.New("catalog not found")
	// ErrInvalidCatalog is returned when loaded content breaks a catalog invariant.
	ErrInvalidCatalog = errors.New("invalid catalog")
	// ErrVisitNotFound is returned when a kiosk visit is not registered.
	ErrVisitNotFound = errors.New("visit not found")
	// ErrVisitClosed is returned when an action reaches a visit that already ended.
	ErrVisitClosed = errors.New("visit closed")
	// ErrOptionNotFound indicates a submitted option index is out of range.
	ErrOptionNotFound = errors.New("option not found")
)
