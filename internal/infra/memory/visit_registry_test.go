package memory

import (
	"testing"

	"swayn-kiosk/internal/app"
	"swayn-kiosk/internal/content"
)

func TestVisitRegistryLifecycle(t *testing.T) {
	registry := NewVisitRegistry()
	visit := app.NewVisit("visit-1", content.Default(), nil, app.Settings{}, nil)
	defer visit.Close()

	registry.Add(visit)
	if got, ok := registry.Get("visit-1"); !ok || got != visit {
		t.Fatalf("expected visit present")
	}
	if registry.Len() != 1 {
		t.Fatalf("expected 1 visit, got %d", registry.Len())
	}

	registry.Remove("visit-1")
	if _, ok := registry.Get("visit-1"); ok {
		t.Fatalf("expected visit removed")
	}
	if registry.Len() != 0 {
		t.Fatalf("expected empty registry, got %d", registry.Len())
	}
}
