// Package content holds the exhibition's built-in quiz catalog and the YAML
// format every catalog source shares.
package content

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
	"swayn-kiosk/internal/domain"
)

// DefaultCatalogID names the built-in catalog.
const DefaultCatalogID = "swayn-2025"

//go:embed catalog.yaml
var defaultCatalogYAML []byte

var (
	defaultOnce    sync.Once
	defaultCatalog domain.Catalog
)

// Default returns the built-in catalog. The embedded file is checked by
// tests, so a broken one is a build defect.
func Default() domain.Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(defaultCatalogYAML)
		if err != nil {
			panic(fmt.Sprintf("content: embedded catalog: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Parse decodes a YAML catalog and validates it.
func Parse(data []byte) (domain.Catalog, error) {
	var c domain.Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return domain.Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return domain.Catalog{}, err
	}
	return c, nil
}

// Marshal encodes a catalog in the same YAML layout Parse reads.
func Marshal(c domain.Catalog) ([]byte, error) {
	return yaml.Marshal(c)
}

// Images lists every image a visit may show, in preload order: result
// characters, question illustrations, then product shots.
func Images(c domain.Catalog) []string {
	var out []string
	for _, category := range domain.Categories {
		if meta, ok := c.Results[category]; ok && meta.CharacterImage != "" {
			out = append(out, meta.CharacterImage)
		}
	}
	for _, q := range c.Questions {
		if q.Image != "" {
			out = append(out, q.Image)
		}
	}
	for _, category := range domain.Categories {
		for _, p := range c.Results[category].Products {
			if p.Image != "" {
				out = append(out, p.Image)
			}
		}
	}
	return out
}
