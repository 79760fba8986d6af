package domain

import "fmt"

const (
	minOptions = 3
	maxOptions = 5
)

var traitIcons = map[string]bool{
	"medal": true, "search": true, "education": true, "sparkles": true,
	"moon": true, "heart": true, "leaf": true,
}

// Validate checks the catalog invariants every loader must uphold before the
// catalog reaches a visit.
func (c Catalog) Validate() error {
	if len(c.Questions) == 0 {
		return fmt.Errorf("%w: %q has no questions", ErrInvalidCatalog, c.ID)
	}
	for qi, q := range c.Questions {
		if n := len(q.Options); n < minOptions || n > maxOptions {
			return fmt.Errorf("%w: question %d has %d options, want %d-%d", ErrInvalidCatalog, qi+1, n, minOptions, maxOptions)
		}
		for oi, opt := range q.Options {
			if len(opt.Weights) == 0 {
				return fmt.Errorf("%w: question %d option %d carries no weight", ErrInvalidCatalog, qi+1, oi+1)
			}
			for _, w := range opt.Weights {
				if !w.Category.Valid() {
					return fmt.Errorf("%w: question %d option %d has unknown category %q", ErrInvalidCatalog, qi+1, oi+1, w.Category)
				}
				if w.Score < 0 {
					return fmt.Errorf("%w: question %d option %d has negative weight", ErrInvalidCatalog, qi+1, oi+1)
				}
			}
		}
	}
	for _, category := range Categories {
		meta, ok := c.Results[category]
		if !ok {
			return fmt.Errorf("%w: no result for category %s", ErrInvalidCatalog, category)
		}
		if meta.Sensitivity < 1 || meta.Sensitivity > 5 {
			return fmt.Errorf("%w: category %s sensitivity %d out of 1-5", ErrInvalidCatalog, category, meta.Sensitivity)
		}
		for _, trait := range meta.Traits {
			if !traitIcons[trait.Icon] {
				return fmt.Errorf("%w: category %s trait icon %q", ErrInvalidCatalog, category, trait.Icon)
			}
		}
	}
	for category := range c.Results {
		if !category.Valid() {
			return fmt.Errorf("%w: result for unknown category %q", ErrInvalidCatalog, category)
		}
	}
	return nil
}
