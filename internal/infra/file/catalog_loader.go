// Package file loads catalogs from YAML files on disk, so an exhibition can
// swap content without a database.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"swayn-kiosk/internal/content"
	"swayn-kiosk/internal/domain"
)

// CatalogLoader reads a single catalog file, or {id}.yaml files from a directory.
type CatalogLoader struct {
	path string
}

func NewCatalogLoader(path string) *CatalogLoader {
	return &CatalogLoader{path: path}
}

func (l *CatalogLoader) LoadCatalog(_ context.Context, catalogID string) (domain.Catalog, error) {
	path := l.path
	info, err := os.Stat(path)
	if err != nil {
		return domain.Catalog{}, l.notFound(err)
	}
	if info.IsDir() {
		path = filepath.Join(path, catalogID+".yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Catalog{}, l.notFound(err)
	}
	c, err := content.Parse(data)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("%s: %w", path, err)
	}
	if c.ID != catalogID {
		return domain.Catalog{}, fmt.Errorf("%s holds catalog %q: %w", path, c.ID, domain.ErrCatalogNotFound)
	}
	return c, nil
}

func (l *CatalogLoader) notFound(err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w", l.path, domain.ErrCatalogNotFound)
	}
	return err
}
