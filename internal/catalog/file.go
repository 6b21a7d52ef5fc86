package catalog

import (
	"context"
	"fmt"
	"os"

	"societies/internal/domain"
	appErrors "societies/internal/errors"
)

// FileSource reads a catalog document from disk.
type FileSource struct {
	path   string
	format Format
}

// NewFileSource returns a source for path, inferring the format from its
// extension.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path, format: FormatForPath(path)}
}

// Path returns the catalog file location.
func (s *FileSource) Path() string { return s.path }

// List reads and decodes the file.
func (s *FileSource) List(ctx context.Context) ([]domain.Society, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, appErrors.New(appErrors.CodeNotFound, fmt.Sprintf("catalog not found: %s", s.path), err)
		}
		return nil, appErrors.New(appErrors.CodeCatalogUnavailable, fmt.Sprintf("read catalog %s", s.path), err)
	}
	societies, err := Decode(data, s.format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	catalogLog.Logf("loaded %d societies from %s", len(societies), s.path)
	return societies, nil
}
