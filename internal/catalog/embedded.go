package catalog

import (
	"context"
	_ "embed"

	"societies/internal/domain"
)

//go:embed societies.yaml
var sampleCatalog []byte

// EmbeddedSource serves the sample catalog compiled into the binary.
type EmbeddedSource struct{}

// List decodes the embedded sample.
func (EmbeddedSource) List(ctx context.Context) ([]domain.Society, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Decode(sampleCatalog, FormatYAML)
}
