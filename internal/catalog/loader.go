package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/osse101/OMD2Planner_Go/internal/domain"
	"github.com/osse101/OMD2Planner_Go/internal/logger"
	"github.com/osse101/OMD2Planner_Go/internal/validation"
)

// Loader reads catalog files
type Loader interface {
	Load(ctx context.Context, path string) (*Catalog, error)
	Parse(ctx context.Context, data []byte) (*Catalog, error)
}

type loader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a Loader that validates against the embedded catalog schema
func NewLoader() Loader {
	return &loader{schemaValidator: validation.NewSchemaValidator()}
}

// Load reads, validates and indexes a catalog file
func (l *loader) Load(ctx context.Context, path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadCatalogFailed, err)
	}

	c, err := l.Parse(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logger.FromContext(ctx).Info(LogMsgCatalogLoaded, "path", path, "items", c.Len())
	return c, nil
}

// Parse validates and indexes catalog bytes
func (l *loader) Parse(_ context.Context, data []byte) (*Catalog, error) {
	if err := l.schemaValidator.ValidateBytes(data, validation.CatalogSchema); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidCatalog, fmt.Errorf(ErrMsgSchemaFailed, err))
	}

	var items []domain.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf(ErrMsgParseCatalogFailed, err)
	}

	return New(items)
}
