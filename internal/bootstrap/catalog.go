package bootstrap

import (
	"context"
	"fmt"

	"github.com/osse101/OMD2Planner_Go/internal/catalog"
	"github.com/osse101/OMD2Planner_Go/internal/config"
	"github.com/osse101/OMD2Planner_Go/internal/domain"
	"github.com/osse101/OMD2Planner_Go/internal/logger"
	"github.com/osse101/OMD2Planner_Go/internal/metrics"
	"github.com/osse101/OMD2Planner_Go/internal/planner"
)

// LoadEngine reads the catalog file and builds the planner engine. An invalid
// catalog is fatal.
func LoadEngine(ctx context.Context, cfg *config.Config) (*planner.Engine, error) {
	mode, err := planner.ParseSortMode(cfg.SortMode)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidSortMode, err)
	}

	c, err := catalog.NewLoader().Load(ctx, cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}

	for _, category := range domain.Categories() {
		n := len(c.ItemsByCategory(category))
		metrics.CatalogItems.WithLabelValues(string(category)).Set(float64(n))
	}

	logger.FromContext(ctx).Info(LogMsgCatalogReady, "items", c.Len(), "sort_mode", mode)
	return planner.NewEngine(c, planner.WithSortMode(mode)), nil
}
