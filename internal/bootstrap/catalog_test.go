package bootstrap

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/OMD2Planner_Go/internal/config"
	"github.com/osse101/OMD2Planner_Go/internal/domain"
	"github.com/osse101/OMD2Planner_Go/internal/metrics"
	"github.com/osse101/OMD2Planner_Go/internal/planner"
)

func TestLoadEngine(t *testing.T) {
	cfg := &config.Config{
		CatalogPath: filepath.Join("..", "catalog", "testdata", "items.json"),
		SortMode:    string(planner.SortAlphabetical),
	}

	engine, err := LoadEngine(context.Background(), cfg)

	require.NoError(t, err)
	assert.Equal(t, 6, engine.Catalog().Len())
	assert.Equal(t, float64(3), testutil.ToFloat64(metrics.CatalogItems.WithLabelValues(string(domain.CategoryTrap))))
	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.CatalogItems.WithLabelValues(string(domain.CategoryWeapon))))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.CatalogItems.WithLabelValues(string(domain.CategoryTrinket))))
}

func TestLoadEngine_Failures(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadEngine(context.Background(), &config.Config{
			CatalogPath: filepath.Join(t.TempDir(), "nope.json"),
			SortMode:    string(planner.SortCompat),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgFailedLoadCatalog)
	})

	t.Run("bad sort mode", func(t *testing.T) {
		_, err := LoadEngine(context.Background(), &config.Config{SortMode: "shuffle"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
