package session

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/OMD2Planner_Go/internal/database"
	"github.com/osse101/OMD2Planner_Go/internal/domain"
)

var testDBConnString string

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()
	if !testing.Short() {
		testDBConnString, terminate = setupContainer(context.Background())
	}

	code := m.Run()

	if terminate != nil {
		terminate()
	}
	os.Exit(code)
}

func setupContainer(ctx context.Context) (string, func()) {
	// testcontainers panics when no docker daemon is reachable
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupContainer: %v\n", r)
		}
	}()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return "", func() {}
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		_ = pgContainer.Terminate(ctx)
		return "", func() {}
	}

	return connStr, func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}
}

func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testDBConnString == "" {
		t.Skip("Skipping integration test: database not available")
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, testDBConnString, 5, time.Minute, 5*time.Minute)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, database.Migrate(ctx, pool))
	_, err = pool.Exec(ctx, "TRUNCATE planner_sessions")
	require.NoError(t, err)
	return pool
}

func TestPostgresStore(t *testing.T) {
	store, err := NewPostgresStore(newTestPool(t), time.Hour)
	require.NoError(t, err)

	assert.Equal(t, BackendPostgres, store.Name())
	runStoreContract(t, store)
}

func TestPostgresStore_ExpiredRowsAreMissing(t *testing.T) {
	store, err := NewPostgresStore(newTestPool(t), time.Minute)
	require.NoError(t, err)
	store.now = func() time.Time { return time.Now().Add(-time.Hour) }

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "old", []byte(`{"builder":{}}`)))

	_, err = store.Load(ctx, "old")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestNewPostgresStore_RequiresPool(t *testing.T) {
	_, err := NewPostgresStore(nil, time.Hour)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
