package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/OMD2Planner_Go/internal/domain"
)

const (
	sqlLoadSession = `SELECT state FROM planner_sessions
		WHERE session_id = $1 AND (expires_at IS NULL OR expires_at > NOW())`

	sqlSaveSession = `INSERT INTO planner_sessions (session_id, state, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (session_id) DO UPDATE
		SET state = EXCLUDED.state, expires_at = EXCLUDED.expires_at, updated_at = NOW()`

	sqlDeleteSession = `DELETE FROM planner_sessions WHERE session_id = $1`
)

// PostgresStore keeps blobs in the planner_sessions table. The schema is
// applied by database.Migrate.
type PostgresStore struct {
	pool *pgxpool.Pool
	ttl  time.Duration
	now  func() time.Time
}

var _ Store = (*PostgresStore)(nil)

// NewPostgresStore creates a Postgres-backed store. Zero ttl keeps rows forever.
func NewPostgresStore(pool *pgxpool.Pool, ttl time.Duration) (*PostgresStore, error) {
	if pool == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgPoolMissing)
	}
	return &PostgresStore{pool: pool, ttl: ttl, now: time.Now}, nil
}

func (p *PostgresStore) Load(ctx context.Context, id string) ([]byte, error) {
	var blob []byte
	err := p.pool.QueryRow(ctx, sqlLoadSession, id).Scan(&blob)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf(ErrFmtLoad, id, domain.ErrSessionNotFound)
		}
		return nil, fmt.Errorf(ErrFmtLoad, id, errors.Join(domain.ErrStoreUnavailable, err))
	}
	return blob, nil
}

func (p *PostgresStore) Save(ctx context.Context, id string, blob []byte) error {
	var expiresAt *time.Time
	if p.ttl > 0 {
		t := p.now().Add(p.ttl)
		expiresAt = &t
	}
	// jsonb accepts the blob as text
	if _, err := p.pool.Exec(ctx, sqlSaveSession, id, string(blob), expiresAt); err != nil {
		return fmt.Errorf(ErrFmtSave, id, errors.Join(domain.ErrStoreUnavailable, err))
	}
	return nil
}

func (p *PostgresStore) Delete(ctx context.Context, id string) error {
	if _, err := p.pool.Exec(ctx, sqlDeleteSession, id); err != nil {
		return fmt.Errorf(ErrFmtDelete, id, errors.Join(domain.ErrStoreUnavailable, err))
	}
	return nil
}

func (p *PostgresStore) Ping(ctx context.Context) error {
	if err := p.pool.Ping(ctx); err != nil {
		return errors.Join(domain.ErrStoreUnavailable, err)
	}
	return nil
}

func (p *PostgresStore) Name() string { return BackendPostgres }
