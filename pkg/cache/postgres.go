package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DefaultQueryTimeout bounds every statement issued by the Postgres cache.
const DefaultQueryTimeout = 5 * time.Second

// Postgres caches responses in a PostgreSQL table, so several processes can
// share one cache.
type Postgres struct {
	pool *pgxpool.Pool
	opts options
}

// NewPostgres connects to dsn, creates the cache table and sweeps expired entries.
func NewPostgres(ctx context.Context, dsn string, opts ...Option) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres cache: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to postgres cache: %w", err)
	}

	p := &Postgres{pool: pool, opts: buildOptions(opts)}
	if _, err := pool.Exec(ctx, PostgresSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create cache table: %w", err)
	}
	if err := p.Sweep(); err != nil {
		p.opts.logger.Warn("Failed to sweep expired cache entries", "backend", "postgres", "error", err)
	}
	return p, nil
}

func (p *Postgres) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), DefaultQueryTimeout)
}

// Get returns the payload stored under key.
func (p *Postgres) Get(key string) (string, bool, error) {
	ctx, cancel := p.ctx()
	defer cancel()

	var payload string
	err := p.pool.QueryRow(ctx,
		`SELECT payload FROM marvel_responses WHERE key = $1 AND expires >= $2`,
		key, p.opts.today(),
	).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to query cache: %w", err)
	}
	return payload, true, nil
}

// Store upserts payload under key.
func (p *Postgres) Store(key, payload string) error {
	ctx, cancel := p.ctx()
	defer cancel()

	_, err := p.pool.Exec(ctx, `
		INSERT INTO marvel_responses (key, payload, expires)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, expires = EXCLUDED.expires
	`, key, payload, p.opts.expiry())
	if err != nil {
		return fmt.Errorf("failed to store cache entry: %w", err)
	}
	return nil
}

// Sweep deletes entries whose expiry is before today.
func (p *Postgres) Sweep() error {
	ctx, cancel := p.ctx()
	defer cancel()

	tag, err := p.pool.Exec(ctx, `DELETE FROM marvel_responses WHERE expires < $1`, p.opts.today())
	if err != nil {
		return fmt.Errorf("failed to sweep cache: %w", err)
	}
	if n := tag.RowsAffected(); n > 0 {
		p.opts.logger.Debug("Swept expired cache entries", "backend", "postgres", "rows_deleted", n)
	}
	return nil
}

// Clear deletes every entry.
func (p *Postgres) Clear() error {
	ctx, cancel := p.ctx()
	defer cancel()

	if _, err := p.pool.Exec(ctx, `DELETE FROM marvel_responses`); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	return nil
}

func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}
