package cache

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"
)

// SQLite caches responses in a single SQLite table.
type SQLite struct {
	db   *sql.DB
	mu   sync.RWMutex
	path string
	opts options
}

// NewSQLite opens (or creates) the cache database at path, creates the
// responses table and sweeps expired entries.
func NewSQLite(path string, opts ...Option) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		closeErr := db.Close()
		return nil, errors.Join(fmt.Errorf("failed to connect to cache database: %w", err), closeErr)
	}

	if _, err := db.Exec(ResponsesSchema); err != nil {
		closeErr := db.Close()
		return nil, errors.Join(fmt.Errorf("failed to create cache table: %w", err), closeErr)
	}

	c := &SQLite{
		db:   db,
		path: path,
		opts: buildOptions(opts),
	}

	if err := c.Sweep(); err != nil {
		c.opts.logger.Warn("Failed to sweep expired cache entries", "database", path, "error", err)
	}
	return c, nil
}

// Path returns the database file path.
func (c *SQLite) Path() string {
	return c.path
}

// Get returns the payload stored under key, ignoring expired rows that were not swept yet.
func (c *SQLite) Get(key string) (string, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.db == nil {
		return "", false, ErrClosed
	}

	var payload string
	err := c.db.QueryRow(`
		SELECT payload
		FROM responses
		WHERE key = ? AND expires >= ?
	`, key, c.opts.today()).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to query cache: %w", err)
	}
	return payload, true, nil
}

// Store writes payload under key.
func (c *SQLite) Store(key, payload string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db == nil {
		return ErrClosed
	}

	_, err := c.db.Exec(`
		INSERT OR REPLACE INTO responses (key, payload, expires)
		VALUES (?, ?, ?)
	`, key, payload, c.opts.expiry())
	if err != nil {
		return fmt.Errorf("failed to store cache entry: %w", err)
	}
	return nil
}

// Sweep deletes entries whose expiry is before today.
func (c *SQLite) Sweep() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db == nil {
		return ErrClosed
	}

	result, err := c.db.Exec(`DELETE FROM responses WHERE expires < ?`, c.opts.today())
	if err != nil {
		return fmt.Errorf("failed to sweep cache: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n > 0 {
		c.opts.logger.Debug("Swept expired cache entries", "database", c.path, "rows_deleted", n)
	}
	return nil
}

// Clear deletes every entry.
func (c *SQLite) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db == nil {
		return ErrClosed
	}

	result, err := c.db.Exec(`DELETE FROM responses`)
	if err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	c.opts.logger.Debug("Cache cleared", "database", c.path, "rows_deleted", rows)
	return nil
}

// Len returns the number of stored entries, expired or not.
func (c *SQLite) Len() (int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.db == nil {
		return 0, ErrClosed
	}

	var n int
	if err := c.db.QueryRow(`SELECT COUNT(*) FROM responses`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count cache entries: %w", err)
	}
	return n, nil
}

// Close closes the database connection.
func (c *SQLite) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	return err
}
