package kv

import (
	"context"
	"database/sql"
	"strings"
	"time"

	_ "github.com/tursodatabase/go-libsql"
)

const schema = `CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

// Turso is a KV store backed by a libsql database: one row per store key,
// the value a JSON document. Whole-value reads and writes give callers
// consistent snapshots without row-level coordination.
type Turso struct {
	db *sql.DB
}

// NewTurso opens the database, verifies connectivity and ensures the kv
// table exists.
func NewTurso(databaseURL, authToken string) (*Turso, error) {
	connStr := databaseURL
	if authToken != "" {
		connStr += "?authToken=" + authToken
	}
	db, err := sql.Open("libsql", connStr)
	if err != nil {
		return nil, err
	}

	// Configure connection pool for Turso's Hrana protocol. Use minimal
	// idle connections since Turso aggressively closes idle streams,
	// causing "stream not found" errors on stale connections.
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(0)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(0)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &Turso{db: db}, nil
}

func (t *Turso) Get(ctx context.Context, key string) ([]byte, error) {
	return withRetry(ctx, 3, func() ([]byte, error) {
		var value string
		err := t.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
		if err == sql.ErrNoRows {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return []byte(value), nil
	})
}

func (t *Turso) Set(ctx context.Context, key string, value []byte) error {
	_, err := withRetry(ctx, 3, func() (struct{}, error) {
		_, err := t.db.ExecContext(ctx,
			`INSERT INTO kv (key, value) VALUES (?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			key, string(value))
		return struct{}{}, err
	})
	return err
}

func (t *Turso) Delete(ctx context.Context, key string) error {
	_, err := withRetry(ctx, 3, func() (struct{}, error) {
		_, err := t.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
		return struct{}{}, err
	})
	return err
}

func (t *Turso) Close() error {
	return t.db.Close()
}

// isStreamError checks if an error is a Turso "stream not found" error.
func isStreamError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "stream not found")
}

// withRetry executes a function with retry logic for Turso stream errors.
// It retries up to maxRetries times when encountering "stream not found"
// errors.
func withRetry[T any](ctx context.Context, maxRetries int, fn func() (T, error)) (T, error) {
	var result T
	var err error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		result, err = fn()
		if err == nil {
			return result, nil
		}

		if !isStreamError(err) || attempt == maxRetries {
			return result, err
		}

		// Brief pause before retry to allow connection pool to refresh
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		case <-time.After(10 * time.Millisecond):
		}
	}

	return result, err
}
