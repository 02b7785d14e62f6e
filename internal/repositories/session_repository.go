package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SessionRepository is the client's persistent key/value session store. It
// keeps backend-issued tokens between runs and never interprets them.
type SessionRepository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

// ------------------------------------------------------------------
// sqlite
// ------------------------------------------------------------------

type sqliteSessionRepo struct {
	db *sql.DB
}

const sessionSchema = `
CREATE TABLE IF NOT EXISTS session_values (
    key        TEXT PRIMARY KEY,
    value      TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL
)`

// NewSQLiteSessionRepository opens (or creates) the session database at path.
func NewSQLiteSessionRepository(ctx context.Context, path string) (SessionRepository, error) {
	db, err := sql.Open("sqlite", "file:"+path)
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}
	// single writer; sqlite serialises anyway
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, sessionSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init session schema: %w", err)
	}
	return &sqliteSessionRepo{db: db}, nil
}

func (r *sqliteSessionRepo) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM session_values WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (r *sqliteSessionRepo) Set(ctx context.Context, key, value string) error {
	q := `
        INSERT INTO session_values (key, value, updated_at) VALUES (?, ?, ?)
        ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
    `
	_, err := r.db.ExecContext(ctx, q, key, value, time.Now().UTC())
	return err
}

func (r *sqliteSessionRepo) Delete(ctx context.Context, keys ...string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	for _, k := range keys {
		if _, err := tx.ExecContext(ctx, `DELETE FROM session_values WHERE key = ?`, k); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *sqliteSessionRepo) Close() error {
	return r.db.Close()
}

// ------------------------------------------------------------------
// in-memory
// ------------------------------------------------------------------

type memorySessionRepo struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemorySessionRepository is a process-local store for tests and dry runs.
func NewMemorySessionRepository() SessionRepository {
	return &memorySessionRepo{values: make(map[string]string)}
}

func (r *memorySessionRepo) Get(_ context.Context, key string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[key]
	return v, ok, nil
}

func (r *memorySessionRepo) Set(_ context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = value
	return nil
}

func (r *memorySessionRepo) Delete(_ context.Context, keys ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, k := range keys {
		delete(r.values, k)
	}
	return nil
}

func (r *memorySessionRepo) Close() error { return nil }
