// Package store persists GitHub user records in a local SQLite database.
// The cache is populated opportunistically after successful searches and is
// read back only by the cache maintenance commands, never by the fetch path.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when no cached record exists for a key.
var ErrNotFound = errors.New("user not found in cache")

// UserRecord is the storage representation of a GitHub user. ID is the
// primary key; at most one record exists per ID and a conflicting insert
// replaces the whole row.
type UserRecord struct {
	ID          int64  `json:"id"`
	Login       string `json:"login"`
	AvatarURL   string `json:"avatar_url"`
	Name        string `json:"name"`
	Followers   int    `json:"followers"`
	PublicRepos int    `json:"public_repos"`
}

// Store wraps a SQLite connection pool.
type Store struct {
	db *sql.DB
	// modernc sqlite does not support concurrent writers
	writeMu sync.Mutex
}

// DefaultPath returns the default database location under the user cache dir.
func DefaultPath() string {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(".ghfind", "users.db")
	}
	return filepath.Join(cacheDir, "ghfind", "users.db")
}

// Open opens (creating if needed) the database at path and ensures the
// schema exists. Use ":memory:" for an ephemeral database in tests.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("failed to create cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// Each pooled connection to ":memory:" would get its own database,
	// and pragmas apply per connection. Pin the pool to one connection.
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// WAL keeps reads from blocking behind the upsert batch.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id           INTEGER PRIMARY KEY,
			login        TEXT,
			avatar_url   TEXT,
			name         TEXT,
			followers    INTEGER,
			public_repos INTEGER
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create users table: %w", err)
	}
	return nil
}

// UpsertAll inserts or replaces each record keyed by its ID. Records are
// written one at a time, not in a transaction: an interrupted batch leaves
// the earlier records applied. No read path depends on batch atomicity.
func (s *Store) UpsertAll(ctx context.Context, records []UserRecord) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	for _, r := range records {
		_, err := s.db.ExecContext(ctx,
			`INSERT OR REPLACE INTO users (id, login, avatar_url, name, followers, public_repos)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			r.ID, r.Login, r.AvatarURL, r.Name, r.Followers, r.PublicRepos,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert user %d: %w", r.ID, err)
		}
	}
	return nil
}

// All returns every cached record ordered by ID.
func (s *Store) All(ctx context.Context) ([]UserRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, login, avatar_url, name, followers, public_repos FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var records []UserRecord
	for rows.Next() {
		var r UserRecord
		if err := rows.Scan(&r.ID, &r.Login, &r.AvatarURL, &r.Name, &r.Followers, &r.PublicRepos); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read user rows: %w", err)
	}
	return records, nil
}

// ByID returns the cached record with the given primary key, or ErrNotFound.
func (s *Store) ByID(ctx context.Context, id int64) (UserRecord, error) {
	var r UserRecord
	err := s.db.QueryRowContext(ctx,
		`SELECT id, login, avatar_url, name, followers, public_repos FROM users WHERE id = ?`,
		id,
	).Scan(&r.ID, &r.Login, &r.AvatarURL, &r.Name, &r.Followers, &r.PublicRepos)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return UserRecord{}, ErrNotFound
		}
		return UserRecord{}, fmt.Errorf("failed to query user %d: %w", id, err)
	}
	return r, nil
}

// Count returns the number of cached records.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}

// Clear removes all cached records.
func (s *Store) Clear(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM users`); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	return nil
}

// Close closes the database connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}
