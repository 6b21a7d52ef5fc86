package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"societies/internal/debug"
	appErrors "societies/internal/errors"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const (
	defaultOpTimeout = 3 * time.Second

	schema = `CREATE TABLE IF NOT EXISTS preferences (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TEXT NOT NULL
)`
)

var storeLog = debug.For("store")

// SQLite keeps values in a single-table SQLite database. One connection is
// held for the life of the session.
type SQLite struct {
	path      string
	db        *sql.DB
	opTimeout time.Duration
	now       func() time.Time
}

// OpenSQLite opens (creating if needed) the database at path and ensures
// the schema exists.
func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, appErrors.New(appErrors.CodeStorageFailed, "sqlite store requires a path", nil)
	}
	//nolint:gosec // G301: state directory lives under the user's home
	if err := os.MkdirAll(filepath.Dir(trimmed), 0755); err != nil {
		return nil, appErrors.New(appErrors.CodeStorageFailed, fmt.Sprintf("create state directory for %s", trimmed), err)
	}

	db, err := sql.Open("sqlite", buildSQLiteDSN(trimmed))
	if err != nil {
		return nil, appErrors.New(appErrors.CodeStorageFailed, "open state db", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, appErrors.New(appErrors.CodeStorageFailed, "ping state db", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, appErrors.New(appErrors.CodeStorageFailed, "create preferences table", err)
	}
	storeLog.Logf("opened %s", trimmed)
	return &SQLite{
		path:      trimmed,
		db:        db,
		opTimeout: defaultOpTimeout,
		now:       time.Now,
	}, nil
}

// buildSQLiteDSN creates a read-write WAL DSN for the given path.
func buildSQLiteDSN(path string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(path),
	}
	q := url.Values{}
	q.Add("_pragma", "busy_timeout(3000)")
	q.Add("_pragma", "journal_mode(WAL)")
	q.Add("_pragma", "synchronous(NORMAL)")
	u.RawQuery = q.Encode()
	return u.String()
}

// Path returns the database file location.
func (s *SQLite) Path() string {
	return s.path
}

// Get implements KV. Query failures are logged and reported as absent.
func (s *SQLite) Get(key string) (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), s.opTimeout)
	defer cancel()

	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false
	}
	if err != nil {
		storeLog.Logf("get %q: %v", key, err)
		return "", false
	}
	return value, true
}

// Set implements KV with an upsert.
func (s *SQLite) Set(key, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.opTimeout)
	defer cancel()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, s.now().UTC().Format(time.RFC3339))
	if err != nil {
		storeLog.Logf("set %q: %v", key, err)
		return appErrors.New(appErrors.CodeStorageFailed, fmt.Sprintf("store %s", key), err)
	}
	return nil
}

// Close releases the database handle.
func (s *SQLite) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
