package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/XSAM/otelsql"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const DefaultDBTimeout = 5 * time.Second

func withDBTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, DefaultDBTimeout)
}

// Dialect is the registered database/sql driver name.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS kv_store (
	storage_key TEXT PRIMARY KEY,
	storage_value TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL
)`

// Store keeps every key as one row of the kv_store table.
type Store struct {
	DB      *sql.DB
	dialect Dialect
}

func New(db *sql.DB, dialect Dialect) *Store {
	return &Store{DB: db, dialect: dialect}
}

// Open connects through an otelsql-instrumented driver, checks the
// connection and creates the table if needed.
func Open(ctx context.Context, dialect Dialect, dsn string) (*Store, error) {

	db, err := otelsql.Open(string(dialect), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if dialect == DialectSQLite {
		// a single writer avoids SQLITE_BUSY between pooled connections
		db.SetMaxOpenConns(1)
	}

	store := New(db, dialect)

	if err := store.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}

	slog.Info("✅ Storage ready", slog.String("dialect", string(dialect)))

	return store, nil
}

func (s *Store) Migrate(ctx context.Context) error {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	if _, err := s.DB.ExecContext(dbCtx, schema); err != nil {
		return fmt.Errorf("failed to create kv_store table: %w", err)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	query := s.rebind(`SELECT storage_value FROM kv_store WHERE storage_key = ?`)

	var value string

	err := s.DB.QueryRowContext(dbCtx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}

		return nil, false, fmt.Errorf("failed to get key %s: %w", key, err)
	}

	return []byte(value), true, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	query := s.rebind(`INSERT INTO kv_store (storage_key, storage_value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (storage_key) DO UPDATE SET storage_value = excluded.storage_value, updated_at = excluded.updated_at`)

	if _, err := s.DB.ExecContext(dbCtx, query, key, string(value), time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}

	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	query := s.rebind(`DELETE FROM kv_store WHERE storage_key = ?`)

	if _, err := s.DB.ExecContext(dbCtx, query, key); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}

	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	return s.DB.PingContext(dbCtx)
}

func (s *Store) Close() error {
	return s.DB.Close()
}

// rebind turns ? placeholders into $n for postgres.
func (s *Store) rebind(query string) string {
	if s.dialect != DialectPostgres {
		return query
	}

	var b strings.Builder
	n := 0

	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))

			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}
