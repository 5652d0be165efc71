package snapshot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Dialect selects the SQL flavour of a SQLStore
type Dialect int

const (
	DialectSQLite Dialect = iota
	DialectPostgres
)

// String returns the string representation of the dialect
func (d Dialect) String() string {
	switch d {
	case DialectSQLite:
		return "sqlite"
	case DialectPostgres:
		return "postgres"
	default:
		return "unknown"
	}
}

// placeholder returns the n-th bind parameter, starting at 1
func (d Dialect) placeholder(n int) string {
	if d == DialectPostgres {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

func (d Dialect) placeholders(count int) string {
	ps := make([]string, count)
	for i := range ps {
		ps[i] = d.placeholder(i + 1)
	}
	return strings.Join(ps, ", ")
}

// SQLStore keeps snapshots in the unispec_snapshots table
type SQLStore struct {
	db      *sql.DB
	dialect Dialect
}

// NewSQLStore creates a store over an open database
func NewSQLStore(db *sql.DB, dialect Dialect) *SQLStore {
	return &SQLStore{db: db, dialect: dialect}
}

// Initialize ensures the snapshots table exists
func (s *SQLStore) Initialize(ctx context.Context) error {
	blob, ts := "BLOB", "TIMESTAMP"
	if s.dialect == DialectPostgres {
		blob, ts = "BYTEA", "TIMESTAMPTZ"
	}

	query := fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS unispec_snapshots (
	id VARCHAR(36) PRIMARY KEY,
	catalog VARCHAR(255) NOT NULL,
	fingerprint VARCHAR(64) NOT NULL,
	nodes INTEGER NOT NULL,
	document %s,
	created_at %s NOT NULL
)`, blob, ts)
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to initialize snapshots table: %w", err)
	}

	index := `
CREATE INDEX IF NOT EXISTS idx_unispec_snapshots_catalog_created_at
ON unispec_snapshots(catalog, created_at)`
	if _, err := s.db.ExecContext(ctx, index); err != nil {
		return fmt.Errorf("failed to initialize snapshots index: %w", err)
	}

	return nil
}

// Save records a snapshot
func (s *SQLStore) Save(ctx context.Context, snap *Snapshot) error {
	query := "INSERT INTO unispec_snapshots (id, catalog, fingerprint, nodes, document, created_at) VALUES (" +
		s.dialect.placeholders(6) + ")"

	_, err := s.db.ExecContext(ctx, query,
		snap.ID.String(), snap.Catalog, snap.Fingerprint, snap.Nodes, snap.Document, snap.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// Latest returns the most recent snapshot of catalog, or ErrNotFound
func (s *SQLStore) Latest(ctx context.Context, catalog string) (*Snapshot, error) {
	query := "SELECT id, catalog, fingerprint, nodes, document, created_at FROM unispec_snapshots WHERE catalog = " +
		s.dialect.placeholder(1) + " ORDER BY created_at DESC LIMIT 1"

	snap, err := scanSnapshot(s.db.QueryRowContext(ctx, query, catalog))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest snapshot: %w", err)
	}
	return snap, nil
}

// History returns up to limit snapshots of catalog, newest first. A limit
// of zero or less returns every snapshot.
func (s *SQLStore) History(ctx context.Context, catalog string, limit int) ([]*Snapshot, error) {
	query := "SELECT id, catalog, fingerprint, nodes, document, created_at FROM unispec_snapshots WHERE catalog = " +
		s.dialect.placeholder(1) + " ORDER BY created_at DESC"
	args := []any{catalog}
	if limit > 0 {
		query += " LIMIT " + s.dialect.placeholder(2)
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots: %w", err)
	}
	defer rows.Close()

	var out []*Snapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		out = append(out, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating snapshots: %w", err)
	}
	return out, nil
}

// Close closes the underlying database
func (s *SQLStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row scanner) (*Snapshot, error) {
	var (
		snap Snapshot
		id   string
	)
	if err := row.Scan(&id, &snap.Catalog, &snap.Fingerprint, &snap.Nodes, &snap.Document, &snap.CreatedAt); err != nil {
		return nil, err
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid snapshot id %q: %w", id, err)
	}
	snap.ID = parsed
	return &snap, nil
}
