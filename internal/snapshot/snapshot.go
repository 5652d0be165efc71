// Package snapshot persists registry fingerprints so that successive builds
// can be checked for reproducibility.
package snapshot

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a catalog has no stored snapshot
var ErrNotFound = errors.New("snapshot not found")

// Snapshot is one recorded build of a catalog
type Snapshot struct {
	ID          uuid.UUID `json:"id"`
	Catalog     string    `json:"catalog"`
	Fingerprint string    `json:"fingerprint"`
	Nodes       int       `json:"nodes"`
	Document    []byte    `json:"document,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// New creates a snapshot with a fresh ID and the current time
func New(catalog, fingerprint string, nodes int, document []byte) *Snapshot {
	return &Snapshot{
		ID:          uuid.New(),
		Catalog:     catalog,
		Fingerprint: fingerprint,
		Nodes:       nodes,
		Document:    document,
		CreatedAt:   time.Now().UTC(),
	}
}

// Matches reports whether the snapshot recorded the given fingerprint
func (s *Snapshot) Matches(fingerprint string) bool {
	return s != nil && s.Fingerprint == fingerprint
}

// Store persists snapshots. History and Latest return newest first.
type Store interface {
	Save(ctx context.Context, s *Snapshot) error
	Latest(ctx context.Context, catalog string) (*Snapshot, error)
	History(ctx context.Context, catalog string, limit int) ([]*Snapshot, error)
	Close() error
}
