package database

import (
	"context"
	"fmt"
	"time"

	"github.com/nfrund/collectives/internal/domain"
	"github.com/surrealdb/surrealdb.go"
)

// SurrealCollectiveStore reads collectives from SurrealDB.
type SurrealCollectiveStore struct {
	db      *surrealdb.DB
	timeout time.Duration
}

// NewSurrealCollectiveStore creates a new SurrealCollectiveStore.
func NewSurrealCollectiveStore(db *surrealdb.DB, timeout time.Duration) *SurrealCollectiveStore {
	return &SurrealCollectiveStore{db: db, timeout: timeout}
}

// FindBySlug queries for a single collective by its slug.
func (s *SurrealCollectiveStore) FindBySlug(ctx context.Context, slug string) (*domain.Collective, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	query := "SELECT * FROM collective WHERE slug = $slug"
	collective, err := QueryOne[domain.Collective](ctx, s.db, query, map[string]any{"slug": slug})
	if err != nil {
		return nil, fmt.Errorf("database query failed: %w", err)
	}
	return collective, nil
}
