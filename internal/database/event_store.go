package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nfrund/collectives/internal/domain"
	"github.com/surrealdb/surrealdb.go"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

const (
	createEventQuery = "CREATE $id CONTENT $content"
	eventSlugIndex   = "event_slug"
)

// SurrealEventStore writes events to SurrealDB.
type SurrealEventStore struct {
	db      *surrealdb.DB
	timeout time.Duration
}

// NewSurrealEventStore creates a new SurrealEventStore.
func NewSurrealEventStore(db *surrealdb.DB, timeout time.Duration) *SurrealEventStore {
	return &SurrealEventStore{db: db, timeout: timeout}
}

// Create inserts event under a fresh UUID record id and returns the stored
// record. A slug already used by the collective yields domain.ErrSlugTaken.
func (s *SurrealEventStore) Create(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	if event == nil || event.CollectiveID == nil || event.CreatedBy == nil {
		return nil, NewDBError(ErrInvalidInput, "event requires a collective and a creator")
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	id := surrealmodels.NewRecordID("event", uuid.NewString())
	content := map[string]any{
		"collective":  *event.CollectiveID,
		"createdBy":   *event.CreatedBy,
		"slug":        event.Slug,
		"name":        event.Name,
		"description": event.Description,
		"location":    event.Location,
		"startsAt":    event.StartsAt,
	}
	if event.EndsAt != nil {
		content["endsAt"] = *event.EndsAt
	}
	params := map[string]any{"id": id, "content": content}

	created, err := QueryOne[domain.Event](ctx, s.db, createEventQuery, params)
	if err != nil {
		if isIndexViolation(err, eventSlugIndex) {
			return nil, fmt.Errorf("create event %q: %w", event.Slug, domain.ErrSlugTaken)
		}
		return nil, fmt.Errorf("failed to create event %q: %w", event.Slug, err)
	}
	if created == nil {
		return nil, NewDBError(ErrQueryFailed, "create returned no record")
	}
	return created, nil
}

// isIndexViolation reports whether err is SurrealDB refusing a write because
// the unique index already holds the value.
func isIndexViolation(err error, index string) bool {
	msg := err.Error()
	return strings.Contains(msg, "index `"+index+"` already contains")
}
