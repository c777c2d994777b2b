package domain

import (
	"context"
	"errors"

	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

// Event is a gathering organised by a collective.
type Event struct {
	ID           *surrealmodels.RecordID       `json:"id,omitempty"`
	CollectiveID *surrealmodels.RecordID       `json:"collective"`
	CreatedBy    *surrealmodels.RecordID       `json:"createdBy"`
	Slug         string                        `json:"slug"`
	Name         string                        `json:"name"`
	Description  string                        `json:"description,omitempty"`
	Location     string                        `json:"location,omitempty"`
	StartsAt     surrealmodels.CustomDateTime  `json:"startsAt"`
	EndsAt       *surrealmodels.CustomDateTime `json:"endsAt,omitempty"`
	CreatedAt    *surrealmodels.CustomDateTime `json:"createdAt,omitempty"`
}

// ErrSlugTaken is returned by EventRepository.Create when the collective
// already has an event with the same slug.
var ErrSlugTaken = errors.New("event slug already taken")

// EventRepository persists events.
type EventRepository interface {
	Create(ctx context.Context, event *Event) (*Event, error)
}
