package domain

import (
	"context"

	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

// Collective is the organizational entity events are created for.
type Collective struct {
	ID          *surrealmodels.RecordID `json:"id,omitempty"`
	Slug        string                  `json:"slug"`
	Name        string                  `json:"name"`
	Description *string                 `json:"description,omitempty"`
	Currency    string                  `json:"currency,omitempty"`
	Image       *string                 `json:"image,omitempty"`
}

// Membership is one entry in a user's collective list. Its Slug is what the
// create-event page matches against the route's collective slug.
type Membership struct {
	CollectiveID *surrealmodels.RecordID `json:"id,omitempty"`
	Slug         string                  `json:"slug"`
	Name         string                  `json:"name,omitempty"`
	Role         string                  `json:"role,omitempty"`
}

// Membership roles.
const (
	RoleAdmin  = "ADMIN"
	RoleMember = "MEMBER"
	RoleBacker = "BACKER"
	RoleHost   = "HOST"
)

// CollectiveRepository looks collectives up by slug.
type CollectiveRepository interface {
	// FindBySlug returns (nil, nil) when no collective has the slug.
	FindBySlug(ctx context.Context, slug string) (*Collective, error)
}
