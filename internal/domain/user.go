package domain

import (
	"context"
	"log/slog"

	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

// User represents the authenticated session principal.
//
// Collectives is the user's membership list as loaded from storage.
// Membership and CanCreateEvent are derived per request by the page that
// renders them and are never persisted.
type User struct {
	ID          *surrealmodels.RecordID `json:"id,omitempty"`
	Email       string                  `json:"email"`
	Name        *string                 `json:"name,omitempty"`
	Username    string                  `json:"username,omitempty"`
	Image       *string                 `json:"image,omitempty"`
	Collectives []Membership            `json:"collectives,omitempty"`

	Membership     *Membership `json:"-"`
	CanCreateEvent bool        `json:"-"`
}

// DisplayName returns the name to show for the user, falling back to the
// username and then the email address.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if u.Name != nil && *u.Name != "" {
		return *u.Name
	}
	if u.Username != "" {
		return u.Username
	}
	return u.Email
}

// LogValue keeps logged users to identifying fields and the derived
// authorization flags.
func (u *User) LogValue() slog.Value {
	if u == nil {
		return slog.StringValue("<nil>")
	}
	attrs := []slog.Attr{
		slog.String("username", u.Username),
		slog.Int("collectives", len(u.Collectives)),
		slog.Bool("can_create_event", u.CanCreateEvent),
	}
	if u.ID != nil {
		attrs = append([]slog.Attr{slog.String("id", u.ID.String())}, attrs...)
	}
	if u.Membership != nil {
		attrs = append(attrs, slog.String("membership", u.Membership.Slug), slog.String("role", u.Membership.Role))
	}
	return slog.GroupValue(attrs...)
}

// SessionRepository resolves session tokens to users.
type SessionRepository interface {
	// LoggedInUser returns the user owning token, with their collective
	// memberships populated. It returns (nil, nil) when the token does not
	// belong to an active session.
	LoggedInUser(ctx context.Context, token string) (*User, error)
}
