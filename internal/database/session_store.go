package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nfrund/collectives/internal/domain"
	"github.com/surrealdb/surrealdb.go"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

const (
	sessionUserQuery = `SELECT VALUE user FROM session WHERE token = $token AND expiresAt > time::now() LIMIT 1`

	// loggedInUserQuery loads the user together with the collectives they
	// belong to, shaped like domain.Membership.
	loggedInUserQuery = `
		SELECT id, email, name, username, image,
			(SELECT collective.id AS id, collective.slug AS slug, collective.name AS name, role
				FROM member WHERE user = $parent.id ORDER BY slug) AS collectives
		FROM $user
	`
)

// SurrealSessionStore resolves session tokens against the session table.
type SurrealSessionStore struct {
	db      *surrealdb.DB
	timeout time.Duration
}

// NewSurrealSessionStore creates a new SurrealSessionStore.
func NewSurrealSessionStore(db *surrealdb.DB, timeout time.Duration) *SurrealSessionStore {
	return &SurrealSessionStore{db: db, timeout: timeout}
}

// LoggedInUser returns the user owning token with their memberships loaded,
// or nil when the token is unknown or expired.
func (s *SurrealSessionStore) LoggedInUser(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, nil
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	userID, err := QueryOne[surrealmodels.RecordID](ctx, s.db, sessionUserQuery, map[string]any{"token": token})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}
	if userID == nil {
		slog.DebugContext(ctx, "No active session for token")
		return nil, nil
	}

	user, err := QueryOne[domain.User](ctx, s.db, loggedInUserQuery, map[string]any{"user": *userID})
	if err != nil {
		return nil, fmt.Errorf("failed to load user %s: %w", userID.String(), err)
	}
	return user, nil
}
