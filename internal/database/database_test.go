package database

import (
	"context"
	"testing"
	"time"

	"github.com/nfrund/collectives/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/surrealdb/surrealdb.go"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

// seedCommunity creates a user with an active session who is a member of the
// "webpack" collective but not of "babel".
func seedCommunity(t *testing.T, ctx context.Context, db *surrealdb.DB) (token string) {
	t.Helper()

	token = "session-token-for-tests"
	err := Execute(ctx, db, `
		CREATE user:ada SET email = 'ada@example.com', name = 'Ada', username = 'ada';
		CREATE collective:webpack SET slug = 'webpack', name = 'Webpack', currency = 'USD';
		CREATE collective:babel SET slug = 'babel', name = 'Babel', currency = 'USD';
		CREATE member SET user = user:ada, collective = collective:webpack, role = 'ADMIN';
		CREATE session SET token = $token, user = user:ada, expiresAt = time::now() + 1h;
		CREATE session SET token = 'expired', user = user:ada, expiresAt = time::now() - 1h;
	`, map[string]any{"token": token})
	require.NoError(t, err)
	return token
}

func TestSurrealStores(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	token := seedCommunity(t, ctx, db)

	sessions := NewSurrealSessionStore(db, time.Second)
	collectives := NewSurrealCollectiveStore(db, time.Second)
	events := NewSurrealEventStore(db, time.Second)

	t.Run("LoggedInUser loads memberships", func(t *testing.T) {
		user, err := sessions.LoggedInUser(ctx, token)
		require.NoError(t, err)
		require.NotNil(t, user)

		assert.Equal(t, "ada@example.com", user.Email)
		require.Len(t, user.Collectives, 1)
		assert.Equal(t, "webpack", user.Collectives[0].Slug)
		assert.Equal(t, domain.RoleAdmin, user.Collectives[0].Role)
	})

	t.Run("LoggedInUser ignores expired and unknown tokens", func(t *testing.T) {
		for _, tok := range []string{"expired", "unknown", ""} {
			user, err := sessions.LoggedInUser(ctx, tok)
			require.NoError(t, err)
			assert.Nil(t, user, tok)
		}
	})

	t.Run("FindBySlug", func(t *testing.T) {
		collective, err := collectives.FindBySlug(ctx, "babel")
		require.NoError(t, err)
		require.NotNil(t, collective)
		assert.Equal(t, "Babel", collective.Name)

		missing, err := collectives.FindBySlug(ctx, "does-not-exist")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("Create event", func(t *testing.T) {
		collectiveID := surrealmodels.NewRecordID("collective", "webpack")
		userID := surrealmodels.NewRecordID("user", "ada")
		startsAt := surrealmodels.CustomDateTime{Time: time.Date(2026, 11, 5, 18, 0, 0, 0, time.UTC)}

		created, err := events.Create(ctx, &domain.Event{
			CollectiveID: &collectiveID,
			CreatedBy:    &userID,
			Slug:         "meetup-1",
			Name:         "Meetup",
			StartsAt:     startsAt,
		})
		require.NoError(t, err)
		require.NotNil(t, created.ID)
		assert.Equal(t, "event", created.ID.Table)
		assert.Equal(t, "Meetup", created.Name)
		assert.True(t, startsAt.Time.Equal(created.StartsAt.Time))
		assert.Nil(t, created.EndsAt)
		assert.NotNil(t, created.CreatedAt)

		_, err = events.Create(ctx, &domain.Event{
			CollectiveID: &collectiveID,
			CreatedBy:    &userID,
			Slug:         "meetup-1",
			Name:         "Meetup again",
			StartsAt:     startsAt,
		})
		assert.ErrorIs(t, err, domain.ErrSlugTaken)
	})
}
