package database

import (
	"context"
	"testing"
	"time"

	"github.com/nfrund/collectives/internal/testutils"
	"github.com/stretchr/testify/require"
	"github.com/surrealdb/surrealdb.go"
)

// setupTestDB creates a test database connection with the schema applied and
// returns a cleanup function. Tests calling it are skipped in short mode or
// when no SurrealDB is configured.
func setupTestDB(t *testing.T) (*surrealdb.DB, func()) {
	t.Helper()

	cfg := testutils.ConfigForTests(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := NewDB(ctx, cfg)
	require.NoError(t, err, "failed to connect to test database")
	require.NoError(t, ApplySchema(ctx, db))

	return db, func() {
		for _, table := range []string{"event", "member", "session", "collective", "user"} {
			_, _ = surrealdb.Query[any](context.Background(), db, "DELETE "+table, nil)
		}
		db.Close(context.Background())
	}
}
