package createevent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorize(t *testing.T) {
	t.Run("matching slug attaches the membership", func(t *testing.T) {
		user := member()
		Authorize(user, "webpack")

		require.NotNil(t, user.Membership)
		assert.Equal(t, "webpack", user.Membership.Slug)
		assert.Equal(t, "ADMIN", user.Membership.Role)
		assert.True(t, user.CanCreateEvent)
	})

	t.Run("first matching entry wins", func(t *testing.T) {
		user := member()
		user.Collectives = append(user.Collectives, user.Collectives[1])
		user.Collectives[2].Role = "BACKER"
		Authorize(user, "webpack")

		assert.Same(t, &user.Collectives[1], user.Membership)
	})

	t.Run("no matching slug", func(t *testing.T) {
		user := outsider()
		Authorize(user, "webpack")

		assert.Nil(t, user.Membership)
		assert.False(t, user.CanCreateEvent)
	})

	t.Run("empty membership list", func(t *testing.T) {
		user := outsider()
		user.Collectives = nil
		Authorize(user, "webpack")

		assert.Nil(t, user.Membership)
		assert.False(t, user.CanCreateEvent)
	})

	t.Run("reauthorizing for another collective resets the flags", func(t *testing.T) {
		user := member()
		Authorize(user, "webpack")
		Authorize(user, "unknown")

		assert.Nil(t, user.Membership)
		assert.False(t, user.CanCreateEvent)
	})

	t.Run("nil user", func(t *testing.T) {
		assert.NotPanics(t, func() { Authorize(nil, "webpack") })
	})
}
