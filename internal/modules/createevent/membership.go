package createevent

import "github.com/nfrund/collectives/internal/domain"

// Authorize attaches the user's membership of the collective identified by
// slug and derives CanCreateEvent from it. It mutates user in place; a nil
// user is left alone.
//
// CanCreateEvent is true exactly when a membership was found. Both fields are
// overwritten on every call so they never drift apart.
func Authorize(user *domain.User, slug string) {
	if user == nil {
		return
	}

	user.Membership = nil
	for i := range user.Collectives {
		if user.Collectives[i].Slug == slug {
			user.Membership = &user.Collectives[i]
			break
		}
	}
	user.CanCreateEvent = user.Membership != nil
}
