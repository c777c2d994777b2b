package testutils

import "github.com/nfrund/collectives/internal/domain"

// NewUser builds a user with the given memberships. The id is derived from
// the username so assertions can rely on it.
func NewUser(username string, memberships ...domain.Membership) *domain.User {
	return &domain.User{
		ID:          RecordID("user", username),
		Email:       username + "@example.com",
		Username:    username,
		Collectives: memberships,
	}
}

// Member is a membership entry for the collective with slug.
func Member(slug, role string) domain.Membership {
	return domain.Membership{
		CollectiveID: RecordID("collective", slug),
		Slug:         slug,
		Role:         role,
	}
}

// NewCollective builds a collective whose id matches Member's CollectiveID.
func NewCollective(slug, name string) *domain.Collective {
	return &domain.Collective{
		ID:   RecordID("collective", slug),
		Slug: slug,
		Name: name,
	}
}
