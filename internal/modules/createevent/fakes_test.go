package createevent

import (
	"context"
	"fmt"
	"sync"

	"github.com/nfrund/collectives/internal/domain"
	"github.com/nfrund/collectives/internal/pubsub"
	"github.com/nfrund/collectives/internal/testutils"
)

func webpack() *domain.Collective {
	return testutils.NewCollective("webpack", "Webpack")
}

func member() *domain.User {
	user := testutils.NewUser("ada",
		testutils.Member("babel", domain.RoleMember),
		testutils.Member("webpack", domain.RoleAdmin),
	)
	name := "Ada"
	user.Name = &name
	return user
}

func outsider() *domain.User {
	return testutils.NewUser("grace", testutils.Member("babel", domain.RoleBacker))
}

type fakeSessions struct {
	users map[string]*domain.User
	err   error
}

func (f *fakeSessions) LoggedInUser(ctx context.Context, token string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[token]
	if !ok {
		return nil, nil
	}
	// Each request gets its own copy, as a fresh decode would.
	cp := *u
	cp.Collectives = append([]domain.Membership(nil), u.Collectives...)
	return &cp, nil
}

type fakeCollectives struct {
	collectives map[string]*domain.Collective
	err         error
}

func (f *fakeCollectives) FindBySlug(ctx context.Context, slug string) (*domain.Collective, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.collectives[slug], nil
}

type fakeEvents struct {
	mu      sync.Mutex
	created []*domain.Event
	err     error
}

func (f *fakeEvents) Create(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.created {
		if existing.CollectiveID.String() == event.CollectiveID.String() && existing.Slug == event.Slug {
			return nil, fmt.Errorf("create event %q: %w", event.Slug, domain.ErrSlugTaken)
		}
	}
	stored := *event
	stored.ID = testutils.RecordID("event", event.Slug)
	f.created = append(f.created, &stored)
	return &stored, nil
}

func (f *fakeEvents) all() []*domain.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*domain.Event(nil), f.created...)
}

type fakePublisher struct {
	mu   sync.Mutex
	msgs []pubsub.Message
	err  error
}

func (f *fakePublisher) Publish(ctx context.Context, msg pubsub.Message) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.msgs = append(f.msgs, msg)
	return nil
}

func (f *fakePublisher) Close() error { return nil }

func (f *fakePublisher) messages() []pubsub.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]pubsub.Message(nil), f.msgs...)
}
