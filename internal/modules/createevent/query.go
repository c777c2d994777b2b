package createevent

import (
	"context"
	"fmt"
	"sync"

	"github.com/nfrund/collectives/internal/domain"
)

// CollectiveResult is what the page sees of the collective lookup.
type CollectiveResult struct {
	Loading    bool
	Collective *domain.Collective
}

// CollectiveQuery binds a collective lookup to the page. Until Run succeeds
// its result reports Loading; a failed lookup keeps reporting Loading.
type CollectiveQuery struct {
	repo domain.CollectiveRepository
	slug string

	mu     sync.RWMutex
	result CollectiveResult
}

// NewCollectiveQuery creates a query for the collective with slug.
func NewCollectiveQuery(repo domain.CollectiveRepository, slug string) *CollectiveQuery {
	return &CollectiveQuery{
		repo:   repo,
		slug:   slug,
		result: CollectiveResult{Loading: true},
	}
}

// Run performs the lookup. A missing collective is a successful result with
// a nil Collective.
func (q *CollectiveQuery) Run(ctx context.Context) error {
	collective, err := q.repo.FindBySlug(ctx, q.slug)
	if err != nil {
		return fmt.Errorf("fetch collective %q: %w", q.slug, err)
	}

	q.mu.Lock()
	q.result = CollectiveResult{Loading: false, Collective: collective}
	q.mu.Unlock()
	return nil
}

// Result returns a snapshot of the lookup state.
func (q *CollectiveQuery) Result() CollectiveResult {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.result
}
