package createevent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/nfrund/collectives/internal/domain"
)

// ErrUnmounted is returned by Wait when the page is torn down before the
// session fetch settled.
var ErrUnmounted = errors.New("page unmounted")

// ErrNotMounted is returned by Wait on a page that was never mounted.
var ErrNotMounted = errors.New("page not mounted")

// GetLoggedInUserFunc fetches the current session's user. A nil user with a
// nil error means nobody is signed in.
type GetLoggedInUserFunc func(ctx context.Context) (*domain.User, error)

// State is owned by the page and changes once, when the session fetch
// resolves.
type State struct {
	Loading      bool
	LoggedInUser *domain.User
}

// Page is the create-event page controller. It starts in the loading state,
// fetches the session after mount and derives the user's rights for the
// collective in its props.
type Page struct {
	props           Props
	getLoggedInUser GetLoggedInUserFunc
	logger          *slog.Logger

	mu        sync.Mutex
	state     State
	fetchErr  error
	mounted   bool
	unmounted bool
	timer     *time.Timer
	cancel    context.CancelFunc

	done     chan struct{}
	doneOnce sync.Once
	torn     chan struct{}
}

// NewPage creates a page for props. getLoggedInUser is invoked once, after
// Mount.
func NewPage(props Props, getLoggedInUser GetLoggedInUserFunc, logger *slog.Logger) *Page {
	if logger == nil {
		logger = slog.Default()
	}
	return &Page{
		props:           props,
		getLoggedInUser: getLoggedInUser,
		logger:          logger,
		state:           State{Loading: true},
		done:            make(chan struct{}),
		torn:            make(chan struct{}),
	}
}

// Props returns the props the page was created with.
func (p *Page) Props() Props {
	return p.props
}

// Mount schedules the session fetch for the next tick, so that whatever the
// caller renders right after Mount goes out in the loading state. Calling
// Mount again, or after Unmount, does nothing.
func (p *Page) Mount(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.mounted || p.unmounted {
		return
	}
	p.mounted = true

	fetchCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.timer = time.AfterFunc(0, func() { p.loadSession(fetchCtx) })
}

// Unmount tears the page down. A fetch still in flight is cancelled and its
// result, if it arrives anyway, is dropped without touching state.
func (p *Page) Unmount() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.unmounted {
		return
	}
	p.unmounted = true
	close(p.torn)

	if p.timer != nil && p.timer.Stop() {
		// The fetch never started.
		p.markDone()
	}
	if p.cancel != nil {
		p.cancel()
	}
}

// Wait blocks until the session fetch settled, the page was unmounted or ctx
// is done. It returns the fetch error, if any.
func (p *Page) Wait(ctx context.Context) error {
	p.mu.Lock()
	mounted := p.mounted
	p.mu.Unlock()
	if !mounted {
		return ErrNotMounted
	}

	select {
	case <-p.done:
		p.mu.Lock()
		defer p.mu.Unlock()
		if p.unmounted && p.state.Loading && p.fetchErr == nil {
			return ErrUnmounted
		}
		return p.fetchErr
	case <-p.torn:
		return ErrUnmounted
	case <-ctx.Done():
		return ctx.Err()
	}
}

// State returns a snapshot of the page state.
func (p *Page) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Page) loadSession(ctx context.Context) {
	defer p.markDone()

	user, err := p.getLoggedInUser(ctx)
	if err != nil {
		err = fmt.Errorf("fetch logged in user: %w", err)
		p.mu.Lock()
		unmounted := p.unmounted
		if !unmounted {
			p.fetchErr = err
		}
		p.mu.Unlock()

		if !unmounted {
			p.logger.ErrorContext(ctx, "Session fetch failed, page stays loading",
				"collective", p.props.CollectiveSlug, "error", err)
		}
		return
	}

	Authorize(user, p.props.CollectiveSlug)
	p.logger.DebugContext(ctx, "Logged in user", "collective", p.props.CollectiveSlug, "user", user)

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.unmounted {
		p.logger.DebugContext(ctx, "Discarding session result for unmounted page", "collective", p.props.CollectiveSlug)
		return
	}
	p.state = State{Loading: false, LoggedInUser: user}
}

func (p *Page) markDone() {
	p.doneOnce.Do(func() { close(p.done) })
}
