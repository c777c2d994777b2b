package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/collectives/internal/config"
	"github.com/nfrund/collectives/internal/domain"
	"github.com/nfrund/collectives/internal/pubsub"
	"github.com/nfrund/collectives/internal/registry"
)

type noSessions struct{}

func (noSessions) LoggedInUser(ctx context.Context, token string) (*domain.User, error) {
	return nil, nil
}

type oneCollective struct{}

func (oneCollective) FindBySlug(ctx context.Context, slug string) (*domain.Collective, error) {
	if slug != "webpack" {
		return nil, nil
	}
	return &domain.Collective{Slug: "webpack", Name: "Webpack"}, nil
}

type noEvents struct{}

func (noEvents) Create(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	return event, nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := &config.Config{ServerAddr: ":0", SessionSecret: "test-secret"}
	s, err := Build(cfg, Services{
		Sessions:    noSessions{},
		Collectives: oneCollective{},
		Events:      noEvents{},
	}, AppModules())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Shutdown(context.Background()) })
	return s
}

func TestBuild_Routes(t *testing.T) {
	s := newTestServer(t)

	t.Run("health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.E.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
		assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	})

	t.Run("create event page", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.E.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/webpack/events/new", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `hx-get="/webpack/events/new/content"`)
	})

	t.Run("create event content", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/webpack/events/new/content", nil)
		req.Header.Set("HX-Request", "true")
		rec := httptest.NewRecorder()
		s.E.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Sign in to create an event.")
	})

	t.Run("unknown collective", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/babel/events/new/content", nil)
		req.Header.Set("HX-Request", "true")
		rec := httptest.NewRecorder()
		s.E.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestBuild_RegistersSharedServices(t *testing.T) {
	s := newTestServer(t)

	_, ok := registry.Get(s.Registry, registry.PublisherKey)
	assert.True(t, ok)
	_, ok = registry.Get(s.Registry, registry.LocalizerKey)
	assert.True(t, ok)

	pub := registry.MustGet(s.Registry, registry.PublisherKey)
	assert.NoError(t, pub.Publish(context.Background(), pubsub.Message{Topic: "collectives.events.created", Payload: []byte(`{}`)}))
}

func TestBuild_ServesStaticAssets(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.E.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/app.css", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), ".spinner")
}
