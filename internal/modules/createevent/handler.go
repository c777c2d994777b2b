package createevent

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"
	"maragu.dev/gomponents"

	"github.com/nfrund/collectives/internal/domain"
	"github.com/nfrund/collectives/internal/handlers"
	"github.com/nfrund/collectives/internal/i18n"
	"github.com/nfrund/collectives/internal/middleware"
	"github.com/nfrund/collectives/internal/modules/createevent/view"
	"github.com/nfrund/collectives/internal/pubsub"
	layout "github.com/nfrund/collectives/internal/view"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

// CSRFContextKey is where the CSRF middleware stores the request's token.
const CSRFContextKey = "csrf"

// CSRFFieldName is the form field the CSRF token is read from.
const CSRFFieldName = view.CSRFField

// Handler serves the create-event page, its deferred content and the form
// submission.
type Handler struct {
	sessions    domain.SessionRepository
	collectives domain.CollectiveRepository
	events      domain.EventRepository
	publisher   pubsub.Publisher
	loc         i18n.Localizer
}

// NewHandler creates a new Handler.
func NewHandler(
	sessions domain.SessionRepository,
	collectives domain.CollectiveRepository,
	events domain.EventRepository,
	publisher pubsub.Publisher,
	loc i18n.Localizer,
) *Handler {
	if loc == nil {
		loc = i18n.Provider()
	}
	return &Handler{
		sessions:    sessions,
		collectives: collectives,
		events:      events,
		publisher:   publisher,
		loc:         loc,
	}
}

// PageGet renders the page shell in its loading state. The browser fetches
// the actual content once the shell is on screen.
func (h *Handler) PageGet(c echo.Context) error {
	props := PropsFromContext(c)
	ctx := c.Request().Context()

	return c.Render(http.StatusOK, "", h.page(layout.GetFlashData(c),
		view.Loading(ctx, h.loc, props.ContentPath()),
	))
}

// ContentGet mounts the page, fetches the session and the collective
// concurrently and renders the resulting view.
func (h *Handler) ContentGet(c echo.Context) error {
	props := PropsFromContext(c)
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)
	token := middleware.SessionToken(c)

	page := NewPage(props, func(ctx context.Context) (*domain.User, error) {
		if token == "" {
			return nil, nil
		}
		return h.sessions.LoggedInUser(ctx, token)
	}, logger)
	query := NewCollectiveQuery(h.collectives, props.CollectiveSlug)

	page.Mount(ctx)
	defer page.Unmount()

	var g errgroup.Group
	g.Go(func() error {
		if err := query.Run(ctx); err != nil {
			logger.ErrorContext(ctx, "Collective fetch failed", "collective", props.CollectiveSlug, "error", err)
			return err
		}
		return nil
	})
	g.Go(func() error {
		return page.Wait(ctx)
	})
	fetchErr := g.Wait()

	state := page.State()
	result := query.Result()
	decided := Decide(state, result)
	logger.DebugContext(ctx, "Rendering create-event content",
		"collective", props.CollectiveSlug, "view", decided.String(), "fetch_failed", fetchErr != nil)

	var (
		status int
		node   gomponents.Node
	)
	switch decided {
	case ViewNotFound:
		status, node = http.StatusNotFound, view.NotFound(h.loc)
	case ViewForm:
		status, node = http.StatusOK, view.Form(h.formData(c, props, result.Collective, state.LoggedInUser))
	default:
		status, node = http.StatusServiceUnavailable, view.Loading(ctx, h.loc, "")
	}

	if isHTMX(c) {
		return c.Render(status, "", node)
	}
	return c.Render(status, "", h.page(layout.GetFlashData(c), node))
}

// CreatePost validates and stores a new event for the collective, then sends
// the user back to the form with a confirmation.
func (h *Handler) CreatePost(c echo.Context) error {
	props := PropsFromContext(c)
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	user := middleware.UserFromContext(c)
	if user == nil {
		return c.Redirect(http.StatusSeeOther, middleware.SignInURL(props.PagePath()))
	}

	collective, err := h.collectives.FindBySlug(ctx, props.CollectiveSlug)
	if err != nil {
		return err
	}
	if collective == nil {
		return c.Render(http.StatusNotFound, "", h.page(layout.FlashData{}, view.NotFound(h.loc)))
	}

	Authorize(user, props.CollectiveSlug)
	data := h.formData(c, props, collective, user)
	if !user.CanCreateEvent {
		logger.WarnContext(ctx, "Event creation refused for non-member", "collective", props.CollectiveSlug, "user", user)
		return c.Render(http.StatusForbidden, "", h.page(layout.FlashData{}, view.Form(data)))
	}

	var req CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	req.Normalize()
	data.Values = req.Values()

	if err := c.Validate(&req); err != nil {
		data.FieldErrors = h.fieldMessages(handlers.FieldErrors(err))
		return h.renderInvalid(c, data)
	}

	event, err := req.ToEvent(collective, user)
	if err != nil {
		if errors.Is(err, ErrEndsBeforeStart) {
			data.FieldErrors = map[string]string{"endsAt": i18n.T(h.loc, "event.endsAt.invalid")}
		} else {
			logger.WarnContext(ctx, "Event form could not be converted", "error", err)
			data.FieldErrors = map[string]string{"startsAt": i18n.T(h.loc, "field.datetime")}
		}
		return h.renderInvalid(c, data)
	}

	created, err := h.events.Create(ctx, event)
	if errors.Is(err, domain.ErrSlugTaken) {
		logger.InfoContext(ctx, "Event slug already taken", "collective", props.CollectiveSlug, "slug", event.Slug)
		data.FieldErrors = map[string]string{"slug": i18n.T(h.loc, "field.slug.taken")}
		return h.renderInvalid(c, data)
	}
	if err != nil {
		logger.ErrorContext(ctx, "Failed to create event", "collective", props.CollectiveSlug, "slug", event.Slug, "error", err)
		flashes := layout.FlashData{Error: []string{i18n.T(h.loc, "event.create.error")}}
		return c.Render(http.StatusInternalServerError, "", h.page(flashes, view.Form(data)))
	}

	payload := EventCreated{
		EventID:        recordString(created.ID),
		Slug:           created.Slug,
		Name:           created.Name,
		CollectiveSlug: collective.Slug,
		CreatedBy:      recordString(user.ID),
		StartsAt:       created.StartsAt.Time.UTC().Format(FormTimeLayout),
	}
	if err := pubsub.Publish(ctx, h.publisher, TopicEventCreated, payload.CreatedBy, payload); err != nil {
		logger.WarnContext(ctx, "Failed to publish event creation", "event", payload.EventID, "error", err)
	}

	logger.InfoContext(ctx, "Event created", "collective", collective.Slug, "event", payload.EventID)
	layout.SetFlashSuccess(c, i18n.T(h.loc, "event.create.success", created.Name))
	return c.Redirect(http.StatusSeeOther, props.PagePath())
}

func (h *Handler) renderInvalid(c echo.Context, data view.FormData) error {
	flashes := layout.FlashData{Error: []string{i18n.T(h.loc, "event.create.invalid")}}
	return c.Render(http.StatusUnprocessableEntity, "", h.page(flashes, view.Form(data)))
}

func (h *Handler) page(flashes layout.FlashData, content gomponents.Node) gomponents.Node {
	return layout.Base(h.loc, i18n.T(h.loc, "event.create.title"), flashes, content)
}

func (h *Handler) formData(c echo.Context, props Props, collective *domain.Collective, user *domain.User) view.FormData {
	token, _ := c.Get(CSRFContextKey).(string)
	return view.FormData{
		Loc:          h.loc,
		Collective:   collective,
		LoggedInUser: user,
		ActionURL:    props.SubmitPath(),
		SignInURL:    middleware.SignInURL(props.PagePath()),
		CSRFToken:    token,
	}
}

// fieldMessages turns failed validation tags into messages for the form.
func (h *Handler) fieldMessages(tags map[string]string) map[string]string {
	if len(tags) == 0 {
		return nil
	}
	out := make(map[string]string, len(tags))
	for field, tag := range tags {
		switch tag {
		case "required", "max", "slug", "datetime":
			out[field] = i18n.T(h.loc, "field."+tag)
		default:
			out[field] = i18n.T(h.loc, "field.invalid")
		}
	}
	return out
}

func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

func recordString(id *surrealmodels.RecordID) string {
	if id == nil {
		return ""
	}
	return id.String()
}
