package view

import (
	"maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/nfrund/collectives/internal/domain"
	"github.com/nfrund/collectives/internal/i18n"
)

// CSRFField is the form field carrying the CSRF token.
const CSRFField = "_csrf"

// Form renders the event-creation form for data.Collective. Without a
// signed-in user it asks to sign in; a user without a membership sees the
// form disabled.
func Form(data FormData) gomponents.Node {
	loc := data.Loc
	user := data.LoggedInUser
	canCreate := user != nil && user.CanCreateEvent

	return g.Section(
		g.ID(LoadingID),
		g.Class("create-event bg-white shadow rounded-xl p-8"),
		g.Header(
			g.Class("mb-6"),
			g.H1(g.Class("text-3xl font-bold"), gomponents.Text(i18n.T(loc, "event.create.title"))),
			g.P(g.Class("text-gray-600"), gomponents.Text(i18n.T(loc, "event.create.for", data.Collective.Name))),
		),
		membershipNotice(data),
		g.Form(
			g.Method("post"),
			g.Action(data.ActionURL),
			g.Class("space-y-4"),
			g.FieldSet(
				gomponents.If(!canCreate, g.Disabled()),
				g.Input(g.Type("hidden"), g.Name(CSRFField), g.Value(data.CSRFToken)),
				textField(data, "name", "event.name.label", "event.name.placeholder", data.Values.Name, true),
				textField(data, "slug", "event.slug.label", "event.slug.placeholder", data.Values.Slug, false),
				g.Div(
					g.Label(g.For("description"), gomponents.Text(i18n.T(loc, "event.description.label"))),
					g.Textarea(g.ID("description"), g.Name("description"), g.Rows("5"), gomponents.Text(data.Values.Description)),
					fieldError(data, "description"),
				),
				textField(data, "location", "event.location.label", "event.location.placeholder", data.Values.Location, false),
				dateField(data, "startsAt", "event.startsAt.label", data.Values.StartsAt, true),
				dateField(data, "endsAt", "event.endsAt.label", data.Values.EndsAt, false),
				g.Input(g.Type("hidden"), g.Name("timezone"), g.Value(timezoneOrDefault(data.Values.Timezone))),
				g.Button(
					g.Type("submit"),
					g.Class("bg-indigo-700 text-white rounded px-4 py-2"),
					gomponents.Text(i18n.T(loc, "event.create.btn")),
				),
			),
		),
	)
}

func membershipNotice(data FormData) gomponents.Node {
	loc := data.Loc
	user := data.LoggedInUser

	switch {
	case user == nil:
		return g.P(
			g.Class("notice notice-signin"),
			gomponents.Text(i18n.T(loc, "event.create.signin")+" "),
			g.A(g.Href(data.SignInURL), gomponents.Text(i18n.T(loc, "event.create.signin.link"))),
		)
	case !user.CanCreateEvent:
		return g.P(
			g.Class("notice notice-forbidden"),
			g.Role("alert"),
			gomponents.Text(i18n.T(loc, "event.create.notallowed", data.Collective.Name)),
		)
	default:
		return g.P(
			g.Class("notice notice-member"),
			gomponents.Text(i18n.T(loc, "user.membership.role", roleLabel(user.Membership))),
		)
	}
}

func textField(data FormData, name, labelKey, placeholderKey, value string, required bool) gomponents.Node {
	return g.Div(
		g.Label(g.For(name), gomponents.Text(i18n.T(data.Loc, labelKey))),
		g.Input(
			g.Type("text"),
			g.ID(name),
			g.Name(name),
			g.Value(value),
			g.Placeholder(i18n.T(data.Loc, placeholderKey)),
			gomponents.If(required, g.Required()),
		),
		fieldError(data, name),
	)
}

func dateField(data FormData, name, labelKey, value string, required bool) gomponents.Node {
	return g.Div(
		g.Label(g.For(name), gomponents.Text(i18n.T(data.Loc, labelKey))),
		g.Input(
			g.Type("datetime-local"),
			g.ID(name),
			g.Name(name),
			g.Value(value),
			gomponents.If(required, g.Required()),
		),
		fieldError(data, name),
	)
}

func fieldError(data FormData, name string) gomponents.Node {
	msg, ok := data.FieldErrors[name]
	if !ok {
		return nil
	}
	return g.P(g.Class("field-error text-red-600 text-sm"), g.Role("alert"), gomponents.Text(msg))
}

func roleLabel(m *domain.Membership) string {
	if m == nil || m.Role == "" {
		return domain.RoleMember
	}
	return m.Role
}

func timezoneOrDefault(tz string) string {
	if tz == "" {
		return "UTC"
	}
	return tz
}
