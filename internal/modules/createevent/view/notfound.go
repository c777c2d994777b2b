package view

import (
	"maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/nfrund/collectives/internal/i18n"
)

// NotFound renders the page shown when the collective does not exist.
func NotFound(loc i18n.Localizer) gomponents.Node {
	return g.Div(
		g.ID(LoadingID),
		g.Class("not-found text-center py-16"),
		g.H1(g.Class("text-3xl font-bold mb-4"), gomponents.Text(i18n.T(loc, "notfound.title"))),
		g.P(g.Class("text-gray-600 mb-6"), gomponents.Text(i18n.T(loc, "notfound.description"))),
		g.A(g.Href("/"), g.Class("text-indigo-700 underline"), gomponents.Text(i18n.T(loc, "notfound.back"))),
	)
}
