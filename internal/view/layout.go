package view

import (
	"maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	g "maragu.dev/gomponents/html"

	"github.com/nfrund/collectives/internal/i18n"
)

// htmxSrc is the htmx build the layout loads. Fragments rely on hx-get with
// hx-trigger="load" to fetch data after the first paint.
const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// htmxConfig lets htmx swap 404 and 503 fragments in place instead of
// discarding them.
const htmxConfig = `{"responseHandling":[{"code":"204","swap":false},{"code":"[23]..","swap":true},{"code":"404","swap":true},{"code":"503","swap":true},{"code":"[45]..","swap":false,"error":true}]}`

// Base wraps page content in the HTML document shared by every page.
func Base(loc i18n.Localizer, title string, flashes FlashData, content ...gomponents.Node) gomponents.Node {
	return components.HTML5(components.HTML5Props{
		Title:    CalculateTitle(loc, title),
		Language: i18n.BaseLocale,
		Head: []gomponents.Node{
			g.Meta(g.Name("htmx-config"), g.Content(htmxConfig)),
			g.Link(g.Rel("stylesheet"), g.Href("/static/app.css")),
			g.Script(g.Src(htmxSrc), g.Defer()),
		},
		Body: []gomponents.Node{
			g.Class("min-h-screen bg-gray-50 text-gray-900"),
			g.Main(
				g.Class("container mx-auto p-8"),
				Flashes(flashes),
				gomponents.Group(content),
			),
		},
	})
}

// CalculateTitle handles the conditional logic for the page title.
func CalculateTitle(loc i18n.Localizer, title string) string {
	if title != "" {
		return i18n.T(loc, "layout.title", title)
	}
	return i18n.T(loc, "app.name")
}

// Flashes renders the success and error messages, or nothing when empty.
func Flashes(f FlashData) gomponents.Node {
	if f.Empty() {
		return nil
	}
	return g.Div(
		g.ID("flashes"),
		gomponents.Map(f.Success, func(msg string) gomponents.Node {
			return g.Div(g.Class("flash flash-success"), g.Role("status"), gomponents.Text(msg))
		}),
		gomponents.Map(f.Error, func(msg string) gomponents.Node {
			return g.Div(g.Class("flash flash-error"), g.Role("alert"), gomponents.Text(msg))
		}),
	)
}
