package view

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"

	"github.com/nfrund/collectives/internal/i18n"
	gview "github.com/nfrund/collectives/internal/view"
)

// LoadingID is the element id of the loading indicator.
const LoadingID = "create-event"

// Spinner is the animated loading indicator with an accessible label.
func Spinner(label string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<div class="loading" role="status" aria-live="polite"><span class="spinner" aria-hidden="true"></span><span class="loading-label">%s</span></div>`,
			templ.EscapeString(label),
		)
		return err
	})
}

// Loading renders the loading state. When contentURL is set the element
// replaces itself with that URL's response as soon as it is on screen;
// otherwise it stays as it is.
func Loading(ctx context.Context, loc i18n.Localizer, contentURL string) gomponents.Node {
	return g.Div(
		g.ID(LoadingID),
		gomponents.If(contentURL != "", gomponents.Group{
			hx.Get(contentURL),
			hx.Trigger("load"),
			hx.Swap("outerHTML"),
		}),
		gview.AdaptTemplToGomponent(ctx, Spinner(i18n.T(loc, "loading"))),
		gomponents.If(contentURL != "", g.NoScript(
			g.A(g.Href(contentURL), gomponents.Text(i18n.T(loc, "event.create.title"))),
		)),
	)
}
