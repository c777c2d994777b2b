package createevent

import "github.com/labstack/echo/v4"

// SlugParam is the route parameter naming the target collective.
const SlugParam = "collectiveSlug"

// Props are the route-derived inputs of the create-event page.
type Props struct {
	CollectiveSlug string
}

// InitialProps builds the page props from the route's collective slug. The
// slug is not validated; an empty one simply matches no collective.
func InitialProps(collectiveSlug string) Props {
	return Props{CollectiveSlug: collectiveSlug}
}

// PropsFromContext reads the props from the matched echo route.
func PropsFromContext(c echo.Context) Props {
	return InitialProps(c.Param(SlugParam))
}

// PagePath is the URL of the create-event page for the collective.
func (p Props) PagePath() string {
	return "/" + p.CollectiveSlug + "/events/new"
}

// ContentPath is the URL of the fragment the page loads after first paint.
func (p Props) ContentPath() string {
	return p.PagePath() + "/content"
}

// SubmitPath is where the event form posts.
func (p Props) SubmitPath() string {
	return "/" + p.CollectiveSlug + "/events"
}
