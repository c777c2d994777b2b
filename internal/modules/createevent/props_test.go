package createevent

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestInitialProps(t *testing.T) {
	assert.Equal(t, Props{CollectiveSlug: "webpack"}, InitialProps("webpack"))
	assert.Equal(t, Props{CollectiveSlug: ""}, InitialProps(""))
}

func TestProps_Paths(t *testing.T) {
	p := InitialProps("webpack")
	assert.Equal(t, "/webpack/events/new", p.PagePath())
	assert.Equal(t, "/webpack/events/new/content", p.ContentPath())
	assert.Equal(t, "/webpack/events", p.SubmitPath())
}

func TestPropsFromContext(t *testing.T) {
	e := echo.New()
	var got Props
	e.GET("/:"+SlugParam+"/events/new", func(c echo.Context) error {
		got = PropsFromContext(c)
		return c.NoContent(http.StatusOK)
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/babel/events/new", nil))

	assert.Equal(t, Props{CollectiveSlug: "babel"}, got)
}
