package rendering

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

func TestUniversalRenderer_RenderComponent(t *testing.T) {
	r := NewUniversalRenderer()

	t.Run("gomponents node", func(t *testing.T) {
		out, err := r.RenderComponent(context.Background(), g.P(gomponents.Text("hi")))
		require.NoError(t, err)
		assert.Equal(t, "<p>hi</p>", string(out))
	})

	t.Run("templ component", func(t *testing.T) {
		comp := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			_, err := io.WriteString(w, "<span>templ</span>")
			return err
		})
		out, err := r.RenderComponent(context.Background(), comp)
		require.NoError(t, err)
		assert.Equal(t, "<span>templ</span>", string(out))
	})

	t.Run("unsupported type", func(t *testing.T) {
		_, err := r.RenderComponent(context.Background(), 42)
		assert.ErrorContains(t, err, "unsupported component type: int")
	})
}

func TestUniversalRenderer_EchoRender(t *testing.T) {
	e := echo.New()
	e.Renderer = NewUniversalRenderer()
	e.GET("/", func(c echo.Context) error {
		return c.Render(http.StatusNotFound, "", g.H1(gomponents.Text("Not found")))
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, echo.MIMETextHTMLCharsetUTF8, rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "<h1>Not found</h1>", rec.Body.String())
}

func TestUniversalRenderer_RenderPage(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	err := NewUniversalRenderer().RenderPage(c, http.StatusServiceUnavailable, g.Div(gomponents.Text("Loading...")))
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "<div>Loading...</div>", rec.Body.String())
}
