package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
)

// AdaptTemplToGomponent wraps a templ.Component so it can be placed inside a
// gomponents tree. Gomponents does not pass a context through Render, so the
// caller supplies the one the component should see.
func AdaptTemplToGomponent(ctx context.Context, component templ.Component) gomponents.Node {
	return gomponents.NodeFunc(func(w io.Writer) error {
		return component.Render(ctx, w)
	})
}
