package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// AdaptGomponent wraps a gomponents.Node so it satisfies templ.Component.
// Pages are built with gomponents and handed to the renderer as templ
// components, which keeps the request context available to the render.
func AdaptGomponent(node g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return node.Render(w)
	})
}
