package layouts

import (
	"github.com/nfrund/hidaya/internal/view"
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"
)

// htmxSrc is the pinned htmx build loaded by every page.
const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// Props configures the document shell.
type Props struct {
	Title       string
	Brand       string
	Description string
	Theme       view.Theme
}

// Base wraps body in the HTML5 document shared by every page.
func Base(props Props, body ...g.Node) g.Node {
	return c.HTML5(c.HTML5Props{
		Title:       CalculateTitle(props.Title, props.Brand),
		Description: props.Description,
		Language:    "en",
		HTMLAttrs: []g.Node{
			c.Classes{"scroll-smooth": true, "dark": props.Theme == view.ThemeDark},
			h.Data("theme", string(props.Theme)),
		},
		Head: []g.Node{
			h.Link(h.Rel("stylesheet"), h.Href("/static/css/landing.css")),
			h.Script(h.Src(htmxSrc), h.Defer()),
			h.Script(h.Src("/static/js/landing.js"), h.Defer()),
		},
		Body: append([]g.Node{
			h.ID("top"),
			h.Class("min-h-screen bg-slate-200 dark:bg-slate-900"),
		}, body...),
	})
}
