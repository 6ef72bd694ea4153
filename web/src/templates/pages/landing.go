package pages

import (
	"github.com/nfrund/hidaya/internal/content"
	"github.com/nfrund/hidaya/internal/view"
	"github.com/nfrund/hidaya/web/src/templates/layouts"
	"github.com/nfrund/hidaya/web/src/templates/partials"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// LandingProps is everything a landing page render needs.
type LandingProps struct {
	Content content.Snapshot
	Theme   view.Theme
	Year    int
}

// Landing composes the full page in its fixed section order.
func Landing(props LandingProps) g.Node {
	site := props.Content.Site

	return layouts.Base(
		layouts.Props{
			Title:       "Home",
			Brand:       site.Brand.Name,
			Description: site.Brand.Tagline,
			Theme:       props.Theme,
		},
		partials.Navbar(site.Brand.Name, site.Nav, props.Theme),
		partials.DemoAlert(site.Disclaimer),
		Main(
			Hero(site.Hero),
			Challenges(site.Challenges),
			Demo(site.Demo),
			Testimonials(site.Testimonials),
			Pricing(site.Pricing, site.FAQs, props.Content.Glossary),
		),
		partials.PageFooter(site.Brand.Name, site.Footer, props.Year),
	)
}
