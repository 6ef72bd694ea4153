package partials

import (
	"github.com/nfrund/hidaya/internal/annotate"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// TooltipID ties highlighted terms to the page's single tooltip element.
const TooltipID = "pricing-tooltip"

// FeatureText renders a feature line, boxing every "**term**" span. Terms
// found in the glossary carry their explanation as a tooltip; unknown terms
// are boxed without one. Text is escaped here, at the HTML boundary.
func FeatureText(line string, glossary annotate.Glossary) g.Node {
	return g.Map(annotate.Render(line, glossary), Segment)
}

// Segment renders a single annotated segment.
func Segment(s annotate.Segment) g.Node {
	if !s.IsTerm() {
		return g.Text(s.Text)
	}

	return Span(
		Class("feature-term border-b border-dashed border-blue-400 cursor-help mx-1"),
		g.If(s.Known, g.Group{
			Data("tooltip-id", TooltipID),
			Data("tooltip-content", s.Explanation),
			TabIndex("0"),
		}),
		g.Text(s.Text),
		g.If(s.Known, Icon("info", "w-3 h-3 inline-block ml-1 mb-[2px]")),
	)
}
