package pages

import (
	"fmt"

	"github.com/nfrund/hidaya/internal/annotate"
	"github.com/nfrund/hidaya/internal/content"
	"github.com/nfrund/hidaya/web/src/templates/partials"
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

// PricingID is the section id of the pricing section and its fragment.
const PricingID = "pricing"

// Pricing renders the plan grid followed by the FAQ accordion.
func Pricing(pricing content.Pricing, faqs []content.FAQ, glossary annotate.Glossary) g.Node {
	return Section(
		ID(PricingID),
		Class("py-16 bg-white dark:bg-slate-900 reveal"),
		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
			Div(
				Class("text-center mb-12"),
				H2(Class("text-3xl font-bold text-orange-900 dark:text-white mb-4"), g.Text(pricing.Heading)),
				g.If(pricing.Subheading != "",
					P(Class("text-blue-600 dark:text-blue-400 max-w-2xl mx-auto"), g.Text(pricing.Subheading)),
				),
			),
			Div(
				Class("grid md:grid-cols-3 gap-8 items-stretch mb-20"),
				g.Map(pricing.Plans, func(plan content.Plan) g.Node {
					return PlanCard(plan, pricing, glossary)
				}),
			),
			Div(
				ID(partials.TooltipID),
				Role("tooltip"),
				Class("tooltip hidden max-w-[250px] z-[100] rounded-md bg-slate-900 px-3 py-2 text-sm text-white dark:bg-slate-700"),
			),
			FAQAccordion(faqs, pricing.SupportURL),
		),
	)
}

// PlanCard renders one plan. The "Most Popular" badge and the social proof
// block appear only on the highlighted plan; the discount badge and struck
// original price appear only on discounted plans.
func PlanCard(plan content.Plan, pricing content.Pricing, glossary annotate.Glossary) g.Node {
	period := pricing.Period
	if period == "" {
		period = "/month"
	}

	return Div(
		c.Classes{
			"plan-card relative p-8 rounded-2xl shadow-lg flex flex-col h-full transition-transform hover:scale-[1.02]": true,
			"plan-highlighted border-2 border-blue-500 bg-white dark:bg-slate-800":                                      plan.Highlighted,
			"border border-blue-100 dark:border-slate-700 bg-blue-50 dark:bg-slate-800":                                  !plan.Highlighted,
		},
		g.If(plan.Highlighted,
			Div(
				Class("badge-popular absolute top-0 right-0 -mt-4 mr-6 bg-blue-500 text-white px-3 py-1 rounded-full text-sm flex items-center"),
				partials.Icon("chevron-left", "w-4 h-4 mr-1"),
				g.Text("Most Popular"),
			),
		),
		g.If(plan.IsDiscounted(),
			Div(
				Class("badge-discount absolute top-0 left-0 -mt-4 ml-6 bg-sky-500 text-white px-3 py-1 rounded-full text-sm"),
				g.Text(plan.DiscountLabel()+" OFF"),
			),
		),
		H3(Class("text-2xl font-bold text-blue-900 dark:text-white mb-4"), g.Text(plan.Title)),
		Div(
			Class("mb-6"),
			g.Iff(plan.IsDiscounted(), func() g.Node {
				return Del(
					Class("original-price text-xl text-blue-400 mr-2"),
					g.Text(content.FormatPrice(plan.Discount.OriginalPrice)),
				)
			}),
			Span(Class("price text-4xl font-bold text-blue-600 dark:text-blue-400"), g.Text(content.FormatPrice(plan.Price))),
			Span(Class("text-blue-500 dark:text-blue-300"), g.Text(period)),
		),
		Ul(
			Class("space-y-4 mb-8 flex-grow"),
			g.Map(plan.Features, func(feature string) g.Node {
				return Li(
					Class("feature flex items-center gap-3"),
					partials.Icon("check-circle", "w-5 h-5 text-blue-600 dark:text-blue-400 shrink-0"),
					Span(Class("text-blue-700 dark:text-slate-300"), partials.FeatureText(feature, glossary)),
				)
			}),
		),
		Div(
			Class("h-[80px]"),
			A(
				Href("#top"),
				Class("plan-cta flex items-center justify-center w-full text-lg h-14 rounded-md bg-blue-600 hover:bg-blue-700 text-white"),
				g.Text(plan.CallToAction()),
			),
		),
		g.If(plan.Highlighted, socialProof(pricing)),
	)
}

func socialProof(pricing content.Pricing) g.Node {
	avatars := make([]g.Node, 0, 3)
	for i := 1; i <= 3; i++ {
		avatars = append(avatars, Span(
			Class("relative flex h-10 w-10 items-center justify-center overflow-hidden rounded-full border-2 border-white bg-blue-100 text-blue-600 text-sm"),
			g.Textf("S%d", i),
			Img(
				Src(fmt.Sprintf("/static/images/avatar-%d.svg", i)),
				Alt(""),
				g.Attr("loading", "lazy"),
				g.Attr("onerror", "this.remove()"),
				Class("absolute inset-0 h-full w-full object-cover"),
			),
		))
	}

	return Div(
		Class("social-proof mt-6 pt-6 border-t border-blue-100"),
		Div(
			Class("flex items-center gap-3 mb-4"),
			Div(Class("flex -space-x-2"), g.Group(avatars)),
			g.If(pricing.SocialProof != "", P(Class("text-sm text-blue-600"), g.Text(pricing.SocialProof))),
		),
		g.If(len(pricing.Perks) > 0,
			Div(
				Class("p-4 bg-blue-50 dark:bg-slate-700 rounded-lg"),
				H4(Class("text-lg font-semibold text-blue-900 dark:text-white mb-2"), g.Text("Best of our Program")),
				Ul(
					Class("list-disc pl-5 space-y-2 text-blue-700 dark:text-slate-300"),
					g.Map(pricing.Perks, func(perk string) g.Node { return Li(g.Text(perk)) }),
				),
			),
		),
	)
}

// FAQAccordion renders the questions as an exclusive accordion: opening one
// entry closes the others, and an open entry can be collapsed again.
func FAQAccordion(faqs []content.FAQ, supportURL string) g.Node {
	return Div(
		ID("faq"),
		Class("max-w-4xl mx-auto mt-12"),
		Div(
			Class("text-center mb-12"),
			H2(Class("text-3xl font-bold text-orange-900 dark:text-white mb-3"), g.Text("Frequently Asked Questions")),
			Div(Class("w-20 h-1 bg-orange-500 mx-auto rounded-full")),
		),
		Div(
			Class("w-full"),
			g.Map(faqs, func(faq content.FAQ) g.Node {
				return Details(
					g.Attr("name", "faq"),
					Class("faq-item border-b border-orange-200 dark:border-slate-700"),
					Summary(
						Class("cursor-pointer text-lg font-medium text-orange-500 dark:text-slate-200 hover:text-orange-700 dark:hover:text-orange-300 py-4"),
						g.Text(faq.Question),
					),
					Div(Class("text-orange-700 dark:text-slate-300 pb-4 text-md leading-relaxed"), g.Text(faq.Answer)),
				)
			}),
		),
		g.If(supportURL != "",
			Div(
				Class("mt-12 text-center"),
				P(
					Class("text-orange-700 dark:text-slate-300"),
					g.Text("Still have questions? "),
					A(Href(supportURL), Class("text-orange-600 dark:text-orange-400 font-semibold hover:underline"), g.Text("Contact our support team")),
				),
			),
		),
	)
}
