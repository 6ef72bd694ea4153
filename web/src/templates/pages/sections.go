package pages

import (
	"fmt"

	"github.com/nfrund/hidaya/internal/content"
	"github.com/nfrund/hidaya/web/src/templates/partials"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Hero is the opening section with the headline, calls to action and stats.
func Hero(hero content.Hero) g.Node {
	return Section(
		ID("hero"),
		Class("pt-32 pb-20 bg-gradient-to-b from-indigo-50 to-slate-200 dark:from-slate-900 dark:to-slate-900"),
		Div(
			Class("max-w-5xl mx-auto px-4 text-center reveal"),
			g.If(hero.Eyebrow != "",
				P(Class("inline-block rounded-full bg-white/60 px-4 py-1 text-sm text-indigo-700"), g.Text(hero.Eyebrow)),
			),
			H1(
				Class("mt-6 text-4xl md:text-6xl font-extrabold tracking-tight text-indigo-950 dark:text-white"),
				g.Text(hero.Headline),
				g.If(hero.Highlight != "", g.Group{
					Br(),
					Span(Class("bg-gradient-to-r from-indigo-600 to-violet-600 bg-clip-text text-transparent"), g.Text(hero.Highlight)),
				}),
			),
			g.If(hero.Description != "",
				P(Class("mt-6 text-lg text-slate-700 dark:text-slate-300 max-w-2xl mx-auto"), g.Text(hero.Description)),
			),
			Div(
				Class("mt-10 flex flex-wrap justify-center gap-4"),
				g.If(hero.PrimaryCTA != "",
					A(Href("#pricing"), Data("scroll", ""), Class("btn-primary px-6 py-3 rounded-lg bg-indigo-600 text-white hover:bg-indigo-700"), g.Text(hero.PrimaryCTA)),
				),
				g.If(hero.SecondaryCTA != "",
					A(Href("#program"), Data("scroll", ""), Class("px-6 py-3 rounded-lg border border-indigo-300 text-indigo-700 hover:bg-white"), g.Text(hero.SecondaryCTA)),
				),
			),
			g.If(len(hero.Stats) > 0,
				Dl(
					Class("mt-14 grid grid-cols-1 sm:grid-cols-3 gap-6"),
					g.Map(hero.Stats, func(s content.Stat) g.Node {
						return Div(
							Class("rounded-xl bg-white/70 dark:bg-slate-800 p-4"),
							Dt(Class("text-sm text-slate-600 dark:text-slate-400"), g.Text(s.Label)),
							Dd(Class("text-3xl font-bold text-indigo-700 dark:text-indigo-300"), g.Text(s.Value)),
						)
					}),
				),
			),
		),
	)
}

// Challenges pairs common learner problems with the academy's answers. It is
// the "What We Offer" navigation target.
func Challenges(items []content.Challenge) g.Node {
	return Section(
		ID("program"),
		Class("py-16 bg-white dark:bg-slate-900"),
		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
			H2(Class("text-3xl font-bold text-center text-indigo-950 dark:text-white mb-12 reveal"), g.Text("Challenges we solve")),
			Div(
				Class("grid md:grid-cols-2 gap-8"),
				g.Map(items, func(ch content.Challenge) g.Node {
					return Article(
						Class("challenge reveal rounded-2xl border border-indigo-100 dark:border-slate-700 p-6 hover:shadow-lg transition-shadow"),
						Div(
							Class("flex items-center gap-3 text-rose-700 dark:text-rose-300"),
							partials.Icon(ch.Icon, "h-6 w-6"),
							H3(Class("text-lg font-semibold"), g.Text(ch.Problem)),
						),
						P(Class("mt-3 text-slate-700 dark:text-slate-300"), g.Text(ch.Solution)),
					)
				}),
			),
		),
	)
}

// Demo presents the featured teacher.
func Demo(demo content.Demo) g.Node {
	heading := demo.Heading
	if heading == "" {
		heading = "Meet your teacher"
	}
	return Section(
		ID("demo"),
		Class("py-16 bg-slate-100 dark:bg-slate-800"),
		Div(
			Class("max-w-5xl mx-auto px-4 grid md:grid-cols-2 gap-10 items-center reveal"),
			Div(
				Class("relative rounded-2xl overflow-hidden bg-indigo-100 aspect-video flex items-center justify-center"),
				g.If(demo.Image != "", Img(Src(demo.Image), Alt(demo.Teacher), g.Attr("loading", "lazy"), Class("absolute inset-0 w-full h-full object-cover"))),
				partials.Icon("play", "relative h-12 w-12 text-white drop-shadow"),
			),
			Div(
				H2(Class("text-3xl font-bold text-indigo-950 dark:text-white"), g.Text(heading)),
				P(Class("mt-2 text-xl font-semibold text-indigo-700 dark:text-indigo-300"), g.Text(demo.Teacher)),
				g.If(demo.Title != "", P(Class("text-sm text-slate-600 dark:text-slate-400"), g.Text(demo.Title))),
				g.If(demo.Bio != "", P(Class("mt-4 text-slate-700 dark:text-slate-300"), g.Text(demo.Bio))),
				g.If(len(demo.Highlights) > 0,
					Ul(
						Class("mt-4 space-y-2"),
						g.Map(demo.Highlights, func(h string) g.Node {
							return Li(
								Class("flex items-center gap-2 text-slate-700 dark:text-slate-300"),
								partials.Icon("check-circle", "w-5 h-5 text-indigo-600 shrink-0"),
								g.Text(h),
							)
						}),
					),
				),
			),
		),
	)
}

// Testimonials renders student quotes with star ratings.
func Testimonials(items []content.Testimonial) g.Node {
	return Section(
		ID("testimonials"),
		Class("py-16 bg-white dark:bg-slate-900"),
		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
			H2(Class("text-3xl font-bold text-center text-indigo-950 dark:text-white mb-12 reveal"), g.Text("What our students say")),
			Div(
				Class("grid md:grid-cols-3 gap-8"),
				g.Map(items, func(t content.Testimonial) g.Node {
					return Figure(
						Class("testimonial reveal rounded-2xl bg-indigo-50 dark:bg-slate-800 p-6 flex flex-col"),
						partials.Icon("quote", "h-6 w-6 text-indigo-400"),
						BlockQuote(Class("mt-3 flex-grow text-slate-700 dark:text-slate-300"), P(g.Text(t.Quote))),
						g.If(t.Rating > 0, Rating(t.Rating)),
						FigCaption(
							Class("mt-4 flex items-center gap-3"),
							Span(Class("flex h-10 w-10 items-center justify-center rounded-full bg-indigo-200 text-indigo-800 font-semibold"), g.Text(t.Initials())),
							Span(
								Span(Class("block font-semibold text-indigo-950 dark:text-white"), g.Text(t.Author)),
								g.If(t.Role != "", Span(Class("block text-sm text-slate-500"), g.Text(t.Role))),
							),
						),
					)
				}),
			),
		),
	)
}

// Rating draws filled stars for rating out of five.
func Rating(rating int) g.Node {
	stars := make([]g.Node, 0, 5)
	for i := 1; i <= 5; i++ {
		class := "h-4 w-4 text-slate-300"
		if i <= rating {
			class = "h-4 w-4 text-amber-400 fill-current"
		}
		stars = append(stars, partials.Icon("star", class))
	}
	return Div(
		Class("mt-4 flex gap-1"),
		Aria("label", fmt.Sprintf("%d out of 5", rating)),
		g.Group(stars),
	)
}
