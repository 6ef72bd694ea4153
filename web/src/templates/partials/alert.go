package partials

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// DemoAlert is the corner disclaimer. An empty message renders nothing.
func DemoAlert(message string) g.Node {
	return g.If(message != "",
		Aside(
			ID("demo-alert"),
			Role("note"),
			Class("fixed bottom-4 right-4 z-40 max-w-xs rounded-xl bg-amber-50 border border-amber-200 px-4 py-3 text-sm text-amber-800 shadow-lg"),
			Strong(Class("block font-semibold"), g.Text("Demo")),
			g.Text(message),
		),
	)
}

// PageFooter closes the page.
func PageFooter(brand, notice string, year int) g.Node {
	return Footer(
		Class("py-8 text-center text-sm text-slate-500 dark:text-slate-400"),
		g.Textf("© %d ", year),
		g.Text(notice),
		g.If(notice == "", g.Text(brand)),
	)
}
