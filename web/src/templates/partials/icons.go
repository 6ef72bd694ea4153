package partials

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// iconPaths holds the SVG path data for the lucide icons used on the page.
var iconPaths = map[string][]string{
	"check-circle":   {"M22 11.08V12a10 10 0 1 1-5.93-9.14", "m9 11 3 3L22 4"},
	"chevron-left":   {"m15 18-6-6 6-6"},
	"info":           {"M12 22a10 10 0 1 0 0-20 10 10 0 0 0 0 20z", "M12 16v-4", "M12 8h.01"},
	"menu":           {"M4 12h16", "M4 6h16", "M4 18h16"},
	"x":              {"M18 6 6 18", "m6 6 12 12"},
	"graduation-cap": {"M22 10 12 5 2 10l10 5 10-5z", "M6 12v5c3 3 9 3 12 0v-5"},
	"school":         {"m4 6 8-4 8 4", "m18 10 4 2v8a2 2 0 0 1-2 2H4a2 2 0 0 1-2-2v-8l4-2", "M14 22v-4a2 2 0 0 0-4 0v4", "M18 5v17", "M6 5v17"},
	"clock":          {"M12 22a10 10 0 1 0 0-20 10 10 0 0 0 0 20z", "M12 6v6l4 2"},
	"mic":            {"M12 2a3 3 0 0 0-3 3v7a3 3 0 0 0 6 0V5a3 3 0 0 0-3-3z", "M19 10v2a7 7 0 0 1-14 0v-2", "M12 19v3"},
	"book":           {"M4 19.5v-15A2.5 2.5 0 0 1 6.5 2H20v20H6.5a2.5 2.5 0 0 1 0-5H20"},
	"shield":         {"M12 22s8-4 8-10V5l-8-3-8 3v7c0 6 8 10 8 10z"},
	"star":           {"m12 2 3.09 6.26L22 9.27l-5 4.87 1.18 6.88L12 17.77l-6.18 3.25L7 14.14 2 9.27l6.91-1.01L12 2z"},
	"quote":          {"M3 21c3 0 7-1 7-8V5c0-1.25-.76-2.02-2-2H4c-1.25 0-2 .75-2 1.97V11c0 1.25.75 2 2 2 1 0 1 0 1 1v1c0 1-1 2-2 2s-1 .01-1 1.03V20c0 1 0 1 1 1z"},
	"sun":            {"M12 17a5 5 0 1 0 0-10 5 5 0 0 0 0 10z", "M12 1v2", "M12 21v2", "M4.22 4.22l1.42 1.42", "M18.36 18.36l1.42 1.42", "M1 12h2", "M21 12h2"},
	"moon":           {"M12 3a6 6 0 0 0 9 9 9 9 0 1 1-9-9z"},
	"play":           {"m6 3 14 9-14 9V3z"},
}

// Icon renders an inline lucide SVG icon. Unknown names render nothing.
func Icon(name, class string) g.Node {
	paths, ok := iconPaths[name]
	if !ok {
		return nil
	}
	return g.El("svg",
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-width", "2"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		Aria("hidden", "true"),
		Class(class),
		g.Map(paths, func(d string) g.Node {
			return g.El("path", g.Attr("d", d))
		}),
	)
}
