package partials

import (
	"strconv"

	"github.com/nfrund/hidaya/internal/content"
	"github.com/nfrund/hidaya/internal/view"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// MobileMenuID is the element swapped when the mobile menu opens or closes.
const MobileMenuID = "mobile-menu"

// MenuToggleID is the hamburger button that opens and closes the mobile menu.
const MenuToggleID = "menu-toggle"

// MenuPath returns the fragment URL for the mobile menu in the given state.
func MenuPath(open bool) string {
	if open {
		return "/partials/menu?open=true"
	}
	return "/partials/menu?open=false"
}

// Navbar renders the fixed top navigation: brand, desktop anchor links, the
// theme switch and the mobile menu toggle. The mobile menu starts closed.
func Navbar(brand string, items []content.NavItem, theme view.Theme) g.Node {
	return Nav(
		ID("navbar"),
		Class("navbar fixed w-full bg-transparent backdrop-blur-lg border-b border-indigo-100 z-50 shadow-sm animate-slide-down"),
		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
			Div(
				Class("flex items-center justify-between h-16"),
				A(
					Href("#top"),
					Data("scroll", ""),
					Class("flex items-center gap-3"),
					Icon("graduation-cap", "h-8 w-8 z-20 text-violet-600"),
					Span(
						Class("text-2xl font-bold bg-gradient-to-br from-indigo-600 to-violet-600 bg-clip-text text-transparent tracking-tight"),
						g.Text(brand),
					),
				),
				Div(
					Class("hidden md:flex items-center gap-8"),
					g.Map(items, func(item content.NavItem) g.Node {
						return A(
							Href(item.Href),
							Data("scroll", ""),
							Class("relative group text-indigo-700 font-medium transition-all"),
							g.Text(item.Name),
							Span(Class("absolute bottom-0 left-0 w-0 h-0.5 bg-gradient-to-r from-indigo-500 to-violet-500 transition-all group-hover:w-full")),
						)
					}),
					ThemeToggle(theme),
				),
				MenuToggle(false, false),
			),
		),
		MobileMenu(false, brand, items),
	)
}

// MobileMenu renders the collapsible menu. A closed menu is an empty
// placeholder so htmx has a target to swap the open menu into.
func MobileMenu(open bool, brand string, items []content.NavItem) g.Node {
	if !open {
		return Div(ID(MobileMenuID), Class("md:hidden"), Aria("expanded", "false"))
	}

	closeAttrs := g.Group{
		hx.Get(MenuPath(false)),
		hx.Target("#" + MobileMenuID),
		hx.Swap("outerHTML"),
	}

	return Div(
		ID(MobileMenuID),
		Class("md:hidden w-full bg-white border-b shadow-lg animate-expand"),
		Aria("expanded", "true"),
		Div(
			Class("px-4 pt-2 pb-5 space-y-3"),
			Div(
				Class("flex items-center justify-between py-3"),
				Div(
					Class("flex items-center gap-3"),
					Icon("school", "h-7 w-7 text-indigo-600"),
					Span(Class("text-xl font-bold text-indigo-900"), g.Text(brand)),
				),
				Button(
					Type("button"),
					Class("p-2 rounded-full bg-indigo-50 text-indigo-600 hover:bg-indigo-100"),
					Aria("label", "Close menu"),
					closeAttrs,
					Icon("x", "h-5 w-5"),
				),
			),
			Div(
				Class("space-y-1"),
				g.Map(items, func(item content.NavItem) g.Node {
					return A(
						Href(item.Href),
						Data("scroll", ""),
						Class("mobile-link block px-4 py-3 text-indigo-900 hover:bg-indigo-50 rounded-lg transition-colors"),
						closeAttrs,
						g.Text(item.Name),
					)
				}),
			),
		),
	)
}

// MenuToggle renders the hamburger button for a menu in the given state. It
// always requests the opposite state. Menu fragments carry it out of band so
// the button flips along with the menu.
func MenuToggle(open, oob bool) g.Node {
	icon, label := "menu", "Open menu"
	if open {
		icon, label = "x", "Close menu"
	}
	return Button(
		Type("button"),
		ID(MenuToggleID),
		Class("md:hidden p-2 rounded-lg bg-indigo-50 text-indigo-600 hover:bg-indigo-100"),
		Aria("label", label),
		Aria("controls", MobileMenuID),
		Aria("expanded", strconv.FormatBool(open)),
		hx.Get(MenuPath(!open)),
		hx.Target("#"+MobileMenuID),
		hx.Swap("outerHTML"),
		g.If(oob, g.Attr("hx-swap-oob", "true")),
		Icon(icon, "h-6 w-6"),
	)
}

// MenuFragment is the htmx response for a menu state change: the menu itself
// and the matching toggle button.
func MenuFragment(open bool, brand string, items []content.NavItem) g.Node {
	return g.Group{
		MobileMenu(open, brand, items),
		MenuToggle(open, true),
	}
}

// ThemeToggle posts to the preferences endpoint; the response asks htmx to
// refresh the page in the new theme.
func ThemeToggle(theme view.Theme) g.Node {
	icon, label := "moon", "Switch to dark theme"
	if theme == view.ThemeDark {
		icon, label = "sun", "Switch to light theme"
	}
	return Button(
		Type("button"),
		ID("theme-toggle"),
		Class("p-2 rounded-full text-indigo-600 hover:bg-indigo-50 dark:text-indigo-300"),
		Aria("label", label),
		hx.Post("/preferences/theme"),
		hx.Swap("none"),
		Icon(icon, "h-5 w-5"),
	)
}
