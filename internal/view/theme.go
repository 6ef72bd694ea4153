package view

import (
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	themeSessionName = "preferences"
	themeKey         = "theme"
)

// Theme is the colour scheme a visitor picked.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// GetTheme reads the visitor's theme from the preferences session. Requests
// without a session, or with an unknown value, get the light theme.
func GetTheme(c echo.Context) Theme {
	sess, err := session.Get(themeSessionName, c)
	if err != nil {
		return ThemeLight
	}
	if v, ok := sess.Values[themeKey].(string); ok && Theme(v) == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// SetTheme stores the theme in the preferences session cookie.
func SetTheme(c echo.Context, theme Theme) error {
	sess, err := session.Get(themeSessionName, c)
	if err != nil {
		return err
	}
	sess.Values[themeKey] = string(theme)
	return sess.Save(c.Request(), c.Response())
}

// ToggleTheme flips the stored theme and returns the new value.
func ToggleTheme(c echo.Context) (Theme, error) {
	next := GetTheme(c).Toggle()
	if err := SetTheme(c, next); err != nil {
		return GetTheme(c), err
	}
	return next, nil
}
