package layouts

import (
	"strings"
	"testing"

	"github.com/nfrund/hidaya/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func TestCalculateTitle(t *testing.T) {
	assert.Equal(t, "Home - Hidaya Academy", CalculateTitle("Home", "Hidaya Academy"))
	assert.Equal(t, "Hidaya Academy", CalculateTitle("", "Hidaya Academy"))
	assert.Equal(t, "Home", CalculateTitle("Home", ""))
}

func TestBase(t *testing.T) {
	var buf strings.Builder
	err := Base(Props{Title: "Home", Brand: "Hidaya Academy", Theme: view.ThemeDark}, g.Text("hello")).Render(&buf)
	require.NoError(t, err)

	html := buf.String()
	assert.True(t, strings.HasPrefix(html, "<!doctype html>"))
	assert.Contains(t, html, "<title>Home - Hidaya Academy</title>")
	assert.Contains(t, html, `class="dark scroll-smooth"`)
	assert.Contains(t, html, `data-theme="dark"`)
	assert.Contains(t, html, `<body id="top"`)
	assert.Contains(t, html, "hello")
	assert.Contains(t, html, "/static/css/landing.css")
}
