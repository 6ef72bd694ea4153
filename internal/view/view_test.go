package view_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/hidaya/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

func setupTestContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()

	// Wrap a dummy handler with the session middleware so the session is
	// initialised in the context.
	store := sessions.NewCookieStore([]byte(testSessionSecret))
	var c echo.Context
	handler := func(ctx echo.Context) error { c = ctx; return nil }
	_ = session.Middleware(store)(handler)(e.NewContext(req, rec))

	return c, rec
}

func TestTheme(t *testing.T) {
	t.Run("defaults to light", func(t *testing.T) {
		c, _ := setupTestContext(httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, view.ThemeLight, view.GetTheme(c))
	})

	t.Run("toggle persists in the cookie", func(t *testing.T) {
		c, rec := setupTestContext(httptest.NewRequest(http.MethodPost, "/", nil))

		theme, err := view.ToggleTheme(c)
		require.NoError(t, err)
		assert.Equal(t, view.ThemeDark, theme)

		cookies := rec.Result().Cookies()
		require.NotEmpty(t, cookies)

		// A follow-up request carrying the cookie sees the dark theme.
		next := httptest.NewRequest(http.MethodGet, "/", nil)
		for _, cookie := range cookies {
			next.AddCookie(cookie)
		}
		c2, _ := setupTestContext(next)
		assert.Equal(t, view.ThemeDark, view.GetTheme(c2))

		theme, err = view.ToggleTheme(c2)
		require.NoError(t, err)
		assert.Equal(t, view.ThemeLight, theme)
	})

	t.Run("without session middleware", func(t *testing.T) {
		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		assert.Equal(t, view.ThemeLight, view.GetTheme(c))
		assert.Error(t, view.SetTheme(c, view.ThemeDark))
	})
}

func TestAdaptGomponent(t *testing.T) {
	var buf strings.Builder
	component := view.AdaptGomponent(html.Span(g.Text("gomponent")))
	require.NoError(t, component.Render(context.Background(), &buf))
	assert.Equal(t, "<span>gomponent</span>", buf.String())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, component.Render(ctx, &buf), context.Canceled)
}
