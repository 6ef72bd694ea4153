package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/hidaya/internal/content"
	"github.com/nfrund/hidaya/internal/handlers"
	"github.com/nfrund/hidaya/internal/rendering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

// newTestServer wires the handlers the way the server does, backed by the
// embedded content.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	provider, err := content.NewProvider(content.EmbeddedFS())
	require.NoError(t, err)

	renderer := rendering.NewUniversalRenderer()

	e := echo.New()
	e.Renderer = rendering.NewEchoRenderer(renderer)
	e.Validator = handlers.NewValidator()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte("test-secret"))))

	tracer := noop.NewTracerProvider().Tracer("test")
	landing := handlers.NewLandingHandler(provider, renderer, tracer)
	api := handlers.NewAnnotateHandler(provider)

	e.GET("/", landing.LandingGet)
	e.GET("/partials/menu", landing.MenuGet)
	e.GET("/partials/pricing", landing.PricingGet)
	e.POST("/preferences/theme", landing.ThemePost)
	e.GET("/api/features/annotate", api.AnnotateGet)
	e.GET("/health", handlers.HealthGet)
	return e
}

func serve(e *echo.Echo, method, target string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestLandingGet(t *testing.T) {
	e := newTestServer(t)

	rec := serve(e, http.MethodGet, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")

	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "<!doctype html>"))
	assert.Contains(t, body, "Hidaya Academy")
	assert.Contains(t, body, `id="pricing"`)
	assert.Contains(t, body, "Most Popular")
	assert.Contains(t, body, `data-theme="light"`)
	assert.Contains(t, body, fmt.Sprintf("© %d", time.Now().Year()))

	// Sections keep their fixed order.
	hero := strings.Index(body, "Recite the Quran")
	pricing := strings.Index(body, `id="pricing"`)
	require.NotEqual(t, -1, hero)
	require.NotEqual(t, -1, pricing)
	assert.Less(t, hero, pricing)
}

func TestMenuGet(t *testing.T) {
	e := newTestServer(t)

	t.Run("open menu lists the mobile links", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/partials/menu?open=true")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 3, strings.Count(rec.Body.String(), "mobile-link"))
		assert.Contains(t, rec.Body.String(), `aria-expanded="true"`)
	})

	t.Run("menu state flips the toggle button", func(t *testing.T) {
		open := serve(e, http.MethodGet, "/partials/menu?open=true").Body.String()
		assert.Contains(t, open, `id="menu-toggle"`)
		assert.Contains(t, open, `hx-swap-oob="true"`)
		assert.NotContains(t, open, `hx-get="/partials/menu?open=true"`, "a second click must close the menu")

		closed := serve(e, http.MethodGet, "/partials/menu?open=false").Body.String()
		assert.Contains(t, closed, `id="menu-toggle"`)
		assert.Contains(t, closed, `hx-get="/partials/menu?open=true"`)
	})

	t.Run("closed menu is an empty placeholder", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/partials/menu?open=false")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "mobile-link")
		assert.Contains(t, rec.Body.String(), `id="mobile-menu"`)
	})

	t.Run("missing state means closed", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/partials/menu")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "mobile-link")
	})

	t.Run("invalid state is rejected", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/partials/menu?open=maybe")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPricingGet(t *testing.T) {
	e := newTestServer(t)

	rec := serve(e, http.MethodGet, "/partials/pricing")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.False(t, strings.HasPrefix(body, "<!doctype html>"), "fragment must not include the document shell")
	assert.Contains(t, body, "Tajweed Mastery")
	assert.Contains(t, body, "data-tooltip-content")
	assert.Contains(t, body, `name="faq"`)
}

func TestThemePost(t *testing.T) {
	e := newTestServer(t)

	rec := serve(e, http.MethodPost, "/preferences/theme")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "true", rec.Header().Get("HX-Refresh"))

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies, "the preference must be stored in a cookie")

	page := serve(e, http.MethodGet, "/", cookies...)
	require.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), `data-theme="dark"`)

	// Toggling again returns to light.
	rec = serve(e, http.MethodPost, "/preferences/theme", cookies...)
	require.Equal(t, http.StatusNoContent, rec.Code)
	page = serve(e, http.MethodGet, "/", rec.Result().Cookies()...)
	assert.Contains(t, page.Body.String(), `data-theme="light"`)
}

func TestAnnotateGet(t *testing.T) {
	e := newTestServer(t)

	t.Run("renders segments against the glossary", func(t *testing.T) {
		line := "Earn your **Ijazah** and learn **Nonexistent**"
		rec := serve(e, http.MethodGet, "/api/features/annotate?line="+url.QueryEscape(line))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp handlers.AnnotateResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, line, resp.Line)
		assert.Equal(t, "Earn your Ijazah and learn Nonexistent", resp.Plain)
		assert.Equal(t, []string{"Ijazah", "Nonexistent"}, resp.Terms)
		require.Len(t, resp.Segments, 4)
		assert.True(t, resp.Segments[1].Known)
		assert.NotEmpty(t, resp.Segments[1].Explanation)
		assert.False(t, resp.Segments[3].Known)
	})

	t.Run("plain line has no terms", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/api/features/annotate?line=Weekly+classes")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"terms":[]`)
	})

	t.Run("missing line is a bad request", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/api/features/annotate")
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp handlers.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "invalid_line", resp.Code)
	})
}

func TestHealthGet(t *testing.T) {
	e := newTestServer(t)

	rec := serve(e, http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}
