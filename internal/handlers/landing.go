package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/hidaya/internal/content"
	"github.com/nfrund/hidaya/internal/middleware"
	"github.com/nfrund/hidaya/internal/rendering"
	"github.com/nfrund/hidaya/internal/view"
	"github.com/nfrund/hidaya/web/src/templates/pages"
	"github.com/nfrund/hidaya/web/src/templates/partials"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ContentSource supplies the content snapshot for a render.
type ContentSource interface {
	Current() content.Snapshot
}

// LandingHandler serves the landing page and its htmx fragments.
type LandingHandler struct {
	content  ContentSource
	renderer rendering.Renderer
	tracer   trace.Tracer
	now      func() time.Time
}

// NewLandingHandler creates a new LandingHandler. Full pages go through the
// echo renderer; htmx fragments are rendered directly with renderer.
func NewLandingHandler(src ContentSource, renderer rendering.Renderer, tracer trace.Tracer) *LandingHandler {
	return &LandingHandler{
		content:  src,
		renderer: renderer,
		tracer:   tracer,
		now:      time.Now,
	}
}

// LandingGet renders the full landing page.
func (h *LandingHandler) LandingGet(c echo.Context) error {
	ctx, span := h.tracer.Start(c.Request().Context(), "render.landing")
	defer span.End()
	c.SetRequest(c.Request().WithContext(ctx))

	snapshot := h.content.Current()
	theme := view.GetTheme(c)
	span.SetAttributes(
		attribute.String("theme", string(theme)),
		attribute.Int("plans", len(snapshot.Site.Pricing.Plans)),
	)

	page := pages.Landing(pages.LandingProps{
		Content: snapshot,
		Theme:   theme,
		Year:    h.now().Year(),
	})
	return c.Render(http.StatusOK, "", view.AdaptGomponent(page))
}

// MenuGet renders the mobile menu in the requested state, together with an
// out-of-band hamburger button that requests the opposite state.
func (h *LandingHandler) MenuGet(c echo.Context) error {
	var req MenuRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid menu request")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "open must be true or false")
	}

	_, span := h.tracer.Start(c.Request().Context(), "render.menu",
		trace.WithAttributes(attribute.Bool("open", req.IsOpen())))
	defer span.End()

	site := h.content.Current().Site
	return h.renderer.RenderPage(c, http.StatusOK, partials.MenuFragment(req.IsOpen(), site.Brand.Name, site.Nav))
}

// PricingGet renders the pricing section on its own.
func (h *LandingHandler) PricingGet(c echo.Context) error {
	_, span := h.tracer.Start(c.Request().Context(), "render.pricing")
	defer span.End()

	snapshot := h.content.Current()
	fragment := pages.Pricing(snapshot.Site.Pricing, snapshot.Site.FAQs, snapshot.Glossary)
	return h.renderer.RenderPage(c, http.StatusOK, fragment)
}

// ThemePost toggles the visitor's theme and asks htmx to reload the page.
func (h *LandingHandler) ThemePost(c echo.Context) error {
	theme, err := view.ToggleTheme(c)
	if err != nil {
		middleware.FromContext(c.Request().Context()).Error("Failed to save theme preference", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "could not save preference")
	}

	middleware.FromContext(c.Request().Context()).Debug("Theme changed", "theme", theme)
	c.Response().Header().Set("HX-Refresh", "true")
	return c.NoContent(http.StatusNoContent)
}
