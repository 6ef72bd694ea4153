package server

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/hidaya/internal/config"
	"github.com/nfrund/hidaya/internal/content"
	"github.com/nfrund/hidaya/internal/handlers"
	"github.com/nfrund/hidaya/internal/middleware"
	"github.com/nfrund/hidaya/internal/rendering"
	"github.com/nfrund/hidaya/web"
	"go.opentelemetry.io/otel/trace"
)

// Dependencies holds the services the HTTP server is built from.
type Dependencies struct {
	Config   config.Provider
	Content  *content.Provider
	Renderer *rendering.UniversalRenderer
	Tracer   trace.Tracer
}

// Server holds the dependencies for the HTTP server.
type Server struct {
	E   *echo.Echo
	Cfg config.Provider

	content         *content.Provider
	landingHandler  *handlers.LandingHandler
	annotateHandler *handlers.AnnotateHandler
}

// New creates a new Server instance with its middleware chain configured.
// Routes are added by RegisterRoutes.
func New(deps Dependencies) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = rendering.NewEchoRenderer(deps.Renderer)
	e.Validator = handlers.NewValidator()
	setupErrorHandling(e)

	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger)
	e.Use(middleware.Tracing(deps.Tracer))
	e.Use(echomw.Recover())
	e.Use(echomw.SecureWithConfig(echomw.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "SAMEORIGIN",
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))
	e.Use(echomw.GzipWithConfig(echomw.GzipConfig{
		Skipper: func(c echo.Context) bool {
			return c.Request().Method == http.MethodHead
		},
	}))

	// Configure and use session middleware
	store := sessions.NewCookieStore([]byte(deps.Config.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 365,
		HttpOnly: true,
		Secure:   !deps.Config.IsDevelopment(),
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))

	// Serve static files embedded in the binary.
	e.StaticFS("/static", web.Static())

	return &Server{
		E:               e,
		Cfg:             deps.Config,
		content:         deps.Content,
		landingHandler:  handlers.NewLandingHandler(deps.Content, deps.Renderer, deps.Tracer),
		annotateHandler: handlers.NewAnnotateHandler(deps.Content),
	}
}
