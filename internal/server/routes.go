package server

import (
	"github.com/nfrund/hidaya/internal/handlers"
	"github.com/nfrund/hidaya/internal/middleware"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	rateLimiter := middleware.RateLimiter(30, 10)

	s.E.GET("/", s.landingHandler.LandingGet)

	partials := s.E.Group("/partials")
	partials.GET("/menu", s.landingHandler.MenuGet)
	partials.GET("/pricing", s.landingHandler.PricingGet)

	s.E.POST("/preferences/theme", s.landingHandler.ThemePost, rateLimiter)

	s.E.GET("/api/features/annotate", s.annotateHandler.AnnotateGet)

	s.E.GET("/health", handlers.HealthGet)
}
