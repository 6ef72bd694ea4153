package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// AnnotateHandler exposes the feature text renderer as JSON so content
// authors can preview how a line will be highlighted.
type AnnotateHandler struct {
	content ContentSource
}

// NewAnnotateHandler creates a new AnnotateHandler.
func NewAnnotateHandler(src ContentSource) *AnnotateHandler {
	return &AnnotateHandler{content: src}
}

// AnnotateGet renders the line query parameter against the current glossary.
func (h *AnnotateHandler) AnnotateGet(c echo.Context) error {
	var req AnnotateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Code: "invalid_request", Message: "Could not read the request."})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Code: "invalid_line", Message: "The line parameter is required and must be at most 1000 characters."})
	}

	glossary := h.content.Current().Glossary
	return c.JSON(http.StatusOK, NewAnnotateResponse(req.Line, glossary))
}
