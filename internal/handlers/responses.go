package handlers

import (
	"github.com/nfrund/hidaya/internal/annotate"
)

// ErrorResponse is the standard format for API error responses.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// AnnotateResponse is the DTO for a rendered feature line.
type AnnotateResponse struct {
	Line     string             `json:"line"`
	Plain    string             `json:"plain"`
	Terms    []string           `json:"terms"`
	Segments []annotate.Segment `json:"segments"`
}

// NewAnnotateResponse renders line against glossary.
func NewAnnotateResponse(line string, glossary annotate.Glossary) *AnnotateResponse {
	segments := annotate.Render(line, glossary)
	terms := annotate.Terms(segments)
	if terms == nil {
		terms = []string{}
	}
	return &AnnotateResponse{
		Line:     line,
		Plain:    annotate.Plain(segments),
		Terms:    terms,
		Segments: segments,
	}
}
