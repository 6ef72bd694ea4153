package handlers

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// MenuRequest is the query of the mobile menu fragment. A missing value
// means closed.
type MenuRequest struct {
	Open string `query:"open" validate:"omitempty,oneof=true false"`
}

// IsOpen reports whether the open state was requested.
func (r MenuRequest) IsOpen() bool {
	return r.Open == "true"
}

// AnnotateRequest is the query of the feature preview endpoint.
type AnnotateRequest struct {
	Line string `query:"line" validate:"required,max=1000"`
}
