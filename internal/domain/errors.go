package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for content loading and rendering failures.
var (
	// ErrInvalidContent indicates that site content was parsed but failed validation.
	ErrInvalidContent = errors.New("invalid site content")

	// ErrContentNotFound indicates that no content files were found in a source.
	ErrContentNotFound = errors.New("site content not found")

	// ErrUnsupportedComponent is returned when a renderer is handed a value it
	// cannot render.
	ErrUnsupportedComponent = errors.New("unsupported component type")
)
