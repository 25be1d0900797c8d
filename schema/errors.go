package schema

import "errors"

var (
	// ErrNoText indicates that text extraction produced no content.
	ErrNoText = errors.New("no text extracted from document")

	// ErrNotFound indicates that the store does not hold the requested document.
	ErrNotFound = errors.New("document not found")
)
