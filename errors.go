package rose

import "errors"

// Errors returned by the gauge.
var (
	// ErrNilCanvas is returned by New when no canvas is given.
	ErrNilCanvas = errors.New("rose: nil canvas")

	// ErrNoContext is returned when the canvas cannot provide a 2D context.
	ErrNoContext = errors.New("rose: canvas has no 2D context")

	// ErrInvalidSize is returned when the gauge size resolves to zero or less.
	ErrInvalidSize = errors.New("rose: gauge size must be positive")

	// ErrClosed is returned when a closed gauge is repainted.
	ErrClosed = errors.New("rose: gauge closed")
)
