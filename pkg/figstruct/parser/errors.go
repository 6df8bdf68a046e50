// Package parser converts scene primitives into figure records.
package parser

import (
	"errors"
	"fmt"
)

// ErrUnsupportedTransform marks a blended transform. It is only ever logged.
var ErrUnsupportedTransform = errors.New("blended transforms are not supported")

// ErrUnsupportedScale indicates an axis scale other than linear, log or date.
var ErrUnsupportedScale = errors.New("unsupported axis scale")

// ErrInvalidShape indicates malformed array or batch data.
var ErrInvalidShape = errors.New("invalid shape")

// ExtractionError reports a failure while extracting one axes.
type ExtractionError struct {
	AxesIndex int
	Component string // "axes", "scene", "lines", "collections", "images"
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error in axes %d (%s): %v", e.AxesIndex, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(axesIndex int, component string, err error) *ExtractionError {
	return &ExtractionError{
		AxesIndex: axesIndex,
		Component: component,
		Err:       err,
	}
}
