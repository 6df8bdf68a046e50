package figstruct

import (
	"errors"

	"github.com/ukaji3/figstruct-go/pkg/figstruct/parser"
)

// ErrUnsupportedTransform indicates a blended transform. It is only ever
// logged.
var ErrUnsupportedTransform = parser.ErrUnsupportedTransform

// ErrUnsupportedScale indicates an axis scale other than linear, log or
// date.
var ErrUnsupportedScale = parser.ErrUnsupportedScale

// ErrInvalidShape indicates primitive data whose shape does not match
// its description.
var ErrInvalidShape = parser.ErrInvalidShape

// ErrUnknownSchema indicates an Options.Schema other than flat or plotly.
var ErrUnknownSchema = errors.New("unknown output schema")

// ExtractionError represents an error while extracting one axes.
type ExtractionError = parser.ExtractionError

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(axesIndex int, component string, err error) *ExtractionError {
	return parser.NewExtractionError(axesIndex, component, err)
}
