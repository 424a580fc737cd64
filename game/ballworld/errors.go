package ballworld

import (
	"strconv"

	bettererrors "github.com/xtuc/better-errors"
)

// NewInvalidParameterError reports a construction/setter parameter that the
// engine rejects (non-positive mass, NaN coordinates).
func NewInvalidParameterError(param string, value float64) error {
	return bettererrors.
		New("invalid parameter").
		SetContext(param, strconv.FormatFloat(value, 'f', -1, 64))
}

// NewOutOfBoundsError reports an attempt to place an entity outside the world bounds.
func NewOutOfBoundsError(x float64, y float64) error {
	return bettererrors.
		New("position out of world bounds").
		SetContext("x", strconv.FormatFloat(x, 'f', -1, 64)).
		SetContext("y", strconv.FormatFloat(y, 'f', -1, 64))
}
