// Package geocode resolves free-text locations to coordinates.
package geocode

import (
	"context"
	"errors"

	"pouringat.com/PouringAt/pkg/model"
)

// ErrInvalidAddress is returned whenever a location could not be resolved to a single coordinate,
// including transport failures.
var ErrInvalidAddress = errors.New("invalid address")

type Geocoder interface {
	Geocode(ctx context.Context, address string) (model.Coordinate, error)
}
