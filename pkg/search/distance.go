package search

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"pouringat.com/PouringAt/pkg/model"
)

// DefaultRadiusMeters is roughly one mile, a walkable distance from the searched location.
const DefaultRadiusMeters = 1609.0

// Distance is the great-circle distance between two coordinates in metres.
func Distance(from, to model.Coordinate) float64 {
	return geo.Distance(from.Point(), to.Point())
}

// BoundAround returns a box that contains every point within radiusMeters of origin.
// It is only a cheap pre-filter for the storage query.
func BoundAround(origin model.Coordinate, radiusMeters float64) orb.Bound {
	return geo.NewBoundAroundPoint(origin.Point(), radiusMeters)
}

// FilterByRadius keeps the verified venues strictly closer than radiusMeters to origin,
// preserving their order.
func FilterByRadius(origin model.Coordinate, venues []*model.Venue, radiusMeters float64) []*model.Venue {
	nearby := make([]*model.Venue, 0, len(venues))

	for _, venue := range venues {
		if venue == nil || !venue.Verified {
			continue
		}

		if Distance(origin, venue.Coordinate()) < radiusMeters {
			nearby = append(nearby, venue)
		}
	}

	return nearby
}
