package geocode

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"pouringat.com/PouringAt/pkg/model"
)

// CacheStore persists successful geocoding results. GetCachedCoordinate returns nil on a miss.
type CacheStore interface {
	GetCachedCoordinate(ctx context.Context, address string, now time.Time) (*model.Coordinate, error)
	SaveCachedCoordinate(ctx context.Context, address string, coordinate model.Coordinate, expiresAt time.Time) error
}

// CachingGeocoder serves repeated lookups from the cache store and only calls the provider on a miss.
type CachingGeocoder struct {
	next   Geocoder
	store  CacheStore
	ttl    time.Duration
	now    func() time.Time
	logger *zap.Logger
}

func NewCachingGeocoder(next Geocoder, store CacheStore, ttl time.Duration, logger *zap.Logger) *CachingGeocoder {
	return &CachingGeocoder{next: next, store: store, ttl: ttl, now: time.Now, logger: logger}
}

func (c *CachingGeocoder) Geocode(ctx context.Context, address string) (model.Coordinate, error) {
	key := normalizeAddress(address)
	now := c.now()

	cached, err := c.store.GetCachedCoordinate(ctx, key, now)
	if err != nil {
		c.logger.Warn("geocode cache lookup failed", zap.String("address", key), zap.Error(err))
	} else if cached != nil {
		return *cached, nil
	}

	coordinate, err := c.next.Geocode(ctx, address)
	if err != nil {
		return model.Coordinate{}, err
	}

	if err := c.store.SaveCachedCoordinate(ctx, key, coordinate, now.Add(c.ttl)); err != nil {
		c.logger.Warn("geocode cache write failed", zap.String("address", key), zap.Error(err))
	}

	return coordinate, nil
}

func normalizeAddress(address string) string {
	return strings.ToLower(strings.Join(strings.Fields(address), " "))
}
