// Package search finds verified venues near a location and ranks the beverages each one has on
// tap against optional style and brewery terms.
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/paulmach/orb"
	"go.uber.org/zap"

	"pouringat.com/PouringAt/configs"
	"pouringat.com/PouringAt/pkg/geocode"
	"pouringat.com/PouringAt/pkg/metrics"
	"pouringat.com/PouringAt/pkg/model"
	"pouringat.com/PouringAt/pkg/ratelimit"
)

var (
	ErrInvalidAddress = geocode.ErrInvalidAddress
	ErrRateLimited    = errors.New("too many requests")
	ErrSearchFailed   = errors.New("search failed")
)

type VenueFinder interface {
	FindVerifiedVenuesInBound(ctx context.Context, bound orb.Bound) ([]*model.Venue, error)
}

type Options struct {
	RadiusMeters float64
	QueryTimeout time.Duration
}

func OptionsFromConfig(conf configs.Search) Options {
	return Options{RadiusMeters: conf.RadiusMeters, QueryTimeout: conf.QueryTimeout}
}

type Query struct {
	Location string
	Style    string
	Brewery  string
	// ClientKey identifies the caller for rate limiting, normally its IP address.
	// An empty key, as for in-process calls without a peer, is not rate limited.
	ClientKey string
}

type VenueResult struct {
	Venue          *model.Venue
	Listings       []model.TapListing
	DistanceMeters float64
}

type Result struct {
	Coordinate model.Coordinate
	Venues     []VenueResult
}

type Service struct {
	geocoder geocode.Geocoder
	venues   VenueFinder
	limiter  ratelimit.Limiter
	options  Options
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

func NewService(geocoder geocode.Geocoder, venues VenueFinder, limiter ratelimit.Limiter, options Options, m *metrics.Metrics, logger *zap.Logger) *Service {
	if options.RadiusMeters <= 0 {
		options.RadiusMeters = DefaultRadiusMeters
	}

	return &Service{geocoder: geocoder, venues: venues, limiter: limiter, options: options, metrics: m, logger: logger}
}

// Search geocodes the query location and returns the verified venues within the search radius,
// each with its active listings ranked for the query. Style and brewery terms only affect the
// order of listings, never which venues are returned.
func (s *Service) Search(ctx context.Context, query Query) (*Result, error) {
	if err := s.checkRateLimit(ctx, query.ClientKey); err != nil {
		s.metrics.ObserveSearch("rate_limited")

		return nil, err
	}

	if strings.TrimSpace(query.Location) == "" {
		s.metrics.ObserveSearch("invalid_address")

		return nil, fmt.Errorf("%w: empty location", ErrInvalidAddress)
	}

	origin, err := s.geocoder.Geocode(ctx, query.Location)
	if err != nil {
		s.metrics.ObserveSearch("invalid_address")

		if errors.Is(err, ErrInvalidAddress) {
			return nil, err
		}

		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	candidates, err := s.findCandidates(ctx, origin)
	if err != nil {
		s.metrics.ObserveSearch("error")
		s.logger.Error("error loading venues", zap.Float64("lat", origin.Latitude), zap.Float64("lng", origin.Longitude), zap.Error(err))

		return nil, fmt.Errorf("%w: %w", ErrSearchFailed, err)
	}

	nearby := FilterByRadius(origin, candidates, s.options.RadiusMeters)
	result := &Result{Coordinate: origin, Venues: make([]VenueResult, 0, len(nearby))}

	for _, venue := range nearby {
		s.warnIncompleteListings(venue)

		result.Venues = append(result.Venues, VenueResult{
			Venue:          venue,
			Listings:       RankListings(venue.Listings, query.Style, query.Brewery),
			DistanceMeters: Distance(origin, venue.Coordinate()),
		})
	}

	s.metrics.ObserveSearch("ok")

	return result, nil
}

func (s *Service) checkRateLimit(ctx context.Context, key string) error {
	if key == "" || s.limiter == nil {
		return nil
	}

	result, err := s.limiter.Allow(ctx, key)
	if err != nil {
		// fail open: search stays available while the limiter store is down
		s.logger.Error("rate limiter unavailable", zap.String("key", key), zap.Error(err))

		return nil
	}

	if !result.Allowed {
		s.metrics.ObserveRateLimited()
		s.logger.Info("rate limited", zap.String("key", key), zap.Duration("retry_after", result.RetryAfter))

		return &RateLimitError{RetryAfter: result.RetryAfter}
	}

	return nil
}

func (s *Service) findCandidates(ctx context.Context, origin model.Coordinate) ([]*model.Venue, error) {
	if s.options.QueryTimeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, s.options.QueryTimeout)
		defer cancel()
	}

	return s.venues.FindVerifiedVenuesInBound(ctx, BoundAround(origin, s.options.RadiusMeters))
}

func (s *Service) warnIncompleteListings(venue *model.Venue) {
	for _, listing := range venue.Listings {
		if !Displayable(listing) {
			s.logger.Warn("listing without beverage or brewery", zap.Uint("venue_id", venue.ID), zap.Uint("listing_id", listing.ID))
		}
	}
}

// RateLimitError is returned when the caller has used up its quota. It matches ErrRateLimited.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s: retry after %s", ErrRateLimited, e.RetryAfter)
}

func (e *RateLimitError) Is(target error) bool {
	return target == ErrRateLimited
}
