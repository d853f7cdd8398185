package search_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"

	"pouringat.com/PouringAt/pkg/geocode"
	"pouringat.com/PouringAt/pkg/model"
	"pouringat.com/PouringAt/pkg/ratelimit"
	"pouringat.com/PouringAt/pkg/search"
)

type fakeGeocoder struct {
	coordinate model.Coordinate
	err        error
	calls      int
}

func (f *fakeGeocoder) Geocode(_ context.Context, _ string) (model.Coordinate, error) {
	f.calls++

	return f.coordinate, f.err
}

type fakeFinder struct {
	venues []*model.Venue
	err    error
	bounds []orb.Bound
}

func (f *fakeFinder) FindVerifiedVenuesInBound(_ context.Context, bound orb.Bound) ([]*model.Venue, error) {
	f.bounds = append(f.bounds, bound)

	return f.venues, f.err
}

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string) (ratelimit.Result, error) {
	return ratelimit.Result{}, errors.New("connection refused")
}

type SearchServiceSuite struct {
	suite.Suite
	geocoder *fakeGeocoder
	finder   *fakeFinder
	logs     *observer.ObservedLogs
	logger   *zap.Logger
}

func (s *SearchServiceSuite) SetupTest() {
	s.geocoder = &fakeGeocoder{coordinate: newcastle}
	s.finder = &fakeFinder{}

	var core zapcore.Core
	core, s.logs = observer.New(zap.DebugLevel)
	s.logger = zap.New(core)
}

func (s *SearchServiceSuite) service(limiter ratelimit.Limiter) *search.Service {
	return search.NewService(s.geocoder, s.finder, limiter, search.Options{QueryTimeout: time.Second}, nil, s.logger)
}

func (s *SearchServiceSuite) TestSearch_ReturnsNearbyVenuesWithRankedListings() {
	near := venueAt(1, newcastle)
	near.Listings = []model.TapListing{
		listing(1, "Stout", "Stout", "Wylam"),
		listing(2, "Pale", "IPA", "Almasty"),
	}
	far := venueAt(2, north(newcastle, 2000))
	s.finder.venues = []*model.Venue{near, far}

	result, err := s.service(nil).Search(context.Background(), search.Query{Location: "NE1 4ST", Style: "IPA"})

	s.Require().NoError(err)
	s.Equal(newcastle, result.Coordinate)
	s.Require().Len(result.Venues, 1)
	s.Equal(uint(1), result.Venues[0].Venue.ID)
	s.InDelta(0.0, result.Venues[0].DistanceMeters, 1e-6)
	s.Equal([]string{"Pale", "Stout"}, names(result.Venues[0].Listings))
	s.Require().Len(s.finder.bounds, 1)
	s.True(s.finder.bounds[0].Contains(newcastle.Point()))
}

func (s *SearchServiceSuite) TestSearch_FiltersDoNotRemoveVenues() {
	venue := venueAt(1, newcastle)
	venue.Listings = []model.TapListing{listing(1, "Stout", "Stout", "Wylam")}
	empty := venueAt(2, newcastle)
	s.finder.venues = []*model.Venue{venue, empty}

	result, err := s.service(nil).Search(context.Background(), search.Query{Location: "Newcastle", Style: "Sour", Brewery: "Nobody"})

	s.Require().NoError(err)
	s.Require().Len(result.Venues, 2)
	s.Equal([]string{"Stout"}, names(result.Venues[0].Listings))
	s.Empty(result.Venues[1].Listings)
}

func (s *SearchServiceSuite) TestSearch_NoVenues() {
	result, err := s.service(nil).Search(context.Background(), search.Query{Location: "Newcastle"})

	s.Require().NoError(err)
	s.Empty(result.Venues)
}

func (s *SearchServiceSuite) TestSearch_GeocodeFailureSkipsStorage() {
	s.geocoder.err = geocode.ErrInvalidAddress

	_, err := s.service(nil).Search(context.Background(), search.Query{Location: "nowhere at all"})

	s.Require().ErrorIs(err, search.ErrInvalidAddress)
	s.Empty(s.finder.bounds)
}

func (s *SearchServiceSuite) TestSearch_UnexpectedGeocodeErrorIsInvalidAddress() {
	s.geocoder.err = errors.New("boom")

	_, err := s.service(nil).Search(context.Background(), search.Query{Location: "somewhere"})

	s.Require().ErrorIs(err, search.ErrInvalidAddress)
	s.Empty(s.finder.bounds)
}

func (s *SearchServiceSuite) TestSearch_BlankLocation() {
	_, err := s.service(nil).Search(context.Background(), search.Query{Location: "   "})

	s.Require().ErrorIs(err, search.ErrInvalidAddress)
	s.Zero(s.geocoder.calls)
	s.Empty(s.finder.bounds)
}

func (s *SearchServiceSuite) TestSearch_StorageFailure() {
	s.finder.err = errors.New("connection reset")

	_, err := s.service(nil).Search(context.Background(), search.Query{Location: "Newcastle"})

	s.Require().ErrorIs(err, search.ErrSearchFailed)
	s.Equal(1, s.logs.FilterMessage("error loading venues").Len())
}

func (s *SearchServiceSuite) TestSearch_EleventhRequestRateLimited() {
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	limiter := ratelimit.NewMemoryLimiterWithClock(ratelimit.Config{Requests: 10, Window: time.Minute}, func() time.Time { return now })
	service := s.service(limiter)
	query := search.Query{Location: "Newcastle", ClientKey: "203.0.113.7"}

	for i := 0; i < 10; i++ {
		_, err := service.Search(context.Background(), query)
		s.Require().NoError(err)
	}

	_, err := service.Search(context.Background(), query)

	s.Require().ErrorIs(err, search.ErrRateLimited)

	var limitErr *search.RateLimitError
	s.Require().ErrorAs(err, &limitErr)
	s.Equal(time.Minute, limitErr.RetryAfter)
	s.Equal(10, s.geocoder.calls)

	_, err = service.Search(context.Background(), search.Query{Location: "Newcastle", ClientKey: "203.0.113.8"})
	s.Require().NoError(err)
}

func (s *SearchServiceSuite) TestSearch_EmptyClientKeyIsNotLimited() {
	limiter := ratelimit.NewMemoryLimiter(ratelimit.Config{Requests: 1, Window: time.Minute})
	service := s.service(limiter)

	for i := 0; i < 3; i++ {
		_, err := service.Search(context.Background(), search.Query{Location: "Newcastle"})
		s.Require().NoError(err)
	}
}

func (s *SearchServiceSuite) TestSearch_LimiterFailureFailsOpen() {
	_, err := s.service(failingLimiter{}).Search(context.Background(), search.Query{Location: "Newcastle", ClientKey: "203.0.113.7"})

	s.Require().NoError(err)
	s.Equal(1, s.logs.FilterMessage("rate limiter unavailable").Len())
}

func (s *SearchServiceSuite) TestSearch_WarnsAboutIncompleteListings() {
	venue := venueAt(1, newcastle)
	venue.Listings = []model.TapListing{
		listing(1, "Stout", "Stout", "Wylam"),
		{Model: gorm.Model{ID: 2}},
	}
	s.finder.venues = []*model.Venue{venue}

	result, err := s.service(nil).Search(context.Background(), search.Query{Location: "Newcastle"})

	s.Require().NoError(err)
	s.Equal([]string{"Stout"}, names(result.Venues[0].Listings))
	s.Equal(1, s.logs.FilterMessage("listing without beverage or brewery").Len())
}

func TestSearchService(t *testing.T) {
	suite.Run(t, new(SearchServiceSuite))
}
