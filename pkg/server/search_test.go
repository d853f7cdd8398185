package server_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/bufbuild/connect-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"pouringat.com/PouringAt/mocks"
	"pouringat.com/PouringAt/pkg/model"
	"pouringat.com/PouringAt/pkg/search"
	"pouringat.com/PouringAt/pkg/server"
	"pouringat.com/PouringAt/pkg/server/api"
)

type SearchTestSuite struct {
	suite.Suite
	searcher *mocks.Searcher
	service  *server.SearchServer
}

func TestSearchTestSuite(t *testing.T) {
	suite.Run(t, new(SearchTestSuite))
}

func (suite *SearchTestSuite) SetupTest() {
	suite.searcher = mocks.NewSearcher(suite.T())
	suite.service = server.NewSearchServer(suite.searcher, 4, nil, zaptest.NewLogger(suite.T()))
}

func listingFor(id uint, name string) model.TapListing {
	return model.TapListing{
		Model:      gorm.Model{ID: id},
		BeverageID: id,
		Beverage: &model.Beverage{
			Model:   gorm.Model{ID: id},
			Name:    name,
			Style:   "IPA",
			Brewery: &model.Brewery{Name: "Wylam"},
		},
	}
}

func (suite *SearchTestSuite) TestSearch_TruncatesPreview() {
	listings := make([]model.TapListing, 0, 6)
	for i := 1; i <= 6; i++ {
		listings = append(listings, listingFor(uint(i), fmt.Sprintf("Beer %d", i)))
	}

	venue := &model.Venue{Model: gorm.Model{ID: 1}, Name: "The Free Trade Inn", Slug: "free-trade", Verified: true, Listings: listings}
	result := &search.Result{
		Coordinate: model.Coordinate{Latitude: 54.97, Longitude: -1.61},
		Venues:     []search.VenueResult{{Venue: venue, Listings: listings, DistanceMeters: 250}},
	}

	suite.searcher.EXPECT().Search(mock.Anything, search.Query{Location: "NE1 4ST", Style: "IPA"}).Return(result, nil)

	request := connect.NewRequest(&api.SearchRequest{Location: " NE1 4ST ", Style: "IPA"})

	response, err := suite.service.Search(context.Background(), request)
	suite.Require().NoError(err)
	suite.Equal(api.Coordinate{Latitude: 54.97, Longitude: -1.61}, response.Msg.Coordinate)
	suite.Require().Len(response.Msg.Venues, 1)

	preview := response.Msg.Venues[0]
	suite.Equal("free-trade", preview.Venue.Slug)
	suite.Empty(preview.Venue.Beverages)
	suite.InDelta(250.0, preview.DistanceMeters, 0.001)
	suite.Equal(6, preview.TotalBeverages)
	suite.Require().Len(preview.Beverages, 4)
	suite.Equal("Beer 1", preview.Beverages[0].Name)
	suite.Equal("Beer 4", preview.Beverages[3].Name)
}

func (suite *SearchTestSuite) TestSearch_NoVenues() {
	suite.searcher.EXPECT().Search(mock.Anything, mock.Anything).Return(&search.Result{}, nil)

	response, err := suite.service.Search(context.Background(), connect.NewRequest(&api.SearchRequest{Location: "Newcastle"}))
	suite.Require().NoError(err)
	suite.NotNil(response.Msg.Venues)
	suite.Empty(response.Msg.Venues)
}

func (suite *SearchTestSuite) TestSearch_ReturnsSearchErrors() {
	suite.searcher.EXPECT().Search(mock.Anything, mock.Anything).Return(nil, search.ErrInvalidAddress)

	response, err := suite.service.Search(context.Background(), connect.NewRequest(&api.SearchRequest{Location: "nowhere"}))
	suite.Require().ErrorIs(err, search.ErrInvalidAddress)
	suite.Nil(response)
}

func TestClientKey(t *testing.T) {
	proxies, err := server.ParseTrustedProxies([]string{"10.0.0.0/8", "192.0.2.1"})
	require.NoError(t, err)

	tests := []struct {
		name     string
		header   http.Header
		peerAddr string
		expected string
	}{
		{name: "forwarded through trusted proxy", header: http.Header{"X-Forwarded-For": {"203.0.113.7"}}, peerAddr: "10.0.0.2:4000", expected: "203.0.113.7"},
		{name: "right-most untrusted hop", header: http.Header{"X-Forwarded-For": {"198.51.100.9, 203.0.113.7, 10.0.0.1"}}, peerAddr: "10.0.0.2:4000", expected: "203.0.113.7"},
		{name: "empty first hop", header: http.Header{"X-Forwarded-For": {", 203.0.113.7"}}, peerAddr: "10.0.0.2:4000", expected: "203.0.113.7"},
		{name: "repeated headers", header: http.Header{"X-Forwarded-For": {"198.51.100.9", "203.0.113.7"}}, peerAddr: "192.0.2.1:4000", expected: "203.0.113.7"},
		{name: "only junk hops", header: http.Header{"X-Forwarded-For": {", garbage"}}, peerAddr: "10.0.0.2:4000", expected: "10.0.0.2"},
		{name: "real ip from trusted proxy", header: http.Header{"X-Real-Ip": {" 203.0.113.8 "}}, peerAddr: "10.0.0.2:4000", expected: "203.0.113.8"},
		{name: "spoofed forwarded header", header: http.Header{"X-Forwarded-For": {"203.0.113.7"}}, peerAddr: "198.51.100.1:52100", expected: "198.51.100.1"},
		{name: "spoofed empty forwarded header", header: http.Header{"X-Forwarded-For": {", 203.0.113.7"}}, peerAddr: "198.51.100.1:52100", expected: "198.51.100.1"},
		{name: "spoofed real ip", header: http.Header{"X-Real-Ip": {"203.0.113.8"}}, peerAddr: "198.51.100.1:52100", expected: "198.51.100.1"},
		{name: "ipv6 peer", header: http.Header{}, peerAddr: "[2001:db8::1]:443", expected: "2001:db8::1"},
		{name: "peer without port", header: http.Header{}, peerAddr: "198.51.100.1", expected: "198.51.100.1"},
		{name: "no peer", header: http.Header{"X-Forwarded-For": {"203.0.113.7"}}, peerAddr: "", expected: ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, proxies.ClientKey(test.header, test.peerAddr))
		})
	}
}

func TestClientKey_NoTrustedProxies(t *testing.T) {
	var proxies server.TrustedProxies

	key := proxies.ClientKey(http.Header{"X-Forwarded-For": {", 1.2.3.4"}, "X-Real-Ip": {"1.2.3.4"}}, "198.51.100.1:52100")

	assert.Equal(t, "198.51.100.1", key)
}

func TestParseTrustedProxies(t *testing.T) {
	proxies, err := server.ParseTrustedProxies([]string{"10.1.2.3/8", " 192.0.2.1 ", "", "2001:db8::/32"})
	require.NoError(t, err)
	assert.Len(t, proxies, 3)
	assert.Equal(t, "10.0.0.0/8", proxies[0].String())
	assert.Equal(t, "192.0.2.1/32", proxies[1].String())

	_, err = server.ParseTrustedProxies([]string{"not-an-ip"})
	require.Error(t, err)

	_, err = server.ParseTrustedProxies([]string{"10.0.0.0/99"})
	require.Error(t, err)
}
