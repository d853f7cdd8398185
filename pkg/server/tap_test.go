package server_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bufbuild/connect-go"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"

	"pouringat.com/PouringAt/mocks"
	"pouringat.com/PouringAt/pkg/auth"
	"pouringat.com/PouringAt/pkg/integrations"
	"pouringat.com/PouringAt/pkg/model"
	"pouringat.com/PouringAt/pkg/repository"
	"pouringat.com/PouringAt/pkg/server"
	"pouringat.com/PouringAt/pkg/server/api"
)

type TapTestSuite struct {
	suite.Suite
	venueRepo    *mocks.VenueRepository
	integration  *mocks.Integration
	service      *server.TapServer
	observedLogs *observer.ObservedLogs
}

func TestTapTestSuite(t *testing.T) {
	suite.Run(t, new(TapTestSuite))
}

func (suite *TapTestSuite) SetupTest() {
	suite.venueRepo = mocks.NewVenueRepository(suite.T())
	suite.integration = mocks.NewIntegration(suite.T())
	observedZapCore, observedLogs := observer.New(zap.InfoLevel)
	suite.observedLogs = observedLogs
	suite.service = server.NewTapServer(suite.venueRepo, []integrations.Integration{suite.integration}, zap.New(observedZapCore))
}

func tapRequest() *api.TapBeverageRequest {
	return &api.TapBeverageRequest{VenueID: 1, Brewery: " Wylam ", Name: "Jakehead", Style: "IPA", ABV: 6.3}
}

func (suite *TapTestSuite) expectTap(brewery *model.Brewery) {
	suite.venueRepo.EXPECT().UpsertBeverage(mock.Anything, mock.MatchedBy(func(beverage model.Beverage) bool {
		return beverage.Name == "Jakehead" && beverage.Style == "IPA" && beverage.ABV == 6.3 && beverage.BreweryID == brewery.ID
	})).RunAndReturn(func(_ context.Context, beverage model.Beverage) (*model.Beverage, error) {
		beverage.ID = 20

		return &beverage, nil
	})
	suite.venueRepo.EXPECT().TapBeverage(mock.Anything, uint(1), uint(20)).
		Return(&model.TapListing{Model: gorm.Model{ID: 30}, VenueID: 1, BeverageID: 20, TappedOn: time.Now()}, nil)
}

func (suite *TapTestSuite) TestTapBeverage_EnrichesNewBrewery() {
	brewery := &model.Brewery{Model: gorm.Model{ID: 5}, Name: "Wylam"}

	suite.venueRepo.EXPECT().IsStaff(mock.Anything, uint(1), "user_1").Return(true, nil)
	suite.venueRepo.EXPECT().UpsertBrewery(mock.Anything, "Wylam").Return(brewery, true, nil)
	suite.integration.EXPECT().FindBrewery("Wylam").Return([]model.Brewery{
		{Name: "Wylam Brewery", URL: pointy.String("https://untappd.com/WylamBrewery")},
		{
			Name:           "wylam",
			URL:            pointy.String("https://untappd.com/Wylam"),
			Location:       pointy.String("Newcastle upon Tyne, England"),
			ExternalID:     pointy.Uint64(1234),
			ExternalSource: pointy.String("untappd-web"),
		},
	}, nil)
	suite.venueRepo.EXPECT().UpdateBreweryMetadata(mock.Anything, mock.MatchedBy(func(updated model.Brewery) bool {
		return updated.ID == 5 && *updated.URL == "https://untappd.com/Wylam" && *updated.ExternalID == 1234
	})).Return(nil)
	suite.expectTap(brewery)

	response, err := suite.service.TapBeverage(staffCtx, connect.NewRequest(tapRequest()))
	suite.Require().NoError(err)
	suite.Equal(uint64(30), response.Msg.Listing.ID)
	suite.Equal("Jakehead", response.Msg.Listing.Beverage.Name)
	suite.Equal("Wylam", response.Msg.Listing.Beverage.Brewery.Name)
	suite.Equal(pointy.String("Newcastle upon Tyne, England"), response.Msg.Listing.Beverage.Brewery.Location)
	suite.Equal(1, suite.observedLogs.FilterMessage("beverage tapped").Len())
}

func (suite *TapTestSuite) TestTapBeverage_ExistingBreweryIsNotEnriched() {
	brewery := &model.Brewery{Model: gorm.Model{ID: 5}, Name: "Wylam"}

	suite.venueRepo.EXPECT().IsStaff(mock.Anything, uint(1), "user_1").Return(true, nil)
	suite.venueRepo.EXPECT().UpsertBrewery(mock.Anything, "Wylam").Return(brewery, false, nil)
	suite.expectTap(brewery)

	_, err := suite.service.TapBeverage(staffCtx, connect.NewRequest(tapRequest()))
	suite.Require().NoError(err)
}

func (suite *TapTestSuite) TestTapBeverage_EnrichmentFailureIsLogged() {
	suite.venueRepo.EXPECT().VenueExists(mock.Anything, uint(1)).Return(true, nil)
	brewery := &model.Brewery{Model: gorm.Model{ID: 5}, Name: "Wylam"}

	suite.venueRepo.EXPECT().UpsertBrewery(mock.Anything, "Wylam").Return(brewery, true, nil)
	suite.integration.EXPECT().FindBrewery("Wylam").Return(nil, errors.New("connection refused"))
	suite.expectTap(brewery)

	_, err := suite.service.TapBeverage(adminCtx, connect.NewRequest(tapRequest()))
	suite.Require().NoError(err)
	suite.Equal(1, suite.observedLogs.FilterMessage("failed brewery search").Len())
}

func (suite *TapTestSuite) TestTapBeverage_NoMatchingBrewery() {
	suite.venueRepo.EXPECT().VenueExists(mock.Anything, uint(1)).Return(true, nil)
	brewery := &model.Brewery{Model: gorm.Model{ID: 5}, Name: "Wylam"}

	suite.venueRepo.EXPECT().UpsertBrewery(mock.Anything, "Wylam").Return(brewery, true, nil)
	suite.integration.EXPECT().FindBrewery("Wylam").Return([]model.Brewery{{Name: "Wylam Brewery"}}, nil)
	suite.expectTap(brewery)

	_, err := suite.service.TapBeverage(adminCtx, connect.NewRequest(tapRequest()))
	suite.Require().NoError(err)
}

func (suite *TapTestSuite) TestTapBeverage_RoundsABV() {
	suite.venueRepo.EXPECT().VenueExists(mock.Anything, uint(1)).Return(true, nil)
	brewery := &model.Brewery{Model: gorm.Model{ID: 5}, Name: "Wylam"}
	request := tapRequest()
	request.ABV = 6.30000001

	suite.venueRepo.EXPECT().UpsertBrewery(mock.Anything, "Wylam").Return(brewery, false, nil)
	suite.expectTap(brewery)

	_, err := suite.service.TapBeverage(adminCtx, connect.NewRequest(request))
	suite.Require().NoError(err)
}

func (suite *TapTestSuite) TestTapBeverage_InvalidInput() {
	tests := []struct {
		name   string
		modify func(*api.TapBeverageRequest)
		detail string
	}{
		{name: "two decimal places", modify: func(r *api.TapBeverageRequest) { r.ABV = 5.55 }, detail: "abv failed onedecimal"},
		{name: "over one hundred", modify: func(r *api.TapBeverageRequest) { r.ABV = 101 }, detail: "abv failed lte"},
		{name: "negative", modify: func(r *api.TapBeverageRequest) { r.ABV = -1 }, detail: "abv failed gte"},
		{name: "blank style", modify: func(r *api.TapBeverageRequest) { r.Style = "   " }, detail: "style failed required"},
		{name: "missing brewery", modify: func(r *api.TapBeverageRequest) { r.Brewery = "" }, detail: "brewery failed required"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			request := tapRequest()
			tt.modify(request)

			_, err := suite.service.TapBeverage(staffCtx, connect.NewRequest(request))
			suite.Require().ErrorIs(err, server.ErrInvalidInput)
			suite.ErrorContains(err, tt.detail)
		})
	}
}

func (suite *TapTestSuite) TestTapBeverage_AlreadyOnTap() {
	suite.venueRepo.EXPECT().VenueExists(mock.Anything, uint(1)).Return(true, nil)
	brewery := &model.Brewery{Model: gorm.Model{ID: 5}, Name: "Wylam"}

	suite.venueRepo.EXPECT().UpsertBrewery(mock.Anything, "Wylam").Return(brewery, false, nil)
	suite.venueRepo.EXPECT().UpsertBeverage(mock.Anything, mock.Anything).Return(&model.Beverage{Model: gorm.Model{ID: 20}}, nil)
	suite.venueRepo.EXPECT().TapBeverage(mock.Anything, uint(1), uint(20)).Return(nil, repository.ErrAlreadyOnTap)

	_, err := suite.service.TapBeverage(adminCtx, connect.NewRequest(tapRequest()))
	suite.Require().ErrorIs(err, repository.ErrAlreadyOnTap)
}

func (suite *TapTestSuite) TestTapBeverage_AdminUnknownVenue() {
	suite.venueRepo.EXPECT().VenueExists(mock.Anything, uint(1)).Return(false, nil)

	_, err := suite.service.TapBeverage(adminCtx, connect.NewRequest(tapRequest()))
	suite.Require().ErrorIs(err, repository.ErrVenueNotFound)
	suite.venueRepo.AssertNotCalled(suite.T(), "UpsertBrewery", mock.Anything, mock.Anything)
	suite.venueRepo.AssertNotCalled(suite.T(), "UpsertBeverage", mock.Anything, mock.Anything)
}

func (suite *TapTestSuite) TestTapBeverage_NotStaff() {
	suite.venueRepo.EXPECT().IsStaff(mock.Anything, uint(1), "user_1").Return(false, nil)

	_, err := suite.service.TapBeverage(staffCtx, connect.NewRequest(tapRequest()))
	suite.Require().ErrorIs(err, auth.ErrForbidden)
}

func (suite *TapTestSuite) TestTapBeverage_RequiresUser() {
	_, err := suite.service.TapBeverage(context.Background(), connect.NewRequest(tapRequest()))
	suite.Require().ErrorIs(err, auth.ErrUnauthenticated)
}

func (suite *TapTestSuite) TestUntapBeverage() {
	tappedOff := time.Now()

	suite.venueRepo.EXPECT().IsStaff(mock.Anything, uint(1), "user_1").Return(true, nil)
	suite.venueRepo.EXPECT().UntapBeverage(mock.Anything, uint(1), uint(20)).
		Return(&model.TapListing{Model: gorm.Model{ID: 30}, VenueID: 1, BeverageID: 20, TappedOff: &tappedOff}, nil)

	response, err := suite.service.UntapBeverage(staffCtx, connect.NewRequest(&api.UntapBeverageRequest{VenueID: 1, BeverageID: 20}))
	suite.Require().NoError(err)
	suite.Equal(&tappedOff, response.Msg.Listing.TappedOff)
	suite.Equal(1, suite.observedLogs.FilterMessage("beverage untapped").Len())
}

func (suite *TapTestSuite) TestUntapBeverage_NotOnTap() {
	suite.venueRepo.EXPECT().VenueExists(mock.Anything, uint(1)).Return(true, nil)
	suite.venueRepo.EXPECT().UntapBeverage(mock.Anything, uint(1), uint(20)).Return(nil, repository.ErrListingNotFound)

	_, err := suite.service.UntapBeverage(adminCtx, connect.NewRequest(&api.UntapBeverageRequest{VenueID: 1, BeverageID: 20}))
	suite.Require().ErrorIs(err, repository.ErrListingNotFound)
}

func (suite *TapTestSuite) TestUntapBeverage_InvalidInput() {
	_, err := suite.service.UntapBeverage(adminCtx, connect.NewRequest(&api.UntapBeverageRequest{VenueID: 1}))
	suite.Require().ErrorIs(err, server.ErrInvalidInput)
}
