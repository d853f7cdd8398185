package server

import (
	"context"
	"math"
	"strings"

	"github.com/bufbuild/connect-go"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"pouringat.com/PouringAt/pkg/auth"
	"pouringat.com/PouringAt/pkg/integrations"
	"pouringat.com/PouringAt/pkg/model"
	"pouringat.com/PouringAt/pkg/repository"
	"pouringat.com/PouringAt/pkg/server/api"
)

type TapServer struct {
	repository   repository.VenueRepository
	integrations []integrations.Integration
	validate     *validator.Validate
	logger       *zap.Logger
}

func NewTapServer(repo repository.VenueRepository, breweryIntegrations []integrations.Integration, logger *zap.Logger) *TapServer {
	return &TapServer{repository: repo, integrations: breweryIntegrations, validate: NewValidator(), logger: logger}
}

func (t *TapServer) TapBeverage(ctx context.Context, request *connect.Request[api.TapBeverageRequest]) (*connect.Response[api.TapBeverageResponse], error) {
	identity, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, err
	}

	msg := request.Msg
	msg.Brewery = strings.TrimSpace(msg.Brewery)
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Style = strings.TrimSpace(msg.Style)

	if err := validateRequest(t.validate, msg); err != nil {
		return nil, err
	}

	venueID := uint(msg.VenueID)
	if err := authorizeStaff(ctx, t.repository, identity, venueID); err != nil {
		return nil, err
	}

	brewery, created, err := t.repository.UpsertBrewery(ctx, msg.Brewery)
	if err != nil {
		return nil, err
	}

	if created && !brewery.HasMetadata() {
		t.enrichBrewery(ctx, brewery)
	}

	beverage, err := t.repository.UpsertBeverage(ctx, model.Beverage{
		Name:      msg.Name,
		Style:     msg.Style,
		ABV:       math.Round(msg.ABV*10) / 10, //nolint:mnd // one decimal place
		BreweryID: brewery.ID,
		Brewery:   brewery,
	})
	if err != nil {
		return nil, err
	}

	listing, err := t.repository.TapBeverage(ctx, venueID, beverage.ID)
	if err != nil {
		return nil, err
	}

	listing.Beverage = beverage

	t.logger.Info("beverage tapped", zap.Uint("venue_id", venueID), zap.Uint("beverage_id", beverage.ID), zap.String("staff_id", identity.UserID))

	return connect.NewResponse(&api.TapBeverageResponse{Listing: api.TapListingFromModel(listing)}), nil
}

func (t *TapServer) UntapBeverage(ctx context.Context, request *connect.Request[api.UntapBeverageRequest]) (*connect.Response[api.UntapBeverageResponse], error) {
	identity, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, err
	}

	if err := validateRequest(t.validate, request.Msg); err != nil {
		return nil, err
	}

	venueID := uint(request.Msg.VenueID)
	if err := authorizeStaff(ctx, t.repository, identity, venueID); err != nil {
		return nil, err
	}

	listing, err := t.repository.UntapBeverage(ctx, venueID, uint(request.Msg.BeverageID))
	if err != nil {
		return nil, err
	}

	t.logger.Info("beverage untapped", zap.Uint("venue_id", venueID), zap.Uint("beverage_id", listing.BeverageID), zap.String("staff_id", identity.UserID))

	return connect.NewResponse(&api.UntapBeverageResponse{Listing: api.TapListingFromModel(listing)}), nil
}

// enrichBrewery copies metadata from the first integration that knows a brewery of the same
// name. Failures are logged and never fail the tap.
func (t *TapServer) enrichBrewery(ctx context.Context, brewery *model.Brewery) {
	for _, integration := range t.integrations {
		found, err := integration.FindBrewery(brewery.Name)
		if err != nil {
			t.logger.Error("failed brewery search", zap.String("brewery", brewery.Name), zap.Error(err))

			continue
		}

		for _, candidate := range found {
			if !strings.EqualFold(candidate.Name, brewery.Name) {
				continue
			}

			brewery.URL = candidate.URL
			brewery.Location = candidate.Location
			brewery.ExternalID = candidate.ExternalID
			brewery.ExternalSource = candidate.ExternalSource

			if err := t.repository.UpdateBreweryMetadata(ctx, *brewery); err != nil {
				t.logger.Error("error saving brewery metadata", zap.Uint("brewery_id", brewery.ID), zap.Error(err))
			}

			return
		}
	}
}
