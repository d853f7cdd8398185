package server

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bufbuild/connect-go"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"pouringat.com/PouringAt/pkg/auth"
	"pouringat.com/PouringAt/pkg/geocode"
	"pouringat.com/PouringAt/pkg/model"
	"pouringat.com/PouringAt/pkg/repository"
	"pouringat.com/PouringAt/pkg/server/api"
)

type VenueServer struct {
	repository repository.VenueRepository
	geocoder   geocode.Geocoder
	validate   *validator.Validate
	logger     *zap.Logger
}

func NewVenueServer(repo repository.VenueRepository, geocoder geocode.Geocoder, logger *zap.Logger) *VenueServer {
	return &VenueServer{repository: repo, geocoder: geocoder, validate: NewValidator(), logger: logger}
}

// VenueAddress is the single line address sent to the geocoder.
func VenueAddress(line1 string, line2 *string, city, postcode string) string {
	parts := []string{line1}
	if line2 != nil && strings.TrimSpace(*line2) != "" {
		parts = append(parts, *line2)
	}

	return strings.Join(append(parts, city, postcode), ", ")
}

func (v *VenueServer) CreateVenue(ctx context.Context, request *connect.Request[api.CreateVenueRequest]) (*connect.Response[api.CreateVenueResponse], error) {
	identity, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, err
	}

	msg := request.Msg
	if err := validateRequest(v.validate, msg); err != nil {
		return nil, err
	}

	if IsReservedSlug(msg.Slug) {
		return nil, fmt.Errorf("%w: %s", ErrReservedSlug, msg.Slug)
	}

	exists, err := v.repository.SlugExists(ctx, msg.Slug)
	if err != nil {
		return nil, err
	}

	if exists {
		return nil, fmt.Errorf("%w: %s", repository.ErrDuplicateSlug, msg.Slug)
	}

	coordinate, err := v.geocoder.Geocode(ctx, VenueAddress(msg.Line1, msg.Line2, msg.City, msg.Postcode))
	if err != nil {
		v.logger.Info("venue address not found", zap.String("slug", msg.Slug), zap.Error(err))

		if errors.Is(err, geocode.ErrInvalidAddress) {
			return nil, err
		}

		return nil, fmt.Errorf("%w: %w", geocode.ErrInvalidAddress, err)
	}

	venue := model.Venue{
		Name:         msg.Name,
		Slug:         msg.Slug,
		Line1:        msg.Line1,
		Line2:        optional(msg.Line2),
		City:         msg.City,
		Postcode:     msg.Postcode,
		Latitude:     coordinate.Latitude,
		Longitude:    coordinate.Longitude,
		OpeningHours: api.OpeningHoursToModel(msg.OpeningHours),
		URL:          optional(&msg.URL),
	}

	created, err := v.repository.AddVenue(ctx, venue, identity.UserID)
	if err != nil {
		return nil, err
	}

	v.logger.Info("venue created", zap.Uint("venue_id", created.ID), zap.String("slug", created.Slug), zap.String("staff_id", identity.UserID))

	return connect.NewResponse(&api.CreateVenueResponse{Venue: api.VenueFromModel(created)}), nil
}

func (v *VenueServer) GetVenue(ctx context.Context, request *connect.Request[api.GetVenueRequest]) (*connect.Response[api.GetVenueResponse], error) {
	var (
		venue *model.Venue
		err   error
	)

	switch {
	case request.Msg.ID != 0:
		venue, err = v.repository.GetVenueByID(ctx, uint(request.Msg.ID))
	case request.Msg.Slug != "":
		venue, err = v.repository.GetVenueBySlug(ctx, request.Msg.Slug)
	default:
		return nil, fmt.Errorf("%w: id or slug required", ErrInvalidInput)
	}

	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&api.GetVenueResponse{Venue: api.VenueFromModel(venue)}), nil
}

func (v *VenueServer) ListMyVenues(ctx context.Context, _ *connect.Request[api.ListMyVenuesRequest]) (*connect.Response[api.ListMyVenuesResponse], error) {
	identity, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, err
	}

	venues, err := v.repository.ListVenuesForStaff(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&api.ListMyVenuesResponse{Venues: api.VenuesFromModel(venues)}), nil
}

func (v *VenueServer) ListUnverifiedVenues(ctx context.Context, _ *connect.Request[api.ListUnverifiedVenuesRequest]) (*connect.Response[api.ListUnverifiedVenuesResponse], error) {
	if _, err := auth.RequireAdmin(ctx); err != nil {
		return nil, err
	}

	venues, err := v.repository.ListUnverifiedVenues(ctx)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&api.ListUnverifiedVenuesResponse{Venues: api.VenuesFromModel(venues)}), nil
}

func (v *VenueServer) VerifyVenue(ctx context.Context, request *connect.Request[api.VerifyVenueRequest]) (*connect.Response[api.VerifyVenueResponse], error) {
	identity, err := auth.RequireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	if err := validateRequest(v.validate, request.Msg); err != nil {
		return nil, err
	}

	venueID := uint(request.Msg.ID)
	if err := v.repository.VerifyVenue(ctx, venueID); err != nil {
		return nil, err
	}

	v.logger.Info("venue verified", zap.Uint("venue_id", venueID), zap.String("admin_id", identity.UserID))

	venue, err := v.repository.GetVenueByID(ctx, venueID)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&api.VerifyVenueResponse{Venue: api.VenueFromModel(venue)}), nil
}

func (v *VenueServer) UpdateBranding(ctx context.Context, request *connect.Request[api.UpdateBrandingRequest]) (*connect.Response[api.UpdateBrandingResponse], error) {
	identity, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, err
	}

	if err := validateRequest(v.validate, request.Msg); err != nil {
		return nil, err
	}

	venueID := uint(request.Msg.VenueID)
	if err := authorizeStaff(ctx, v.repository, identity, venueID); err != nil {
		return nil, err
	}

	update := model.BrandingUpdate{Logo: request.Msg.Logo, Colours: api.ColoursToModel(request.Msg.Colours)}

	venue, err := v.repository.UpdateBranding(ctx, venueID, update)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&api.UpdateBrandingResponse{Venue: api.VenueFromModel(venue)}), nil
}

type staffChecker interface {
	IsStaff(ctx context.Context, venueID uint, staffID string) (bool, error)
	VenueExists(ctx context.Context, venueID uint) (bool, error)
}

// authorizeStaff allows administrators and the venue's own staff. Administrators skip the staff
// check, so the venue itself is checked for them.
func authorizeStaff(ctx context.Context, checker staffChecker, identity *auth.Identity, venueID uint) error {
	if identity.IsAdmin() {
		exists, err := checker.VenueExists(ctx, venueID)
		if err != nil {
			return err
		}

		if !exists {
			return fmt.Errorf("%w: %d", repository.ErrVenueNotFound, venueID)
		}

		return nil
	}

	staff, err := checker.IsStaff(ctx, venueID, identity.UserID)
	if err != nil {
		return err
	}

	if !staff {
		return fmt.Errorf("%w: not staff of venue %d", auth.ErrForbidden, venueID)
	}

	return nil
}

func optional(value *string) *string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil
	}

	return value
}
