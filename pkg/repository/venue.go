package repository

import (
	"context"
	"errors"
	"time"

	"github.com/paulmach/orb"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pouringat.com/PouringAt/pkg/model"
)

var (
	ErrVenueNotFound = errors.New("venue not found")
	ErrDuplicateSlug = errors.New("slug already in use")
)

type VenueRepository interface { //nolint:interfacebloat // venues, beverages and listings share one store
	AddVenue(ctx context.Context, venue model.Venue, staffID string) (*model.Venue, error)
	FindVerifiedVenuesInBound(ctx context.Context, bound orb.Bound) ([]*model.Venue, error)
	GetVenueByID(ctx context.Context, venueID uint) (*model.Venue, error)
	GetVenueBySlug(ctx context.Context, slug string) (*model.Venue, error)
	IsStaff(ctx context.Context, venueID uint, staffID string) (bool, error)
	ListUnverifiedVenues(ctx context.Context) ([]*model.Venue, error)
	ListVenuesForStaff(ctx context.Context, staffID string) ([]*model.Venue, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	TapBeverage(ctx context.Context, venueID uint, beverageID uint) (*model.TapListing, error)
	UntapBeverage(ctx context.Context, venueID uint, beverageID uint) (*model.TapListing, error)
	UpdateBranding(ctx context.Context, venueID uint, update model.BrandingUpdate) (*model.Venue, error)
	UpdateBreweryMetadata(ctx context.Context, brewery model.Brewery) error
	UpsertBeverage(ctx context.Context, beverage model.Beverage) (*model.Beverage, error)
	UpsertBrewery(ctx context.Context, name string) (*model.Brewery, bool, error)
	VenueExists(ctx context.Context, venueID uint) (bool, error)
	VerifyVenue(ctx context.Context, venueID uint) error
}

// activeListings preloads the listings still on tap, most recently tapped first.
func activeListings(db *gorm.DB) *gorm.DB {
	return db.Where("tapped_off IS NULL").Order("tapped_on DESC")
}

func withListings(db *gorm.DB) *gorm.DB {
	return db.Preload("Listings", activeListings).Preload("Listings.Beverage.Brewery")
}

// FindVerifiedVenuesInBound returns the verified venues inside bound, ordered by id, with their
// active listings and each listing's beverage and brewery.
func (r *Repository) FindVerifiedVenuesInBound(ctx context.Context, bound orb.Bound) ([]*model.Venue, error) {
	var venues []*model.Venue

	result := withListings(r.DB.WithContext(ctx)).
		Where("verified = ?", true).
		Where("latitude BETWEEN ? AND ?", bound.Min.Lat(), bound.Max.Lat()).
		Where("longitude BETWEEN ? AND ?", bound.Min.Lon(), bound.Max.Lon()).
		Order("venues.id").
		Find(&venues)
	if result.Error != nil {
		r.Logger.Error("error finding venues", zap.Error(result.Error))

		return nil, result.Error
	}

	return venues, nil
}

func (r *Repository) GetVenueByID(ctx context.Context, venueID uint) (*model.Venue, error) {
	return r.getVenue(r.DB.WithContext(ctx).Where("id = ?", venueID))
}

func (r *Repository) GetVenueBySlug(ctx context.Context, slug string) (*model.Venue, error) {
	return r.getVenue(r.DB.WithContext(ctx).Where("slug = ?", slug))
}

func (r *Repository) getVenue(query *gorm.DB) (*model.Venue, error) {
	var venue model.Venue

	result := withListings(query).Preload("Staff").First(&venue)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}

		return nil, result.Error
	}

	return &venue, nil
}

func (r *Repository) ListVenuesForStaff(ctx context.Context, staffID string) ([]*model.Venue, error) {
	var venues []*model.Venue

	staffed := r.DB.WithContext(ctx).Model(&model.VenueStaff{}).Select("venue_id").Where("staff_id = ?", staffID)

	result := r.DB.WithContext(ctx).
		Where("id IN (?)", staffed).
		Order("name").
		Find(&venues)
	if result.Error != nil {
		r.Logger.Error("error getting venues for staff", zap.String("staff_id", staffID), zap.Error(result.Error))

		return nil, result.Error
	}

	return venues, nil
}

func (r *Repository) ListUnverifiedVenues(ctx context.Context) ([]*model.Venue, error) {
	var venues []*model.Venue

	result := r.DB.WithContext(ctx).
		Preload("Staff").
		Where("verified = ?", false).
		Order("created_at").
		Find(&venues)
	if result.Error != nil {
		return nil, result.Error
	}

	return venues, nil
}

func (r *Repository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64

	if result := r.DB.WithContext(ctx).Model(&model.Venue{}).Where("slug = ?", slug).Count(&count); result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

func (r *Repository) VenueExists(ctx context.Context, venueID uint) (bool, error) {
	var count int64

	if result := r.DB.WithContext(ctx).Model(&model.Venue{}).Where("id = ?", venueID).Count(&count); result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

// AddVenue stores a new venue and makes staffID its first staff member.
func (r *Repository) AddVenue(ctx context.Context, venue model.Venue, staffID string) (*model.Venue, error) {
	venue.Staff = []model.VenueStaff{{StaffID: staffID}}
	venue.Verified = false
	venue.Updated = time.Now()

	if result := r.DB.WithContext(ctx).Create(&venue); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateSlug
		}

		r.Logger.Error("error adding venue", zap.String("slug", venue.Slug), zap.Error(result.Error))

		return nil, result.Error
	}

	return &venue, nil
}

func (r *Repository) VerifyVenue(ctx context.Context, venueID uint) error {
	result := r.DB.WithContext(ctx).Model(&model.Venue{}).
		Where("id = ?", venueID).
		Updates(map[string]interface{}{"verified": true, "updated": time.Now()})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrVenueNotFound
	}

	return nil
}

// UpdateBranding merges update into the venue's branding while holding a row lock.
func (r *Repository) UpdateBranding(ctx context.Context, venueID uint, update model.BrandingUpdate) (*model.Venue, error) {
	var venue model.Venue

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&venue, venueID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrVenueNotFound
			}

			return err
		}

		venue.Branding = venue.Branding.Apply(update)
		venue.Updated = time.Now()

		return tx.Model(&venue).Select("branding", "updated").Updates(&venue).Error
	})
	if err != nil {
		return nil, err
	}

	return &venue, nil
}

func (r *Repository) IsStaff(ctx context.Context, venueID uint, staffID string) (bool, error) {
	var count int64

	result := r.DB.WithContext(ctx).Model(&model.VenueStaff{}).
		Where("venue_id = ? AND staff_id = ?", venueID, staffID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}
