package repository

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pouringat.com/PouringAt/pkg/model"
)

var (
	ErrAlreadyOnTap    = errors.New("beverage already on tap")
	ErrListingNotFound = errors.New("beverage not on tap")
)

const activeListing = "venue_id = ? AND beverage_id = ? AND tapped_off IS NULL"

// TapBeverage opens a new listing for the beverage at the venue. Earlier, closed listings are
// left untouched.
func (r *Repository) TapBeverage(ctx context.Context, venueID uint, beverageID uint) (*model.TapListing, error) {
	listing := model.TapListing{VenueID: venueID, BeverageID: beverageID, TappedOn: time.Now()}

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var active int64
		if err := tx.Model(&model.TapListing{}).Where(activeListing, venueID, beverageID).Count(&active).Error; err != nil {
			return err
		}

		if active > 0 {
			return ErrAlreadyOnTap
		}

		return tx.Create(&listing).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyOnTap
		}

		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, ErrVenueNotFound
		}

		if !errors.Is(err, ErrAlreadyOnTap) {
			r.Logger.Error("error tapping beverage", zap.Uint("venue_id", venueID), zap.Uint("beverage_id", beverageID), zap.Error(err))
		}

		return nil, err
	}

	return &listing, nil
}

// UntapBeverage closes the active listing for the beverage at the venue and returns it.
func (r *Repository) UntapBeverage(ctx context.Context, venueID uint, beverageID uint) (*model.TapListing, error) {
	var listing model.TapListing

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(activeListing, venueID, beverageID).
			First(&listing)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrListingNotFound
			}

			return result.Error
		}

		tappedOff := time.Now()
		listing.TappedOff = &tappedOff

		return tx.Model(&listing).Update("tapped_off", tappedOff).Error
	})
	if err != nil {
		return nil, err
	}

	return &listing, nil
}
