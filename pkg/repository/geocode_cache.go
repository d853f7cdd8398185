package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pouringat.com/PouringAt/pkg/model"
)

// GetCachedCoordinate returns the cached coordinate for address, or nil when there is no entry
// that is still valid at now.
func (r *Repository) GetCachedCoordinate(ctx context.Context, address string, now time.Time) (*model.Coordinate, error) {
	var entry model.GeocodeCache

	result := r.DB.WithContext(ctx).Where("address = ? AND expires_at > ?", address, now).First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil //nolint:nilnil // a miss is not an error
		}

		return nil, result.Error
	}

	return &model.Coordinate{Latitude: entry.Latitude, Longitude: entry.Longitude}, nil
}

func (r *Repository) SaveCachedCoordinate(ctx context.Context, address string, coordinate model.Coordinate, expiresAt time.Time) error {
	entry := model.GeocodeCache{
		Address:   address,
		Latitude:  coordinate.Latitude,
		Longitude: coordinate.Longitude,
		ExpiresAt: expiresAt,
	}

	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "address"}},
		DoUpdates: clause.AssignmentColumns([]string{"latitude", "longitude", "expires_at"}),
	}).Create(&entry).Error
}
