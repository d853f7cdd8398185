package model

import (
	"time"

	"gorm.io/gorm"
)

// TapListing pairs a venue with a beverage. A listing with TappedOff set is closed and is kept
// only as history; re-tapping a beverage creates a new row.
type TapListing struct {
	gorm.Model
	VenueID    uint `gorm:"index;uniqueIndex:idx_active_listing,where:tapped_off IS NULL AND deleted_at IS NULL"`
	BeverageID uint `gorm:"index;uniqueIndex:idx_active_listing,where:tapped_off IS NULL AND deleted_at IS NULL"`
	TappedOn   time.Time
	TappedOff  *time.Time

	Beverage *Beverage `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
}

func (l TapListing) Active() bool {
	return l.TappedOff == nil
}
