package model

import (
	"time"

	"gorm.io/gorm"
)

type Venue struct {
	gorm.Model
	Name         string
	Slug         string `gorm:"uniqueIndex:idx_venue_slug"`
	Line1        string
	Line2        *string
	City         string
	Postcode     string
	Latitude     float64 `gorm:"index:idx_venue_position"`
	Longitude    float64 `gorm:"index:idx_venue_position"`
	OpeningHours OpeningHours `gorm:"serializer:json"`
	URL          *string
	Branding     Branding `gorm:"serializer:json"`
	Verified     bool     `gorm:"default:false;index"`
	Updated      time.Time

	Staff    []VenueStaff
	Listings []TapListing
}

func (v Venue) Coordinate() Coordinate {
	return Coordinate{Latitude: v.Latitude, Longitude: v.Longitude}
}

// HasStaff reports whether staffID is a member of the venue's staff. Staff must be loaded.
func (v Venue) HasStaff(staffID string) bool {
	for _, staff := range v.Staff {
		if staff.StaffID == staffID {
			return true
		}
	}

	return false
}

type VenueStaff struct {
	gorm.Model
	VenueID uint   `gorm:"index"`
	StaffID string `gorm:"index"`
}

type OpeningHours struct {
	Monday    *string `json:"monday,omitempty"`
	Tuesday   *string `json:"tuesday,omitempty"`
	Wednesday *string `json:"wednesday,omitempty"`
	Thursday  *string `json:"thursday,omitempty"`
	Friday    *string `json:"friday,omitempty"`
	Saturday  *string `json:"saturday,omitempty"`
	Sunday    *string `json:"sunday,omitempty"`
}
