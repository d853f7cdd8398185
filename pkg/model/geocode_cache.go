package model

import (
	"time"
)

type GeocodeCache struct {
	ID        uint      `gorm:"primaryKey"`
	Address   string    `gorm:"size:500;not null;uniqueIndex"`
	Latitude  float64   `gorm:"not null"`
	Longitude float64   `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	ExpiresAt time.Time `gorm:"not null"`
}

func (GeocodeCache) TableName() string {
	return "geocode_cache"
}
