package model

import "gorm.io/gorm"

type Beverage struct {
	gorm.Model
	Name      string `gorm:"uniqueIndex:idx_beverage_unique"`
	Style     string
	ABV       float64 `gorm:"column:abv"`
	BreweryID uint    `gorm:"uniqueIndex:idx_beverage_unique"`
	Verified  bool    `gorm:"default:false"`

	Brewery *Brewery `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
}
