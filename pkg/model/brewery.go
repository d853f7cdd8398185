package model

import (
	"gorm.io/gorm"
)

type Brewery struct {
	gorm.Model
	Name           string `gorm:"uniqueIndex:idx_brewery_name"`
	URL            *string
	Location       *string
	ExternalID     *uint64
	ExternalSource *string
}

// HasMetadata reports whether the brewery already carries enrichment data.
func (b Brewery) HasMetadata() bool {
	return b.URL != nil || b.Location != nil || b.ExternalID != nil
}
