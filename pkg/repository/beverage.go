package repository

import (
	"context"

	"gorm.io/gorm/clause"

	"pouringat.com/PouringAt/pkg/model"
)

// UpsertBrewery returns the brewery with the given name, creating it when it does not exist.
// The second result reports whether this call created it.
func (r *Repository) UpsertBrewery(ctx context.Context, name string) (*model.Brewery, bool, error) {
	brewery := model.Brewery{Name: name}
	if result := r.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&brewery); result.Error != nil {
		return nil, false, result.Error
	}

	if brewery.ID != 0 {
		return &brewery, true, nil
	}

	if result := r.DB.WithContext(ctx).Where("name = ?", name).First(&brewery); result.Error != nil {
		return nil, false, result.Error
	}

	return &brewery, false, nil
}

func (r *Repository) UpdateBreweryMetadata(ctx context.Context, brewery model.Brewery) error {
	return r.DB.WithContext(ctx).Model(&brewery).
		Select("url", "location", "external_id", "external_source").
		Updates(&brewery).Error
}

// UpsertBeverage returns the beverage with the same name and brewery, creating it when needed.
// An existing beverage keeps its stored style and ABV.
func (r *Repository) UpsertBeverage(ctx context.Context, beverage model.Beverage) (*model.Beverage, error) {
	brewery := beverage.Brewery
	beverage.Brewery = nil

	result := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}, {Name: "brewery_id"}},
		DoNothing: true,
	}).Create(&beverage)
	if result.Error != nil {
		return nil, result.Error
	}

	if beverage.ID == 0 {
		result = r.DB.WithContext(ctx).
			Where("name = ? AND brewery_id = ?", beverage.Name, beverage.BreweryID).
			First(&beverage)
		if result.Error != nil {
			return nil, result.Error
		}
	}

	beverage.Brewery = brewery

	return &beverage, nil
}
