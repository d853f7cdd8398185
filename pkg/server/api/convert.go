package api

import (
	"pouringat.com/PouringAt/pkg/model"
	"pouringat.com/PouringAt/pkg/search"
)

func CoordinateFromModel(coordinate model.Coordinate) Coordinate {
	return Coordinate{Latitude: coordinate.Latitude, Longitude: coordinate.Longitude}
}

func BreweryFromModel(brewery *model.Brewery) *Brewery {
	if brewery == nil {
		return nil
	}

	return &Brewery{
		ID:       uint64(brewery.ID),
		Name:     brewery.Name,
		URL:      brewery.URL,
		Location: brewery.Location,
	}
}

// BeverageFromListing returns nil for a listing without its beverage.
func BeverageFromListing(listing model.TapListing) *Beverage {
	if listing.Beverage == nil {
		return nil
	}

	return &Beverage{
		ID:       uint64(listing.Beverage.ID),
		Name:     listing.Beverage.Name,
		Style:    listing.Beverage.Style,
		ABV:      listing.Beverage.ABV,
		Brewery:  BreweryFromModel(listing.Beverage.Brewery),
		TappedOn: listing.TappedOn,
	}
}

// BeveragesFromListings converts at most limit displayable listings; limit <= 0 converts all.
func BeveragesFromListings(listings []model.TapListing, limit int) []*Beverage {
	if limit <= 0 || limit > len(listings) {
		limit = len(listings)
	}

	beverages := make([]*Beverage, 0, limit)

	for _, listing := range listings {
		if len(beverages) == limit {
			break
		}

		if search.Displayable(listing) {
			beverages = append(beverages, BeverageFromListing(listing))
		}
	}

	return beverages
}

func TapListingFromModel(listing *model.TapListing) *TapListing {
	return &TapListing{
		ID:        uint64(listing.ID),
		VenueID:   uint64(listing.VenueID),
		Beverage:  BeverageFromListing(*listing),
		TappedOn:  listing.TappedOn,
		TappedOff: listing.TappedOff,
	}
}

func OpeningHoursFromModel(hours model.OpeningHours) *OpeningHours {
	if hours == (model.OpeningHours{}) {
		return nil
	}

	return &OpeningHours{
		Monday:    hours.Monday,
		Tuesday:   hours.Tuesday,
		Wednesday: hours.Wednesday,
		Thursday:  hours.Thursday,
		Friday:    hours.Friday,
		Saturday:  hours.Saturday,
		Sunday:    hours.Sunday,
	}
}

func OpeningHoursToModel(hours *OpeningHours) model.OpeningHours {
	if hours == nil {
		return model.OpeningHours{}
	}

	return model.OpeningHours{
		Monday:    hours.Monday,
		Tuesday:   hours.Tuesday,
		Wednesday: hours.Wednesday,
		Thursday:  hours.Thursday,
		Friday:    hours.Friday,
		Saturday:  hours.Saturday,
		Sunday:    hours.Sunday,
	}
}

func ColoursToModel(colours *Colours) *model.Colours {
	if colours == nil {
		return nil
	}

	return &model.Colours{Foreground: colours.Foreground, Background: colours.Background, Accent: colours.Accent}
}

func BrandingFromModel(branding model.Branding) *Branding {
	if branding.Logo == nil && branding.Colours == nil {
		return nil
	}

	result := &Branding{Logo: branding.Logo}
	if branding.Colours != nil {
		result.Colours = &Colours{
			Foreground: branding.Colours.Foreground,
			Background: branding.Colours.Background,
			Accent:     branding.Colours.Accent,
		}
	}

	return result
}

// VenueFromModel converts the venue with every loaded active listing.
func VenueFromModel(venue *model.Venue) *Venue {
	result := &Venue{
		ID:   uint64(venue.ID),
		Name: venue.Name,
		Slug: venue.Slug,
		Address: Address{
			Line1:    venue.Line1,
			Line2:    venue.Line2,
			City:     venue.City,
			Postcode: venue.Postcode,
		},
		Coordinate:   CoordinateFromModel(venue.Coordinate()),
		OpeningHours: OpeningHoursFromModel(venue.OpeningHours),
		URL:          venue.URL,
		Branding:     BrandingFromModel(venue.Branding),
		Verified:     venue.Verified,
		Updated:      venue.Updated,
	}

	for _, staff := range venue.Staff {
		result.StaffIDs = append(result.StaffIDs, staff.StaffID)
	}

	for _, listing := range venue.Listings {
		if listing.Active() && search.Displayable(listing) {
			result.Beverages = append(result.Beverages, BeverageFromListing(listing))
		}
	}

	return result
}

func VenuesFromModel(venues []*model.Venue) []*Venue {
	result := make([]*Venue, 0, len(venues))
	for _, venue := range venues {
		result = append(result, VenueFromModel(venue))
	}

	return result
}
