// Package api holds the request and response messages of the Pouring At RPC services and the
// handlers and clients that serve them over the Connect protocol with a JSON codec.
package api

import "time"

type Coordinate struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

type Address struct {
	Line1    string  `json:"line1"`
	Line2    *string `json:"line2,omitempty"`
	City     string  `json:"city"`
	Postcode string  `json:"postcode"`
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

type Colours struct {
	Foreground *string `json:"foreground,omitempty" validate:"omitempty,colour"`
	Background *string `json:"background,omitempty" validate:"omitempty,colour"`
	Accent     *string `json:"accent,omitempty"     validate:"omitempty,colour"`
}

type Branding struct {
	Logo    *string  `json:"logo,omitempty"`
	Colours *Colours `json:"colours,omitempty"`
}

type Brewery struct {
	ID       uint64  `json:"id"`
	Name     string  `json:"name"`
	URL      *string `json:"url,omitempty"`
	Location *string `json:"location,omitempty"`
}

// Beverage is a beverage as it is currently poured at a venue.
type Beverage struct {
	ID       uint64    `json:"id"`
	Name     string    `json:"name"`
	Style    string    `json:"style"`
	ABV      float64   `json:"abv"`
	Brewery  *Brewery  `json:"brewery,omitempty"`
	TappedOn time.Time `json:"tappedOn"`
}

type TapListing struct {
	ID        uint64     `json:"id"`
	VenueID   uint64     `json:"venueId"`
	Beverage  *Beverage  `json:"beverage,omitempty"`
	TappedOn  time.Time  `json:"tappedOn"`
	TappedOff *time.Time `json:"tappedOff,omitempty"`
}

type Venue struct {
	ID           uint64        `json:"id"`
	Name         string        `json:"name"`
	Slug         string        `json:"slug"`
	Address      Address       `json:"address"`
	Coordinate   Coordinate    `json:"coordinate"`
	OpeningHours *OpeningHours `json:"openingHours,omitempty"`
	URL          *string       `json:"url,omitempty"`
	Branding     *Branding     `json:"branding,omitempty"`
	Verified     bool          `json:"verified"`
	Updated      time.Time     `json:"updated"`
	StaffIDs     []string      `json:"staffIds,omitempty"`
	Beverages    []*Beverage   `json:"beverages,omitempty"`
}

// VenuePreview is a search hit: the venue, how far it is from the searched location and the
// first few of its ranked beverages.
type VenuePreview struct {
	Venue          *Venue      `json:"venue"`
	DistanceMeters float64     `json:"distanceMeters"`
	Beverages      []*Beverage `json:"beverages"`
	TotalBeverages int         `json:"totalBeverages"`
}

type SearchRequest struct {
	Location string `json:"location"`
	Style    string `json:"style,omitempty"`
	Brewery  string `json:"brewery,omitempty"`
}

type SearchResponse struct {
	Coordinate Coordinate      `json:"coordinate"`
	Venues     []*VenuePreview `json:"venues"`
}

type CreateVenueRequest struct {
	Name         string        `json:"name"                   validate:"required,min=2"`
	Slug         string        `json:"slug"                   validate:"required,min=2,slug"`
	Line1        string        `json:"line1"                  validate:"required"`
	Line2        *string       `json:"line2,omitempty"`
	City         string        `json:"city"                   validate:"required"`
	Postcode     string        `json:"postcode"               validate:"postcode"`
	OpeningHours *OpeningHours `json:"openingHours,omitempty"`
	URL          string        `json:"url,omitempty"          validate:"omitempty,url"`
}

type CreateVenueResponse struct {
	Venue *Venue `json:"venue"`
}

// GetVenueRequest looks a venue up by ID when it is set, otherwise by slug.
type GetVenueRequest struct {
	ID   uint64 `json:"id,omitempty"`
	Slug string `json:"slug,omitempty"`
}

type GetVenueResponse struct {
	Venue *Venue `json:"venue"`
}

type ListMyVenuesRequest struct{}

type ListMyVenuesResponse struct {
	Venues []*Venue `json:"venues"`
}

type ListUnverifiedVenuesRequest struct{}

type ListUnverifiedVenuesResponse struct {
	Venues []*Venue `json:"venues"`
}

type VerifyVenueRequest struct {
	ID uint64 `json:"id" validate:"required"`
}

type VerifyVenueResponse struct {
	Venue *Venue `json:"venue"`
}

type UpdateBrandingRequest struct {
	VenueID uint64   `json:"venueId"           validate:"required"`
	Logo    *string  `json:"logo,omitempty"    validate:"omitempty,url"`
	Colours *Colours `json:"colours,omitempty"`
}

type UpdateBrandingResponse struct {
	Venue *Venue `json:"venue"`
}

type TapBeverageRequest struct {
	VenueID uint64  `json:"venueId" validate:"required"`
	Brewery string  `json:"brewery" validate:"required"`
	Name    string  `json:"name"    validate:"required"`
	Style   string  `json:"style"   validate:"required"`
	ABV     float64 `json:"abv"     validate:"gte=0,lte=100,onedecimal"`
}

type TapBeverageResponse struct {
	Listing *TapListing `json:"listing"`
}

type UntapBeverageRequest struct {
	VenueID    uint64 `json:"venueId"    validate:"required"`
	BeverageID uint64 `json:"beverageId" validate:"required"`
}

type UntapBeverageResponse struct {
	Listing *TapListing `json:"listing"`
}
