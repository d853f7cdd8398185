package search

import (
	"slices"
	"strings"

	"pouringat.com/PouringAt/pkg/model"
)

// RankListings orders listings so that matches for the optional style and brewery terms come
// first. Matching is case-sensitive substring containment. The sort is stable, so listings of
// equal priority keep their input order, and with no terms the input order is returned as is.
// Listings without a beverage or brewery are dropped.
func RankListings(listings []model.TapListing, style, brewery string) []model.TapListing {
	ranked := make([]model.TapListing, 0, len(listings))

	for _, listing := range listings {
		if Displayable(listing) {
			ranked = append(ranked, listing)
		}
	}

	if style == "" && brewery == "" {
		return ranked
	}

	slices.SortStableFunc(ranked, func(a, b model.TapListing) int {
		return priority(a, style, brewery) - priority(b, style, brewery)
	})

	return ranked
}

// Displayable reports whether the listing carries the beverage and brewery needed to show it.
func Displayable(listing model.TapListing) bool {
	return listing.Beverage != nil && listing.Beverage.Brewery != nil
}

// priority is lower for better matches. With both terms, style dominates and brewery only
// separates style matches.
func priority(listing model.TapListing, style, brewery string) int {
	styleMatch := style != "" && strings.Contains(listing.Beverage.Style, style)
	breweryMatch := brewery != "" && strings.Contains(listing.Beverage.Brewery.Name, brewery)

	switch {
	case style == "":
		return boolRank(breweryMatch)
	case brewery == "":
		return boolRank(styleMatch)
	case styleMatch && breweryMatch:
		return 0
	case styleMatch:
		return 1
	default:
		return 2
	}
}

func boolRank(match bool) int {
	if match {
		return 0
	}

	return 1
}
