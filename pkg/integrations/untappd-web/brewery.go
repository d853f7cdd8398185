package untappdweb

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"github.com/gocolly/colly/v2"
	"go.openly.dev/pointy"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"pouringat.com/PouringAt/pkg/model"
)

type BreweryJSON struct {
	Name            string `json:"name"`
	URL             string `json:"url"`
	AggregateRating struct {
		RatingValue float64 `json:"ratingValue"`
	} `json:"aggregateRating"`
	Address struct {
		AddressLocality string `json:"addressLocality"`
		AddressRegion   string `json:"addressRegion"`
		AddressCountry  string `json:"addressCountry"`
	} `json:"address"`
}

// FindBrewery searches for breweries by name and scrapes the page of every rated result.
func (u *UntappedWebIntegration) FindBrewery(name string) ([]model.Brewery, error) {
	collector := colly.NewCollector(
		colly.AllowedDomains(u.domain),
	)

	var (
		errs    error
		results []model.Brewery
	)

	collector.OnHTML(".beer-item", func(element *colly.HTMLElement) {
		ratingString := element.ChildAttr(".rating > div.caps", "data-rating")
		rating, _ := strconv.ParseFloat(ratingString, 64)

		if rating > 0.0 {
			breweryURL := element.Request.AbsoluteURL(element.ChildAttr(".name > a", "href"))

			brewery, err := u.getBreweryFromURL(breweryURL, collector.Clone())
			if multierr.AppendInto(&errs, err) {
				return
			}

			results = append(results, brewery)
		}
	})

	multierr.AppendInto(&errs, collector.Visit(u.baseURL+"/search?q="+url.QueryEscape(name)+"&type=brewery"))

	return results, errs
}

func (u *UntappedWebIntegration) getBreweryFromURL(breweryURL string, collector *colly.Collector) (model.Brewery, error) {
	var (
		errs      error
		brewery   model.Brewery
		breweryID uint64
	)

	collector.OnHTML("head script[type='application/ld+json']", func(element *colly.HTMLElement) {
		var breweryJSON BreweryJSON
		if err := json.Unmarshal([]byte(element.Text), &breweryJSON); err != nil {
			u.logger.Warn("failed to parse brewery json", zap.String("url", breweryURL), zap.Error(err))

			return
		}

		brewery = model.Brewery{
			Name:           breweryJSON.Name,
			URL:            stringPointer(breweryJSON.URL),
			Location:       stringPointer(joinNonEmpty(breweryJSON.Address.AddressLocality, breweryJSON.Address.AddressRegion, breweryJSON.Address.AddressCountry)),
			ExternalSource: pointy.String(IntegrationName),
		}
	})

	collector.OnHTML("head meta[property='og:url']", func(element *colly.HTMLElement) {
		pageURL := element.Attr("content")
		idString := pageURL[strings.LastIndex(pageURL, "/")+1:]

		id, err := strconv.ParseUint(idString, 10, 64)
		if err != nil {
			u.logger.Error("failed to parse brewery id", zap.String("url", pageURL), zap.Error(err))
		} else {
			breweryID = id
		}
	})

	multierr.AppendInto(&errs, collector.Visit(breweryURL))

	if breweryID != 0 {
		brewery.ExternalID = pointy.Uint64(breweryID)
	}

	return brewery, errs
}

func joinNonEmpty(values ...string) string {
	parts := make([]string, 0, len(values))

	for _, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			parts = append(parts, value)
		}
	}

	return strings.Join(parts, ", ")
}

func stringPointer(value string) *string {
	if len(value) > 0 {
		return &value
	}

	return nil
}
