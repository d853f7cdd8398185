package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"pouringat.com/PouringAt/configs"
	"pouringat.com/PouringAt/pkg/metrics"
	"pouringat.com/PouringAt/pkg/model"
)

const statusOK = "OK"

// GoogleGeocoder calls the Google Maps Geocoding API.
type GoogleGeocoder struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
	metrics    *metrics.Metrics
}

func NewGoogleGeocoder(conf configs.Geocoder, m *metrics.Metrics, logger *zap.Logger) *GoogleGeocoder {
	return &GoogleGeocoder{
		baseURL:    strings.TrimSuffix(conf.BaseURL, "/"),
		apiKey:     conf.APIKey,
		httpClient: &http.Client{Timeout: conf.Timeout},
		logger:     logger,
		metrics:    m,
	}
}

// Geocode returns the location of the first result. Every failure is reported as ErrInvalidAddress.
func (g *GoogleGeocoder) Geocode(ctx context.Context, address string) (model.Coordinate, error) {
	response, err := g.fetch(ctx, address)
	if err != nil {
		err = redact(err)
		g.logger.Warn("geocoding request failed", zap.String("address", address), zap.Error(err))
		g.metrics.ObserveGeocode("error")

		return model.Coordinate{}, fmt.Errorf("%w: provider request failed", ErrInvalidAddress)
	}

	if response.Status != statusOK || len(response.Results) == 0 {
		g.logger.Info("no geocoding result", zap.String("address", address), zap.String("status", response.Status))
		g.metrics.ObserveGeocode("no_result")

		return model.Coordinate{}, fmt.Errorf("%w: status %s with %d results", ErrInvalidAddress, response.Status, len(response.Results))
	}

	g.metrics.ObserveGeocode("ok")

	location := response.Results[0].Geometry.Location

	return model.Coordinate{Latitude: location.Lat, Longitude: location.Lng}, nil
}

func (g *GoogleGeocoder) fetch(ctx context.Context, address string) (*geocodeResponse, error) {
	params := url.Values{}
	params.Set("address", address)
	params.Set("key", g.apiKey)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/geocode/json?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	response, err := g.httpClient.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected response status %s", response.Status)
	}

	var body geocodeResponse
	if err := json.NewDecoder(response.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &body, nil
}

// redact drops the request URL, which carries the API key, from transport errors.
func redact(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s geocode request: %w", urlErr.Op, urlErr.Err)
	}

	return err
}

type geocodeResponse struct {
	Results []geocodeResult `json:"results"`
	Status  string          `json:"status"`
}

type geocodeResult struct {
	FormattedAddress string `json:"formatted_address"`
	Geometry         struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
	PlaceID string `json:"place_id"`
}

var _ Geocoder = (*GoogleGeocoder)(nil)
