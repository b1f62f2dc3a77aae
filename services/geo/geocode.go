package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// Region is the administrative breakdown of a geocoded address.
type Region struct {
	City    string
	Admin   string
	Country string
}

// Geocoder resolves a free-form address or location string to a Region.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (Region, error)
}

const geocodeEndpoint = "https://maps.googleapis.com/maps/api/geocode/json"

// GoogleGeocoder implements Geocoder against the Google Geocoding REST API.
type GoogleGeocoder struct {
	apiKey string
	client *http.Client
	logger *zap.Logger
}

// NewGoogleGeocoder creates a Geocoder backed by the Google Geocoding API.
func NewGoogleGeocoder(apiKey string, logger *zap.Logger) *GoogleGeocoder {
	return &GoogleGeocoder{
		apiKey: apiKey,
		client: &http.Client{Timeout: 5 * time.Second},
		logger: logger,
	}
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		AddressComponents []struct {
			LongName string   `json:"long_name"`
			Types    []string `json:"types"`
		} `json:"address_components"`
	} `json:"results"`
}

// Geocode resolves the address via the external API.
func (g *GoogleGeocoder) Geocode(ctx context.Context, address string) (Region, error) {
	endpoint := fmt.Sprintf("%s?address=%s&key=%s", geocodeEndpoint, url.QueryEscape(address), g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Region{}, fmt.Errorf("failed to build geocode request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return Region{}, fmt.Errorf("failed to query geocoding API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Region{}, fmt.Errorf("geocoding API returned status %d", resp.StatusCode)
	}

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return Region{}, fmt.Errorf("failed to decode geocode response: %w", err)
	}

	if decoded.Status != "OK" || len(decoded.Results) == 0 {
		g.logger.Warn("geocoding returned no results",
			zap.String("address", address),
			zap.String("status", decoded.Status),
		)
		return Region{}, fmt.Errorf("no geocoding results for address")
	}

	var region Region
	for _, component := range decoded.Results[0].AddressComponents {
		for _, t := range component.Types {
			switch t {
			case "country":
				region.Country = component.LongName
			case "administrative_area_level_1":
				region.Admin = component.LongName
			case "locality", "postal_town":
				region.City = component.LongName
			}
		}
	}
	return region, nil
}
