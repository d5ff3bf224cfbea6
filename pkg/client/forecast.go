package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"travelweather/internal/models"

	"go.uber.org/zap"
)

// ForecastClient talks to the travel-weather backend API.
type ForecastClient struct {
	*BaseClient
	baseURL string
}

func NewForecastClient(baseURL string, config ClientConfig, logger *zap.Logger) *ForecastClient {
	return &ForecastClient{
		BaseClient: NewBaseClient("forecast-backend", config, logger),
		baseURL:    baseURL,
	}
}

// ForecastDays fetches the multi-day forecast for a location. date is an
// optional YYYY-MM-DD string; empty means the backend default horizon.
func (c *ForecastClient) ForecastDays(ctx context.Context, cityID, date string) (*models.ForecastResponse, error) {
	endpoint := fmt.Sprintf("%s/api/weather/forecast-days?cityId=%s", c.baseURL, url.QueryEscape(cityID))
	if date != "" {
		endpoint += "&date=" + url.QueryEscape(date)
	}

	body, err := c.Get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch forecast: %w", err)
	}

	var response models.ForecastResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse forecast response: %w", err)
	}

	if response.Status != "success" {
		return nil, fmt.Errorf("backend returned status %q", response.Status)
	}

	return &response, nil
}

// Locations fetches all known travel destinations.
func (c *ForecastClient) Locations(ctx context.Context) ([]models.Location, error) {
	body, err := c.Get(ctx, c.baseURL+"/api/admin/all-locations")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch locations: %w", err)
	}

	var records []models.LocationRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("failed to parse locations response: %w", err)
	}

	locations := make([]models.Location, 0, len(records))
	for _, r := range records {
		locations = append(locations, models.Location{
			ID:   r.ID,
			Name: r.LocationName,
		})
	}

	return locations, nil
}

// LocationDetails fetches destination metadata. The content is passed through
// verbatim; nothing here interprets it.
func (c *ForecastClient) LocationDetails(ctx context.Context, id string) (*models.LocationDetails, error) {
	body, err := c.Get(ctx, c.baseURL+"/api/admin/location-details/"+url.PathEscape(id))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch location details: %w", err)
	}

	var record models.LocationDetailsRecord
	if err := json.Unmarshal(body, &record); err != nil {
		return nil, fmt.Errorf("failed to parse location details response: %w", err)
	}

	return &models.LocationDetails{
		ID:                 record.ID,
		LocationName:       record.LocationName,
		ItineraryTip:       record.ItineraryTip,
		BestTimeToVisit:    record.BestTimeToVisit,
		PhotogenicForecast: record.PhotogenicForecast,
		PhotogenicImages:   record.PhotogenicImages,
		DangerAlert:        record.DangerAlert,
	}, nil
}
