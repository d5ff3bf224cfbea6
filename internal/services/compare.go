package services

import (
	"context"
	"sync"
	"time"

	"travelweather/internal/models"

	"go.uber.org/zap"
)

// bundleFetcher is the slice of Fetcher the coordinator needs.
type bundleFetcher interface {
	Fetch(ctx context.Context, locationID, locationName, cacheKeyPrefix string, requestedDate *time.Time) (*models.ForecastBundle, error)
}

// CompareState is a snapshot of the comparison view. Weather is nil and the
// slices are empty both in the idle state and after a failed fetch.
type CompareState struct {
	Location *models.Location        `json:"location"`
	Weather  *models.CurrentWeather  `json:"weather"`
	Forecast []models.DailyForecast  `json:"forecast"`
	Hourly   []models.HourlyForecast `json:"hourly"`
}

// CompareCoordinator runs a second, independent fetch cycle for a comparison
// location under its own cache-key prefix. A failed comparison fetch clears
// the comparison state instead of surfacing an error, so it can never block
// the primary location's view.
//
// Each fetch carries a generation number; a response that resolves after the
// location or date changed again is discarded rather than overwriting newer
// state.
type CompareCoordinator struct {
	fetcher bundleFetcher
	logger  *zap.Logger

	mu         sync.Mutex
	generation uint64
	location   *models.Location
	weather    *models.CurrentWeather
	forecast   []models.DailyForecast
	hourly     []models.HourlyForecast
}

func NewCompareCoordinator(fetcher bundleFetcher, logger *zap.Logger) *CompareCoordinator {
	return &CompareCoordinator{
		fetcher: fetcher,
		logger:  logger,
	}
}

// SetLocation selects a new comparison location and fetches its forecast.
// A nil location is the valid idle state and clears all comparison data.
func (c *CompareCoordinator) SetLocation(ctx context.Context, loc *models.Location, requestedDate *time.Time) {
	c.mu.Lock()
	c.generation++
	gen := c.generation
	c.location = loc

	if loc == nil {
		c.clearLocked(nil)
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	bundle, err := c.fetcher.Fetch(ctx, loc.ID, loc.Name, CompareKeyPrefix, requestedDate)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		c.logger.Debug("Discarding superseded compare fetch",
			zap.String("location", loc.Name),
			zap.Uint64("generation", gen))
		return
	}

	if err != nil {
		c.logger.Warn("Compare weather fetch failed",
			zap.String("location", loc.Name),
			zap.Error(err))
		c.clearLocked([]models.DailyForecast{})
		return
	}

	c.weather = bundle.Current
	c.forecast = bundle.Forecast
	c.hourly = bundle.Hourly
}

// Refresh re-fetches the current comparison location, typically after the
// requested date changed. No-op while idle.
func (c *CompareCoordinator) Refresh(ctx context.Context, requestedDate *time.Time) {
	c.mu.Lock()
	loc := c.location
	c.mu.Unlock()

	if loc == nil {
		return
	}
	c.SetLocation(ctx, loc, requestedDate)
}

// State returns a snapshot of the comparison view.
func (c *CompareCoordinator) State() CompareState {
	c.mu.Lock()
	defer c.mu.Unlock()

	return CompareState{
		Location: c.location,
		Weather:  c.weather,
		Forecast: c.forecast,
		Hourly:   c.hourly,
	}
}

func (c *CompareCoordinator) clearLocked(forecast []models.DailyForecast) {
	c.weather = nil
	c.forecast = forecast
	c.hourly = nil
}
