package services

import (
	"context"
	"fmt"
	"time"

	"travelweather/internal/cache"
	"travelweather/internal/models"

	"go.uber.org/zap"
)

// Cache key prefixes for the two independent fetch cycles.
const (
	PrimaryKeyPrefix = "weather_forecast"
	CompareKeyPrefix = "compare_forecast"
)

// ForecastBackend is the slice of the backend client the fetcher needs.
type ForecastBackend interface {
	ForecastDays(ctx context.Context, cityID, date string) (*models.ForecastResponse, error)
}

// Fetcher orchestrates the forecast pipeline: cache key, freshness check,
// backend call, normalization, cache write. It keeps no state across calls
// other than the cache itself.
type Fetcher struct {
	backend ForecastBackend
	cache   cache.Store
	ttl     time.Duration
	logger  *zap.Logger
	now     func() time.Time
}

func NewFetcher(backend ForecastBackend, store cache.Store, ttl time.Duration, logger *zap.Logger) *Fetcher {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Fetcher{
		backend: backend,
		cache:   store,
		ttl:     ttl,
		logger:  logger,
		now:     time.Now,
	}
}

// Fetch resolves the normalized forecast bundle for a location, serving from
// cache when a fresh entry exists under the (prefix, location, date) key. A
// cache write happens only after a fully successful normalize; failures are
// never cached.
func (f *Fetcher) Fetch(ctx context.Context, locationID, locationName, cacheKeyPrefix string, requestedDate *time.Time) (*models.ForecastBundle, error) {
	dateParam := ""
	if requestedDate != nil {
		dateParam = requestedDate.UTC().Format("2006-01-02")
	}

	keyDate := dateParam
	if keyDate == "" {
		keyDate = "all"
	}
	cacheKey := fmt.Sprintf("%s_%s_%s", cacheKeyPrefix, locationID, keyDate)

	now := f.now()
	if entry, ok := f.cache.Get(ctx, cacheKey); ok {
		age := now.UnixMilli() - entry.Timestamp
		if age < f.ttl.Milliseconds() {
			f.logger.Debug("Forecast cache hit",
				zap.String("key", cacheKey),
				zap.Int64("age_ms", age))
			bundle := entry.Data
			return &bundle, nil
		}

		f.logger.Debug("Forecast cache entry stale",
			zap.String("key", cacheKey),
			zap.Int64("age_ms", age))
	}

	payload, err := f.backend.ForecastDays(ctx, locationID, dateParam)
	if err != nil {
		return nil, fmt.Errorf("weather fetch failed for %s: %w", locationName, err)
	}
	if len(payload.Data) == 0 {
		return nil, fmt.Errorf("weather fetch failed for %s: %w", locationName, ErrNoForecastData)
	}

	bundle, err := Normalize(payload, locationName, requestedDate, now)
	if err != nil {
		return nil, fmt.Errorf("weather fetch failed for %s: %w", locationName, err)
	}

	f.cache.Set(ctx, cacheKey, cache.Entry{
		Timestamp: now.UnixMilli(),
		Data:      *bundle,
	})

	f.logger.Debug("Forecast fetched and cached",
		zap.String("key", cacheKey),
		zap.Int("forecast_days", len(bundle.Forecast)),
		zap.Int("hourly_entries", len(bundle.Hourly)))

	return bundle, nil
}
