package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"travelweather/internal/models"
)

type stubFetcher struct {
	fetch func(ctx context.Context, locationID, locationName, prefix string, requestedDate *time.Time) (*models.ForecastBundle, error)
}

func (s *stubFetcher) Fetch(ctx context.Context, locationID, locationName, prefix string, requestedDate *time.Time) (*models.ForecastBundle, error) {
	return s.fetch(ctx, locationID, locationName, prefix, requestedDate)
}

func testBundle(name string) *models.ForecastBundle {
	return &models.ForecastBundle{
		Current:  &models.CurrentWeather{LocationName: name, Temperature: 25},
		Forecast: []models.DailyForecast{{DayTemp: 25}},
		Hourly:   []models.HourlyForecast{{Temp: 24}},
	}
}

func TestCompareIdleByDefault(t *testing.T) {
	coord := NewCompareCoordinator(&stubFetcher{}, zap.NewNop())

	state := coord.State()
	assert.Nil(t, state.Location)
	assert.Nil(t, state.Weather)
	assert.Empty(t, state.Forecast)
	assert.Empty(t, state.Hourly)
}

func TestCompareFetchUsesComparePrefix(t *testing.T) {
	var gotPrefix string
	fetcher := &stubFetcher{fetch: func(_ context.Context, _, name, prefix string, _ *time.Time) (*models.ForecastBundle, error) {
		gotPrefix = prefix
		return testBundle(name), nil
	}}
	coord := NewCompareCoordinator(fetcher, zap.NewNop())

	coord.SetLocation(context.Background(), &models.Location{ID: "99", Name: "Gokarna"}, nil)

	assert.Equal(t, CompareKeyPrefix, gotPrefix)
	state := coord.State()
	require.NotNil(t, state.Weather)
	assert.Equal(t, "Gokarna", state.Weather.LocationName)
	assert.Len(t, state.Forecast, 1)
}

func TestCompareFailureClearsState(t *testing.T) {
	failing := false
	fetcher := &stubFetcher{fetch: func(_ context.Context, _, name, _ string, _ *time.Time) (*models.ForecastBundle, error) {
		if failing {
			return nil, errors.New("connection refused")
		}
		return testBundle(name), nil
	}}
	coord := NewCompareCoordinator(fetcher, zap.NewNop())

	coord.SetLocation(context.Background(), &models.Location{ID: "99", Name: "Gokarna"}, nil)
	require.NotNil(t, coord.State().Weather)

	failing = true
	coord.Refresh(context.Background(), nil)

	state := coord.State()
	assert.Nil(t, state.Weather, "failed compare fetch clears the weather")
	assert.NotNil(t, state.Forecast)
	assert.Empty(t, state.Forecast)
	assert.Empty(t, state.Hourly)
}

func TestCompareNilLocationClears(t *testing.T) {
	fetcher := &stubFetcher{fetch: func(_ context.Context, _, name, _ string, _ *time.Time) (*models.ForecastBundle, error) {
		return testBundle(name), nil
	}}
	coord := NewCompareCoordinator(fetcher, zap.NewNop())

	coord.SetLocation(context.Background(), &models.Location{ID: "99", Name: "Gokarna"}, nil)
	coord.SetLocation(context.Background(), nil, nil)

	state := coord.State()
	assert.Nil(t, state.Location)
	assert.Nil(t, state.Weather)
	assert.Empty(t, state.Forecast)
}

func TestCompareRefreshWhileIdleIsNoop(t *testing.T) {
	calls := 0
	fetcher := &stubFetcher{fetch: func(_ context.Context, _, name, _ string, _ *time.Time) (*models.ForecastBundle, error) {
		calls++
		return testBundle(name), nil
	}}
	coord := NewCompareCoordinator(fetcher, zap.NewNop())

	coord.Refresh(context.Background(), nil)
	assert.Equal(t, 0, calls)
}

func TestCompareSupersededFetchDiscarded(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	fetcher := &stubFetcher{fetch: func(_ context.Context, id, name, _ string, _ *time.Time) (*models.ForecastBundle, error) {
		if id == "slow" {
			close(started)
			<-release
		}
		return testBundle(name), nil
	}}
	coord := NewCompareCoordinator(fetcher, zap.NewNop())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		coord.SetLocation(context.Background(), &models.Location{ID: "slow", Name: "Old"}, nil)
	}()

	// Wait for the slow fetch to be in flight, then supersede it.
	<-started
	coord.SetLocation(context.Background(), &models.Location{ID: "fast", Name: "New"}, nil)

	close(release)
	wg.Wait()

	state := coord.State()
	require.NotNil(t, state.Weather)
	assert.Equal(t, "New", state.Weather.LocationName, "stale response must not overwrite newer state")
}
