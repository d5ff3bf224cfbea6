package cache

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"travelweather/internal/models"
)

func testEntry(temp int) Entry {
	return Entry{
		Timestamp: time.Now().UnixMilli(),
		Data: models.ForecastBundle{
			Current:  &models.CurrentWeather{LocationName: "Hampi", Temperature: temp},
			Forecast: []models.DailyForecast{{DayTemp: temp}},
		},
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore(zap.NewNop())
	ctx := context.Background()

	_, ok := store.Get(ctx, "weather_forecast_42_all")
	assert.False(t, ok)

	store.Set(ctx, "weather_forecast_42_all", testEntry(22))
	entry, ok := store.Get(ctx, "weather_forecast_42_all")
	require.True(t, ok)
	assert.Equal(t, 22, entry.Data.Current.Temperature)
	assert.Equal(t, 1, store.Len())
}

func TestMemoryStoreOverwrites(t *testing.T) {
	store := NewMemoryStore(zap.NewNop())
	ctx := context.Background()

	store.Set(ctx, "k", testEntry(22))
	store.Set(ctx, "k", testEntry(30))

	entry, ok := store.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, 30, entry.Data.Current.Temperature)
	assert.Equal(t, 1, store.Len())
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := NewFileStore(t.TempDir(), zap.NewNop())
	ctx := context.Background()

	store.Set(ctx, "weather_forecast_42_2024-03-11", testEntry(22))
	entry, ok := store.Get(ctx, "weather_forecast_42_2024-03-11")
	require.True(t, ok)
	assert.Equal(t, 22, entry.Data.Current.Temperature)
	assert.Equal(t, "Hampi", entry.Data.Current.LocationName)
}

func TestFileStoreMalformedEntryIsAbsent(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir, zap.NewNop())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0o644))

	_, ok := store.Get(context.Background(), "bad")
	assert.False(t, ok, "undecodable entries are treated as absent")
}

func TestFileStoreWriteFailureIsSwallowed(t *testing.T) {
	// Point the store at a path occupied by a regular file so every write
	// fails. Set must not panic or surface an error.
	dir := t.TempDir()
	blocked := filepath.Join(dir, "occupied")
	require.NoError(t, os.WriteFile(blocked, []byte("x"), 0o644))

	store := NewFileStore(blocked, zap.NewNop())
	store.Set(context.Background(), "k", testEntry(22))

	_, ok := store.Get(context.Background(), "k")
	assert.False(t, ok)
}

func TestFileStoreSanitizesKeys(t *testing.T) {
	store := NewFileStore(t.TempDir(), zap.NewNop())
	ctx := context.Background()

	store.Set(ctx, "compare_forecast_a/b_all", testEntry(18))
	entry, ok := store.Get(ctx, "compare_forecast_a/b_all")
	require.True(t, ok)
	assert.Equal(t, 18, entry.Data.Current.Temperature)
}
