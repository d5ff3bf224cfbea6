package services

import (
	"math"
	"time"

	"travelweather/internal/models"
)

const (
	defaultDescription = "No description"
	defaultIcon        = "01d"
)

// Normalize turns a raw backend payload into view-ready records. The input is
// never mutated. Calendar-day comparisons use UTC truncation throughout.
//
// If requestedDate is set, the daily bucket matching its calendar day becomes
// the "selected" bucket and ErrDateNotFound is returned when none matches.
// Without a requested date the first bucket is selected unconditionally. The
// hourly sequence is filtered to the selected day's 24h window, computed from
// requestedDate when given and from now otherwise.
func Normalize(payload *models.ForecastResponse, locationName string, requestedDate *time.Time, now time.Time) (*models.ForecastBundle, error) {
	if len(payload.Data) == 0 {
		return nil, ErrNoForecastData
	}

	selected := &payload.Data[0]
	if requestedDate != nil {
		want := truncateToUTCDay(*requestedDate)
		found := false
		for i := range payload.Data {
			if truncateToUTCDay(time.Unix(payload.Data[i].Dt, 0)).Equal(want) {
				selected = &payload.Data[i]
				found = true
				break
			}
		}
		if !found {
			return nil, ErrDateNotFound
		}
	}

	description, icon := weatherFields(selected.Weather)
	current := &models.CurrentWeather{
		LocationName: locationName,
		Temperature:  roundInt(selected.Temp.Day),
		Description:  description,
		Date:         time.Unix(selected.Dt, 0).UTC().Format("Monday, 2 January 2006"),
		Icon:         icon,
	}

	forecast := make([]models.DailyForecast, 0, len(payload.Data))
	for i := range payload.Data {
		day := &payload.Data[i]
		description, icon := weatherFields(day.Weather)

		forecast = append(forecast, models.DailyForecast{
			Date:         time.Unix(day.Dt, 0).UTC().Format(time.RFC3339),
			DayTemp:      roundInt(day.Temp.Day),
			NightTemp:    roundInt(day.Temp.Night),
			MinTemp:      roundInt(day.Temp.Min),
			MaxTemp:      roundInt(day.Temp.Max),
			Humidity:     roundInt(day.Humidity),
			WindSpeedKmh: roundInt(day.WindSpeed * 3.6),
			Description:  description,
			Icon:         icon,
		})
	}

	windowDay := now
	if requestedDate != nil {
		windowDay = *requestedDate
	}
	start := truncateToUTCDay(windowDay)
	end := start.Add(24*time.Hour - time.Millisecond)

	var hourly []models.HourlyForecast
	for i := range payload.Hourly {
		hour := &payload.Hourly[i]
		ts := time.Unix(hour.Dt, 0).UTC()
		if ts.Before(start) || ts.After(end) {
			continue
		}

		description, icon := weatherFields(hour.Weather)
		hourly = append(hourly, models.HourlyForecast{
			Time:        ts.Format("3:04 PM"),
			Temp:        roundInt(hour.Temp),
			FeelsLike:   roundInt(hour.FeelsLike),
			Humidity:    hour.Humidity,
			WindSpeed:   hour.WindSpeed,
			Pop:         clampPercent(roundInt(hour.Pop * 100)),
			Description: description,
			Icon:        icon,
		})
	}

	return &models.ForecastBundle{
		Current:  current,
		Forecast: forecast,
		Hourly:   hourly,
	}, nil
}

// weatherFields extracts description and icon from the one-element weather
// array, substituting fallbacks for anything empty or missing.
func weatherFields(info []models.WeatherInfo) (string, string) {
	description := defaultDescription
	icon := defaultIcon

	if len(info) > 0 {
		if info[0].Description != "" {
			description = info[0].Description
		}
		if info[0].Icon != "" {
			icon = info[0].Icon
		}
	}

	return description, icon
}

func roundInt(v float64) int {
	return int(math.Round(v))
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func truncateToUTCDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
