package services

import "errors"

var (
	// ErrDateNotFound means a requested date had no matching daily bucket.
	// This is a hard failure, not a fallback to the first bucket.
	ErrDateNotFound = errors.New("no data available for selected date")

	// ErrNoForecastData means the backend response carried an empty data
	// sequence. Handled the same way as a transport failure.
	ErrNoForecastData = errors.New("no forecast data found")
)
