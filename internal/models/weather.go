package models

// CurrentWeather is the view-ready summary for the selected day of a location.
type CurrentWeather struct {
	LocationName string `json:"location_name"`
	Temperature  int    `json:"temperature"`
	Description  string `json:"description"`
	Date         string `json:"date"`
	Icon         string `json:"icon"`
}

// DailyForecast is one normalized daily bucket. Order follows the upstream
// sequence, which is chronological.
type DailyForecast struct {
	Date         string `json:"date"`
	DayTemp      int    `json:"day_temp"`
	NightTemp    int    `json:"night_temp"`
	MinTemp      int    `json:"min_temp"`
	MaxTemp      int    `json:"max_temp"`
	Humidity     int    `json:"humidity"`
	WindSpeedKmh int    `json:"wind_speed_kmh"`
	Description  string `json:"description"`
	Icon         string `json:"icon"`
}

// HourlyForecast is one normalized hourly bucket, restricted to the 24h window
// of the selected day.
type HourlyForecast struct {
	Time        string  `json:"time"`
	Temp        int     `json:"temp"`
	FeelsLike   int     `json:"feels_like"`
	Humidity    float64 `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
	Pop         int     `json:"pop"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
}

// ForecastBundle is the unit the fetcher returns and the cache stores.
type ForecastBundle struct {
	Current  *CurrentWeather  `json:"current"`
	Forecast []DailyForecast  `json:"forecast"`
	Hourly   []HourlyForecast `json:"hourly"`
}

// Location is a travel destination known to the backend.
type Location struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// LocationDetails carries destination metadata consumed verbatim by callers.
type LocationDetails struct {
	ID                 string   `json:"id"`
	LocationName       string   `json:"location_name"`
	ItineraryTip       string   `json:"itinerary_tip"`
	BestTimeToVisit    string   `json:"best_time_to_visit"`
	PhotogenicForecast string   `json:"photogenic_forecast"`
	PhotogenicImages   []string `json:"photogenic_images"`
	DangerAlert        string   `json:"danger_alert"`
}
