package models

// Upstream wire types for the backend forecast endpoint. These mirror the
// backend response exactly and are treated as read-only input.

type WeatherInfo struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type DailyTemp struct {
	Day   float64 `json:"day"`
	Night float64 `json:"night"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// DailyBucket summarizes one calendar day of the upstream forecast.
type DailyBucket struct {
	Dt        int64         `json:"dt"`
	Temp      DailyTemp     `json:"temp"`
	Humidity  float64       `json:"humidity"`
	WindSpeed float64       `json:"wind_speed"`
	Weather   []WeatherInfo `json:"weather"`
}

// HourlyBucket summarizes a single hour of the upstream forecast.
type HourlyBucket struct {
	Dt        int64         `json:"dt"`
	Temp      float64       `json:"temp"`
	FeelsLike float64       `json:"feels_like"`
	Humidity  float64       `json:"humidity"`
	WindSpeed float64       `json:"wind_speed"`
	Pop       float64       `json:"pop"`
	Weather   []WeatherInfo `json:"weather"`
}

// ForecastResponse is the body of GET /api/weather/forecast-days.
type ForecastResponse struct {
	Status string         `json:"status"`
	Data   []DailyBucket  `json:"data"`
	Hourly []HourlyBucket `json:"hourly,omitempty"`
}

// LocationRecord is one entry of GET /api/admin/all-locations.
type LocationRecord struct {
	ID           string `json:"_id"`
	LocationName string `json:"locationName"`
}

// LocationDetailsRecord is the body of GET /api/admin/location-details/:id.
type LocationDetailsRecord struct {
	ID                 string   `json:"_id"`
	LocationName       string   `json:"locationName"`
	ItineraryTip       string   `json:"itineraryTip"`
	BestTimeToVisit    string   `json:"bestTimeToVisit"`
	PhotogenicForecast string   `json:"photogenicForecast"`
	PhotogenicImages   []string `json:"photogenicImages"`
	DangerAlert        string   `json:"dangerAlert"`
}
