package models

// CurrentConditions describes the weather at a location right now.
// Sunrise and Sunset are HH:MM 24-hour strings.
type CurrentConditions struct {
	Temp          int    `json:"temp" example:"21"`
	FeelsLike     int    `json:"feelsLike" example:"19"`
	Description   string `json:"description" example:"Few clouds"`
	Icon          string `json:"icon" example:"02d"`
	Humidity      int    `json:"humidity" example:"62"`
	WindSpeed     int    `json:"windSpeed" example:"12"`
	WindDirection int    `json:"windDirection" example:"270"`
	Pressure      int    `json:"pressure" example:"1003"`
	UVIndex       int    `json:"uvIndex" example:"4"`
	Visibility    int    `json:"visibility" example:"8"`
	Sunrise       string `json:"sunrise" example:"06:30"`
	Sunset        string `json:"sunset" example:"18:30"`
}

// HourlyForecast is one hour of forecast data, keyed by hour-of-day ("14:00").
type HourlyForecast struct {
	Time          string  `json:"time" example:"14:00"`
	Temp          int     `json:"temp"`
	FeelsLike     int     `json:"feelsLike"`
	Description   string  `json:"description"`
	Icon          string  `json:"icon"`
	Precipitation float64 `json:"precipitation"`
	Humidity      int     `json:"humidity"`
	WindSpeed     int     `json:"windSpeed"`
}

// DailyForecast is one calendar day of forecast data, keyed by ISO date.
// TempMin is not clamped against TempMax; under some draws min can exceed max.
// That mirrors the reference generator and is preserved on purpose.
type DailyForecast struct {
	Date          string  `json:"date" example:"2026-08-30"`
	TempMax       int     `json:"tempMax"`
	TempMin       int     `json:"tempMin"`
	Description   string  `json:"description"`
	Icon          string  `json:"icon"`
	Precipitation float64 `json:"precipitation"`
	Humidity      int     `json:"humidity"`
	WindSpeed     int     `json:"windSpeed"`
}

// WeatherSnapshot is one full weather result for a single location at one
// point in time. It is immutable once produced; a new fetch replaces it
// wholesale. Hourly always holds exactly 24 entries starting from the current
// hour, Daily exactly 5 entries starting today.
type WeatherSnapshot struct {
	Location Location          `json:"location"`
	Current  CurrentConditions `json:"current"`
	Hourly   []HourlyForecast  `json:"hourly"`
	Daily    []DailyForecast   `json:"daily"`
	Alerts   []Alert           `json:"alerts"`
}
