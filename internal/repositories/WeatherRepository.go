package repositories

import (
	"context"

	"weather-dashboard/internal/models"
)

// WeatherRepository abstracts a weather data source. The synthetic repository
// is the only implementation today; a real provider integration would slot in
// behind the same contract.
type WeatherRepository interface {
	Name() string
	FetchSnapshot(ctx context.Context, loc models.Location) (*models.WeatherSnapshot, error)
}

// GeocodingRepository abstracts a location search source.
type GeocodingRepository interface {
	Name() string
	Search(ctx context.Context, query string) ([]models.Location, error)
}
