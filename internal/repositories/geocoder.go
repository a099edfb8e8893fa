package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"weather-dashboard/internal/common"
	"weather-dashboard/internal/models"
	"weather-dashboard/pkg/logger"
)

// SyntheticGeocodingRepository returns a fixed pair of candidate locations
// whose names interpolate the raw query. A real geocoding API would replace
// it behind the same contract.
type SyntheticGeocodingRepository struct {
	latency time.Duration
	l       *logger.Logger
}

func NewSyntheticGeocodingRepository(l *logger.Logger, latency time.Duration) *SyntheticGeocodingRepository {
	return &SyntheticGeocodingRepository{latency: latency, l: l}
}

func (r *SyntheticGeocodingRepository) Name() string {
	return "synthetic-geocoder"
}

// Search returns the candidate list for query. Blank or whitespace-only
// queries yield an empty result without the simulated delay.
func (r *SyntheticGeocodingRepository) Search(ctx context.Context, query string) ([]models.Location, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}

	if err := common.Sleep(ctx, r.latency); err != nil {
		return nil, err
	}

	r.l.Debug("search candidates generated", map[string]any{
		"repository": r.Name(),
		"query":      query,
	})

	return []models.Location{
		{
			ID:   "1",
			Name: fmt.Sprintf("%s City, Country", query),
			Lat:  40.7128,
			Lon:  -74.0060,
		},
		{
			ID:   "2",
			Name: fmt.Sprintf("%s Town, Country", query),
			Lat:  34.0522,
			Lon:  -118.2437,
		},
	}, nil
}
