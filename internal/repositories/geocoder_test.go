package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-dashboard/pkg/logger"
)

func TestSyntheticGeocodingRepository_Name(t *testing.T) {
	repo := NewSyntheticGeocodingRepository(logger.NewZapLogger("test-app", "error"), 0)
	assert.Equal(t, "synthetic-geocoder", repo.Name())
}

func TestSyntheticGeocodingRepository_Search_Candidates(t *testing.T) {
	repo := NewSyntheticGeocodingRepository(logger.NewZapLogger("test-app", "error"), 0)

	results, err := repo.Search(context.Background(), "Paris")
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "1", results[0].ID)
	assert.Equal(t, "Paris City, Country", results[0].Name)
	assert.Equal(t, 40.7128, results[0].Lat)
	assert.Equal(t, -74.0060, results[0].Lon)

	assert.Equal(t, "2", results[1].ID)
	assert.Equal(t, "Paris Town, Country", results[1].Name)
	assert.Equal(t, 34.0522, results[1].Lat)
	assert.Equal(t, -118.2437, results[1].Lon)
}

func TestSyntheticGeocodingRepository_Search_BlankQuery(t *testing.T) {
	// A large latency proves blank queries skip the simulated delay.
	repo := NewSyntheticGeocodingRepository(logger.NewZapLogger("test-app", "error"), time.Minute)

	for _, query := range []string{"", "   ", "\t\n"} {
		results, err := repo.Search(context.Background(), query)
		assert.NoError(t, err)
		assert.Empty(t, results)
	}
}

func TestSyntheticGeocodingRepository_Search_ContextCancellation(t *testing.T) {
	repo := NewSyntheticGeocodingRepository(logger.NewZapLogger("test-app", "error"), time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := repo.Search(ctx, "Paris")
	assert.Nil(t, results)
	assert.ErrorIs(t, err, context.Canceled)
}
