package repositories

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-dashboard/internal/models"
	"weather-dashboard/pkg/logger"
)

func newTestWeatherRepository(seed int64) *SyntheticWeatherRepository {
	l := logger.NewZapLogger("test-app", "error")
	return NewSyntheticWeatherRepository(l, rand.New(rand.NewSource(seed)), 0)
}

func TestSyntheticWeatherRepository_Name(t *testing.T) {
	repo := newTestWeatherRepository(1)
	assert.Equal(t, "synthetic", repo.Name())
}

func TestSyntheticWeatherRepository_FetchSnapshot_Shape(t *testing.T) {
	repo := newTestWeatherRepository(42)
	fixedNow := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return fixedNow }

	loc := models.Location{ID: "1", Name: "Paris City, Country", Lat: 40.7128, Lon: -74.0060}

	snapshot, err := repo.FetchSnapshot(context.Background(), loc)
	require.NoError(t, err)
	require.NotNil(t, snapshot)

	assert.Equal(t, loc, snapshot.Location)
	assert.Len(t, snapshot.Hourly, 24)
	assert.Len(t, snapshot.Daily, 5)

	current := snapshot.Current
	assert.GreaterOrEqual(t, current.Temp, 5)
	assert.LessOrEqual(t, current.Temp, 34)
	assert.GreaterOrEqual(t, current.FeelsLike, 5)
	assert.LessOrEqual(t, current.FeelsLike, 34)
	assert.GreaterOrEqual(t, current.Humidity, 40)
	assert.LessOrEqual(t, current.Humidity, 99)
	assert.GreaterOrEqual(t, current.WindSpeed, 1)
	assert.LessOrEqual(t, current.WindSpeed, 20)
	assert.GreaterOrEqual(t, current.WindDirection, 0)
	assert.LessOrEqual(t, current.WindDirection, 359)
	assert.GreaterOrEqual(t, current.Pressure, 985)
	assert.LessOrEqual(t, current.Pressure, 1014)
	assert.GreaterOrEqual(t, current.UVIndex, 1)
	assert.LessOrEqual(t, current.UVIndex, 10)
	assert.GreaterOrEqual(t, current.Visibility, 5)
	assert.LessOrEqual(t, current.Visibility, 9)
	assert.Equal(t, "06:30", current.Sunrise)
	assert.Equal(t, "18:30", current.Sunset)
	assert.True(t, models.ValidIcon(current.Icon), "unexpected icon %q", current.Icon)
	assert.NotEmpty(t, current.Description)

	for i, h := range snapshot.Hourly {
		assert.Equal(t, fmt.Sprintf("%d:00", (9+i)%24), h.Time)
		assert.GreaterOrEqual(t, h.Temp, current.Temp-5)
		assert.LessOrEqual(t, h.Temp, current.Temp+4)
		assert.GreaterOrEqual(t, h.FeelsLike, current.Temp-5)
		assert.LessOrEqual(t, h.FeelsLike, current.Temp+4)
		assert.GreaterOrEqual(t, h.Humidity, 60)
		assert.LessOrEqual(t, h.Humidity, 89)
		assert.GreaterOrEqual(t, h.Precipitation, 0.0)
		assert.Less(t, h.Precipitation, 100.0)
		assert.True(t, models.ValidIcon(h.Icon))
	}

	for i, d := range snapshot.Daily {
		assert.Equal(t, fixedNow.AddDate(0, 0, i).Format("2006-01-02"), d.Date)
		assert.GreaterOrEqual(t, d.TempMax, current.Temp)
		assert.LessOrEqual(t, d.TempMax, current.Temp+9)
		assert.GreaterOrEqual(t, d.TempMin, current.Temp-9)
		assert.LessOrEqual(t, d.TempMin, current.Temp)
		assert.GreaterOrEqual(t, d.Humidity, 60)
		assert.LessOrEqual(t, d.Humidity, 89)
		assert.GreaterOrEqual(t, d.WindSpeed, 1)
		assert.LessOrEqual(t, d.WindSpeed, 20)
		assert.True(t, models.ValidIcon(d.Icon))
	}
}

func TestSyntheticWeatherRepository_FetchSnapshot_HourlyTimesWrapMidnight(t *testing.T) {
	repo := newTestWeatherRepository(7)
	repo.now = func() time.Time { return time.Date(2025, 6, 1, 22, 15, 0, 0, time.UTC) }

	snapshot, err := repo.FetchSnapshot(context.Background(), models.Location{ID: "1"})
	require.NoError(t, err)

	assert.Equal(t, "22:00", snapshot.Hourly[0].Time)
	assert.Equal(t, "23:00", snapshot.Hourly[1].Time)
	assert.Equal(t, "0:00", snapshot.Hourly[2].Time)
	assert.Equal(t, "1:00", snapshot.Hourly[3].Time)
}

func TestSyntheticWeatherRepository_FetchSnapshot_FreshDraws(t *testing.T) {
	repo := newTestWeatherRepository(3)

	temps := make(map[int]bool)
	for i := 0; i < 50; i++ {
		snapshot, err := repo.FetchSnapshot(context.Background(), models.Location{ID: "1"})
		require.NoError(t, err)
		temps[snapshot.Current.Temp] = true
	}

	assert.Greater(t, len(temps), 1, "every fetch should draw fresh values")
}

func TestSyntheticWeatherRepository_FetchSnapshot_Alerts(t *testing.T) {
	repo := newTestWeatherRepository(99)
	fixedNow := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return fixedNow }

	const runs = 1000
	withAlert := 0
	for i := 0; i < runs; i++ {
		snapshot, err := repo.FetchSnapshot(context.Background(), models.Location{ID: "loc-9"})
		require.NoError(t, err)
		require.NotNil(t, snapshot.Alerts)

		if len(snapshot.Alerts) == 0 {
			continue
		}
		withAlert++

		require.Len(t, snapshot.Alerts, 1, "at most one alert per snapshot")
		alert := snapshot.Alerts[0]
		assert.Equal(t, "1", alert.ID)
		assert.Equal(t, "loc-9", alert.LocationID)
		assert.Contains(t, alertTypes, alert.Type)
		assert.Contains(t, alertTitles, alert.Title)
		assert.True(t, alert.Severity.Valid())
		assert.Equal(t, alertDescription, alert.Description)
		assert.Equal(t, fixedNow.Format(time.RFC3339), alert.StartsAt)
		assert.Equal(t, fixedNow.Add(24*time.Hour).Format(time.RFC3339), alert.EndsAt)
	}

	// Alerts fire on roughly one in five fetches.
	assert.Greater(t, withAlert, runs/10)
	assert.Less(t, withAlert, runs*3/10)
}

func TestSyntheticWeatherRepository_FetchSnapshot_ContextCancellation(t *testing.T) {
	l := logger.NewZapLogger("test-app", "error")
	repo := NewSyntheticWeatherRepository(l, rand.New(rand.NewSource(1)), time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	snapshot, err := repo.FetchSnapshot(ctx, models.Location{ID: "1"})
	assert.Nil(t, snapshot)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
