package repositories

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"weather-dashboard/internal/common"
	"weather-dashboard/internal/models"
	"weather-dashboard/pkg/logger"
)

const (
	hourlyEntries = 24
	dailyEntries  = 5

	sunriseLiteral = "06:30"
	sunsetLiteral  = "18:30"

	// Probability threshold for emitting an alert: a uniform draw strictly
	// above it yields exactly one alert, anything else an empty set.
	alertThreshold = 0.8

	alertDescription = "Weather authorities have issued an alert for this region. Take necessary precautions."
)

var alertTypes = []string{
	"Thunderstorm",
	"Flood",
	"Extreme Temperature",
	"High Wind",
	"Dense Fog",
	"Hail",
	"Hurricane",
	"Tornado",
}

var alertTitles = []string{
	"Severe Weather Warning",
	"Flash Flood Watch",
	"Extreme Heat Advisory",
	"Wind Advisory",
	"Dense Fog Advisory",
	"Severe Thunderstorm Warning",
	"Hurricane Watch",
	"Tornado Warning",
}

// SyntheticWeatherRepository generates bounded pseudo-random weather snapshots
// instead of calling a provider. Every fetch draws fresh values; callers must
// not assume repeatability. A simulated latency models the network delay a
// real provider would add.
type SyntheticWeatherRepository struct {
	mu      sync.Mutex
	rng     *rand.Rand
	now     func() time.Time
	latency time.Duration
	l       *logger.Logger
}

// NewSyntheticWeatherRepository builds the repository. A nil rng gets a
// time-seeded source; tests inject a fixed seed for exact assertions.
func NewSyntheticWeatherRepository(l *logger.Logger, rng *rand.Rand, latency time.Duration) *SyntheticWeatherRepository {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &SyntheticWeatherRepository{
		rng:     rng,
		now:     time.Now,
		latency: latency,
		l:       l,
	}
}

func (r *SyntheticWeatherRepository) Name() string {
	return "synthetic"
}

// FetchSnapshot produces a full snapshot for the location after the simulated
// delay. The delay honors context cancellation.
func (r *SyntheticWeatherRepository) FetchSnapshot(ctx context.Context, loc models.Location) (*models.WeatherSnapshot, error) {
	if err := common.Sleep(ctx, r.latency); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()

	current := models.CurrentConditions{
		Temp:          r.intBetween(5, 34),
		FeelsLike:     r.intBetween(5, 34),
		Humidity:      r.intBetween(40, 99),
		WindSpeed:     r.intBetween(1, 20),
		WindDirection: r.intBetween(0, 359),
		Pressure:      r.intBetween(985, 1014),
		UVIndex:       r.intBetween(1, 10),
		Visibility:    r.intBetween(5, 9),
		Sunrise:       sunriseLiteral,
		Sunset:        sunsetLiteral,
	}
	cond := r.condition()
	current.Description = cond.Description
	current.Icon = cond.Icon

	daily := make([]models.DailyForecast, 0, dailyEntries)
	for i := 0; i < dailyEntries; i++ {
		cond := r.condition()
		daily = append(daily, models.DailyForecast{
			Date:          now.AddDate(0, 0, i).Format("2006-01-02"),
			TempMax:       current.Temp + r.intBetween(0, 9),
			TempMin:       current.Temp - r.intBetween(0, 9),
			Description:   cond.Description,
			Icon:          cond.Icon,
			Precipitation: r.rng.Float64() * 100,
			// Forecast humidity deliberately uses a narrower range than
			// current conditions.
			Humidity:  r.intBetween(60, 89),
			WindSpeed: r.intBetween(1, 20),
		})
	}

	hourly := make([]models.HourlyForecast, 0, hourlyEntries)
	for i := 0; i < hourlyEntries; i++ {
		cond := r.condition()
		hourly = append(hourly, models.HourlyForecast{
			Time:          fmt.Sprintf("%d:00", (now.Hour()+i)%24),
			Temp:          current.Temp - 5 + r.intBetween(0, 9),
			FeelsLike:     current.Temp - 5 + r.intBetween(0, 9),
			Description:   cond.Description,
			Icon:          cond.Icon,
			Precipitation: r.rng.Float64() * 100,
			Humidity:      r.intBetween(60, 89),
			WindSpeed:     r.intBetween(1, 20),
		})
	}

	alerts := []models.Alert{}
	if r.rng.Float64() > alertThreshold {
		alerts = append(alerts, models.Alert{
			ID:          "1",
			LocationID:  loc.ID,
			Type:        alertTypes[r.rng.Intn(len(alertTypes))],
			Severity:    models.Severities[r.rng.Intn(len(models.Severities))],
			Title:       alertTitles[r.rng.Intn(len(alertTitles))],
			Description: alertDescription,
			StartsAt:    now.Format(time.RFC3339),
			EndsAt:      now.Add(24 * time.Hour).Format(time.RFC3339),
		})
	}

	r.l.Debug("generated weather snapshot", map[string]any{
		"repository": r.Name(),
		"location":   loc.ID,
		"alerts":     len(alerts),
	})

	return &models.WeatherSnapshot{
		Location: loc,
		Current:  current,
		Hourly:   hourly,
		Daily:    daily,
		Alerts:   alerts,
	}, nil
}

// intBetween draws a uniform integer in [min, max].
func (r *SyntheticWeatherRepository) intBetween(min, max int) int {
	return min + r.rng.Intn(max-min+1)
}

func (r *SyntheticWeatherRepository) condition() models.Condition {
	return models.Conditions[r.rng.Intn(len(models.Conditions))]
}
