package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"

	"weather-dashboard/internal/services/locations"
	"weather-dashboard/internal/services/weather"
	"weather-dashboard/pkg/logger"
)

const warmTimeout = 30 * time.Second

// Scheduler periodically re-warms cached snapshots for favorite locations so
// the dashboard renders them without waiting out the simulated fetch latency.
type Scheduler struct {
	scheduler *gocron.Scheduler
	weather   *weather.WeatherService
	locations *locations.LocationService
	interval  time.Duration
	l         *logger.Logger
}

// New creates a Scheduler running every interval.
func New(weatherSvc *weather.WeatherService, locationSvc *locations.LocationService, interval time.Duration, l *logger.Logger) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		weather:   weatherSvc,
		locations: locationSvc,
		interval:  interval,
		l:         l,
	}
}

// Start schedules the periodic job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 15
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(func() {
		favorites := s.locations.Favorites()
		if len(favorites) == 0 {
			return
		}

		s.l.Debug("refreshing favorite snapshots", map[string]any{"favorites": len(favorites)})

		ctx, cancel := context.WithTimeout(context.Background(), warmTimeout)
		defer cancel()

		s.weather.WarmFavorites(ctx, favorites)
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
