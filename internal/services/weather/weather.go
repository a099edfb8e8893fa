package weather

import (
	"context"
	"sync"
	"time"

	"weather-dashboard/internal/models"
	"weather-dashboard/internal/repositories"
	"weather-dashboard/pkg/logger"
)

const defaultCacheTTL = 30 * time.Minute

// WeatherService fronts the weather repository. It converts any retrieval
// failure into the single generic fetch error and owns the pre-warmed
// snapshot cache for favorite locations.
type WeatherService struct {
	repo  repositories.WeatherRepository
	cache *ttlCache[string, models.WeatherSnapshot]
	l     *logger.Logger
}

func NewWeatherService(repo repositories.WeatherRepository, l *logger.Logger) *WeatherService {
	return &WeatherService{
		repo:  repo,
		cache: newTTLCache[string, models.WeatherSnapshot](defaultCacheTTL),
		l:     l,
	}
}

// Fetch produces a fresh snapshot for the location. It never serves from the
// cache: every call draws new values. No retry, no partial data on failure.
func (s *WeatherService) Fetch(ctx context.Context, loc models.Location) (*models.WeatherSnapshot, error) {
	snapshot, err := s.repo.FetchSnapshot(ctx, loc)
	if err != nil {
		s.l.Error(err, map[string]any{
			"repository": s.repo.Name(),
			"location":   loc.ID,
		})
		return nil, models.ErrFetchFailed
	}

	s.l.Info("fetched weather snapshot", map[string]any{
		"repository": s.repo.Name(),
		"location":   loc.ID,
		"alerts":     len(snapshot.Alerts),
	})

	return snapshot, nil
}

// WarmFavorites pre-generates snapshots for the given locations into the
// cache so the dashboard's favorites strip does not pay the per-tile fetch
// latency. Failures are logged and skipped.
func (s *WeatherService) WarmFavorites(ctx context.Context, locations []models.Location) {
	var wg sync.WaitGroup

	for _, loc := range locations {
		loc := loc
		wg.Add(1)
		go func() {
			defer wg.Done()

			snapshot, err := s.repo.FetchSnapshot(ctx, loc)
			if err != nil {
				s.l.Warning("failed to warm snapshot", map[string]any{
					"location": loc.ID,
					"err":      err.Error(),
				})
				return
			}
			s.cache.Set(loc.ID, snapshot)
		}()
	}

	wg.Wait()

	s.l.Debug("warmed favorite snapshots", map[string]any{"locations": len(locations)})
}

// CachedSnapshot returns the warmed snapshot for a location ID, if present.
func (s *WeatherService) CachedSnapshot(locationID string) (*models.WeatherSnapshot, bool) {
	return s.cache.Get(locationID)
}

// CachedSnapshots returns all unexpired warmed snapshots.
func (s *WeatherService) CachedSnapshots() []*models.WeatherSnapshot {
	return s.cache.Values()
}

// Evict drops a location's warmed snapshot, e.g. after it is unfavorited.
func (s *WeatherService) Evict(locationID string) {
	s.cache.Delete(locationID)
}
