package locations

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"weather-dashboard/internal/models"
	"weather-dashboard/internal/repositories"
	"weather-dashboard/internal/storage"
	"weather-dashboard/pkg/logger"
)

// Recent searches keep only the five most recent entries.
const maxRecentSearches = 5

// LocationService owns the favorites list, the recent-search history and the
// currently-displayed location view. It is constructed once at startup and
// passed to consumers; there are no ambient singletons. Both lists are
// deduplicated by location ID and persisted through the store.
type LocationService struct {
	mu       sync.Mutex
	store    storage.Store
	geocoder repositories.GeocodingRepository
	l        *logger.Logger

	favorites []models.Location
	recents   []models.Location
	current   *models.Location
}

// NewLocationService loads persisted state from the store. Absent or
// malformed records are treated as empty state, never as an error.
func NewLocationService(store storage.Store, geocoder repositories.GeocodingRepository, l *logger.Logger) *LocationService {
	s := &LocationService{
		store:    store,
		geocoder: geocoder,
		l:        l,
	}
	s.favorites = s.loadList(storage.KeyFavoriteLocations)
	s.recents = s.loadList(storage.KeyRecentSearches)
	return s
}

func (s *LocationService) loadList(key string) []models.Location {
	var list []models.Location
	if err := storage.ReadJSON(s.store, key, &list); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.l.Warning("treating unreadable record as empty", map[string]any{
				"key": key,
				"err": err.Error(),
			})
		}
		return nil
	}
	return list
}

// Favorites returns a copy of the favorites list.
func (s *LocationService) Favorites() []models.Location {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Location(nil), s.favorites...)
}

// AddToFavorites upserts the location by ID with IsFavorite set and persists
// the whole list. The current-location view is updated when it matches.
func (s *LocationService) AddToFavorites(loc models.Location) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loc.IsFavorite = true

	replaced := false
	for i := range s.favorites {
		if s.favorites[i].ID == loc.ID {
			s.favorites[i] = loc
			replaced = true
			break
		}
	}
	if !replaced {
		s.favorites = append(s.favorites, loc)
	}

	if s.current != nil && s.current.ID == loc.ID {
		updated := loc
		s.current = &updated
	}

	s.persist(storage.KeyFavoriteLocations, s.favorites)
}

// RemoveFromFavorites filters the entry out and persists. When the removed
// location is the currently-displayed one, its favorite flag is cleared on
// the in-memory view without a refetch.
func (s *LocationService) RemoveFromFavorites(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.favorites[:0]
	for _, loc := range s.favorites {
		if loc.ID != id {
			kept = append(kept, loc)
		}
	}
	s.favorites = kept

	if s.current != nil && s.current.ID == id {
		s.current.IsFavorite = false
	}

	s.persist(storage.KeyFavoriteLocations, s.favorites)
}

// Search returns geocoder candidates with IsFavorite computed by membership
// in the current favorites list.
func (s *LocationService) Search(ctx context.Context, query string) ([]models.Location, error) {
	candidates, err := s.geocoder.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range candidates {
		candidates[i].IsFavorite = s.isFavoriteLocked(candidates[i].ID)
	}
	return candidates, nil
}

// RecordRecentSearch prepends the location and truncates to the five most
// recent. An ID already in the list leaves it untouched: no reorder, no bump.
func (s *LocationService) RecordRecentSearch(loc models.Location) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.recents {
		if r.ID == loc.ID {
			return
		}
	}

	s.recents = append([]models.Location{loc}, s.recents...)
	if len(s.recents) > maxRecentSearches {
		s.recents = s.recents[:maxRecentSearches]
	}

	s.persist(storage.KeyRecentSearches, s.recents)
}

// RecentSearches returns a copy of the history, most recent first.
func (s *LocationService) RecentSearches() []models.Location {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Location(nil), s.recents...)
}

// ClearRecentSearches empties the history and erases the persisted record.
func (s *LocationService) ClearRecentSearches() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recents = nil
	if err := s.store.Delete(storage.KeyRecentSearches); err != nil {
		s.l.Warning("failed to erase recent searches", map[string]any{"err": err.Error()})
	}
}

// SetCurrentLocation replaces the currently-displayed location view.
func (s *LocationService) SetCurrentLocation(loc models.Location) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loc.IsFavorite = s.isFavoriteLocked(loc.ID)
	s.current = &loc
}

// CurrentLocation returns a copy of the currently-displayed location, if any.
func (s *LocationService) CurrentLocation() (models.Location, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return models.Location{}, false
	}
	return *s.current, true
}

func (s *LocationService) isFavoriteLocked(id string) bool {
	for _, f := range s.favorites {
		if f.ID == id {
			return true
		}
	}
	return false
}

// persist writes the list under key. Write errors are logged and swallowed:
// a failed persist must not break the user interaction.
func (s *LocationService) persist(key string, list []models.Location) {
	if list == nil {
		list = []models.Location{}
	}
	if err := storage.WriteJSON(s.store, key, list); err != nil {
		s.l.Warning("failed to persist locations", map[string]any{
			"key": key,
			"err": err.Error(),
		})
	}
}
