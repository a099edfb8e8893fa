package http

import (
	"github.com/gofiber/fiber/v2"

	"weather-dashboard/internal/models"
)

// locationRequest is the body for favorites, recent searches and the current
// location view.
type locationRequest struct {
	ID         string  `json:"id" validate:"required"`
	Name       string  `json:"name" validate:"required"`
	Lat        float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lon        float64 `json:"lon" validate:"gte=-180,lte=180"`
	IsFavorite bool    `json:"isFavorite"`
}

func (lr locationRequest) toLocation() models.Location {
	return models.Location{
		ID:         lr.ID,
		Name:       lr.Name,
		Lat:        lr.Lat,
		Lon:        lr.Lon,
		IsFavorite: lr.IsFavorite,
	}
}

func (r *routes) bindLocation(c *fiber.Ctx) (locationRequest, error) {
	var req locationRequest
	if err := c.BodyParser(&req); err != nil {
		return req, err
	}
	if err := validate.Struct(req); err != nil {
		return req, err
	}
	return req, nil
}

// SearchLocations godoc
// @Summary Search for locations
// @Description Returns candidate locations for a query. Blank queries yield an empty list.
// @Tags Locations
// @Produce json
// @Param q query string false "Search query" example(Paris)
// @Success 200 {array} models.Location
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/locations/search [get]
func (r *routes) handleSearch(c *fiber.Ctx) error {
	results, err := r.locations.Search(c.Context(), c.Query("q"))
	if err != nil {
		r.l.Error(err, map[string]any{"query": c.Query("q")})
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to search locations",
		})
	}
	if results == nil {
		results = []models.Location{}
	}
	return c.JSON(results)
}

func (r *routes) handleCurrentLocation(c *fiber.Ctx) error {
	loc, ok := r.locations.CurrentLocation()
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: "no current location",
		})
	}
	return c.JSON(loc)
}

func (r *routes) handleSetCurrentLocation(c *fiber.Ctx) error {
	req, err := r.bindLocation(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}

	r.locations.SetCurrentLocation(req.toLocation())

	loc, _ := r.locations.CurrentLocation()
	return c.JSON(loc)
}

// ListFavorites godoc
// @Summary List favorite locations
// @Tags Locations
// @Produce json
// @Success 200 {array} models.Location
// @Router /api/v1/favorites [get]
func (r *routes) handleListFavorites(c *fiber.Ctx) error {
	favorites := r.locations.Favorites()
	if favorites == nil {
		favorites = []models.Location{}
	}
	return c.JSON(favorites)
}

// AddFavorite godoc
// @Summary Add or update a favorite location
// @Description Upserts by location id and returns the updated favorites list.
// @Tags Locations
// @Accept json
// @Produce json
// @Param location body locationRequest true "Location to pin"
// @Success 200 {array} models.Location
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/favorites [put]
func (r *routes) handleAddFavorite(c *fiber.Ctx) error {
	req, err := r.bindLocation(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}

	r.locations.AddToFavorites(req.toLocation())
	return c.JSON(r.locations.Favorites())
}

func (r *routes) handleRemoveFavorite(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Missing required parameter: id",
		})
	}

	r.locations.RemoveFromFavorites(id)
	r.weather.Evict(id)

	favorites := r.locations.Favorites()
	if favorites == nil {
		favorites = []models.Location{}
	}
	return c.JSON(favorites)
}

func (r *routes) handleListRecentSearches(c *fiber.Ctx) error {
	recents := r.locations.RecentSearches()
	if recents == nil {
		recents = []models.Location{}
	}
	return c.JSON(recents)
}

func (r *routes) handleRecordRecentSearch(c *fiber.Ctx) error {
	req, err := r.bindLocation(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}

	r.locations.RecordRecentSearch(req.toLocation())
	return c.Status(fiber.StatusCreated).JSON(r.locations.RecentSearches())
}

func (r *routes) handleClearRecentSearches(c *fiber.Ctx) error {
	r.locations.ClearRecentSearches()
	return c.SendStatus(fiber.StatusNoContent)
}
