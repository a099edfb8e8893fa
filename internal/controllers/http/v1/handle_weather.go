package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"weather-dashboard/internal/models"
)

// GetWeather godoc
// @Summary Get weather snapshot
// @Description Produces a full weather snapshot (current, 24h hourly, 5-day daily, alerts) for a location. Every call generates fresh data.
// @Tags Weather
// @Accept json
// @Produce json
// @Param id query string true "Location identifier" example(1)
// @Param name query string false "Location display name" example(Paris City, Country)
// @Param lat query number true "Latitude coordinate (-90 to 90)" minimum(-90) maximum(90) example(40.7128)
// @Param lon query number true "Longitude coordinate (-180 to 180)" minimum(-180) maximum(180) example(-74.006)
// @Success 200 {object} models.WeatherSnapshot "Successful response"
// @Failure 400 {object} ErrorResponse "Bad request - invalid parameters"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/v1/weather [get]
func (r *routes) handleWeatherFetch(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Missing required parameter: id",
		})
	}

	lat := c.Query("lat")
	lon := c.Query("lon")

	if lat == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Missing required parameter: lat",
		})
	}

	if lon == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Missing required parameter: lon",
		})
	}

	latFloat, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Invalid latitude format",
		})
	}

	if latFloat < -90 || latFloat > 90 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Latitude must be between -90 and 90",
		})
	}

	lonFloat, err := strconv.ParseFloat(lon, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Invalid longitude format",
		})
	}

	if lonFloat < -180 || lonFloat > 180 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Longitude must be between -180 and 180",
		})
	}

	loc := models.Location{
		ID:   id,
		Name: c.Query("name"),
		Lat:  latFloat,
		Lon:  lonFloat,
	}

	snapshot, err := r.weather.Fetch(c.Context(), loc)
	if err != nil {
		r.l.Error(err, map[string]any{
			"location": loc.ID,
			"lat":      latFloat,
			"lon":      lonFloat,
		})

		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: models.ErrFetchFailed.Error(),
		})
	}

	return c.JSON(snapshot)
}

// GetFavoriteSnapshots godoc
// @Summary List pre-warmed snapshots for favorite locations
// @Tags Weather
// @Produce json
// @Success 200 {array} models.WeatherSnapshot
// @Router /api/v1/favorites/snapshots [get]
func (r *routes) handleFavoriteSnapshots(c *fiber.Ctx) error {
	snapshots := r.weather.CachedSnapshots()
	if snapshots == nil {
		snapshots = []*models.WeatherSnapshot{}
	}
	return c.JSON(snapshots)
}
