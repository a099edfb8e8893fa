package http

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"weather-dashboard/internal/services/auth"
	"weather-dashboard/internal/services/locations"
	"weather-dashboard/internal/services/weather"
	"weather-dashboard/pkg/logger"
)

type routes struct {
	weather   *weather.WeatherService
	locations *locations.LocationService
	auth      *auth.AuthService
	l         *logger.Logger
}

var validate = validator.New()

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"failed to load weather data"`
}

func NewRouter(
	app *fiber.App,
	weatherService *weather.WeatherService,
	locationService *locations.LocationService,
	authService *auth.AuthService,
	l *logger.Logger,
) {
	r := &routes{
		weather:   weatherService,
		locations: locationService,
		auth:      authService,
		l:         l,
	}

	// Swagger documentation
	app.Get("/swagger/doc.json", func(c *fiber.Ctx) error {
		swaggerData, err := os.ReadFile("docs/swagger.json")
		if err != nil {
			return c.Status(fiber.ErrInternalServerError.Code).JSON(fiber.Map{"error": "Failed to read Swagger documentation"})
		}

		c.Set("Content-Type", "application/json")
		return c.Send(swaggerData)
	})

	app.Get("/swagger/*", swagger.New(swagger.Config{
		URL:         "/swagger/doc.json",
		DeepLinking: true,
	}))

	// API routes
	v1 := app.Group("/api/v1")

	v1.Get("/weather", r.handleWeatherFetch)

	v1.Get("/locations/search", r.handleSearch)
	v1.Get("/locations/current", r.handleCurrentLocation)
	v1.Put("/locations/current", r.handleSetCurrentLocation)

	v1.Get("/favorites", r.handleListFavorites)
	v1.Put("/favorites", r.handleAddFavorite)
	v1.Delete("/favorites/:id", r.handleRemoveFavorite)
	v1.Get("/favorites/snapshots", r.handleFavoriteSnapshots)

	v1.Get("/recent-searches", r.handleListRecentSearches)
	v1.Post("/recent-searches", r.handleRecordRecentSearch)
	v1.Delete("/recent-searches", r.handleClearRecentSearches)

	v1.Post("/auth/login", r.handleLogin)
	v1.Post("/auth/register", r.handleRegister)
	v1.Post("/auth/logout", r.handleLogout)
	v1.Get("/auth/session", r.handleSession)
}
