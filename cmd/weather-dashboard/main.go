package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"weather-dashboard/config"
	v1 "weather-dashboard/internal/controllers/http/v1"
	"weather-dashboard/internal/repositories"
	"weather-dashboard/internal/scheduler"
	"weather-dashboard/internal/services/auth"
	"weather-dashboard/internal/services/locations"
	"weather-dashboard/internal/services/weather"
	"weather-dashboard/internal/storage"
	"weather-dashboard/pkg/httpserver"
	"weather-dashboard/pkg/logger"
	"weather-dashboard/pkg/observe"
)

// @title Weather Dashboard API
// @version 1.0.0
// @description Backend for a weather dashboard: synthetic weather snapshots, location search, favorites and recent searches with file-backed persistence, and mock authentication.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http

// @tag.name Weather
// @tag.description Weather snapshot operations
// @tag.name Locations
// @tag.description Location search, favorites and recent searches
// @tag.name Auth
// @tag.description Mock session management
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Println("no .env file loaded:", err)
	}

	cnf, err := config.NewConfig()
	if err != nil {
		fmt.Println("cannot load configuration:", err)
		os.Exit(1)
	}

	writers := []io.Writer{os.Stdout}
	sentryHook := observe.NewSentryHook(cnf.App.Env, cnf.App.Name, cnf.Sentry.DSN, cnf.IsDevelopment())
	if sentryHook != nil {
		writers = append(writers, sentryHook)
		defer sentryHook.Flush()
	}

	l := logger.NewZapLogger(cnf.App.Name, cnf.Log.Level, writers...)

	store, err := storage.NewFileStore(cnf.Data.Dir)
	if err != nil {
		l.Fatal("cannot initialize data store", map[string]any{"dir": cnf.Data.Dir, "err": err})
	}

	weatherRepo := repositories.NewSyntheticWeatherRepository(l, nil, cnf.FetchDelay())
	geocodingRepo := repositories.NewSyntheticGeocodingRepository(l, cnf.SearchDelay())

	weatherService := weather.NewWeatherService(weatherRepo, l)
	locationService := locations.NewLocationService(store, geocodingRepo, l)
	authService := auth.NewAuthService(store, l, cnf.AuthDelay())

	refresher := scheduler.New(weatherService, locationService, cnf.RefreshInterval(), l)
	if err := refresher.Start(); err != nil {
		l.Error(err, map[string]any{"interval": cnf.Simulation.RefreshInterval})
	}
	defer refresher.Stop()

	app := httpserver.InitFiberServer(cnf.App.Name)

	v1.NewRouter(
		app,
		weatherService,
		locationService,
		authService,
		l,
	)

	go func() {
		if err := app.Listen(":" + cnf.Server.Port); err != nil {
			l.Fatal("cannot run the server", map[string]any{"err": err})
		}
	}()

	l.Info("application started successfully", map[string]any{"port": cnf.Server.Port, "env": cnf.App.Env})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		_ = app.ShutdownWithContext(shutdownCtx)
		_ = l.Stop()
		cancel()
	}()

	select {
	case <-sigCh:
		fmt.Println("received shutdown signal")
	case <-ctx.Done():
		fmt.Println("context cancelled")
	}
}
