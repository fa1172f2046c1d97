package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/nettikantis/TravelCompanionApp/internal/api/http"
	"github.com/nettikantis/TravelCompanionApp/internal/config"
	"github.com/nettikantis/TravelCompanionApp/internal/store"
	"github.com/nettikantis/TravelCompanionApp/internal/travel"
	"github.com/nettikantis/TravelCompanionApp/internal/travel/providers"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// Bookmark store (postgres or sqlite, by DATABASE_URL).
	bookmarks, err := store.Open(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to open bookmark store: %v", err)
	}
	defer bookmarks.Close()

	// Provider clients. OpenWeatherMap serves both geocoding and weather
	// behind the same key.
	openWeather := providers.NewOpenWeatherProvider(httpClient, cfg.OpenWeatherAPIKey)

	// Capability orchestrators: keyed provider first, free fallback second.
	services := httpapi.Services{
		Geocode: travel.NewGeocodeService(
			openWeather,
			providers.NewNominatimProvider(httpClient, cfg.NominatimEmail),
		),
		Places: travel.NewPlacesService(
			providers.NewFoursquareProvider(httpClient, cfg.FoursquareAPIKey),
			providers.NewOverpassProvider(httpClient),
		),
		Weather: travel.NewWeatherService(
			openWeather,
			providers.NewOpenMeteoProvider(httpClient),
		),
		Routes: travel.NewRouteService(
			providers.NewORSProvider(httpClient, cfg.ORSAPIKey),
			providers.NewOSRMProvider(httpClient),
		),
		Currency: travel.NewCurrencyService(
			providers.NewExchangeRateProvider(httpClient, cfg.CurrencyAPIBase, cfg.CurrencyAPIKey),
		),
		Bookmarks:    bookmarks,
		DefaultUnits: cfg.DefaultUnits,
	}

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "travel-dashboard",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, services)

	// Start server with graceful shutdown
	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
