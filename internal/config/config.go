package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig carries every tunable the orchestrators and the HTTP layer need.
// All provider keys are optional: a missing key makes the matching capability
// fall back to its free provider instead of failing.
type AppConfig struct {
	// Keyed provider credentials.
	OpenWeatherAPIKey string // geocoding + weather
	FoursquareAPIKey  string // places
	ORSAPIKey         string // routing
	CurrencyAPIKey    string // exchange rates

	// CurrencyAPIBase is the rates endpoint; defaults to exchangerate.host.
	CurrencyAPIBase string

	// NominatimEmail identifies this deployment to the rate-limited free
	// geocoder via the User-Agent header.
	NominatimEmail string

	// DefaultUnits is the unit system assumed when a request names none.
	DefaultUnits string

	// HTTPTimeout bounds every outbound provider call. Never infinite.
	HTTPTimeout time.Duration

	// DatabaseURL selects the bookmark store: a postgres:// URL or a SQLite
	// file path.
	DatabaseURL string

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.OpenWeatherAPIKey = os.Getenv("OPENWEATHERMAP_API_KEY")
	cfg.FoursquareAPIKey = os.Getenv("FOURSQUARE_API_KEY")
	cfg.ORSAPIKey = os.Getenv("OPENROUTESERVICE_API_KEY")
	cfg.CurrencyAPIKey = os.Getenv("EXCHANGE_RATE_API_KEY")

	cfg.CurrencyAPIBase = getenvDefault("CURRENCY_API_BASE", "https://api.exchangerate.host/latest")
	cfg.NominatimEmail = getenvDefault("NOMINATIM_EMAIL", "noreply@example.com")
	cfg.DefaultUnits = getenvDefault("DEFAULT_UNITS", "metric")
	cfg.DatabaseURL = getenvDefault("DATABASE_URL", "travel.db")
	cfg.Port = getenvDefault("PORT", "8080")

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "20s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	cfg.HTTPTimeout = timeout

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
