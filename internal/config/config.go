package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings for the game.
//
// Fields:
// - Env: The current environment (local, development, production); controls logging.
// - Geocoder: Which geocoding provider resolves player addresses (nominatim, google).
// - GeocoderAPIKey: API key for providers that need one (required for Google).
// - WikiLanguage: Wikipedia language edition the articles are drawn from.
// - WikiTimeout: Per-request timeout for Wikipedia API calls.
// - SampleRadius: Geosearch radius in meters when sampling random articles.
type Config struct {
	Env            string        // Env is the current environment: local, development, production.
	Geocoder       string        // Geocoder selects the geocoding provider.
	GeocoderAPIKey string        // The API key for the geocoding provider, if it needs one.
	WikiLanguage   string        // Wikipedia language edition, e.g. "en".
	WikiTimeout    time.Duration // Timeout for a single Wikipedia API request.
	SampleRadius   int           // Geosearch radius for random article sampling, meters.
}

// MustLoad loads the configuration from the environment (and a .env file
// when present) and panics on malformed values.
func MustLoad() *Config {
	_ = godotenv.Load()

	timeout, err := time.ParseDuration(setDefaultEnv("GUESSIPEDIA_WIKI_TIMEOUT", "10s"))
	if err != nil {
		panic("failed to parse wikipedia timeout from configuration")
	}

	radius, err := strconv.Atoi(setDefaultEnv("GUESSIPEDIA_SAMPLE_RADIUS", "10000"))
	if err != nil {
		panic("failed to parse sample radius from configuration, must be an integer")
	}

	return &Config{
		Env:            setDefaultEnv("GUESSIPEDIA_ENV", "local"),
		Geocoder:       setDefaultEnv("GUESSIPEDIA_GEOCODER", "nominatim"), // Free provider by default
		GeocoderAPIKey: os.Getenv("GUESSIPEDIA_GEOCODER_KEY"),
		WikiLanguage:   setDefaultEnv("GUESSIPEDIA_WIKI_LANGUAGE", "en"),
		WikiTimeout:    timeout,
		SampleRadius:   radius,
	}
}

func setDefaultEnv(key, override string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		value = override
	}

	return value
}
