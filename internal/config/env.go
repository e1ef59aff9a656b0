// Package config loads service configuration from the environment,
// with an optional .env file for local development.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from the nearest .env file.
// Already-set variables are never overridden. A missing file is fine.
func LoadEnv() error {
	for _, path := range []string{".env", "../.env", "../../.env"} {
		if _, err := os.Stat(path); err == nil {
			return godotenv.Load(path)
		}
	}
	return nil
}

// GetEnv gets environment variable with default
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvInt gets integer environment variable with default
func GetEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetEnvFloat gets float environment variable with default
func GetEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// GetEnvBool gets boolean environment variable with default
func GetEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		switch strings.ToLower(value) {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
	}
	return defaultValue
}

// GetEnvDuration gets duration environment variable with default
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// Config holds the resolver service settings.
type Config struct {
	// HTTP server
	Host string
	Port int

	// Gazetteer data
	GazetteerPath       string
	LocalityAliasPath   string
	DeliveryHistoryPath string
	WatchGazetteer      bool
	UseDatabase         bool

	// External geocoding
	ExternalGeocoder bool
	NominatimURL     string
	GeocodeTimeout   time.Duration

	// Matching and prediction
	MatchThreshold float64
	PredictSeed    int64

	// Logging
	LogLevel string
	LogDev   bool
}

// FromEnv reads the full service configuration.
func FromEnv() Config {
	return Config{
		Host:                GetEnv("ADDRESSPIN_HOST", "0.0.0.0"),
		Port:                GetEnvInt("ADDRESSPIN_PORT", 8080),
		GazetteerPath:       GetEnv("ADDRESSPIN_GAZETTEER", ""),
		LocalityAliasPath:   GetEnv("ADDRESSPIN_LOCALITY_ALIASES", ""),
		DeliveryHistoryPath: GetEnv("ADDRESSPIN_DELIVERY_HISTORY", ""),
		WatchGazetteer:      GetEnvBool("ADDRESSPIN_WATCH_GAZETTEER", true),
		UseDatabase:         GetEnvBool("ADDRESSPIN_USE_DB", false),
		ExternalGeocoder:    GetEnvBool("ADDRESSPIN_EXTERNAL_GEOCODER", false),
		NominatimURL:        GetEnv("ADDRESSPIN_NOMINATIM_URL", ""),
		GeocodeTimeout:      GetEnvDuration("ADDRESSPIN_GEOCODE_TIMEOUT", 5*time.Second),
		MatchThreshold:      GetEnvFloat("ADDRESSPIN_MATCH_THRESHOLD", 0.5),
		PredictSeed:         int64(GetEnvInt("ADDRESSPIN_PREDICT_SEED", 0)),
		LogLevel:            GetEnv("ADDRESSPIN_LOG_LEVEL", "info"),
		LogDev:              GetEnvBool("ADDRESSPIN_LOG_DEV", false),
	}
}

// Addr returns the host:port the HTTP server should bind.
func (c Config) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}
