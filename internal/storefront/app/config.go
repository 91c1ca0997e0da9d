package app

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/openmercato/storefront/pkg/jwtx"
)

type Config struct {
	Issuer    string        // Issuer claim stamped on every token (default: storefront)
	JWTSecret string        // Required: HMAC signing secret, at least 32 bytes
	TokenTTL  time.Duration // Token lifetime (default: 24h)

	DatabaseFile string // Path to SQLite database file (default: ./storefront.db)
	PepperFile   string // Path to file containing pepper for password hashing (default: ./pepper)
	SeedFile     string // Optional: path to JSON file with admin accounts to seed at boot

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

// LoadConfig reads configuration from the environment, after loading a local
// .env file when one exists.
func LoadConfig() Config {
	_ = godotenv.Load()

	return Config{
		Issuer:              getEnvOrDefault("STOREFRONT_ISSUER", "storefront"),
		JWTSecret:           os.Getenv("STOREFRONT_JWT_SECRET"),
		TokenTTL:            getEnvDurationOrDefault("STOREFRONT_TOKEN_TTL", jwtx.DefaultTokenTTL),
		DatabaseFile:        getEnvOrDefault("STOREFRONT_DATABASE_FILE", "storefront.db"),
		PepperFile:          getEnvOrDefault("STOREFRONT_PEPPER_FILE", "pepper"),
		SeedFile:            os.Getenv("STOREFRONT_SEED_FILE"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

// Validate catches configuration errors before any component starts.
func (c Config) Validate() error {
	if len(c.JWTSecret) < 32 {
		return errors.New("STOREFRONT_JWT_SECRET must be set and at least 32 bytes")
	}
	if c.TokenTTL <= 0 {
		return errors.New("STOREFRONT_TOKEN_TTL must be positive")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return errors.New("PORT must be a valid TCP port")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Integer values are read as minutes.
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
