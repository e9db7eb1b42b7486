package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		Auth
		Catalog
	}

	HTTP struct {
		Port int32
		Host string
	}

	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Driver   string // "sqlite" (default) or "postgres"
		Path     string // SQLite file path
		DSN      string // PostgreSQL connection string
		LogLevel string // silent, error, warn, info
	}
	Auth struct {
		BcryptCost  int
		TokenExpiry time.Duration // 0 disables expiry
	}
	Catalog struct {
		BaseURL           string
		CoversBaseURL     string
		Timeout           time.Duration
		RequestsPerSecond float64
	}
)

// loadDotEnv loads variables from .env (or ENV_FILE) without overriding
// anything already set in the process environment.
func loadDotEnv() {
	path := os.Getenv("ENV_FILE")
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := godotenv.Load(path); err != nil {
		log.Printf("WARNING: failed to load %s: %v", path, err)
	}
}

func NewConfig() *Config {
	loadDotEnv()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8080)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 5)

	v.SetDefault("database_driver", DriverSQLite)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("database_dsn", "")
	v.SetDefault("database_log_level", "warn")

	// Auth defaults
	v.SetDefault("auth_bcrypt_cost", 12)
	v.SetDefault("auth_token_expiry", "720h") // 30 days

	// OpenLibrary asks for roughly one request per second
	v.SetDefault("catalog_base_url", DefaultCatalogBaseURL)
	v.SetDefault("catalog_covers_base_url", DefaultCoversBaseURL)
	v.SetDefault("catalog_timeout", "10s")
	v.SetDefault("catalog_rate_limit", 1.0)

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Driver:   v.GetString("DATABASE_DRIVER"),
			Path:     v.GetString("DATABASE_PATH"),
			DSN:      v.GetString("DATABASE_DSN"),
			LogLevel: v.GetString("DATABASE_LOG_LEVEL"),
		},
		Auth: Auth{
			BcryptCost:  v.GetInt("AUTH_BCRYPT_COST"),
			TokenExpiry: v.GetDuration("AUTH_TOKEN_EXPIRY"),
		},
		Catalog: Catalog{
			BaseURL:           v.GetString("CATALOG_BASE_URL"),
			CoversBaseURL:     v.GetString("CATALOG_COVERS_BASE_URL"),
			Timeout:           v.GetDuration("CATALOG_TIMEOUT"),
			RequestsPerSecond: v.GetFloat64("CATALOG_RATE_LIMIT"),
		},
	}
}
