package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// StoreConfig selects the entity store backend.
type StoreConfig struct {
	// Driver is "memory" (default) or "postgres".
	Driver string
	// Seed loads the dashboard's mock data into an empty store on startup.
	Seed bool
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Mode  string // dev|prod
	Level string
	Dir   string
}

// UserConfig is the fixed identity used as the author of new comments.
type UserConfig struct {
	Name     string
	Initials string
	Avatar   string
}

// DashboardConfig tunes view controller behaviour.
type DashboardConfig struct {
	// LegacyPreviewClose keeps the selected document when the preview dialog closes.
	LegacyPreviewClose bool
	SessionTTLSec      int
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost     string
	Port        string
	Timezone    string
	Store       StoreConfig
	Database    DatabaseConfig
	Log         LogConfig
	CurrentUser UserConfig
	Dashboard   DashboardConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:  getEnv("APP_HOST", "localhost:8080"),
		Port:     getEnv("PORT", "8080"),
		Timezone: getEnv("APP_TIMEZONE", "Local"),
		Store: StoreConfig{
			Driver: strings.ToLower(getEnv("STORE_DRIVER", "memory")),
			Seed:   getEnvBool("STORE_SEED", true),
		},
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		Log: LogConfig{
			Mode:  strings.ToLower(getEnv("LOG_MODE", "prod")),
			Level: strings.ToLower(getEnv("LOG_LEVEL", "info")),
			Dir:   getEnv("LOG_DIR", "logs"),
		},
		CurrentUser: UserConfig{
			Name:     getEnv("CURRENT_USER_NAME", "John Doe"),
			Initials: getEnv("CURRENT_USER_INITIALS", "JD"),
			Avatar:   getEnv("CURRENT_USER_AVATAR", "/placeholder-user.jpg"),
		},
		Dashboard: DashboardConfig{
			LegacyPreviewClose: getEnvBool("DASHBOARD_LEGACY_PREVIEW_CLOSE", false),
			SessionTTLSec:      getEnvInt("SESSION_TTL_SEC", 1800),
		},
	}
}

// Location resolves Timezone. Unknown names fall back to time.Local.
func (c *AppConfig) Location() *time.Location {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// SessionTTL returns the idle time after which a dashboard session is dropped.
func (c *AppConfig) SessionTTL() time.Duration {
	return time.Duration(c.Dashboard.SessionTTLSec) * time.Second
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
