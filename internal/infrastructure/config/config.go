// internal/infrastructure/config/config.go
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string
	LogLevel   string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// MongoDB
	MongoURI      string
	MongoDB       string
	MongoUser     string
	MongoPassword string

	// PostgreSQL (equipment status mirror)
	PostgresURI string

	// Google Sheets
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRefreshToken string
	GridSpreadsheetID  string
	GridSheetName      string
	CalSpreadsheetID   string

	// Forecast run
	RunInterval time.Duration
	RunTimeout  time.Duration

	// Reconciliation policy
	WindowDays       int
	TrackableClasses []string
	ReservedKeywords []string
	ValidTodayTags   []string
	RegistryClasses  []string
	HomeLocation     string
	HomeCode         string
	WeekendAdjust    bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	// Set defaults and override with env vars
	config := &Config{
		AppVersion:   getEnv("APP_VERSION", "1.0.0"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,

		MongoURI:      getEnv("MONGODB_DSN", "mongodb://localhost:27017"),
		MongoDB:       getEnv("MONGO_DB", "gearcast"),
		MongoUser:     getEnv("MONGO_USER", ""),
		MongoPassword: getEnv("MONGO_PASSWORD", ""),

		PostgresURI: getEnv("POSTGRES_DSN", ""),

		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRefreshToken: getEnv("GOOGLE_REFRESH_TOKEN", ""),
		GridSpreadsheetID:  getEnv("GRID_SPREADSHEET_ID", ""),
		GridSheetName:      getEnv("GRID_SHEET_NAME", "Camera"),
		CalSpreadsheetID:   getEnv("CALENDAR_SPREADSHEET_ID", ""),

		RunInterval: time.Duration(getEnvAsInt("RUN_INTERVAL", 1800)) * time.Second,
		RunTimeout:  time.Duration(getEnvAsInt("RUN_TIMEOUT", 300)) * time.Second,

		WindowDays:       getEnvAsInt("FORECAST_WINDOW_DAYS", 7),
		TrackableClasses: getEnvAsSlice("TRACKABLE_CLASSES", nil),
		ReservedKeywords: getEnvAsSlice("RESERVED_KEYWORDS", nil),
		ValidTodayTags:   getEnvAsSlice("VALID_TODAY_TAGS", nil),
		RegistryClasses:  getEnvAsSlice("REGISTRY_CLASSES", nil),
		HomeLocation:     getEnv("HOME_LOCATION", "LOS ANGELES"),
		HomeCode:         getEnv("HOME_CODE", "LA"),
		WeekendAdjust:    getEnvAsBool("WEEKEND_ADJUST", true),
	}

	return config, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsSlice splits a comma-separated env var, trimming each item
func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	var values []string
	for _, item := range strings.Split(valueStr, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
