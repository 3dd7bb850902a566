package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)

// Config holds the application configuration
type Config struct {
	Host         string
	Port         int
	PortAttempts int
	JWTSecret    string
	Environment  string
	DebugRoutes  bool
	LogLevel     slog.Level
	Database     DatabaseConfig
}

// DatabaseConfig holds connection information for the relational backend.
// AdminName is the maintenance database used to create Name when it is missing.
type DatabaseConfig struct {
	Disabled       bool
	Host           string
	Port           string
	User           string
	Password       string
	Name           string
	AdminName      string
	SSLMode        string
	ConnectTimeout time.Duration
}

// DSN builds a lib/pq connection string for the given database name
func (d DatabaseConfig) DSN(dbName string) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s connect_timeout=%d",
		quoteValue(d.Host), quoteValue(d.Port), quoteValue(d.User), quoteValue(d.Password),
		quoteValue(dbName), quoteValue(d.SSLMode), int(d.ConnectTimeout.Seconds()),
	)
}

func quoteValue(v string) string {
	if v == "" {
		return "''"
	}
	if !strings.ContainsAny(v, ` '\`) {
		return v
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		Host:        os.Getenv("HOST"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		Environment: getEnv("ENVIRONMENT", EnvironmentDevelopment),
		Database: DatabaseConfig{
			Host:      getEnv("DB_HOST", "localhost"),
			Port:      getEnv("DB_PORT", "5432"),
			User:      getEnv("DB_USER", "postgres"),
			Password:  os.Getenv("DB_PASSWORD"),
			Name:      getEnv("DB_NAME", "luct_reporting_system"),
			AdminName: getEnv("DB_ADMIN_NAME", "postgres"),
			SSLMode:   getEnv("DB_SSLMODE", "disable"),
		},
	}

	if config.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	var err error
	if config.Port, err = getInt("PORT", 5000); err != nil {
		return nil, err
	}
	if config.Port < 1 || config.Port > 65535 {
		return nil, fmt.Errorf("PORT must be between 1 and 65535, got %d", config.Port)
	}
	if config.PortAttempts, err = getInt("PORT_ATTEMPTS", 10); err != nil {
		return nil, err
	}
	if config.PortAttempts < 1 {
		config.PortAttempts = 1
	}

	timeout, err := getInt("DB_CONNECT_TIMEOUT", 5)
	if err != nil {
		return nil, err
	}
	config.Database.ConnectTimeout = time.Duration(timeout) * time.Second

	if config.Database.Disabled, err = getBool("DB_DISABLED", false); err != nil {
		return nil, err
	}
	if config.DebugRoutes, err = getBool("ENABLE_DEBUG_ROUTES", config.Environment != EnvironmentProduction); err != nil {
		return nil, err
	}
	if config.LogLevel, err = parseLevel(getEnv("LOG_LEVEL", "info")); err != nil {
		return nil, err
	}

	return config, nil
}

// IsProduction reports whether the service runs with production settings
func (c *Config) IsProduction() bool {
	return c.Environment == EnvironmentProduction
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}

func getBool(key string, defaultValue bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}

func parseLevel(raw string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return 0, fmt.Errorf("invalid LOG_LEVEL %q: %w", raw, err)
	}
	return level, nil
}
