package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"socialgraph/backend/internal/constants"
	apperrors "socialgraph/backend/pkg/errors"
)

// Config holds all application configuration
type Config struct {
	// App
	Port string
	Env  string

	// Pagination
	DefaultPageSize int
	MaxPageSize     int

	// Neo4j export sink
	Neo4jURI            string
	Neo4jUser           string
	Neo4jPassword       string
	Neo4jExportEnabled  bool
	Neo4jExportInterval time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	cfg := &Config{
		Port:                getEnv("PORT", "8080"),
		Env:                 getEnv("ENV", "development"),
		DefaultPageSize:     getEnvInt("DEFAULT_PAGE_SIZE", constants.DefaultPageSize),
		MaxPageSize:         getEnvInt("MAX_PAGE_SIZE", constants.MaxPageSize),
		Neo4jURI:            getEnv("NEO4J_URI", "bolt://localhost:7687"),
		Neo4jUser:           getEnv("NEO4J_USER", "neo4j"),
		Neo4jPassword:       getEnv("NEO4J_PASSWORD", "password"),
		Neo4jExportEnabled:  getEnvBool("NEO4J_EXPORT_ENABLED", false),
		Neo4jExportInterval: time.Duration(getEnvInt("NEO4J_EXPORT_INTERVAL", 300)) * time.Second,
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration values are set
func (c *Config) Validate() error {
	if c.Port == "" {
		return apperrors.NewConfigMissingRequired("PORT")
	}
	if c.DefaultPageSize <= 0 {
		return apperrors.NewConfigValidationFailed("DEFAULT_PAGE_SIZE", "must be positive")
	}
	if c.MaxPageSize < c.DefaultPageSize {
		return apperrors.NewConfigValidationFailed("MAX_PAGE_SIZE", "must not be below DEFAULT_PAGE_SIZE")
	}
	// Neo4j settings only matter when the export sink is switched on
	if !c.Neo4jExportEnabled {
		return nil
	}
	if c.Neo4jURI == "" {
		return apperrors.NewConfigMissingRequired("NEO4J_URI")
	}
	if c.Neo4jUser == "" {
		return apperrors.NewConfigMissingRequired("NEO4J_USER")
	}
	if c.Neo4jExportInterval <= 0 {
		return apperrors.NewConfigValidationFailed("NEO4J_EXPORT_INTERVAL", "must be positive")
	}
	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	switch os.Getenv(key) {
	case "1", "true", "TRUE", "yes":
		return true
	case "0", "false", "FALSE", "no":
		return false
	}
	return defaultValue
}
