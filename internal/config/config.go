package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Content generator configuration
	ContentGeneratorURL          string `mapstructure:"CONTENT_GENERATOR_URL"`
	ContentGeneratorTokenURL     string `mapstructure:"CONTENT_GENERATOR_TOKEN_URL"`
	ContentGeneratorClientID     string `mapstructure:"CONTENT_GENERATOR_CLIENT_ID"`
	ContentGeneratorClientSecret string `mapstructure:"CONTENT_GENERATOR_CLIENT_SECRET"`
	ContentGeneratorTimeoutSec   int    `mapstructure:"CONTENT_GENERATOR_TIMEOUT_SEC"`

	// Roadmap rules
	MaxPhaseRegenerations  int `mapstructure:"MAX_PHASE_REGENERATIONS"`
	ActivationPreviewLimit int `mapstructure:"ACTIVATION_PREVIEW_LIMIT"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7008")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "growth_roadmap")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	// Content generator defaults; an empty URL disables generation
	viper.SetDefault("CONTENT_GENERATOR_URL", "")
	viper.SetDefault("CONTENT_GENERATOR_TOKEN_URL", "")
	viper.SetDefault("CONTENT_GENERATOR_CLIENT_ID", "")
	viper.SetDefault("CONTENT_GENERATOR_CLIENT_SECRET", "")
	viper.SetDefault("CONTENT_GENERATOR_TIMEOUT_SEC", 60)

	// Roadmap rules
	viper.SetDefault("MAX_PHASE_REGENERATIONS", 2)
	viper.SetDefault("ACTIVATION_PREVIEW_LIMIT", 5)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.MaxPhaseRegenerations < 0 {
		return fmt.Errorf("MAX_PHASE_REGENERATIONS must not be negative")
	}

	if config.ActivationPreviewLimit < 1 {
		return fmt.Errorf("ACTIVATION_PREVIEW_LIMIT must be at least 1")
	}

	if config.ContentGeneratorTimeoutSec < 1 {
		return fmt.Errorf("CONTENT_GENERATOR_TIMEOUT_SEC must be at least 1")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// ContentGeneratorTimeout returns the generator request timeout
func (c *Config) ContentGeneratorTimeout() time.Duration {
	return time.Duration(c.ContentGeneratorTimeoutSec) * time.Second
}
