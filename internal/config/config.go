package config

import (
	"fmt"
	"os"
	"strings"
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

	// Build service configuration
	BuildServiceURL        string `mapstructure:"BUILD_SERVICE_URL"`
	BuildServiceTimeoutSec int    `mapstructure:"BUILD_SERVICE_TIMEOUT_SEC"`
	CallbackAPIKey         string `mapstructure:"CALLBACK_API_KEY"`

	// GitHub App configuration
	GitHubAppID             int64  `mapstructure:"GITHUB_APP_ID"`
	GitHubAppPrivateKey     string `mapstructure:"GITHUB_APP_PRIVATE_KEY"`
	GitHubAppPrivateKeyPath string `mapstructure:"GITHUB_APP_PRIVATE_KEY_PATH"`
	GitHubAPIURL            string `mapstructure:"GITHUB_API_URL"`

	// Redis configuration (optional)
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// Deployment queue configuration
	DefaultQuotaLimit         int `mapstructure:"DEFAULT_QUOTA_LIMIT"`
	StuckDeploymentTimeoutMin int `mapstructure:"STUCK_DEPLOYMENT_TIMEOUT_MIN"`
	ReaperIntervalSec         int `mapstructure:"REAPER_INTERVAL_SEC"`
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

	// The PEM may be given inline or as a file
	if config.GitHubAppPrivateKey == "" && config.GitHubAppPrivateKeyPath != "" {
		pem, err := os.ReadFile(config.GitHubAppPrivateKeyPath)
		if err != nil {
			return nil, fmt.Errorf("error reading GitHub App private key: %w", err)
		}
		config.GitHubAppPrivateKey = string(pem)
	}
	config.BuildServiceURL = strings.TrimRight(config.BuildServiceURL, "/")

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
	viper.SetDefault("DB_NAME", "cargodeploy")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000"})

	// Build service defaults
	viper.SetDefault("BUILD_SERVICE_URL", "http://localhost:8080")
	viper.SetDefault("BUILD_SERVICE_TIMEOUT_SEC", 30)
	viper.SetDefault("CALLBACK_API_KEY", "")

	// GitHub App defaults
	viper.SetDefault("GITHUB_APP_ID", 0)
	viper.SetDefault("GITHUB_APP_PRIVATE_KEY", "")
	viper.SetDefault("GITHUB_APP_PRIVATE_KEY_PATH", "")
	viper.SetDefault("GITHUB_API_URL", "")

	// Redis defaults
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	// Queue defaults
	viper.SetDefault("DEFAULT_QUOTA_LIMIT", 3)
	viper.SetDefault("STUCK_DEPLOYMENT_TIMEOUT_MIN", 60)
	viper.SetDefault("REAPER_INTERVAL_SEC", 60)
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
		if config.CallbackAPIKey == "" {
			return fmt.Errorf("CALLBACK_API_KEY must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.BuildServiceURL == "" {
		return fmt.Errorf("BUILD_SERVICE_URL is required")
	}

	if config.StuckDeploymentTimeoutMin < 0 {
		return fmt.Errorf("STUCK_DEPLOYMENT_TIMEOUT_MIN must not be negative")
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

// BuildServiceTimeout returns the outbound timeout for job submission
func (c *Config) BuildServiceTimeout() time.Duration {
	if c.BuildServiceTimeoutSec <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.BuildServiceTimeoutSec) * time.Second
}

// StuckDeploymentTimeout returns how long a deployment may stay IN_PROGRESS; zero disables the reaper
func (c *Config) StuckDeploymentTimeout() time.Duration {
	return time.Duration(c.StuckDeploymentTimeoutMin) * time.Minute
}

// ReaperInterval returns how often stuck deployments are looked for
func (c *Config) ReaperInterval() time.Duration {
	if c.ReaperIntervalSec <= 0 {
		return time.Minute
	}
	return time.Duration(c.ReaperIntervalSec) * time.Second
}

// GitHubAppConfigured reports whether private repositories can be cloned
func (c *Config) GitHubAppConfigured() bool {
	return c.GitHubAppID != 0 && c.GitHubAppPrivateKey != ""
}
