package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	LogLevel    string
	LogFormat   string // "json" or "text"
	Magento     MagentoConfig
	Shipping    ShippingConfig
	RateLimit   RateLimitConfig
}

// MagentoConfig holds the backend connection settings
type MagentoConfig struct {
	Host                    string
	Schema                  string
	APIVersion              string
	MediaPath               string
	IntegrationToken        string
	AdminToken              string
	CustomerTokenExpiration int
	Timeout                 time.Duration
	Debug                   bool
}

// ShippingConfig holds the defaults used when setting a shipping address
type ShippingConfig struct {
	DefaultMethod  string
	DefaultCarrier string
}

// RateLimitConfig holds gateway rate limiting configuration
type RateLimitConfig struct {
	Enabled           bool
	RequestsPerSecond float64
	Burst             int
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Set up Viper
	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8081")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "text")
	viper.SetDefault("MAGENTO_SCHEMA", "http")
	viper.SetDefault("MAGENTO_API_VERSION", "V1")
	viper.SetDefault("MAGENTO_MEDIA_PATH", "media/catalog/product")
	viper.SetDefault("MAGENTO_CUSTOMER_TOKEN_EXPIRATION_TIME", 3600)
	viper.SetDefault("MAGENTO_TIMEOUT", "30s")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("SHIPPING_DEFAULT_METHOD", "flatrate")
	viper.SetDefault("SHIPPING_DEFAULT_CARRIER", "flatrate")
	viper.SetDefault("RATE_LIMIT_ENABLED", true)
	viper.SetDefault("RATE_LIMIT_RPS", 50)
	viper.SetDefault("RATE_LIMIT_BURST", 100)

	config := &Config{
		Environment: viper.GetString("ENVIRONMENT"),
		Port:        viper.GetString("PORT"),
		LogLevel:    viper.GetString("LOG_LEVEL"),
		LogFormat:   viper.GetString("LOG_FORMAT"),
		Magento: MagentoConfig{
			Host:                    viper.GetString("MAGENTO_HOST"),
			Schema:                  viper.GetString("MAGENTO_SCHEMA"),
			APIVersion:              viper.GetString("MAGENTO_API_VERSION"),
			MediaPath:               viper.GetString("MAGENTO_MEDIA_PATH"),
			IntegrationToken:        viper.GetString("MAGENTO_INTEGRATION_TOKEN"),
			AdminToken:              viper.GetString("MAGENTO_AUTH_ADMIN_TOKEN"),
			CustomerTokenExpiration: viper.GetInt("MAGENTO_CUSTOMER_TOKEN_EXPIRATION_TIME"),
			Timeout:                 viper.GetDuration("MAGENTO_TIMEOUT"),
			Debug:                   viper.GetBool("DEBUG"),
		},
		Shipping: ShippingConfig{
			DefaultMethod:  viper.GetString("SHIPPING_DEFAULT_METHOD"),
			DefaultCarrier: viper.GetString("SHIPPING_DEFAULT_CARRIER"),
		},
		RateLimit: RateLimitConfig{
			Enabled:           viper.GetBool("RATE_LIMIT_ENABLED"),
			RequestsPerSecond: viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst:             viper.GetInt("RATE_LIMIT_BURST"),
		},
	}

	return config, nil
}

// Validate checks that the backend can be reached with this configuration
func (c *Config) Validate() error {
	if c.Magento.Host == "" {
		return errors.New("MAGENTO_HOST is required")
	}
	if c.Magento.Timeout <= 0 {
		return errors.New("MAGENTO_TIMEOUT must be positive")
	}
	return nil
}

// IsProduction reports whether the application runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// DefaultArgs renders the configuration as the default argument bag of an
// action. Invocation parameters override these key by key.
func (c *Config) DefaultArgs() map[string]interface{} {
	args := map[string]interface{}{
		"MAGENTO_SCHEMA":                         c.Magento.Schema,
		"MAGENTO_API_VERSION":                    c.Magento.APIVersion,
		"MAGENTO_CUSTOMER_TOKEN_EXPIRATION_TIME": c.Magento.CustomerTokenExpiration,
		"DEBUG":                                  c.Magento.Debug,
	}
	optional := map[string]string{
		"MAGENTO_HOST":              c.Magento.Host,
		"MAGENTO_MEDIA_PATH":        c.Magento.MediaPath,
		"MAGENTO_INTEGRATION_TOKEN": c.Magento.IntegrationToken,
		"MAGENTO_AUTH_ADMIN_TOKEN":  c.Magento.AdminToken,
		"default_method":            c.Shipping.DefaultMethod,
		"default_carrier":           c.Shipping.DefaultCarrier,
	}
	for k, v := range optional {
		if v != "" {
			args[k] = v
		}
	}
	return args
}

// IsServerArg reports whether an argument belongs to the server
// configuration. Invocation parameters never override these keys.
func IsServerArg(key string) bool {
	switch key {
	case "DEBUG", "default_method", "default_carrier":
		return true
	}
	return strings.HasPrefix(key, "MAGENTO_")
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetEnvAsInt gets an environment variable as integer with a fallback value
func GetEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
