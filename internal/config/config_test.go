package config

import (
	"testing"
	"time"
)

// TestLoadDefaults tests the defaults applied when the environment is empty
func TestLoadDefaults(t *testing.T) {
	t.Setenv("MAGENTO_HOST", "shop.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Magento.Schema != "http" {
		t.Errorf("Expected schema 'http', got '%s'", cfg.Magento.Schema)
	}
	if cfg.Magento.APIVersion != "V1" {
		t.Errorf("Expected API version 'V1', got '%s'", cfg.Magento.APIVersion)
	}
	if cfg.Magento.CustomerTokenExpiration != 3600 {
		t.Errorf("Expected token expiration 3600, got %d", cfg.Magento.CustomerTokenExpiration)
	}
	if cfg.Magento.Timeout != 30*time.Second {
		t.Errorf("Expected timeout 30s, got %v", cfg.Magento.Timeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected valid config, got %v", err)
	}
}

// TestLoadFromEnvironment tests that environment variables override defaults
func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("MAGENTO_HOST", "shop.example.com")
	t.Setenv("MAGENTO_SCHEMA", "https")
	t.Setenv("MAGENTO_CUSTOMER_TOKEN_EXPIRATION_TIME", "600")
	t.Setenv("DEBUG", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Magento.Schema != "https" {
		t.Errorf("Expected schema 'https', got '%s'", cfg.Magento.Schema)
	}
	if cfg.Magento.CustomerTokenExpiration != 600 {
		t.Errorf("Expected token expiration 600, got %d", cfg.Magento.CustomerTokenExpiration)
	}
	if !cfg.Magento.Debug {
		t.Error("Expected debug mode to be enabled")
	}
}

// TestValidate tests configuration validation
func TestValidate(t *testing.T) {
	cfg := &Config{Magento: MagentoConfig{Timeout: time.Second}}
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for missing host")
	}

	cfg.Magento.Host = "shop.example.com"
	cfg.Magento.Timeout = 0
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for zero timeout")
	}
}

// TestDefaultArgs tests rendering the configuration as an argument bag
func TestDefaultArgs(t *testing.T) {
	cfg := &Config{
		Magento: MagentoConfig{
			Host:                    "shop.example.com",
			Schema:                  "https",
			APIVersion:              "V1",
			IntegrationToken:        "token",
			CustomerTokenExpiration: 3600,
		},
		Shipping: ShippingConfig{DefaultMethod: "flatrate", DefaultCarrier: "flatrate"},
	}

	args := cfg.DefaultArgs()

	expected := map[string]interface{}{
		"MAGENTO_HOST":              "shop.example.com",
		"MAGENTO_SCHEMA":            "https",
		"MAGENTO_INTEGRATION_TOKEN": "token",
		"default_method":            "flatrate",
		"default_carrier":           "flatrate",
	}
	for k, v := range expected {
		if args[k] != v {
			t.Errorf("Expected %s=%v, got %v", k, v, args[k])
		}
	}
	if _, ok := args["MAGENTO_AUTH_ADMIN_TOKEN"]; ok {
		t.Error("Expected empty admin token to be omitted")
	}
}

// TestAdaptForLambda tests the serverless adaptations
func TestAdaptForLambda(t *testing.T) {
	cfg := &Config{
		LogFormat: "text",
		Magento:   MagentoConfig{Timeout: time.Minute},
		RateLimit: RateLimitConfig{Enabled: true},
	}

	adapted := adaptForLambda(cfg)

	if adapted.LogFormat != "json" {
		t.Errorf("Expected json log format, got '%s'", adapted.LogFormat)
	}
	if adapted.RateLimit.Enabled {
		t.Error("Expected rate limiting to be disabled")
	}
	if adapted.Magento.Timeout != lambdaMaxTimeout {
		t.Errorf("Expected timeout %v, got %v", lambdaMaxTimeout, adapted.Magento.Timeout)
	}
}

// TestIsServerArg tests which arguments belong to the server configuration
func TestIsServerArg(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"MAGENTO_HOST", true},
		{"MAGENTO_INTEGRATION_TOKEN", true},
		{"MAGENTO_ANYTHING_NEW", true},
		{"DEBUG", true},
		{"default_method", true},
		{"default_carrier", true},
		{"id", false},
		{"quantity", false},
		{"__ow_headers", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := IsServerArg(tt.key); got != tt.want {
				t.Errorf("IsServerArg(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}
