package config

import (
	"fmt"
	"os"
)

// Config holds all application configuration values
type Config struct {
	ShopifyAccessToken string
	ShopifyStoreDomain string
	Port               string
}

// LoadConfig reads configuration from environment variables
func LoadConfig() *Config {
	cfg := &Config{
		ShopifyAccessToken: os.Getenv("SHOPIFY_ACCESS_TOKEN"),
		ShopifyStoreDomain: os.Getenv("SHOPIFY_STORE_DOMAIN"),
		Port:               os.Getenv("PORT"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	return cfg
}

// Validate checks that the required Shopify credentials are present.
// The server must not start serving without them.
func (c *Config) Validate() error {
	if c.ShopifyAccessToken == "" {
		return fmt.Errorf("SHOPIFY_ACCESS_TOKEN is not set")
	}
	if c.ShopifyStoreDomain == "" {
		return fmt.Errorf("SHOPIFY_STORE_DOMAIN is not set")
	}
	return nil
}
