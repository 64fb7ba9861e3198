package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	Shopify     ShopifyConfig
	CORS        CORSConfig
	LogLevel    string
}

// ShopifyConfig holds the Storefront API connection settings. StoreDomain is
// normalized to carry an https scheme; AccessToken goes out on every request
// as X-Shopify-Storefront-Access-Token.
type ShopifyConfig struct {
	StoreDomain string
	AccessToken string
	APIVersion  string
}

// CORSConfig lists the browser origins allowed to call the JSON API.
type CORSConfig struct {
	AllowedOrigins []string
}

// Endpoint returns the full Storefront GraphQL endpoint URL.
func (c ShopifyConfig) Endpoint() string {
	return fmt.Sprintf("%s/api/%s/graphql.json", c.StoreDomain, c.APIVersion)
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("SHOPIFY_API_VERSION", "2024-01")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		Shopify: ShopifyConfig{
			StoreDomain: normalizeDomain(getEnvOrViper("SHOPIFY_STORE_DOMAIN", "")),
			AccessToken: strings.TrimSpace(getEnvOrViper("SHOPIFY_STOREFRONT_ACCESS_TOKEN", "")),
			APIVersion:  getEnvOrViper("SHOPIFY_API_VERSION", "2024-01"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnvOrViper("CORS_ALLOWED_ORIGINS", "*")),
		},
		LogLevel: getEnvOrViper("LOG_LEVEL", "info"),
	}

	// Validate required fields
	if cfg.Shopify.StoreDomain == "" {
		return nil, fmt.Errorf("SHOPIFY_STORE_DOMAIN is required")
	}
	if cfg.Shopify.AccessToken == "" {
		return nil, fmt.Errorf("SHOPIFY_STOREFRONT_ACCESS_TOKEN is required")
	}

	return cfg, nil
}

// normalizeDomain prefixes the store domain with https:// when no scheme is
// present and strips any trailing slash.
func normalizeDomain(domain string) string {
	domain = strings.TrimSpace(domain)
	if domain == "" {
		return ""
	}
	if !strings.HasPrefix(domain, "http://") && !strings.HasPrefix(domain, "https://") {
		domain = "https://" + domain
	}
	return strings.TrimSuffix(domain, "/")
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}
