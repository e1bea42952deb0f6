package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is assembled from an optional YAML file plus environment
// overrides; env always wins. Vendor credentials come from env only so
// they never end up in a checked-in file.
type Config struct {
	Port string `yaml:"port"`

	Cache struct {
		Enabled  bool          `yaml:"enabled"`
		Host     string        `yaml:"host"`
		Port     string        `yaml:"port"`
		Password string        `yaml:"password"`
		TTL      time.Duration `yaml:"ttl"`
	} `yaml:"cache"`

	ExchangeRate float64 `yaml:"exchange_rate"`

	Amadeus struct {
		ClientID     string `yaml:"-"`
		ClientSecret string `yaml:"-"`
		BaseURL      string `yaml:"base_url"`
	} `yaml:"amadeus"`

	Skyscanner struct {
		APIKey  string `yaml:"-"`
		BaseURL string `yaml:"base_url"`
	} `yaml:"skyscanner"`
}

func Default() *Config {
	cfg := &Config{Port: "8080", ExchangeRate: 0}
	cfg.Cache.Enabled = true
	cfg.Cache.Host = "localhost"
	cfg.Cache.Port = "6379"
	cfg.Cache.TTL = 5 * time.Minute
	return cfg
}

// Load reads TRIPSEARCH_CONFIG (if set and readable) and then applies
// environment overrides.
func Load() *Config {
	cfg := Default()

	if path := os.Getenv("TRIPSEARCH_CONFIG"); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			_ = yaml.Unmarshal(data, cfg)
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.Cache.Enabled = getEnvBool("CACHE_ENABLED", cfg.Cache.Enabled)
	cfg.Cache.Host = getEnv("REDIS_HOST", cfg.Cache.Host)
	cfg.Cache.Port = getEnv("REDIS_PORT", cfg.Cache.Port)
	cfg.Cache.Password = getEnv("REDIS_PASSWORD", cfg.Cache.Password)
	cfg.Cache.TTL = getEnvDuration("REDIS_TTL", cfg.Cache.TTL)

	cfg.Amadeus.ClientID = os.Getenv("AMADEUS_CLIENT_ID")
	cfg.Amadeus.ClientSecret = os.Getenv("AMADEUS_CLIENT_SECRET")
	cfg.Amadeus.BaseURL = getEnv("AMADEUS_BASE_URL", cfg.Amadeus.BaseURL)

	cfg.Skyscanner.APIKey = os.Getenv("SKYSCANNER_API_KEY")
	cfg.Skyscanner.BaseURL = getEnv("SKYSCANNER_BASE_URL", cfg.Skyscanner.BaseURL)

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
