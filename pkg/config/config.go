package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Places struct {
		Variant    string `yaml:"variant"`
		APIKey     string `yaml:"api_key"`
		BaseURL    string `yaml:"base_url"`
		TimeoutSec int    `yaml:"timeout_sec"`
	} `yaml:"places"`
	Scraper struct {
		MaxResults int `yaml:"max_results"`
		PaceMs     int `yaml:"pace_ms"`
		Workers    int `yaml:"workers"`
	} `yaml:"scraper"`
	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %v", err)
	}

	// Override with environment variables if set
	if port := os.Getenv("PORT"); port != "" {
		portNum, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT value: %v", err)
		}
		cfg.Server.Port = portNum
	}
	if variant := os.Getenv("PLACES_VARIANT"); variant != "" {
		cfg.Places.Variant = variant
	}
	// The API key is never stored in the YAML file; it comes from the
	// environment. GOOGLE_MAPS_API_KEY matches the provider console naming,
	// PLACES_API_KEY is the generic fallback.
	if key := os.Getenv("GOOGLE_MAPS_API_KEY"); key != "" {
		cfg.Places.APIKey = key
	} else if key := os.Getenv("PLACES_API_KEY"); key != "" {
		cfg.Places.APIKey = key
	}
	if baseURL := os.Getenv("PLACES_BASE_URL"); baseURL != "" {
		cfg.Places.BaseURL = baseURL
	}
	if workers := os.Getenv("SCRAPER_WORKERS"); workers != "" {
		workersNum, err := strconv.Atoi(workers)
		if err != nil {
			return nil, fmt.Errorf("invalid SCRAPER_WORKERS value: %v", err)
		}
		cfg.Scraper.Workers = workersNum
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}

	// Set default values
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Places.Variant == "" {
		cfg.Places.Variant = "new"
	}
	if cfg.Places.TimeoutSec == 0 {
		cfg.Places.TimeoutSec = 30
	}
	if cfg.Scraper.MaxResults == 0 {
		cfg.Scraper.MaxResults = 200
	}
	if cfg.Scraper.PaceMs == 0 {
		cfg.Scraper.PaceMs = 100
	}
	if cfg.Scraper.Workers == 0 {
		cfg.Scraper.Workers = 4
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "INFO"
	}

	// Validation
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return nil, fmt.Errorf("server port must be between 1 and 65535")
	}
	if cfg.Places.Variant != "new" && cfg.Places.Variant != "legacy" {
		return nil, fmt.Errorf("places variant must be 'new' or 'legacy', got %q", cfg.Places.Variant)
	}
	if cfg.Places.TimeoutSec < 1 {
		return nil, fmt.Errorf("places timeout_sec must be at least 1")
	}
	if cfg.Scraper.Workers < 1 {
		return nil, fmt.Errorf("scraper workers must be at least 1")
	}
	if cfg.Scraper.PaceMs < 0 {
		return nil, fmt.Errorf("scraper pace_ms must be non-negative")
	}

	return &cfg, nil
}
