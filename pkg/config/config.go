// Package config loads the process-wide configuration. It is read once
// at startup and treated as read-only afterwards.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Provider ProviderConfig `yaml:"provider"`
	Search   SearchConfig   `yaml:"search"`
	Weather  WeatherConfig  `yaml:"weather"`
	Store    StoreConfig    `yaml:"store"`
	Timeouts TimeoutConfig  `yaml:"timeouts"`
}

type ProviderConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url,omitempty"`
}

type SearchConfig struct {
	SerpAPIKey string `yaml:"serpapi_key,omitempty"`
	MaxResults int    `yaml:"max_results"`
}

type WeatherConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url,omitempty"`
}

type StoreConfig struct {
	Path string `yaml:"path"`
}

type TimeoutConfig struct {
	CompletionSeconds int `yaml:"completion_seconds"`
	SearchSeconds     int `yaml:"search_seconds"`
	WeatherSeconds    int `yaml:"weather_seconds"`
}

func (t TimeoutConfig) Completion() time.Duration { return seconds(t.CompletionSeconds, 30) }
func (t TimeoutConfig) Search() time.Duration     { return seconds(t.SearchSeconds, 10) }
func (t TimeoutConfig) Weather() time.Duration    { return seconds(t.WeatherSeconds, 10) }

func seconds(n, def int) time.Duration {
	if n <= 0 {
		n = def
	}
	return time.Duration(n) * time.Second
}

// Load reads the YAML config at path. A .env file in the working
// directory is loaded first so that ${VAR} values in the config can
// refer to keys kept out of version control.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns a config built purely from the environment, used
// when no config file is present.
func Default() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Provider: ProviderConfig{
			APIKey:  os.Getenv("OPENAI_API_KEY"),
			BaseURL: os.Getenv("OPENAI_BASE_URL"),
		},
		Search:  SearchConfig{SerpAPIKey: os.Getenv("SERPAPI_KEY")},
		Weather: WeatherConfig{APIKey: os.Getenv("WEATHER_API_KEY")},
	}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Provider.Model == "" {
		c.Provider.Model = "gpt-4o-mini"
	}
	if c.Search.MaxResults <= 0 {
		c.Search.MaxResults = 5
	}
	if c.Weather.BaseURL == "" {
		c.Weather.BaseURL = "https://api.openweathermap.org/data/2.5"
	}
	if c.Store.Path == "" {
		c.Store.Path = "plans.db"
	}
}
