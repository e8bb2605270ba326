package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config keeps runtime settings for the server.
type Config struct {
	HTTP     HTTPConfig `yaml:"http"`
	Database DBConfig   `yaml:"database"`
	Report   Report     `yaml:"report"`
}

// HTTPConfig holds the listen address and the browser origin allowed by CORS.
type HTTPConfig struct {
	Addr       string `yaml:"addr"`
	CORSOrigin string `yaml:"cors_origin"`
}

// DBConfig holds the database connection string. A postgres:// URL selects
// the Postgres driver, anything else is treated as a SQLite path.
type DBConfig struct {
	URL string `yaml:"url"`
}

// Report controls the periodic category summary job. Zero disables it.
type Report struct {
	Interval time.Duration `yaml:"interval"`
}

// Default returns the configuration used when no file and no env are set.
func Default() Config {
	return Config{
		HTTP: HTTPConfig{
			Addr:       ":8080",
			CORSOrigin: "http://localhost:3000",
		},
		Database: DBConfig{
			URL: "chaos.db",
		},
		Report: Report{
			Interval: 0,
		},
	}
}

// Load reads the optional YAML config file, then applies environment
// overrides on top of it.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return cfg, fmt.Errorf("open config %q: %w", path, err)
			}
		} else {
			defer file.Close()
			if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
				return cfg, fmt.Errorf("parse config %q: %w", path, err)
			}
		}
	}

	cfg.parseEnv()

	if cfg.HTTP.Addr == "" {
		return cfg, fmt.Errorf("http.addr must not be empty")
	}
	if cfg.Database.URL == "" {
		return cfg, fmt.Errorf("database.url must not be empty")
	}
	return cfg, nil
}

func (c *Config) parseEnv() {
	if addr := strings.TrimSpace(os.Getenv("HTTP_ADDR")); addr != "" {
		c.HTTP.Addr = addr
	}
	if origin := strings.TrimSpace(os.Getenv("CORS_ORIGIN")); origin != "" {
		c.HTTP.CORSOrigin = origin
	}
	if url := strings.TrimSpace(os.Getenv("DATABASE_URL")); url != "" {
		c.Database.URL = url
	}
	if raw := strings.TrimSpace(os.Getenv("REPORT_INTERVAL")); raw != "" {
		if interval, err := time.ParseDuration(raw); err == nil && interval > 0 {
			c.Report.Interval = interval
		}
	}
}
