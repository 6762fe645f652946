package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
	Ephemeris struct {
		Backend string `yaml:"backend"` // auto, swiss, analytic
		Path    string `yaml:"path"`    // Swiss Ephemeris dataset directory
	} `yaml:"ephemeris"`
	Security struct {
		APIKey           string   `yaml:"api_key"`
		EnableAPIKeyAuth bool     `yaml:"enable_api_key_auth"`
		AllowedHosts     []string `yaml:"allowed_hosts"`
		CORSOrigins      []string `yaml:"cors_origins"`
	} `yaml:"security"`
	Debug struct {
		EnableOutputs bool   `yaml:"enable_outputs"`
		OutputDir     string `yaml:"output_dir"`
	} `yaml:"debug"`
	Cache struct {
		Enabled       bool          `yaml:"enabled"`
		TTL           time.Duration `yaml:"ttl"`
		MemoryMaxSize int           `yaml:"memory_max_size"`
		Redis         struct {
			Enabled  bool   `yaml:"enabled"`
			Host     string `yaml:"host"`
			Port     int    `yaml:"port"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
	} `yaml:"cache"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()

	// Validate required fields
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	// Override with environment variables
	if v := os.Getenv("STARLUCK_API_KEY"); v != "" {
		c.Security.APIKey = v
		c.Security.EnableAPIKeyAuth = true
	}
	if v := os.Getenv("STARLUCK_EPHE_PATH"); v != "" {
		c.Ephemeris.Path = v
	}
	if v := os.Getenv("STARLUCK_BACKEND"); v != "" {
		c.Ephemeris.Backend = v
	}
	if v := os.Getenv("STARLUCK_ALLOWED_HOSTS"); v != "" {
		c.Security.AllowedHosts = strings.Split(v, ",")
	}
	if v := os.Getenv("STARLUCK_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid STARLUCK_PORT: %w", err)
		}
		c.Server.Port = port
	}
	if v := os.Getenv("STARLUCK_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8000
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "json"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "stdout"
	}
	if c.Ephemeris.Backend == "" {
		c.Ephemeris.Backend = "auto"
	}
	if c.Debug.OutputDir == "" {
		c.Debug.OutputDir = "debug_outputs"
	}
	if c.Cache.TTL == 0 {
		c.Cache.TTL = time.Hour
	}
	if c.Cache.MemoryMaxSize == 0 {
		c.Cache.MemoryMaxSize = 1000
	}
	if c.Cache.Redis.Host == "" {
		c.Cache.Redis.Host = "localhost"
	}
	if c.Cache.Redis.Port == 0 {
		c.Cache.Redis.Port = 6379
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	switch c.Ephemeris.Backend {
	case "auto", "swiss", "analytic":
	default:
		return fmt.Errorf("ephemeris.backend must be 'auto', 'swiss' or 'analytic', got '%s'", c.Ephemeris.Backend)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if c.Security.EnableAPIKeyAuth && c.Security.APIKey == "" {
		return fmt.Errorf("security.api_key is required when api key auth is enabled")
	}
	return nil
}
