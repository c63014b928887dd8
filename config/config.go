package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultRecordsKey is the key the whole record map is stored under.
const DefaultRecordsKey = "tradingRecords"

// Config represents the complete application configuration
type Config struct {
	Store    StoreConfig    `json:"store" yaml:"store"`
	Log      LogConfig      `json:"log" yaml:"log"`
	Calendar CalendarConfig `json:"calendar" yaml:"calendar"`
}

// StoreConfig selects the key-value backend records are persisted to
type StoreConfig struct {
	Type string `json:"type" yaml:"type"` // "memory", "file", "sqlite" or "redis"
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
	Key  string `json:"key,omitempty" yaml:"key,omitempty"`

	RedisAddr     string `json:"redis_addr,omitempty" yaml:"redis_addr,omitempty"`
	RedisPassword string `json:"redis_password,omitempty" yaml:"redis_password,omitempty"`
	RedisDB       int    `json:"redis_db,omitempty" yaml:"redis_db,omitempty"`
}

// LogConfig contains logging parameters
type LogConfig struct {
	Level    string `json:"level" yaml:"level"`       // debug, info, warn, error
	Encoding string `json:"encoding" yaml:"encoding"` // "console" or "json"
}

// CalendarConfig controls how dates are read
type CalendarConfig struct {
	// Timezone is an IANA name; empty means the machine's local zone.
	Timezone string `json:"timezone,omitempty" yaml:"timezone,omitempty"`
}

// Location resolves the configured timezone.
func (c CalendarConfig) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// RecordsKey returns the configured key or the default one.
func (s StoreConfig) RecordsKey() string {
	if s.Key == "" {
		return DefaultRecordsKey
	}
	return s.Key
}

// LoadFromFile loads configuration from a file (JSON or YAML based on extension)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Store.Type {
	case "memory":
	case "file", "sqlite":
		if c.Store.Path == "" {
			return fmt.Errorf("store.path required for %s type", c.Store.Type)
		}
	case "redis":
		if c.Store.RedisAddr == "" {
			return fmt.Errorf("store.redis_addr required for redis type")
		}
		if c.Store.RedisDB < 0 {
			return fmt.Errorf("store.redis_db must not be negative")
		}
	default:
		return fmt.Errorf("store.type must be 'memory', 'file', 'sqlite' or 'redis'")
	}

	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug|info|warn|error")
	}
	if c.Log.Encoding != "" && c.Log.Encoding != "console" && c.Log.Encoding != "json" {
		return fmt.Errorf("log.encoding must be 'console' or 'json'")
	}

	if _, err := c.Calendar.Location(); err != nil {
		return fmt.Errorf("calendar.timezone: %w", err)
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Store: StoreConfig{
			Type: "file",
			Path: "./.tradecal",
			Key:  DefaultRecordsKey,
		},
		Log: LogConfig{
			Level:    "warn",
			Encoding: "console",
		},
	}
}
