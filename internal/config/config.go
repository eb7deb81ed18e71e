// Package config loads the countdown configuration file (YAML or JSON).
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no --config flag is given. A missing file yields Default().
const DefaultPath = "countdown.yaml"

// Store backends.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
)

// Config is the root of countdown.yaml.
type Config struct {
	Store    StoreConfig     `yaml:"store" json:"store"`
	Log      LogConfig       `yaml:"log" json:"log"`
	HTTP     HTTPConfig      `yaml:"http" json:"http"`
	Timezone string          `yaml:"timezone" json:"timezone"`
	Notify   []CommandConfig `yaml:"notify" json:"notify"`
}

// StoreConfig selects where the target date is persisted.
type StoreConfig struct {
	Backend string      `yaml:"backend" json:"backend"`
	Path    string      `yaml:"path" json:"path"`
	Redis   RedisConfig `yaml:"redis" json:"redis"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr" json:"addr"`
	Password string `yaml:"password" json:"password"`
	DB       int    `yaml:"db" json:"db"`
	Prefix   string `yaml:"prefix" json:"prefix"`
	TTL      string `yaml:"ttl" json:"ttl"`
}

type LogConfig struct {
	Level string `yaml:"level" json:"level"`
}

type HTTPConfig struct {
	Addr string `yaml:"addr" json:"addr"`
}

// CommandConfig is an external command run when the countdown arrives.
type CommandConfig struct {
	Name    string            `yaml:"name" json:"name"`
	Command string            `yaml:"command" json:"command"`
	Args    []string          `yaml:"args" json:"args"`
	Env     map[string]string `yaml:"env" json:"env"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Store: StoreConfig{
			Backend: BackendFile,
			Path:    filepath.Join(".countdown", "date.json"),
			Redis: RedisConfig{
				Addr:   "localhost:6379",
				Prefix: "countdown:",
			},
		},
		Log:  LogConfig{Level: "info"},
		HTTP: HTTPConfig{Addr: ":8080"},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	return cfg, cfg.Validate()
}

// Validate checks enumerations and parseable fields.
func (c Config) Validate() error {
	switch c.Store.Backend {
	case BackendMemory, BackendFile, BackendRedis:
	default:
		return fmt.Errorf("unknown store backend %q (want memory, file or redis)", c.Store.Backend)
	}
	if c.Store.Backend == BackendFile && c.Store.Path == "" {
		return errors.New("store.path is required for the file backend")
	}
	if _, err := c.Store.Redis.TTLDuration(); err != nil {
		return err
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	for i, n := range c.Notify {
		if n.Command == "" {
			return fmt.Errorf("notify[%d]: command is required", i)
		}
	}
	return nil
}

// Location resolves Timezone; empty means the local zone.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// TTLDuration parses TTL; empty means no expiry.
func (r RedisConfig) TTLDuration() (time.Duration, error) {
	if r.TTL == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(r.TTL)
	if err != nil {
		return 0, fmt.Errorf("invalid store.redis.ttl %q: %w", r.TTL, err)
	}
	return d, nil
}
