package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultBaseURL     = "https://pokeapi.co/api/v2"
	DefaultLimit       = 151
	DefaultConcurrency = 16
	DefaultTimeout     = 30 * time.Second
	DefaultPageSize    = 12
)

type ProjectConfig struct {
	Project  string         `yaml:"project"`
	Version  int            `yaml:"version"`
	Database DatabaseConfig `yaml:"database"`
	Source   SourceConfig   `yaml:"source"`
	View     ViewConfig     `yaml:"view"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type SourceConfig struct {
	BaseURL     string        `yaml:"base_url"`
	Limit       int           `yaml:"limit"`
	Concurrency int           `yaml:"concurrency"`
	Timeout     time.Duration `yaml:"timeout"`
}

type ViewConfig struct {
	PageSize int `yaml:"page_size"`
}

func LoadProjectConfig(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	applyDefaults(&cfg)

	if err := validateProjectConfig(&cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(cfg *ProjectConfig) {
	if strings.TrimSpace(cfg.Source.BaseURL) == "" {
		cfg.Source.BaseURL = DefaultBaseURL
	}
	cfg.Source.BaseURL = strings.TrimRight(cfg.Source.BaseURL, "/")
	if cfg.Source.Limit == 0 {
		cfg.Source.Limit = DefaultLimit
	}
	if cfg.Source.Concurrency == 0 {
		cfg.Source.Concurrency = DefaultConcurrency
	}
	if cfg.Source.Timeout == 0 {
		cfg.Source.Timeout = DefaultTimeout
	}
	if cfg.View.PageSize == 0 {
		cfg.View.PageSize = DefaultPageSize
	}
}

func validateProjectConfig(cfg *ProjectConfig) error {
	if strings.TrimSpace(cfg.Project) == "" {
		return fmt.Errorf("project name is required")
	}
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported version: %d", cfg.Version)
	}

	dsn := strings.TrimSpace(cfg.Database.DSN)
	if dsn == "" {
		return fmt.Errorf("database dsn is required")
	}
	if _, err := DriverFor(dsn); err != nil {
		return err
	}

	if cfg.Source.Limit < 0 {
		return fmt.Errorf("source limit must be positive, got %d", cfg.Source.Limit)
	}
	if cfg.Source.Concurrency < 0 {
		return fmt.Errorf("source concurrency must be positive, got %d", cfg.Source.Concurrency)
	}
	if cfg.Source.Timeout < 0 {
		return fmt.Errorf("source timeout must be positive, got %s", cfg.Source.Timeout)
	}
	if cfg.View.PageSize < 0 {
		return fmt.Errorf("view page_size must be positive, got %d", cfg.View.PageSize)
	}

	return nil
}

type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

func DriverFor(dsn string) (Driver, error) {
	switch {
	case strings.HasPrefix(dsn, "sqlite://"):
		return DriverSQLite, nil
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return DriverPostgres, nil
	}
	return "", fmt.Errorf("unsupported database dsn scheme: %q", dsn)
}

func Default(project string) *ProjectConfig {
	cfg := &ProjectConfig{
		Project:  project,
		Version:  1,
		Database: DatabaseConfig{DSN: "sqlite://dexview.db"},
	}
	applyDefaults(cfg)
	return cfg
}

func (c *ProjectConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshaling project config: %w", err)
	}
	return data, nil
}
