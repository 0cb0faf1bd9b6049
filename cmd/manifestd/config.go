package main

import (
	"fmt"
	"os"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"
)

// Config is manifestd's on-disk configuration, loaded the way the teacher's
// xatu service loads its own execution-processor config: defaults applied
// first, then a YAML file unmarshaled on top, then validated.
type Config struct {
	Addr           string        `yaml:"addr" default:":8080"`
	LogLevel       string        `yaml:"log_level" default:"info"`
	LogDevelopment bool          `yaml:"log_development" default:"false"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
	SchemaRegistry []SchemaEntry `yaml:"schema_registry"`
}

// SchemaEntry seeds the service's StaticSchemaRegistry at startup.
type SchemaEntry struct {
	Blueprint string `yaml:"blueprint"`
	Module    string `yaml:"module"`
	Method    string `yaml:"method"`
}

// Validate checks the fields that matter once defaults are applied.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("config: addr must not be empty")
	}
	return nil
}

func loadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("config: apply defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}

		type plain Config
		if err := yaml.Unmarshal(data, (*plain)(cfg)); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
