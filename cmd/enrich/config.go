package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig is the YAML shape of the optional config file. Timeout is a
// duration string ("90s", "3m") since yaml.v3 has no native time.Duration
// support.
type fileConfig struct {
	Search   string `yaml:"search"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
	Parallel bool   `yaml:"parallel"`
}

// config holds the resolved CLI settings: file values first, then flag
// overrides per field.
type config struct {
	Search   string
	Model    string
	Timeout  time.Duration
	Parallel bool
}

// loadConfig reads the YAML config file at path. A missing file is not an
// error; defaults apply.
func loadConfig(path string) (config, error) {
	cfg := config{
		Search:  "duckduckgo",
		Timeout: 3 * time.Minute,
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if fc.Search != "" {
		cfg.Search = fc.Search
	}
	if fc.Model != "" {
		cfg.Model = fc.Model
	}
	if fc.Timeout != "" {
		d, err := time.ParseDuration(fc.Timeout)
		if err != nil {
			return cfg, fmt.Errorf("config %s: invalid timeout: %w", path, err)
		}
		cfg.Timeout = d
	}
	cfg.Parallel = fc.Parallel
	return cfg, nil
}

// applyFlags overrides config fields with any flags the user set.
func (c *config) applyFlags() error {
	if flagSearch != "" {
		c.Search = flagSearch
	}
	if flagModel != "" {
		c.Model = flagModel
	}
	if flagTimeout != "" {
		d, err := time.ParseDuration(flagTimeout)
		if err != nil {
			return fmt.Errorf("invalid --timeout: %w", err)
		}
		c.Timeout = d
	}
	if flagParallel {
		c.Parallel = true
	}
	return nil
}
