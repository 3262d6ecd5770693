package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ModelJob describes one translation: an Antimony input, the SBML output
// path, and optionally a specific module (empty means the main module).
type ModelJob struct {
	Input  string `toml:"input"`
	Output string `toml:"output"`
	Module string `toml:"module"`
}

// BatchConfig is the TOML layout accepted by -config.
type BatchConfig struct {
	SearchDirs []string   `toml:"search_dirs"`
	Models     []ModelJob `toml:"model"`
}

// LoadBatchConfig reads and validates a batch configuration file.
func LoadBatchConfig(path string) (*BatchConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg BatchConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if len(cfg.Models) == 0 {
		return nil, errors.New("config defines no [[model]] entries")
	}
	for i, m := range cfg.Models {
		if m.Input == "" {
			return nil, fmt.Errorf("model %d: input is required", i)
		}
		if m.Output == "" {
			return nil, fmt.Errorf("model %d: output is required", i)
		}
	}
	return &cfg, nil
}
