package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the YAML config file schema. Every field is optional;
// zero values mean "keep the current setting". Flags parsed afterwards win
// over file values.
type fileConfig struct {
	Source     string  `yaml:"source"`
	OutputDir  string  `yaml:"output_dir"`
	Size       string  `yaml:"size"`
	Window     string  `yaml:"window"`
	Count      int     `yaml:"count"`
	Workers    int     `yaml:"workers"`
	TimeoutSec int     `yaml:"timeout_seconds"`
	FPS        float64 `yaml:"fps"`
	Prefix     string  `yaml:"prefix"`
	LogFile    string  `yaml:"log_file"`
}

// LoadFile overlays settings from a YAML file onto cfg. A missing or empty
// file is not an error; a present but malformed file is.
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	if fc.Source != "" {
		cfg.SourceURL = NormalizeSourceArg(fc.Source)
	}
	if fc.OutputDir != "" {
		cfg.OutputDir = NormalizeDirArg(fc.OutputDir)
	}
	if fc.Size != "" {
		cfg.Resolution = fc.Size
	}
	if fc.Window != "" {
		cfg.WindowArg = fc.Window
	}
	if fc.Count != 0 {
		cfg.MaxCount = fc.Count
	}
	if fc.Workers != 0 {
		cfg.Workers = fc.Workers
	}
	if fc.TimeoutSec != 0 {
		cfg.FetchTimeout = time.Duration(fc.TimeoutSec) * time.Second
	}
	if fc.FPS != 0 {
		cfg.FrameRate = fc.FPS
	}
	if fc.Prefix != "" {
		cfg.OutputPrefix = fc.Prefix
	}
	if fc.LogFile != "" {
		cfg.LogFile = fc.LogFile
	}
	return nil
}
