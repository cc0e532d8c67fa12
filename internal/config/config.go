package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// TaggerConfig configures the tagging capability.
type TaggerConfig struct {
	Language string `yaml:"language"`
	// DataDir pins the model data directory; empty means search the
	// conventional locations.
	DataDir string `yaml:"data_dir,omitempty"`
}

// EstimateConfig holds the defaults for estimation runs.
type EstimateConfig struct {
	Threshold float64 `yaml:"threshold"`
	Round     int     `yaml:"round"`
}

// CompareConfig holds the defaults for comparison runs.
type CompareConfig struct {
	Round    int  `yaml:"round"`
	BothOnly bool `yaml:"both_only"`
}

// LoggingConfig controls the diagnostic stream.
type LoggingConfig struct {
	Verbose bool `yaml:"verbose"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Tagger   TaggerConfig   `yaml:"tagger"`
	Estimate EstimateConfig `yaml:"estimate"`
	Compare  CompareConfig  `yaml:"compare"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./posweights.yaml first, then
// ~/.config/posweights/config.yaml. If neither exists it returns defaults
// without writing anything.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "posweights.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	return defaultConfig(), "", nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "posweights", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Tagger:   TaggerConfig{Language: "en"},
		Estimate: EstimateConfig{Threshold: 0.01, Round: 3},
		Compare:  CompareConfig{Round: 3},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Tagger.Language == "" {
		cfg.Tagger.Language = "en"
	}
	if cfg.Estimate.Threshold == 0 {
		cfg.Estimate.Threshold = 0.01
	}
	if cfg.Estimate.Round == 0 {
		cfg.Estimate.Round = 3
	}
	if cfg.Compare.Round == 0 {
		cfg.Compare.Round = 3
	}
}
