package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/classprojectsecond-jpg/campus-prompt-palette/internal/domain"
)

// Config holds user-adjustable defaults applied to a fresh session.
type Config struct {
	Mode          string `yaml:"mode,omitempty"`           // learning | task
	ResultFormat  string `yaml:"result_format,omitempty"`  // outline | full
	TargetModel   string `yaml:"target_model,omitempty"`   // chatgpt | gemini | other
	ReportTone    string `yaml:"report_tone,omitempty"`    // academic | report | presentation | casual
	SelfCheck     *bool  `yaml:"self_check,omitempty"`
	IncludeSources *bool `yaml:"include_sources,omitempty"`
}

// Dir returns the configuration directory (~/.config/palette).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "palette"), nil
}

// Path returns the config file location: $PALETTE_CONFIG when set,
// otherwise ~/.config/palette/config.yaml.
func Path() (string, error) {
	if p := os.Getenv("PALETTE_CONFIG"); p != "" {
		return p, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config file. A missing file returns (nil, nil); the
// caller falls back to baked-in defaults.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes the config file, creating the directory when needed.
func Save(cfg *Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Apply overlays config values onto default form state. Unset or
// unrecognized values leave the defaults untouched.
func Apply(cfg *Config, state *domain.FormState) {
	if cfg == nil {
		return
	}
	switch cfg.Mode {
	case "learning":
		state.Common.Mode = domain.ModeLearning
	case "task":
		state.Common.Mode = domain.ModeTask
	}
	switch cfg.ResultFormat {
	case "outline":
		state.Common.ResultFormat = domain.FormatOutline
	case "full":
		state.Common.ResultFormat = domain.FormatFull
	}
	switch cfg.TargetModel {
	case "chatgpt":
		state.Common.TargetModel = domain.ModelChatGPT
	case "gemini":
		state.Common.TargetModel = domain.ModelGemini
	case "other":
		state.Common.TargetModel = domain.ModelOther
	}
	switch cfg.ReportTone {
	case "academic", "report", "presentation", "casual":
		state.Report.Tone = domain.ReportTone(cfg.ReportTone)
	}
	if cfg.SelfCheck != nil {
		state.Common.IncludeSelfCheck = *cfg.SelfCheck
	}
	if cfg.IncludeSources != nil {
		state.Common.IncludeSources = *cfg.IncludeSources
	}
}
