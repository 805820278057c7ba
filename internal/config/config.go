package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/launchwrap/internal/handoff"
)

// StdinInput selects the process standard input as the line source.
const StdinInput = "-"

// LauncherConfig controls how the bootstrap reads its stream and what it
// does right before handoff.
type LauncherConfig struct {
	Input           string
	MaxLineBytes    int
	ExportEnv       bool
	EnvPrefix       string
	MetricsTextfile string
	LogLevel        string
}

type fileConfig struct {
	Input           string `toml:"input"`
	MaxLineBytes    int    `toml:"max_line_bytes"`
	ExportEnv       bool   `toml:"export_env"`
	EnvPrefix       string `toml:"env_prefix"`
	MetricsTextfile string `toml:"metrics_textfile"`
	LogLevel        string `toml:"log_level"`
}

func DefaultLauncherConfig() LauncherConfig {
	return LauncherConfig{
		Input:        StdinInput,
		MaxLineBytes: handoff.DefaultMaxLineBytes,
	}
}

// LoadLauncherConfig overlays the keys present in path onto the defaults.
func LoadLauncherConfig(path string) (LauncherConfig, error) {
	cfg := DefaultLauncherConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return LauncherConfig{}, fmt.Errorf("load launcher config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return LauncherConfig{}, fmt.Errorf("load launcher config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("input") {
		cfg.Input = strings.TrimSpace(raw.Input)
	}
	if meta.IsDefined("max_line_bytes") {
		cfg.MaxLineBytes = raw.MaxLineBytes
	}
	if meta.IsDefined("export_env") {
		cfg.ExportEnv = raw.ExportEnv
	}
	if meta.IsDefined("env_prefix") {
		cfg.EnvPrefix = strings.TrimSpace(raw.EnvPrefix)
	}
	if meta.IsDefined("metrics_textfile") {
		cfg.MetricsTextfile = strings.TrimSpace(raw.MetricsTextfile)
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}

	if err := ValidateLauncherConfig(cfg); err != nil {
		return LauncherConfig{}, err
	}
	return cfg, nil
}

func ValidateLauncherConfig(cfg LauncherConfig) error {
	if cfg.Input == "" {
		return fmt.Errorf("launcher config missing input")
	}
	if cfg.MaxLineBytes <= 0 {
		return fmt.Errorf("launcher config max_line_bytes must be positive, got %d", cfg.MaxLineBytes)
	}
	if cfg.EnvPrefix != "" && !cfg.ExportEnv {
		return fmt.Errorf("launcher config env_prefix requires export_env")
	}
	return nil
}
