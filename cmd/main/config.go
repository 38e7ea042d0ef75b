package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/CTAG07/shaderinline/pkg/inliner"
)

// Config is the top-level configuration of a site build.
type Config struct {
	TemplatePath string         `json:"template_path"`
	OutputPath   string         `json:"output_path"`
	LogLevel     string         `json:"log_level"`
	Inliner      inliner.Config `json:"inliner_config"`
}

// DefaultConfig returns the fixed paths the site build has always used.
func DefaultConfig() *Config {
	return &Config{
		TemplatePath: "src/pages/index.html",
		OutputPath:   "site/index.html",
		LogLevel:     "warn",
		Inliner:      inliner.DefaultConfig(),
	}
}

// LoadConfig reads a JSON configuration file on top of the defaults.
// Unlike the defaults, an explicitly named file must exist.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err = json.Unmarshal(file, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return config, nil
}

// applyFlags overrides config values with any flags set on the command line.
func (c *Config) applyFlags(cli *CLI) {
	if cli.Template != "" {
		c.TemplatePath = cli.Template
	}
	if cli.Output != "" {
		c.OutputPath = cli.Output
	}
	if cli.LogLevel != "" {
		c.LogLevel = cli.LogLevel
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
