package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jpschroeder/minilisp"
)

// Config models the optional YAML settings file.
type Config struct {
	Prompt      string `yaml:"prompt"`
	MaxDepth    int    `yaml:"max_depth"`
	HistoryFile string `yaml:"history_file"`
	Color       bool   `yaml:"color"`
	LogLevel    string `yaml:"log_level"`
}

func DefaultConfig() Config {
	return Config{
		Prompt:      "user=> ",
		MaxDepth:    minilisp.DefaultMaxDepth,
		HistoryFile: "~/.minilisp_history",
		Color:       true,
		LogLevel:    "warn",
	}
}

// LoadConfig reads path over the defaults. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.MaxDepth < 0 {
		return cfg, fmt.Errorf("config: max_depth must not be negative: %d", cfg.MaxDepth)
	}
	if _, err := cfg.Level(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelWarn, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, fmt.Errorf("config: log_level: %w", err)
	}
	return level, nil
}

// HistoryPath expands a leading ~ in HistoryFile. Empty disables history.
func (c Config) HistoryPath() string {
	path := c.HistoryFile
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
	}
	return path
}
