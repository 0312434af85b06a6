package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/samcharles93/songsmith/internal/logger"
	"github.com/samcharles93/songsmith/internal/songwriter"
)

// Config represents the songsmith configuration file
// (~/.config/songsmith/config.yaml). Pointer fields distinguish "not set"
// from zero values.
type Config struct {
	Corpus   string `yaml:"corpus"`
	StateDir string `yaml:"state_dir"`
	Mode     string `yaml:"mode"`

	// Generation defaults
	MaxTokens      *int64 `yaml:"max_tokens"`
	Seed           *int64 `yaml:"seed"`
	WordsPerLine   *int   `yaml:"words_per_line"`
	LinesPerStanza *int   `yaml:"lines_per_stanza"`

	// Output
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	// Server
	ServerAddress string `yaml:"server_address"`
}

// cfg is loaded once by setup before any command runs.
var cfg Config

func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "songsmith", "config.yaml")
}

func defaultStateDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(".", ".songsmith")
	}
	return filepath.Join(dir, "songsmith")
}

// LoadConfig reads the config file. A missing file yields a zero Config;
// a malformed one is an error.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return Config{}, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, err
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, nil
}

// setup loads the config file and installs the logger into the context.
func setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	loaded, err := LoadConfig(configFile)
	if err != nil {
		return ctx, err
	}
	cfg = loaded

	if cfg.LogLevel != "" && !cmd.IsSet("log-level") {
		logLevel = cfg.LogLevel
	}
	if cfg.LogFormat != "" && !cmd.IsSet("log-format") {
		logFormat = cfg.LogFormat
	}
	format, err := logger.ParseFormat(logFormat)
	if err != nil {
		return ctx, err
	}
	level := logger.ParseLevel(logLevel)
	if debug {
		level = logger.ParseLevel("debug")
	}
	return logger.WithContext(ctx, logger.NewForFormat(os.Stderr, format, level)), nil
}

// applyModelConfig fills corpus, mode and state dir from the config file
// when the corresponding flag was not set.
func applyModelConfig(c *cli.Command, file Config) {
	if file.Corpus != "" && !c.IsSet("corpus") {
		corpusPath = file.Corpus
	}
	if file.Mode != "" && !c.IsSet("mode") {
		modeName = file.Mode
	}
	if file.StateDir != "" && !c.IsSet("state-dir") {
		stateDir = file.StateDir
	}
	if stateDir == "" {
		stateDir = defaultStateDir()
	}
}

// applyGenerateConfig applies generation defaults from the config file.
func applyGenerateConfig(c *cli.Command, file Config, maxTokens, seed *int64) {
	if file.MaxTokens != nil && !c.IsSet("max-tokens") {
		*maxTokens = *file.MaxTokens
	}
	if file.Seed != nil && !c.IsSet("seed") {
		*seed = *file.Seed
	}
}

// serviceConfig builds the songwriter configuration from the config file.
func serviceConfig(file Config) songwriter.Config {
	sc := songwriter.DefaultConfig()
	if file.WordsPerLine != nil && *file.WordsPerLine > 0 {
		sc.Layout.WordsPerLine = *file.WordsPerLine
	}
	if file.LinesPerStanza != nil && *file.LinesPerStanza >= 0 {
		sc.Layout.LinesPerStanza = *file.LinesPerStanza
	}
	if file.MaxTokens != nil && *file.MaxTokens > 0 {
		sc.DefaultMaxTokens = int(*file.MaxTokens)
	}
	return sc
}

// applyServeConfig applies config file defaults to serve command variables.
func applyServeConfig(c *cli.Command, file Config, addr *string) {
	applyModelConfig(c, file)
	if file.ServerAddress != "" && !c.IsSet("addr") {
		*addr = file.ServerAddress
	}
}
