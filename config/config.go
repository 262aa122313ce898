// Package config loads advisor configuration from YAML with sane defaults,
// so the binary runs with no config file at all.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"rift/lane"
	"rift/searcher"
)

// maxConfigFileSize guards against accidentally pointing the loader at a
// huge file.
const maxConfigFileSize = 1 << 20

// Config is the full advisor configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Search  SearchConfig  `yaml:"search"`
	Log     LogConfig     `yaml:"log"`
	Storage StorageConfig `yaml:"storage"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

type SearchConfig struct {
	Iterations   int     `yaml:"iterations"`
	RolloutDepth int     `yaml:"rollout_depth"`
	Exploration  float64 `yaml:"exploration"`
	Workers      int     `yaml:"workers"`
	Policy       string  `yaml:"policy"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

type StorageConfig struct {
	MatchDir string `yaml:"match_dir"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Search: SearchConfig{
			Iterations:   searcher.DefaultIterations,
			RolloutDepth: searcher.DefaultRolloutDepth,
			Exploration:  searcher.DefaultExploration,
			Workers:      1,
			Policy:       "average",
		},
		Log: LogConfig{
			Level: "info",
		},
		Storage: StorageConfig{
			MatchDir: "data/matches",
		},
	}
}

// Load reads a YAML file over the defaults. An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return Config{}, fmt.Errorf("stat config: %w", err)
	}
	if info.Size() > maxConfigFileSize {
		return Config{}, fmt.Errorf("config file %s is too large (%d bytes)", path, info.Size())
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the advisor cannot run with.
func (c Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	if c.Search.Iterations <= 0 {
		return fmt.Errorf("search.iterations must be positive, got %d", c.Search.Iterations)
	}
	if c.Search.Iterations > searcher.MaxIterations {
		return fmt.Errorf("search.iterations %d exceeds the cap of %d",
			c.Search.Iterations, searcher.MaxIterations)
	}
	if c.Search.RolloutDepth <= 0 {
		return fmt.Errorf("search.rollout_depth must be positive, got %d", c.Search.RolloutDepth)
	}
	if c.Search.Exploration < 0 {
		return fmt.Errorf("search.exploration must not be negative, got %v", c.Search.Exploration)
	}
	if c.Search.Workers <= 0 {
		return fmt.Errorf("search.workers must be positive, got %d", c.Search.Workers)
	}
	if _, err := lane.ParseOpponentPolicy(c.Search.Policy); err != nil {
		return fmt.Errorf("search.policy: %w", err)
	}
	return nil
}
