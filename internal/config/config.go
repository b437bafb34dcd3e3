// Package config loads optional settings from a YAML file. Everything
// has a sensible default; a missing file is not an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration.
type Config struct {
	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`
	Game struct {
		Mode       string `yaml:"mode"`
		Difficulty string `yaml:"difficulty"`
		Questions  int    `yaml:"questions"`
	} `yaml:"game"`
	Language string `yaml:"language"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	var c Config
	c.Game.Mode = "practice"
	c.Game.Difficulty = "easy"
	c.Game.Questions = 5
	c.Language = "english"
	return c
}

// DefaultPath returns the standard config location:
// $XDG_CONFIG_HOME/gyanguru/config.yaml, falling back to
// ~/.config/gyanguru/config.yaml.
func DefaultPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "gyanguru", "config.yaml"), nil
}

// Load reads the config at path, layering it over the defaults. A
// missing file returns the defaults.
func Load(path string) (Config, error) {
	c := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return c, fmt.Errorf("parse config %s: %w", path, err)
	}
	return c, nil
}
