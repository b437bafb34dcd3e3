package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Game.Mode != "practice" || c.Game.Difficulty != "easy" || c.Game.Questions != 5 {
		t.Errorf("defaults = %+v", c.Game)
	}
	if c.Language != "english" {
		t.Errorf("Language = %q, want english", c.Language)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("game:\n  mode: challenge\n  difficulty: hard\nlanguage: hindi\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Game.Mode != "challenge" || c.Game.Difficulty != "hard" {
		t.Errorf("Game = %+v", c.Game)
	}
	// Unset keys keep their defaults.
	if c.Game.Questions != 5 {
		t.Errorf("Questions = %d, want default 5", c.Game.Questions)
	}
	if c.Language != "hindi" {
		t.Errorf("Language = %q, want hindi", c.Language)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("game: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load did not error on invalid YAML")
	}
}
