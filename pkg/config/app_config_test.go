package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAppConfigDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadAppConfig("")
	if err != nil {
		t.Fatalf("LoadAppConfig() failed: %v", err)
	}

	if cfg.LevelsFile != DefaultLevelsFile {
		t.Errorf("LevelsFile = %q, want %q", cfg.LevelsFile, DefaultLevelsFile)
	}
	if cfg.StartLevel != 1 {
		t.Errorf("StartLevel = %d, want 1", cfg.StartLevel)
	}
	if cfg.Verbose || cfg.Fullscreen {
		t.Errorf("Verbose/Fullscreen should default to false: %+v", cfg)
	}
}

func TestLoadAppConfigEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MEMORY_START_LEVEL", "3")
	t.Setenv("MEMORY_SEED", "42")
	t.Setenv("MEMORY_VERBOSE", "true")

	cfg, err := LoadAppConfig("")
	if err != nil {
		t.Fatalf("LoadAppConfig() failed: %v", err)
	}

	if cfg.StartLevel != 3 {
		t.Errorf("StartLevel = %d, want 3", cfg.StartLevel)
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Seed)
	}
	if !cfg.Verbose {
		t.Error("Verbose should be true from environment")
	}
}

func TestLoadAppConfigFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "memory.yaml")
	content := "levels_file: custom/levels.yaml\nstart_level: 2\nfullscreen: true\n"
	if err := os.WriteFile(file, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}

	cfg, err := LoadAppConfig(file)
	if err != nil {
		t.Fatalf("LoadAppConfig() failed: %v", err)
	}

	if cfg.LevelsFile != "custom/levels.yaml" {
		t.Errorf("LevelsFile = %q", cfg.LevelsFile)
	}
	if cfg.StartLevel != 2 || !cfg.Fullscreen {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestLoadAppConfigInvalid(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	t.Run("missing explicit file", func(t *testing.T) {
		if _, err := LoadAppConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Error("Expected error for missing explicit config file")
		}
	})

	t.Run("start level below one", func(t *testing.T) {
		t.Setenv("MEMORY_START_LEVEL", "0")
		if _, err := LoadAppConfig(""); err == nil {
			t.Error("Expected validation error for start_level 0")
		}
	})
}
