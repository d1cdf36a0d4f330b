package config

import (
	"path/filepath"
	"testing"

	"minpairs/internal/generator"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Generation.Pairs != 120 {
		t.Errorf("expected Pairs=120, got %d", cfg.Generation.Pairs)
	}
	if cfg.Generation.Violations != string(generator.ViolateAll) {
		t.Errorf("expected Violations=all, got %s", cfg.Generation.Violations)
	}
	if cfg.Generation.SlotAttempts != generator.DefaultSlotAttempts {
		t.Errorf("expected SlotAttempts=%d, got %d", generator.DefaultSlotAttempts, cfg.Generation.SlotAttempts)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected Level=info, got %s", cfg.Logging.Level)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	t.Setenv("MINPAIRS_DB", "")
	t.Setenv("MINPAIRS_LEXICON", "")
	t.Setenv("MINPAIRS_SEQUENCES", "")

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "minpairs.yaml")

	cfg := DefaultConfig()
	cfg.Data.LexiconPath = "data/lexicon.csv"
	cfg.Generation.Pairs = 42
	cfg.Generation.Violations = string(generator.ViolateFirst)

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Data.LexiconPath != "data/lexicon.csv" {
		t.Errorf("expected LexiconPath=data/lexicon.csv, got %s", loaded.Data.LexiconPath)
	}
	if loaded.Generation.Pairs != 42 {
		t.Errorf("expected Pairs=42, got %d", loaded.Generation.Pairs)
	}
	if loaded.Policy() != generator.ViolateFirst {
		t.Errorf("expected policy first, got %s", loaded.Policy())
	}
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	t.Setenv("MINPAIRS_DB", "")
	t.Setenv("MINPAIRS_LEXICON", "")
	t.Setenv("MINPAIRS_SEQUENCES", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Generation.Pairs != 120 {
		t.Errorf("expected defaults, got Pairs=%d", cfg.Generation.Pairs)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MINPAIRS_DB", "env.db")
	t.Setenv("MINPAIRS_LEXICON", "env-lexicon.csv")
	t.Setenv("MINPAIRS_SEQUENCES", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Output.DatabasePath != "env.db" {
		t.Errorf("expected DatabasePath=env.db, got %s", cfg.Output.DatabasePath)
	}
	if cfg.Data.LexiconPath != "env-lexicon.csv" {
		t.Errorf("expected LexiconPath=env-lexicon.csv, got %s", cfg.Data.LexiconPath)
	}
}

func TestValidate_RejectsUnknownPolicy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Generation.Violations = "sometimes"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown violations policy")
	}
}

func TestValidate_RejectsNegativeCounts(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Generation.Pairs = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative pairs")
	}

	cfg = DefaultConfig()
	cfg.Generation.Runs = -2
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative runs")
	}
}
