package config

import (
	"path/filepath"
	"testing"

	"github.com/koji-ohki-1974/word2vec-go/internal/trainer"
)

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(LoadOptions{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := trainer.DefaultConfig()
	if cfg.LayerSize != def.LayerSize || cfg.WindowSize != def.WindowSize {
		t.Fatalf("cfg = %+v, want defaults %+v", cfg, def)
	}
}

func TestLoadOverridesWinOverDefaults(t *testing.T) {
	layerSize := 42
	cfg, err := Load(LoadOptions{Overrides: Overrides{LayerSize: &layerSize}})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LayerSize != 42 {
		t.Fatalf("cfg.LayerSize = %d, want 42", cfg.LayerSize)
	}
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	t.Setenv("WORD2VEC_LAYER_SIZE", "64")
	cfg, err := Load(LoadOptions{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LayerSize != 64 {
		t.Fatalf("cfg.LayerSize = %d, want 64 from env", cfg.LayerSize)
	}
}

func TestLoadRejectsInvalidResult(t *testing.T) {
	hs := false
	neg := 0
	_, err := Load(LoadOptions{Overrides: Overrides{
		UseHierarchicalSoftmax: &hs,
		NegativeSamples:        &neg,
	}})
	if err == nil {
		t.Fatalf("expected validation error when both HS and negative sampling are disabled")
	}
}

func TestWriteFileReadFileRoundTrip(t *testing.T) {
	cfg := trainer.DefaultConfig()
	rate := 0.01
	cfg.InitialLearningRate = &rate

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := WriteFile(path, cfg); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got.LayerSize != cfg.LayerSize || got.Threads != cfg.Threads || got.Type != cfg.Type {
		t.Fatalf("round-tripped config = %+v, want %+v", got, cfg)
	}
	if got.InitialLearningRate == nil || *got.InitialLearningRate != rate {
		t.Fatalf("InitialLearningRate = %v, want %v", got.InitialLearningRate, rate)
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("expected error reading a missing file")
	}
}
