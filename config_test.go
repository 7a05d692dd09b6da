package word2vec

import (
	"path/filepath"
	"testing"
)

func TestSaveConfigLoadConfigFileRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Type = SkipGram
	cfg.LayerSize = 50

	path := filepath.Join(t.TempDir(), "run.toml")
	if err := SaveConfig(path, cfg); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}
	got, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}
	if got.Type != cfg.Type || got.LayerSize != cfg.LayerSize {
		t.Fatalf("round-tripped config = %+v, want %+v", got, cfg)
	}
}

func TestLoadConfigAppliesOverrides(t *testing.T) {
	layerSize := 33
	cfg, err := LoadConfig(LoadConfigOptions{Overrides: ConfigOverrides{LayerSize: &layerSize}})
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.LayerSize != 33 {
		t.Fatalf("LayerSize = %d, want 33", cfg.LayerSize)
	}
}
