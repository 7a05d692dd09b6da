package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/koji-ohki-1974/word2vec-go/internal/trainer"
)

// fileConfig is the TOML-shaped mirror of trainer.Config used by WriteFile
// and ReadFile.
type fileConfig struct {
	Type                   string   `toml:"type"`
	Threads                int      `toml:"threads"`
	Iterations             int      `toml:"iterations"`
	LayerSize              int      `toml:"layer_size"`
	WindowSize             int      `toml:"window_size"`
	NegativeSamples        int      `toml:"negative_samples"`
	UseHierarchicalSoftmax bool     `toml:"use_hierarchical_softmax"`
	DownSampleRate         float64  `toml:"down_sample_rate"`
	MinFrequency           int64    `toml:"min_frequency"`
	InitialLearningRate    *float64 `toml:"initial_learning_rate,omitempty"`
}

func toFileConfig(cfg trainer.Config) fileConfig {
	return fileConfig{
		Type:                   cfg.Type.String(),
		Threads:                cfg.Threads,
		Iterations:             cfg.Iterations,
		LayerSize:              cfg.LayerSize,
		WindowSize:             cfg.WindowSize,
		NegativeSamples:        cfg.NegativeSamples,
		UseHierarchicalSoftmax: cfg.UseHierarchicalSoftmax,
		DownSampleRate:         cfg.DownSampleRate,
		MinFrequency:           cfg.MinFrequency,
		InitialLearningRate:    cfg.InitialLearningRate,
	}
}

func (fc fileConfig) toConfig() trainer.Config {
	return trainer.Config{
		Type:                   parseType(fc.Type),
		Threads:                fc.Threads,
		Iterations:             fc.Iterations,
		LayerSize:              fc.LayerSize,
		WindowSize:             fc.WindowSize,
		NegativeSamples:        fc.NegativeSamples,
		UseHierarchicalSoftmax: fc.UseHierarchicalSoftmax,
		DownSampleRate:         fc.DownSampleRate,
		MinFrequency:           fc.MinFrequency,
		InitialLearningRate:    fc.InitialLearningRate,
	}
}

// WriteFile persists cfg as TOML using the same BurntSushi/toml encoder the
// reference project's config loader writes with, independent of viper's own
// (different) TOML codec used by Load.
func WriteFile(path string, cfg trainer.Config) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(toFileConfig(cfg))
}

// ReadFile decodes a TOML file written by WriteFile, for callers that want
// a single config value without Load's layered precedence chain.
func ReadFile(path string) (trainer.Config, error) {
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return trainer.Config{}, err
	}
	return fc.toConfig(), nil
}
