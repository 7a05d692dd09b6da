// Package config loads a trainer.Config through a layered precedence chain:
// built-in defaults, then an optional TOML file, then WORD2VEC_-prefixed
// environment variables, then explicit programmatic overrides — the same
// shape the reference project's viper-backed loader uses, retargeted here
// at trainer.Config's fields instead of an application config struct.
package config

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/koji-ohki-1974/word2vec-go/internal/trainer"
	"github.com/koji-ohki-1974/word2vec-go/internal/w2verr"
)

// Overrides carries explicit programmatic values that win over everything
// else in the precedence chain. A nil pointer field means "not overridden".
type Overrides struct {
	Type                   *trainer.NetworkType
	Threads                *int
	Iterations             *int
	LayerSize              *int
	WindowSize             *int
	NegativeSamples        *int
	UseHierarchicalSoftmax *bool
	DownSampleRate         *float64
	MinFrequency           *int64
	InitialLearningRate    *float64
}

// LoadOptions controls where Load looks for a config file.
type LoadOptions struct {
	// FilePath, if non-empty, is read as a TOML file merged over the
	// defaults. A missing file is not an error; a malformed one is.
	FilePath string
	// Overrides win over the file and the environment.
	Overrides Overrides
}

const envPrefix = "WORD2VEC"

func setDefaults(v *viper.Viper) {
	def := trainer.DefaultConfig()
	v.SetDefault("type", def.Type.String())
	v.SetDefault("threads", def.Threads)
	v.SetDefault("iterations", def.Iterations)
	v.SetDefault("layer_size", def.LayerSize)
	v.SetDefault("window_size", def.WindowSize)
	v.SetDefault("negative_samples", def.NegativeSamples)
	v.SetDefault("use_hierarchical_softmax", def.UseHierarchicalSoftmax)
	v.SetDefault("down_sample_rate", def.DownSampleRate)
	v.SetDefault("min_frequency", def.MinFrequency)
}

func bindEnv(v *viper.Viper) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}

func parseType(raw string) trainer.NetworkType {
	switch strings.ToLower(raw) {
	case "skip-gram", "skip_gram", "skipgram":
		return trainer.SkipGram
	default:
		return trainer.CBOW
	}
}

// Load builds a trainer.Config from defaults, an optional TOML file, the
// environment, and explicit overrides, in that ascending precedence order.
func Load(opts LoadOptions) (trainer.Config, error) {
	v := viper.New()
	v.SetConfigType("toml")
	setDefaults(v)
	bindEnv(v)

	if opts.FilePath != "" {
		v.SetConfigFile(opts.FilePath)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !errors.Is(err, os.ErrNotExist) {
				return trainer.Config{}, w2verr.Wrap(w2verr.KindIO, err)
			}
		}
	}

	cfg := trainer.Config{
		Type:                   parseType(v.GetString("type")),
		Threads:                v.GetInt("threads"),
		Iterations:             v.GetInt("iterations"),
		LayerSize:              v.GetInt("layer_size"),
		WindowSize:             v.GetInt("window_size"),
		NegativeSamples:        v.GetInt("negative_samples"),
		UseHierarchicalSoftmax: v.GetBool("use_hierarchical_softmax"),
		DownSampleRate:         v.GetFloat64("down_sample_rate"),
		MinFrequency:           int64(v.GetInt("min_frequency")),
	}
	if v.IsSet("initial_learning_rate") {
		rate := v.GetFloat64("initial_learning_rate")
		cfg.InitialLearningRate = &rate
	}

	applyOverrides(&cfg, opts.Overrides)

	if err := cfg.Validate(); err != nil {
		return trainer.Config{}, err
	}
	return cfg, nil
}

func applyOverrides(cfg *trainer.Config, o Overrides) {
	if o.Type != nil {
		cfg.Type = *o.Type
	}
	if o.Threads != nil {
		cfg.Threads = *o.Threads
	}
	if o.Iterations != nil {
		cfg.Iterations = *o.Iterations
	}
	if o.LayerSize != nil {
		cfg.LayerSize = *o.LayerSize
	}
	if o.WindowSize != nil {
		cfg.WindowSize = *o.WindowSize
	}
	if o.NegativeSamples != nil {
		cfg.NegativeSamples = *o.NegativeSamples
	}
	if o.UseHierarchicalSoftmax != nil {
		cfg.UseHierarchicalSoftmax = *o.UseHierarchicalSoftmax
	}
	if o.DownSampleRate != nil {
		cfg.DownSampleRate = *o.DownSampleRate
	}
	if o.MinFrequency != nil {
		cfg.MinFrequency = *o.MinFrequency
	}
	if o.InitialLearningRate != nil {
		cfg.InitialLearningRate = o.InitialLearningRate
	}
}
