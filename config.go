package word2vec

import "github.com/koji-ohki-1974/word2vec-go/internal/config"

// ConfigOverrides carries explicit programmatic values that win over a
// config file and the environment when loading a Config with LoadConfig.
type ConfigOverrides = config.Overrides

// LoadConfigOptions controls where LoadConfig looks for a config file.
type LoadConfigOptions = config.LoadOptions

// LoadConfig builds a Config from built-in defaults, an optional TOML file,
// WORD2VEC_-prefixed environment variables, and explicit overrides, in that
// ascending precedence order.
func LoadConfig(opts LoadConfigOptions) (Config, error) {
	return config.Load(opts)
}

// SaveConfig persists cfg as a standalone TOML file, for callers that want
// to snapshot a training run's configuration for later replay with
// LoadConfigFile or LoadConfig's FilePath option.
func SaveConfig(path string, cfg Config) error {
	return config.WriteFile(path, cfg)
}

// LoadConfigFile reads a single Config from a TOML file previously written
// by SaveConfig, without LoadConfig's defaults/env/override precedence
// chain.
func LoadConfigFile(path string) (Config, error) {
	return config.ReadFile(path)
}
