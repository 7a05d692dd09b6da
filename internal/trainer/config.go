package trainer

import "github.com/koji-ohki-1974/word2vec-go/internal/w2verr"

// NetworkType selects the neural architecture the trainer optimizes.
type NetworkType int

const (
	// CBOW predicts a word from the mean of its context window's vectors.
	CBOW NetworkType = iota
	// SkipGram predicts each context word from the current word.
	SkipGram
)

func (t NetworkType) String() string {
	if t == SkipGram {
		return "skip-gram"
	}
	return "cbow"
}

// defaultAlpha returns the reference's per-architecture default initial
// learning rate: 0.05 for CBOW, 0.025 for skip-gram.
func (t NetworkType) defaultAlpha() float64 {
	if t == SkipGram {
		return 0.025
	}
	return 0.05
}

// Config drives a single training run.
type Config struct {
	// Type selects CBOW or SkipGram.
	Type NetworkType
	// Threads is the requested worker goroutine count; it is capped by the
	// host's detected logical core count.
	Threads int
	// Iterations is the number of full passes the trainer takes over the
	// sentence source.
	Iterations int
	// LayerSize is the embedding dimensionality.
	LayerSize int
	// WindowSize is the maximum context radius on either side of a word.
	WindowSize int
	// NegativeSamples is the number of negative samples drawn per training
	// example when negative sampling is enabled. Zero disables it.
	NegativeSamples int
	// UseHierarchicalSoftmax enables the Huffman-tree softmax branch. At
	// least one of this and NegativeSamples must be enabled.
	UseHierarchicalSoftmax bool
	// DownSampleRate is the subsampling threshold for frequent words; zero
	// disables subsampling.
	DownSampleRate float64
	// MinFrequency drops vocabulary entries with fewer occurrences.
	MinFrequency int64
	// InitialLearningRate overrides Type's default alpha when non-nil.
	InitialLearningRate *float64
}

// DefaultConfig returns a CBOW configuration with hierarchical softmax
// disabled and negative sampling enabled, matching the reference's default
// CLI flags.
func DefaultConfig() Config {
	return Config{
		Type:                   CBOW,
		Threads:                12,
		Iterations:             5,
		LayerSize:              100,
		WindowSize:             5,
		NegativeSamples:        5,
		UseHierarchicalSoftmax: false,
		DownSampleRate:         1e-3,
		MinFrequency:           5,
	}
}

func (c Config) alpha() float64 {
	if c.InitialLearningRate != nil {
		return *c.InitialLearningRate
	}
	return c.Type.defaultAlpha()
}

// Validate reports a KindInvalidConfig error for any field combination the
// trainer cannot run with.
func (c Config) Validate() error {
	switch {
	case c.LayerSize <= 0:
		return w2verr.New(w2verr.KindInvalidConfig, "layer size must be positive")
	case c.WindowSize <= 0:
		return w2verr.New(w2verr.KindInvalidConfig, "window size must be positive")
	case c.Iterations <= 0:
		return w2verr.New(w2verr.KindInvalidConfig, "iterations must be positive")
	case c.Threads <= 0:
		return w2verr.New(w2verr.KindInvalidConfig, "threads must be positive")
	case c.NegativeSamples < 0:
		return w2verr.New(w2verr.KindInvalidConfig, "negative samples must be zero or positive")
	case c.DownSampleRate < 0:
		return w2verr.New(w2verr.KindInvalidConfig, "down-sample rate must be zero or positive")
	case c.MinFrequency < 0:
		return w2verr.New(w2verr.KindInvalidConfig, "min frequency must be zero or positive")
	case !c.UseHierarchicalSoftmax && c.NegativeSamples == 0:
		return w2verr.New(w2verr.KindInvalidConfig, "at least one of hierarchical softmax or negative sampling must be enabled")
	case c.InitialLearningRate != nil && *c.InitialLearningRate <= 0:
		return w2verr.New(w2verr.KindInvalidConfig, "initial learning rate must be positive")
	}
	return nil
}
