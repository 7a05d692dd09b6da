// Package trainer implements the parallel stochastic optimizer that turns a
// vocabulary and a sentence source into embedding matrices: CBOW and
// skip-gram architectures, each with a hierarchical-softmax and a
// negative-sampling output branch, trained by unsynchronized goroutines
// sharing one set of weight matrices.
package trainer

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/shirou/gopsutil/v3/cpu"

	"github.com/koji-ohki-1974/word2vec-go/internal/corpus"
	"github.com/koji-ohki-1974/word2vec-go/internal/huffman"
	"github.com/koji-ohki-1974/word2vec-go/internal/logging"
	"github.com/koji-ohki-1974/word2vec-go/internal/vocab"
	"github.com/koji-ohki-1974/word2vec-go/internal/w2verr"
)

// maxSentenceLength bounds how many words the worker buffers per sentence
// before starting a fresh one, matching the reference's fixed-size buffer.
const maxSentenceLength = 1000

// Model is the trained result: the embedding matrix and the vocabulary it
// is indexed by. Word2vec's public facade converts this into its own
// language-neutral record.
type Model struct {
	LayerSize  int
	Vocabulary []string
	Syn0       []float64
}

// availableCores reports the host's logical core count, preferring
// gopsutil's cross-platform probe and falling back to runtime.NumCPU if it
// errors.
func availableCores() int {
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// Train runs the full pipeline: vocabulary acquisition, Huffman encoding,
// then the parallel training loop, reporting progress through listener and
// honoring ctx cancellation at sentence-stream boundaries. The vocabulary is
// learned by scanning source.
func Train(ctx context.Context, cfg Config, source corpus.Source, listener ProgressListener) (*Model, error) {
	return train(ctx, cfg, source, nil, listener)
}

// TrainWithVocabulary runs the same pipeline as Train, but builds the
// vocabulary from a caller-supplied word/count multiset (see
// vocab.FromOverride) instead of scanning source. source is still required:
// it supplies the training examples the network is optimized against, only
// vocabulary acquisition is skipped.
func TrainWithVocabulary(ctx context.Context, cfg Config, override map[string]int64, source corpus.Source, listener ProgressListener) (*Model, error) {
	return train(ctx, cfg, source, override, listener)
}

func train(ctx context.Context, cfg Config, source corpus.Source, override map[string]int64, listener ProgressListener) (*Model, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	runID := uuid.New().String()
	logger := logging.Default().With("run_id", runID, "type", cfg.Type.String())
	logger.Info("starting training run")

	report(listener, AcquireVocab, 0)
	var v *vocab.Vocabulary
	if override != nil {
		v = vocab.FromOverride(override)
	} else {
		v = vocab.New()
		if _, err := v.Learn(source); err != nil {
			return nil, w2verr.Wrap(w2verr.KindIO, err)
		}
	}
	report(listener, AcquireVocab, 1)

	report(listener, FilterSortVocab, 0)
	trainWords := v.Finalize(cfg.MinFrequency)
	report(listener, FilterSortVocab, 1)
	logger.Info("vocabulary built", "words", v.Len(), "train_words", trainWords)

	report(listener, CreateHuffmanEncoding, 0)
	codes, paths, err := huffman.Build(v.Counts())
	if err != nil {
		return nil, fmt.Errorf("trainer: %w", err)
	}
	if err := v.SetCodes(codes, paths); err != nil {
		return nil, fmt.Errorf("trainer: %w", err)
	}
	report(listener, CreateHuffmanEncoding, 1)

	vocabSize := v.Len()
	entries := v.Entries()
	counts := v.Counts()
	words := make([]string, vocabSize)
	index := make(map[string]int, vocabSize)
	for i, e := range entries {
		words[i] = e.Word
		index[e.Word] = i
	}

	syn0 := initSyn0(vocabSize, cfg.LayerSize)
	var syn1 []float64
	if cfg.UseHierarchicalSoftmax {
		syn1 = make([]float64, vocabSize*cfg.LayerSize)
	}
	var syn1neg []float64
	var unigram []int32
	if cfg.NegativeSamples > 0 {
		syn1neg = make([]float64, vocabSize*cfg.LayerSize)
		unigram = buildUnigramTable(counts)
	}
	expTable := buildExpTable()

	threads := cfg.Threads
	if cores := availableCores(); cores > 0 && cores < threads {
		threads = cores
	}

	state := &sharedState{}
	state.setAlpha(cfg.alpha())

	net := &network{
		cfg:      cfg,
		vocab:    entries,
		counts:   counts,
		index:    index,
		syn0:     syn0,
		syn1:     syn1,
		syn1neg:  syn1neg,
		unigram:  unigram,
		expTable: expTable,
		state:    state,
	}

	var wg sync.WaitGroup
	errs := make([]error, threads)
	report(listener, TrainNeuralNetwork, 0)
	for id := 0; id < threads; id++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			w := &worker{
				id:         id,
				net:        net,
				source:     source,
				threads:    threads,
				trainWords: trainWords,
				iterations: cfg.Iterations,
			}
			errs[id] = w.run(ctx, func(fraction float64) {
				report(listener, TrainNeuralNetwork, fraction)
			})
		}(id)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				logger.Warn("training run cancelled")
				return nil, w2verr.Wrap(w2verr.KindInterrupted, err)
			}
			logger.Error("training worker failed", "err", err)
			return nil, w2verr.Wrap(w2verr.KindIO, err)
		}
	}
	report(listener, TrainNeuralNetwork, 1)
	logger.Info("training complete", "words_processed", state.wordCountActual.Load())

	return &Model{LayerSize: cfg.LayerSize, Vocabulary: words, Syn0: syn0}, nil
}

// sharedState holds the two scalars every worker shares besides the weight
// matrices, both on sync/atomic: the running word count and the current
// learning rate. The reference leaves
// both as a plain shared variable written racily from every thread; this
// port uses relaxed atomics for those two scalars (permitted by the
// invariant that only approximate consistency is required) while leaving
// the weight matrices themselves (held by network) genuinely lock-free, matching the
// reference's deliberate unsynchronized floating-point updates.
type sharedState struct {
	wordCountActual atomic.Int64
	alphaBits       atomic.Uint64
}

func (s *sharedState) alpha() float64 {
	return math.Float64frombits(s.alphaBits.Load())
}

func (s *sharedState) setAlpha(a float64) {
	s.alphaBits.Store(math.Float64bits(a))
}

// network bundles the read-mostly configuration and shared weight matrices
// every worker goroutine operates on.
type network struct {
	cfg      Config
	vocab    []vocab.Entry
	counts   []int64
	index    map[string]int
	syn0     []float64
	syn1     []float64
	syn1neg  []float64
	unigram  []int32
	expTable []float64
	state    *sharedState
}

// indexOf returns the vocabulary index of word, or -1 if it is out of
// vocabulary.
func (n *network) indexOf(word string) int {
	if i, ok := n.index[word]; ok {
		return i
	}
	return -1
}
