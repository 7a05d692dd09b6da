package word2vec

import (
	"context"

	"github.com/koji-ohki-1974/word2vec-go/internal/corpus"
	"github.com/koji-ohki-1974/word2vec-go/internal/trainer"
)

// NetworkType selects the neural architecture the trainer optimizes.
type NetworkType = trainer.NetworkType

const (
	// CBOW predicts a word from the mean of its context window's vectors.
	CBOW = trainer.CBOW
	// SkipGram predicts each context word from the current word.
	SkipGram = trainer.SkipGram
)

// Config drives a single training run. See trainer.Config for field
// documentation.
type Config = trainer.Config

// DefaultConfig returns a CBOW configuration with hierarchical softmax
// disabled and negative sampling enabled.
func DefaultConfig() Config { return trainer.DefaultConfig() }

// Stage marks a phase of the training pipeline for progress reporting.
type Stage = trainer.Stage

const (
	AcquireVocab          = trainer.AcquireVocab
	FilterSortVocab       = trainer.FilterSortVocab
	CreateHuffmanEncoding = trainer.CreateHuffmanEncoding
	TrainNeuralNetwork    = trainer.TrainNeuralNetwork
)

// ProgressListener is notified as a run advances through Stage.
type ProgressListener = trainer.ProgressListener

// SentenceSource is the restartable sentence-sequence capability the
// trainer consumes, satisfied by corpus.LineSource and corpus.SliceSource.
type SentenceSource = corpus.Source

// VocabularyCounts is a word/occurrence-count multiset, either hand-built
// or produced by ReadVocabularyCounts, usable as Train's vocabulary
// override.
type VocabularyCounts = map[string]int64

// ReadVocabularyCounts reads a "word,count" per line file into a
// VocabularyCounts multiset, for replaying a vocabulary previously
// persisted from a separate tokenization pipeline without rescanning the
// source corpus.
func ReadVocabularyCounts(path string) (VocabularyCounts, error) {
	return vocabFromCountFile(path)
}

// Train runs vocabulary acquisition, Huffman encoding, and the parallel
// training loop over sentences, reporting progress through listener (which
// may be nil) and honoring ctx cancellation at sentence-stream boundaries.
func Train(ctx context.Context, cfg Config, sentences SentenceSource, listener ProgressListener) (*Model, error) {
	m, err := trainer.Train(ctx, cfg, sentences, listener)
	if err != nil {
		return nil, err
	}
	return fromTrainerModel(m), nil
}

// TrainWithVocabulary runs the same pipeline as Train, but builds the
// vocabulary from a caller-supplied word/count multiset (see
// ReadVocabularyCounts) instead of scanning sentences. sentences is still
// required: it supplies the training examples the network is optimized
// against, only vocabulary acquisition is skipped.
func TrainWithVocabulary(ctx context.Context, cfg Config, vocabulary VocabularyCounts, sentences SentenceSource, listener ProgressListener) (*Model, error) {
	m, err := trainer.TrainWithVocabulary(ctx, cfg, vocabulary, sentences, listener)
	if err != nil {
		return nil, err
	}
	return fromTrainerModel(m), nil
}
