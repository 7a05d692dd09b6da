// Package search implements the cosine-similarity nearest-neighbor query
// surface over a trained embedding: an L2-normalized snapshot, top-K
// retrieval, and vector arithmetic for word analogies.
package search

import (
	"math"

	"github.com/koji-ohki-1974/word2vec-go/internal/trainer"
	"github.com/koji-ohki-1974/word2vec-go/internal/w2verr"
)

// Match is a single scored result: a vocabulary word and its similarity
// score against a query vector.
type Match struct {
	Word  string
	Score float64
}

// Index is an L2-normalized, immutable snapshot of a trained model's input
// embedding, ready for repeated similarity queries.
type Index struct {
	layerSize int
	words     []string
	index     map[string]int
	vectors   []float64 // row-major, L2-normalized copy of model.Syn0
}

// New builds an Index from a trained model. Rows with zero L2 norm are not
// guarded: they are divided by zero, as in the reference, and become NaN.
func New(model *trainer.Model) *Index {
	idx := &Index{
		layerSize: model.LayerSize,
		words:     append([]string(nil), model.Vocabulary...),
		index:     make(map[string]int, len(model.Vocabulary)),
		vectors:   append([]float64(nil), model.Syn0...),
	}
	for i, w := range idx.words {
		idx.index[w] = i
	}
	for row := 0; row < len(idx.words); row++ {
		base := row * idx.layerSize
		var norm float64
		for i := 0; i < idx.layerSize; i++ {
			v := idx.vectors[base+i]
			norm += v * v
		}
		norm = math.Sqrt(norm)
		for i := 0; i < idx.layerSize; i++ {
			idx.vectors[base+i] /= norm
		}
	}
	return idx
}

// Contains reports whether word is in the vocabulary.
func (idx *Index) Contains(word string) bool {
	_, ok := idx.index[word]
	return ok
}

// RawVector returns the normalized vector for word, or an UnknownWord error.
func (idx *Index) RawVector(word string) ([]float64, error) {
	row, ok := idx.index[word]
	if !ok {
		return nil, w2verr.New(w2verr.KindUnknownWord, "search: unknown word "+word)
	}
	base := row * idx.layerSize
	return append([]float64(nil), idx.vectors[base:base+idx.layerSize]...), nil
}

// TopMatches returns the k vocabulary entries, excluding word itself, with
// the highest cosine similarity to word's own vector.
func (idx *Index) TopMatches(word string, k int) ([]Match, error) {
	vec, err := idx.RawVector(word)
	if err != nil {
		return nil, err
	}
	return idx.TopMatchesFromVector(vec, k, map[string]struct{}{word: {}}), nil
}

// TopMatchesFromVector returns the k vocabulary entries with the highest
// dot product against vec, skipping any word present in ignore. Ties are
// broken by vocabulary scan order (the earliest-indexed word wins), the
// same order the reference's insertion-sort scan produces.
func (idx *Index) TopMatchesFromVector(vec []float64, k int, ignore map[string]struct{}) []Match {
	if k <= 0 {
		return nil
	}
	bestWords := make([]string, k)
	bestScores := make([]float64, k)
	for i := range bestScores {
		bestScores[i] = -1
	}
	for row, word := range idx.words {
		if _, skip := ignore[word]; skip {
			continue
		}
		base := row * idx.layerSize
		var dot float64
		for i := 0; i < idx.layerSize; i++ {
			dot += vec[i] * idx.vectors[base+i]
		}
		for a := 0; a < k; a++ {
			if dot > bestScores[a] {
				for d := k - 1; d > a; d-- {
					bestScores[d] = bestScores[d-1]
					bestWords[d] = bestWords[d-1]
				}
				bestScores[a] = dot
				bestWords[a] = word
				break
			}
		}
	}
	matches := make([]Match, 0, k)
	for i := 0; i < k; i++ {
		if bestWords[i] == "" {
			continue
		}
		matches = append(matches, Match{Word: bestWords[i], Score: bestScores[i]})
	}
	return matches
}

// CosineSimilarity returns the dot product of w1 and w2's normalized
// vectors, in [-1, 1] (a similarity despite the reference's "distance"
// naming).
func (idx *Index) CosineSimilarity(w1, w2 string) (float64, error) {
	v1, err := idx.RawVector(w1)
	if err != nil {
		return 0, err
	}
	v2, err := idx.RawVector(w2)
	if err != nil {
		return 0, err
	}
	var dot float64
	for i := range v1 {
		dot += v1[i] * v2[i]
	}
	return dot, nil
}

// SemanticDifference captures the vector relationship between two words,
// restored from the reference's Searcher.similarity/SemanticDifference
// two-step construct: build the difference once, then query it against
// many third words.
type SemanticDifference struct {
	idx   *Index
	delta []float64
}

// Similarity builds the semantic difference normalized(w1) - normalized(w2)
// between two vocabulary words.
func (idx *Index) Similarity(w1, w2 string) (*SemanticDifference, error) {
	v1, err := idx.RawVector(w1)
	if err != nil {
		return nil, err
	}
	v2, err := idx.RawVector(w2)
	if err != nil {
		return nil, err
	}
	delta := make([]float64, idx.layerSize)
	for i := range delta {
		delta[i] = v1[i] - v2[i]
	}
	return &SemanticDifference{idx: idx, delta: delta}, nil
}

// Matches returns the top-k words whose relationship to w3 best matches the
// semantic difference this was built from: normalized(w3) - delta,
// excluding w3 itself. This is the analogy capability: for a difference
// built from (w1, w2), Matches(w3, k) completes "w1 is to w2 as w3 is to ?".
func (d *SemanticDifference) Matches(w3 string, k int) ([]Match, error) {
	v3, err := d.idx.RawVector(w3)
	if err != nil {
		return nil, err
	}
	vec := make([]float64, d.idx.layerSize)
	for i := range vec {
		vec[i] = v3[i] - d.delta[i]
	}
	return d.idx.TopMatchesFromVector(vec, k, map[string]struct{}{w3: {}}), nil
}

// Analogy is a convenience wrapper equivalent to Similarity(w1,
// w2).Matches(w3, k).
func (idx *Index) Analogy(w1, w2, w3 string, k int) ([]Match, error) {
	diff, err := idx.Similarity(w1, w2)
	if err != nil {
		return nil, err
	}
	return diff.Matches(w3, k)
}
