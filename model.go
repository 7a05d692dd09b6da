// Package word2vec is the public facade over the internal vocabulary,
// Huffman coding, and parallel trainer packages: it trains word embeddings
// from a sentence source and exposes a cosine-similarity search surface over
// the result.
package word2vec

import "github.com/koji-ohki-1974/word2vec-go/internal/trainer"

// Model is the language-neutral trained result: the embedding matrix and
// the vocabulary it is indexed by. Vocabulary[0] is always the
// end-of-sentence sentinel "</s>". Vectors is row-major, length
// len(Vocabulary)*LayerSize.
type Model struct {
	LayerSize  int
	Vocabulary []string
	Vectors    []float32
}

func fromTrainerModel(m *trainer.Model) *Model {
	vectors := make([]float32, len(m.Syn0))
	for i, v := range m.Syn0 {
		vectors[i] = float32(v)
	}
	return &Model{
		LayerSize:  m.LayerSize,
		Vocabulary: m.Vocabulary,
		Vectors:    vectors,
	}
}

// toTrainerModel widens Vectors back to float64 so search.New can operate on
// the same precision the trainer produced results in.
func (m *Model) toTrainerModel() *trainer.Model {
	syn0 := make([]float64, len(m.Vectors))
	for i, v := range m.Vectors {
		syn0[i] = float64(v)
	}
	return &trainer.Model{
		LayerSize:  m.LayerSize,
		Vocabulary: m.Vocabulary,
		Syn0:       syn0,
	}
}

// Equal reports whether m and other have the same layer size, vocabulary,
// and vector values.
func (m *Model) Equal(other *Model) bool {
	if other == nil {
		return false
	}
	if m.LayerSize != other.LayerSize {
		return false
	}
	if len(m.Vocabulary) != len(other.Vocabulary) {
		return false
	}
	for i := range m.Vocabulary {
		if m.Vocabulary[i] != other.Vocabulary[i] {
			return false
		}
	}
	if len(m.Vectors) != len(other.Vectors) {
		return false
	}
	for i := range m.Vectors {
		if m.Vectors[i] != other.Vectors[i] {
			return false
		}
	}
	return true
}
