package word2vec

import "github.com/koji-ohki-1974/word2vec-go/internal/vocab"

func vocabFromCountFile(path string) (map[string]int64, error) {
	return vocab.FromCountFile(path)
}
