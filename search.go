package word2vec

import "github.com/koji-ohki-1974/word2vec-go/internal/search"

// Match is a single scored result: a vocabulary word and its similarity
// score against a query vector.
type Match = search.Match

// Searcher is a cosine-similarity nearest-neighbor query surface over a
// trained embedding.
type Searcher = search.Index

// SemanticDifference captures the vector relationship between two words,
// queryable against a third with Matches to complete a "w1 is to w2 as w3
// is to ?" analogy.
type SemanticDifference = search.SemanticDifference

// NewSearcher builds a Searcher from a trained Model's embedding, ready for
// repeated similarity and analogy queries.
func NewSearcher(model *Model) *Searcher {
	return search.New(model.toTrainerModel())
}
