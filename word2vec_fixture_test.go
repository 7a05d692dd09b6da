package word2vec

import (
	"context"
	"math"
	"testing"

	"github.com/koji-ohki-1974/word2vec-go/internal/corpus"
)

// fixtureCorpus is a small synthesized stand-in for the reference project's
// word2vec.short.txt: repeated enough for every word to clear a
// min_frequency of 2 while keeping the fixture-based scenarios fast.
func fixtureCorpus() SentenceSource {
	sentence := []string{
		"anarchism", "is", "a", "political", "philosophy", "and",
		"anarcho", "capitalism", "is", "a", "specific", "and",
		"intellectual", "tradition", "as", "general", "as", "any", "other",
	}
	sentences := make([][]string, 0, 40)
	for i := 0; i < 40; i++ {
		sentences = append(sentences, sentence)
	}
	return corpus.SliceSource{Sentences: sentences}
}

func s1Config() Config {
	cfg := DefaultConfig()
	cfg.Type = CBOW
	cfg.MinFrequency = 2
	cfg.Threads = 1
	cfg.WindowSize = 8
	cfg.UseHierarchicalSoftmax = true
	cfg.NegativeSamples = 0
	cfg.LayerSize = 25
	cfg.DownSampleRate = 1e-3
	cfg.Iterations = 1
	return cfg
}

func TestS1CBOWBasicShapeAndVocabularyInvariants(t *testing.T) {
	cfg := s1Config()
	model, err := Train(context.Background(), cfg, fixtureCorpus(), nil)
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	if model.Vocabulary[0] != "</s>" {
		t.Fatalf("Vocabulary[0] = %q, want </s>", model.Vocabulary[0])
	}
	seen := make(map[string]bool, len(model.Vocabulary))
	for _, w := range model.Vocabulary {
		if seen[w] {
			t.Fatalf("word %q appears more than once in vocabulary", w)
		}
		seen[w] = true
	}
	wantLen := len(model.Vocabulary) * cfg.LayerSize
	if len(model.Vectors) != wantLen {
		t.Fatalf("len(Vectors) = %d, want %d", len(model.Vectors), wantLen)
	}
}

func TestS2CBOWFifteenIterations(t *testing.T) {
	cfg := s1Config()
	cfg.MinFrequency = 1
	cfg.NegativeSamples = 5
	cfg.UseHierarchicalSoftmax = false
	cfg.Iterations = 15
	model, err := Train(context.Background(), cfg, fixtureCorpus(), nil)
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	if len(model.Vocabulary) == 0 {
		t.Fatalf("empty vocabulary")
	}
}

func TestS3SkipGramBasic(t *testing.T) {
	cfg := s1Config()
	cfg.Type = SkipGram
	model, err := Train(context.Background(), cfg, fixtureCorpus(), nil)
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	if model.LayerSize != cfg.LayerSize {
		t.Fatalf("LayerSize = %d, want %d", model.LayerSize, cfg.LayerSize)
	}
}

func TestS4SkipGramFifteenIterations(t *testing.T) {
	cfg := s1Config()
	cfg.Type = SkipGram
	cfg.Iterations = 15
	model, err := Train(context.Background(), cfg, fixtureCorpus(), nil)
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	if len(model.Vectors) == 0 {
		t.Fatalf("empty vectors")
	}
}

func TestS5SearchDeterminism(t *testing.T) {
	cfg := s1Config()
	cfg.Type = SkipGram
	model, err := Train(context.Background(), cfg, fixtureCorpus(), nil)
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	searcher := NewSearcher(model)

	first, err := searcher.TopMatches("anarchism", 5)
	if err != nil {
		t.Fatalf("TopMatches: %v", err)
	}

	model2, err := Train(context.Background(), cfg, fixtureCorpus(), nil)
	if err != nil {
		t.Fatalf("Train (2nd): %v", err)
	}
	second, err := NewSearcher(model2).TopMatches("anarchism", 5)
	if err != nil {
		t.Fatalf("TopMatches (2nd): %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("result length differs: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Word != second[i].Word {
			t.Fatalf("result[%d] differs between identically configured runs: %q vs %q", i, first[i].Word, second[i].Word)
		}
	}
}

func TestS6UnknownWord(t *testing.T) {
	cfg := s1Config()
	model, err := Train(context.Background(), cfg, fixtureCorpus(), nil)
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	searcher := NewSearcher(model)
	if _, err := searcher.RawVector("xyzzy_no_such_word"); !IsKind(err, KindUnknownWord) {
		t.Fatalf("RawVector(unknown) error = %v, want KindUnknownWord", err)
	}
}

func TestNormalizedEmbeddingHasUnitNorm(t *testing.T) {
	cfg := s1Config()
	model, err := Train(context.Background(), cfg, fixtureCorpus(), nil)
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	searcher := NewSearcher(model)
	for _, w := range model.Vocabulary {
		vec, err := searcher.RawVector(w)
		if err != nil {
			t.Fatalf("RawVector(%q): %v", w, err)
		}
		var norm float64
		for _, v := range vec {
			norm += v * v
		}
		norm = math.Sqrt(norm)
		if math.Abs(norm-1) > 1e-5 {
			t.Fatalf("word %q has norm %f, want ~1", w, norm)
		}
	}
}

func TestAnalogyIdempotenceAtFacadeLevel(t *testing.T) {
	cfg := s1Config()
	model, err := Train(context.Background(), cfg, fixtureCorpus(), nil)
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	searcher := NewSearcher(model)
	query := model.Vocabulary[1]

	diff, err := searcher.Similarity(query, query)
	if err != nil {
		t.Fatalf("Similarity: %v", err)
	}
	got, err := diff.Matches(query, 3)
	if err != nil {
		t.Fatalf("Matches: %v", err)
	}
	want, err := searcher.TopMatches(query, 3)
	if err != nil {
		t.Fatalf("TopMatches: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("len mismatch: %d vs %d", len(got), len(want))
	}
	for i := range got {
		if got[i].Word != want[i].Word {
			t.Fatalf("Matches()[%d] = %s, TopMatches()[%d] = %s", i, got[i].Word, i, want[i].Word)
		}
	}
}
