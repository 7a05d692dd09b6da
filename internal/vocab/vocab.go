// Package vocab implements the open-addressed vocabulary hash table at the
// heart of word2vec's frequency model: linear probing under a fixed-size
// index, periodic self-reduction when the load factor climbs too high, and a
// final descending-count sort with the end-of-sentence sentinel pinned at
// index 0.
package vocab

import (
	"fmt"
	"sort"

	"github.com/koji-ohki-1974/word2vec-go/internal/corpus"
)

const (
	// HashSize is the fixed slot count of the open-addressed index table.
	// At the 0.7 load factor threshold this bounds the live vocabulary to
	// roughly 21 million distinct words before a Reduce pass runs.
	HashSize = 30000000
	// MaxWordBytes truncates any word longer than this many bytes.
	MaxWordBytes = 100
	// MaxCodeLength bounds the Huffman code/path length assigned later.
	MaxCodeLength = 40
	// EndOfSentence is the sentinel word pinned at vocabulary index 0.
	EndOfSentence = corpus.EndOfSentence

	hashMultiplier = 257
	loadFactor     = 0.7
)

// Entry is a single vocabulary word: its text, occurrence count, and, once
// the Huffman coder has run, its bit code and internal-node path.
type Entry struct {
	Word  string
	Count int64
	Code  []byte
	Path  []int32
}

// Vocabulary is an ordered sequence of Entry, index 0 always EndOfSentence,
// backed by an open-addressed hash index for near-O(1) lookup.
type Vocabulary struct {
	entries   []Entry
	hash      []int32
	minReduce int64
}

// New creates an empty Vocabulary with the sentinel pre-inserted at index 0.
func New() *Vocabulary {
	v := &Vocabulary{
		entries:   make([]Entry, 0, 1000),
		hash:      make([]int32, HashSize),
		minReduce: 1,
	}
	for i := range v.hash {
		v.hash[i] = -1
	}
	v.addWord(EndOfSentence)
	return v
}

func wordHash(word string) uint64 {
	var h uint64
	for i := 0; i < len(word); i++ {
		h = h*hashMultiplier + uint64(word[i])
	}
	return h % HashSize
}

func truncateWord(word string) string {
	if len(word) > MaxWordBytes {
		return word[:MaxWordBytes]
	}
	return word
}

func (v *Vocabulary) search(word string) int {
	h := wordHash(word)
	for {
		idx := v.hash[h]
		if idx == -1 {
			return -1
		}
		if v.entries[idx].Word == word {
			return int(idx)
		}
		h = (h + 1) % HashSize
	}
}

func (v *Vocabulary) addWord(word string) int {
	word = truncateWord(word)
	v.entries = append(v.entries, Entry{Word: word})
	idx := len(v.entries) - 1
	h := wordHash(word)
	for v.hash[h] != -1 {
		h = (h + 1) % HashSize
	}
	v.hash[h] = int32(idx)
	return idx
}

func (v *Vocabulary) rebuildHash() {
	for i := range v.hash {
		v.hash[i] = -1
	}
	for i := range v.entries {
		h := wordHash(v.entries[i].Word)
		for v.hash[h] != -1 {
			h = (h + 1) % HashSize
		}
		v.hash[h] = int32(i)
	}
}

// reduce drops every entry whose count has fallen to or below the current
// threshold, except the sentinel at index 0, then raises the threshold.
// Triggered whenever the live vocabulary exceeds HashSize*loadFactor
// entries, matching the reference's ReduceVocab call site.
func (v *Vocabulary) reduce() {
	kept := v.entries[:0]
	for i, e := range v.entries {
		if i == 0 || e.Count > v.minReduce {
			kept = append(kept, e)
		}
	}
	v.entries = kept
	v.rebuildHash()
	v.minReduce++
}

// Learn scans source, inserting or incrementing each word it yields.
// Returns the raw token count observed (including tokens later dropped by
// Finalize's min-count filter).
func (v *Vocabulary) Learn(source corpus.Source) (int64, error) {
	stream, err := source.Open()
	if err != nil {
		return 0, err
	}
	defer stream.Close()

	var tokens int64
	for {
		word, ok, err := stream.Next()
		if err != nil {
			return tokens, err
		}
		if !ok {
			break
		}
		tokens++
		idx := v.search(word)
		if idx == -1 {
			idx = v.addWord(word)
			v.entries[idx].Count = 1
		} else {
			v.entries[idx].Count++
		}
		if float64(len(v.entries)) > float64(HashSize)*loadFactor {
			v.reduce()
		}
	}
	return tokens, nil
}

// FromOverride builds a Vocabulary from an externally supplied word→count
// multiset instead of scanning a corpus. The sentinel is always pinned at
// index 0 with the caller-supplied count if present, or zero otherwise,
// keeping the "index 0 is always </s>" invariant regardless of what a
// caller's multiset happens to contain.
func FromOverride(counts map[string]int64) *Vocabulary {
	v := New()
	if c, ok := counts[EndOfSentence]; ok {
		v.entries[0].Count = c
	}
	words := make([]string, 0, len(counts))
	for w := range counts {
		if w == EndOfSentence {
			continue
		}
		words = append(words, w)
	}
	sort.Strings(words)
	for _, w := range words {
		idx := v.addWord(w)
		v.entries[idx].Count = counts[w]
	}
	return v
}

// Finalize sorts all entries but the sentinel by descending count, drops
// entries below minCount, rebuilds the hash index over the surviving set,
// and returns the training word count: the sum of surviving counts,
// sentinel included, which is what the trainer uses for subsampling thresholds and alpha decay, not
// the raw token count Learn returned.
func (v *Vocabulary) Finalize(minCount int64) int64 {
	rest := v.entries[1:]
	sort.SliceStable(rest, func(i, j int) bool { return rest[i].Count > rest[j].Count })

	kept := make([]Entry, 0, len(v.entries))
	kept = append(kept, v.entries[0])
	trainWords := v.entries[0].Count
	for _, e := range rest {
		if e.Count < minCount {
			continue
		}
		kept = append(kept, e)
		trainWords += e.Count
	}
	v.entries = kept
	v.rebuildHash()
	return trainWords
}

// Len returns the current entry count.
func (v *Vocabulary) Len() int { return len(v.entries) }

// IndexOf returns the vocabulary index of word, or -1 if absent.
func (v *Vocabulary) IndexOf(word string) int { return v.search(word) }

// Entries returns the live entry slice. Callers must not resize it; word
// text and count are read-only after Finalize, code/path are written once
// by the Huffman coder via SetCodes.
func (v *Vocabulary) Entries() []Entry { return v.entries }

// Counts returns a copy of the per-entry counts, index-aligned with
// Entries, for feeding into the Huffman coder and the unigram table.
func (v *Vocabulary) Counts() []int64 {
	counts := make([]int64, len(v.entries))
	for i, e := range v.entries {
		counts[i] = e.Count
	}
	return counts
}

// SetCodes installs the Huffman code and path for every entry, index-aligned
// with Entries/Counts.
func (v *Vocabulary) SetCodes(codes [][]byte, paths [][]int32) error {
	if len(codes) != len(v.entries) || len(paths) != len(v.entries) {
		return fmt.Errorf("vocab: huffman output count %d/%d does not match vocabulary size %d", len(codes), len(paths), len(v.entries))
	}
	for i := range v.entries {
		v.entries[i].Code = codes[i]
		v.entries[i].Path = paths[i]
	}
	return nil
}
