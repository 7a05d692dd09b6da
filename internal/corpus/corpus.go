// Package corpus provides the lazy, restartable word stream that feeds the
// vocabulary builder and the trainer: a sequence of sentences, each yielding
// its words in order followed by a single end-of-sentence sentinel.
package corpus

import (
	"bufio"
	"io"
	"os"
)

const (
	// MaxWordBytes truncates any token longer than this many bytes.
	MaxWordBytes = 100
	// EndOfSentence is the sentinel token yielded once per sentence boundary.
	EndOfSentence = "</s>"
)

// WordStream is a pull iterator over words. Next returns ok=false once the
// stream is exhausted; a non-nil err always means the stream is unusable.
type WordStream interface {
	Next() (word string, ok bool, err error)
	Close() error
}

// Source is a restartable factory for a WordStream. The trainer opens a
// fresh stream at the start of every worker and again on every iteration
// rollover, so Open must be safe to call repeatedly and concurrently.
type Source interface {
	Open() (WordStream, error)
}

func truncate(word string) string {
	if len(word) > MaxWordBytes {
		return word[:MaxWordBytes]
	}
	return word
}

// SliceSource is an in-memory Source over pre-tokenized sentences.
type SliceSource struct {
	Sentences [][]string
}

// Open implements Source.
func (s SliceSource) Open() (WordStream, error) {
	return &sliceStream{sentences: s.Sentences}, nil
}

type sliceStream struct {
	sentences   [][]string
	sentenceIdx int
	wordIdx     int
}

func (s *sliceStream) Next() (string, bool, error) {
	for s.sentenceIdx < len(s.sentences) {
		sentence := s.sentences[s.sentenceIdx]
		if s.wordIdx < len(sentence) {
			word := sentence[s.wordIdx]
			s.wordIdx++
			if word == "" {
				continue
			}
			return truncate(word), true, nil
		}
		s.sentenceIdx++
		s.wordIdx = 0
		return EndOfSentence, true, nil
	}
	return "", false, nil
}

func (s *sliceStream) Close() error { return nil }

// LineSource reads a text file lazily, tokenizing on space/tab/newline the
// same way the original word2vec ReadWord routine does: carriage returns are
// dropped, a bare newline that terminates an in-progress word is pushed back
// so the next Next() call still observes the sentence boundary, and a
// newline with no pending word yields the sentinel directly.
type LineSource struct {
	Path string
}

// Open implements Source. Every call reopens the file, which is what makes
// LineSource restartable across trainer worker iterations.
func (s LineSource) Open() (WordStream, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, err
	}
	return &lineStream{f: f, r: bufio.NewReaderSize(f, 64*1024)}, nil
}

type lineStream struct {
	f *os.File
	r *bufio.Reader
}

func (s *lineStream) Next() (string, bool, error) {
	var buf []byte
	for {
		b, err := s.r.ReadByte()
		if err == io.EOF {
			if len(buf) > 0 {
				return truncate(string(buf)), true, nil
			}
			return "", false, nil
		}
		if err != nil {
			return "", false, err
		}
		if b == '\r' {
			continue
		}
		if b == ' ' || b == '\t' || b == '\n' {
			if len(buf) > 0 {
				if b == '\n' {
					_ = s.r.UnreadByte()
				}
				return truncate(string(buf)), true, nil
			}
			if b == '\n' {
				return EndOfSentence, true, nil
			}
			continue
		}
		buf = append(buf, b)
	}
}

func (s *lineStream) Close() error {
	return s.f.Close()
}
