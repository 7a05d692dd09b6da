package word2vec

import "github.com/koji-ohki-1974/word2vec-go/internal/w2verr"

// ErrorKind classifies a training or search failure without requiring
// callers to string-match error messages.
type ErrorKind = w2verr.Kind

// Error wraps an underlying error with a Kind, implementing Unwrap so
// errors.Is/errors.As keep working against the wrapped cause.
type Error = w2verr.Error

const (
	// KindIO covers corpus/file access failures.
	KindIO = w2verr.KindIO
	// KindUnknownWord covers lookups of a word absent from the vocabulary.
	KindUnknownWord = w2verr.KindUnknownWord
	// KindInvalidConfig covers a Config that fails validation.
	KindInvalidConfig = w2verr.KindInvalidConfig
	// KindInterrupted covers a context cancellation observed mid-run.
	KindInterrupted = w2verr.KindInterrupted
)

// IsKind reports whether err carries the given ErrorKind anywhere in its
// chain.
func IsKind(err error, kind ErrorKind) bool {
	return w2verr.Is(err, kind)
}
