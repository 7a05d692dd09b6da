// Package w2verr defines the error kinds shared by every internal package
// and re-exported from the root word2vec package, kept separate so internal
// packages never need to import the public facade.
package w2verr

import "errors"

// Kind classifies an Error for callers that want to branch on failure mode
// without string-matching messages.
type Kind int

const (
	// KindIO covers corpus/file access failures.
	KindIO Kind = iota
	// KindUnknownWord covers lookups of a word absent from the vocabulary.
	KindUnknownWord
	// KindInvalidConfig covers a Config that fails validation.
	KindInvalidConfig
	// KindInterrupted covers a context cancellation observed mid-run.
	KindInterrupted
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindUnknownWord:
		return "unknown_word"
	case KindInvalidConfig:
		return "invalid_config"
	case KindInterrupted:
		return "interrupted"
	default:
		return "unknown"
	}
}

// Error wraps an underlying error with a Kind, implementing Unwrap so
// errors.Is/errors.As keep working against the wrapped sentinel.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an Error from a message.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Err: errors.New(msg)}
}

// Wrap attaches a Kind to an existing error. Returns nil if err is nil.
func Wrap(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: err}
}

// Is reports whether err carries the given Kind anywhere in its chain.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
