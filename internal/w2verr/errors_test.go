package w2verr

import (
	"errors"
	"testing"
)

func TestNewCarriesKind(t *testing.T) {
	err := New(KindUnknownWord, "no such word")
	if !Is(err, KindUnknownWord) {
		t.Fatalf("Is(err, KindUnknownWord) = false")
	}
	if Is(err, KindIO) {
		t.Fatalf("Is(err, KindIO) = true, want false")
	}
	if err.Error() != "no such word" {
		t.Fatalf("Error() = %q, want %q", err.Error(), "no such word")
	}
}

func TestWrapNilReturnsNil(t *testing.T) {
	if Wrap(KindIO, nil) != nil {
		t.Fatalf("Wrap(kind, nil) != nil")
	}
}

func TestWrapPreservesUnderlyingError(t *testing.T) {
	cause := errors.New("disk full")
	wrapped := Wrap(KindIO, cause)
	if !errors.Is(wrapped, cause) {
		t.Fatalf("errors.Is(wrapped, cause) = false")
	}
	if !Is(wrapped, KindIO) {
		t.Fatalf("Is(wrapped, KindIO) = false")
	}
}

func TestIsFalseForPlainError(t *testing.T) {
	if Is(errors.New("plain"), KindIO) {
		t.Fatalf("Is(plain error, KindIO) = true, want false")
	}
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		KindIO:            "io",
		KindUnknownWord:   "unknown_word",
		KindInvalidConfig: "invalid_config",
		KindInterrupted:   "interrupted",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}
