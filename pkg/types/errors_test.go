package types

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	e := &Error{Kind: ErrKindNotObject, Msg: "bad target"}
	if e.Error() != "bad target" {
		t.Errorf("Error() = %q; want %q", e.Error(), "bad target")
	}

	cause := errors.New("boom")
	e = &Error{Kind: ErrKindParse, Msg: "parse failed", Err: cause}
	if e.Error() != "parse failed: boom" {
		t.Errorf("Error() = %q; want %q", e.Error(), "parse failed: boom")
	}
	if !errors.Is(e, cause) {
		t.Error("wrapped cause should match with errors.Is")
	}
}

func TestSentinelMatching(t *testing.T) {
	wrapped := Wrap(ErrNotFound, "no plugins entry for webpack.DefinePlugin", nil)
	if !errors.Is(wrapped, ErrNotFound) {
		t.Error("Wrap result should match its sentinel via errors.Is")
	}
	if errors.Is(wrapped, ErrNotObject) {
		t.Error("Wrap result should not match a sentinel of a different kind")
	}
	if errors.Is(Wrap(ErrNotArray, "plugins", nil), ErrNotObject) {
		t.Error("object and array target sentinels must not cross-match")
	}

	// fmt wrapping keeps the chain intact.
	chained := fmt.Errorf("section %q: %w", "output", wrapped)
	if !errors.Is(chained, ErrNotFound) {
		t.Error("fmt-wrapped error should still match the sentinel")
	}
}
