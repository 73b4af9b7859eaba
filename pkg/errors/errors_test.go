package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := New(ErrCodeInvalidChord, "chord %d out of range", 99)
	want := "INVALID_CHORD: chord 99 out of range"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("unexpected EOF")
	err := Wrap(ErrCodeInvalidLayout, cause, "parse en.xml")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match its cause via errors.Is")
	}
	want := "INVALID_LAYOUT: parse en.xml: unexpected EOF"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIsMatchesCode(t *testing.T) {
	err := New(ErrCodeFileNotFound, "no such layout")
	if !Is(err, ErrCodeFileNotFound) {
		t.Error("Is() should match the error's own code")
	}
	if Is(err, ErrCodeInternal) {
		t.Error("Is() should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeInternal) {
		t.Error("Is() should not match plain errors")
	}
}

func TestIsThroughWrapping(t *testing.T) {
	inner := New(ErrCodeInvalidChord, "chord 0")
	outer := fmt.Errorf("loading layout: %w", inner)
	if !Is(outer, ErrCodeInvalidChord) {
		t.Error("Is() should unwrap fmt-wrapped errors")
	}
	if GetCode(outer) != ErrCodeInvalidChord {
		t.Errorf("GetCode() = %q, want %q", GetCode(outer), ErrCodeInvalidChord)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidFormat, "invalid format: gif")
	if got := UserMessage(err); got != "invalid format: gif" {
		t.Errorf("UserMessage() = %q", got)
	}
	plain := stderrors.New("boom")
	if got := UserMessage(plain); got != "boom" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}
