package apperr

import (
	"errors"
	"io"
	"testing"
)

func TestErrorFmt(t *testing.T) {
	tmpl := &Error{
		Message: "%s is out of range",
		Cause:   ErrInvalidArgument,
	}

	err := tmpl.Fmt("hour")

	if got, want := err.Error(), "hour is out of range: invalid argument"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatal("expected formatted error to keep its cause")
	}

	if tmpl.Message != "%s is out of range" {
		t.Fatal("Fmt must not modify the template")
	}
}

func TestErrorWrap(t *testing.T) {
	tmpl := &Error{Message: "reading input failed"}

	err := tmpl.Wrap(io.ErrUnexpectedEOF)

	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatal("expected wrapped error to match its cause")
	}

	if tmpl.Cause != nil {
		t.Fatal("Wrap must not modify the template")
	}

	if got := (&Error{Message: "plain"}).Error(); got != "plain" {
		t.Fatalf("expected plain message, got %q", got)
	}
}
