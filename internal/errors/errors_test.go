package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		kind Kind
		msg  string
	}{
		{"not found", NotFound("winner not found"), ErrNotFound, "winner not found"},
		{"not found formatted", NotFoundf("category %q not found", "x"), ErrNotFound, `category "x" not found`},
		{"validation", Validation("bad nominee"), ErrValidation, "bad nominee"},
		{"conflict", Conflict("already locked"), ErrConflict, "already locked"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Kind != tt.kind {
				t.Errorf("Kind = %d, want %d", tt.err.Kind, tt.kind)
			}
			if tt.err.Message != tt.msg {
				t.Errorf("Message = %q, want %q", tt.err.Message, tt.msg)
			}
			if tt.err.Err != nil {
				t.Errorf("Err = %v, want nil", tt.err.Err)
			}
		})
	}
}

func TestInternalWrapsCause(t *testing.T) {
	cause := fmt.Errorf("disk on fire")
	err := Internal(cause)

	if err.Kind != ErrInternal {
		t.Errorf("Kind = %d, want ErrInternal", err.Kind)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is() should find the wrapped cause")
	}
	if err.Error() != "internal error: disk on fire" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestWrapPreservesChain(t *testing.T) {
	cause := errors.New("record not found")
	err := Wrap(cause, ErrNotFound, "no winner announced")

	if !errors.Is(err, cause) {
		t.Error("errors.Is() should find the wrapped cause")
	}

	var appErr *Error
	if !errors.As(err, &appErr) || appErr.Kind != ErrNotFound {
		t.Error("errors.As() should extract the kinded error")
	}
}

func TestErrorMessageWithoutCause(t *testing.T) {
	if got := NotFound("nope").Error(); got != "nope" {
		t.Errorf("Error() = %q, want %q", got, "nope")
	}
}
