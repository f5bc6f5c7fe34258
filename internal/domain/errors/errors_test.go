package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"already exists", ErrAlreadyExists},
		{"not found", ErrNotFound},
		{"conflict", ErrConflict},
		{"validation", ErrValidation},
		{"reporting", ErrReporting},
		{"invalid credentials", ErrInvalidCredentials},
		{"insufficient stock", ErrInsufficientStock},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !stdErrors.Is(tc.err, tc.err) {
				t.Fatalf("expected error to match itself: %v", tc.err)
			}
		})
	}
}

func TestWrappedSentinelMatches(t *testing.T) {
	wrapped := fmt.Errorf("%w: order already delivered", ErrConflict)
	if !stdErrors.Is(wrapped, ErrConflict) {
		t.Fatal("expected wrapped conflict to match sentinel")
	}
	if stdErrors.Is(wrapped, ErrNotFound) {
		t.Fatal("wrapped conflict must not match not found")
	}
}
