package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorsMatchByCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{"same sentinel", ErrEventNotFound, ErrEventNotFound, true},
		{"wrapped with fmt", fmt.Errorf("get event: %w", ErrEventNotFound), ErrEventNotFound, true},
		{"detailed invalid input", Invalid("email is required"), ErrInvalidInput, true},
		{"storage", Storage("create event", errors.New("disk full")), ErrStorage, true},
		{"different code", ErrEventNotFound, ErrSubmissionNotFound, false},
		{"conflict keeps cause", Wrap(ErrAlreadySubmitted, ErrDuplicateKey), ErrDuplicateKey, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.target); got != tt.want {
				t.Fatalf("errors.Is(%v, %v) = %v, want %v", tt.err, tt.target, got, tt.want)
			}
		})
	}
}

func TestKindOfAndCode(t *testing.T) {
	t.Parallel()

	if got := KindOf(fmt.Errorf("draft: %w", ErrAlreadySubmitted)); got != KindConflict {
		t.Fatalf("KindOf = %q, want %q", got, KindConflict)
	}
	if got := KindOf(errors.New("boom")); got != KindStorage {
		t.Fatalf("KindOf(plain) = %q, want %q", got, KindStorage)
	}
	if got := Code(ErrUnknownEvent); got != "unknown_event" {
		t.Fatalf("Code = %q, want unknown_event", got)
	}
	if got := Code(errors.New("boom")); got != "" {
		t.Fatalf("Code(plain) = %q, want empty", got)
	}
}

func TestErrorMessageIncludesDetail(t *testing.T) {
	t.Parallel()

	err := Storage("create participant", errors.New("database is locked"))
	if got, want := err.Error(), "create participant: database is locked"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
	if got, want := ErrAlreadySubmitted.Error(), "already submitted"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
	if got := DetailOf(Invalid("title is required")); got != "title is required" {
		t.Fatalf("DetailOf = %q", got)
	}
}
