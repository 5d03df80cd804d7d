package cli

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestUnknownRootFlagIsUsageError(t *testing.T) {
	t.Parallel()

	root := NewRootCmd()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"--definitely-not-a-flag"})

	err := root.Execute()
	if err == nil {
		t.Fatalf("expected an error")
	}
	if !errors.Is(err, ErrUsage) {
		t.Fatalf("expected usage error, got %v", err)
	}
	if !strings.Contains(err.Error(), "unknown flag") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestUnknownGenerateFlagIsUsageError(t *testing.T) {
	t.Parallel()

	root := NewRootCmd()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"generate", "--nope"})

	err := root.Execute()
	if err == nil {
		t.Fatalf("expected an error")
	}
	if !errors.Is(err, ErrUsage) {
		t.Fatalf("expected usage error, got %v", err)
	}
	// The flag error func appends the command usage so the user sees
	// what flags actually exist.
	if !strings.Contains(err.Error(), "Usage:") {
		t.Fatalf("expected usage text in message: %v", err)
	}
}
