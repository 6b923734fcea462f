package common

import (
	"errors"
	"fmt"
	"testing"
)

func TestRequestError_UnwrapsToKind(t *testing.T) {
	cases := []struct {
		err  error
		kind error
	}{
		{ErrMissingEmail, ErrorBadRequest},
		{ErrMissingPassword, ErrorBadRequest},
		{ErrMissingName, ErrorBadRequest},
		{ErrMissingType, ErrorBadRequest},
		{ErrMissingData, ErrorBadRequest},
		{ErrParentNotFolder, ErrorBadRequest},
		{ErrFolderHasNoData, ErrorBadRequest},
		{ErrAlreadyExist, ErrorConflict},
		{ErrParentNotFound, ErrorNotFound},
	}
	for _, c := range cases {
		if !errors.Is(c.err, c.kind) {
			t.Errorf("%q should match kind %q", c.err, c.kind)
		}
	}
}

func TestRequestError_Messages(t *testing.T) {
	if got := ErrMissingData.Error(); got != "Missing data" {
		t.Errorf("expected 'Missing data', got %q", got)
	}
	if got := ErrParentNotFolder.Error(); got != "Parent is not a folder" {
		t.Errorf("expected 'Parent is not a folder', got %q", got)
	}
	if got := ErrAlreadyExist.Error(); got != "Already exist" {
		t.Errorf("expected 'Already exist', got %q", got)
	}
}

func TestRequestError_MatchesThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("creating folder: %w", ErrParentNotFound)
	if !errors.Is(wrapped, ErrParentNotFound) {
		t.Error("wrapped error should match the specific sentinel")
	}
	if !errors.Is(wrapped, ErrorNotFound) {
		t.Error("wrapped error should match the not-found kind")
	}
}
