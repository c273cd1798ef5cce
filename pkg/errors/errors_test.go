// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/dotbind/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "not_found_error",
			code:    errors.ErrNotFound,
			message: "file not found",
			wantStr: "[NOT_FOUND] file not found",
		},
		{
			name:    "not_tracked_error",
			code:    errors.ErrNotTracked,
			message: "no matching pattern line",
			wantStr: "[NOT_TRACKED] no matching pattern line",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	inner := stderrors.New("permission denied")
	err := errors.Wrap(inner, errors.ErrCollaborator, "git add failed")

	if !stderrors.Is(err, inner) {
		t.Error("Wrap() should preserve the wrapped error for errors.Is")
	}

	if got := err.Error(); got != "[COLLABORATOR] git add failed: permission denied" {
		t.Errorf("Error() = %q", got)
	}

	if errors.Wrap(nil, errors.ErrCollaborator, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestIsErrorCode(t *testing.T) {
	err := errors.Newf(errors.ErrNoBaseFound, "path %s has no base", "/repo/etc")

	if !errors.IsErrorCode(err, errors.ErrNoBaseFound) {
		t.Error("IsErrorCode() should match the error's code")
	}

	if errors.IsErrorCode(err, errors.ErrNotFound) {
		t.Error("IsErrorCode() should not match a different code")
	}

	if errors.IsErrorCode(stderrors.New("plain"), errors.ErrNotFound) {
		t.Error("IsErrorCode() should not match a plain error")
	}
}

func TestGetErrorCode(t *testing.T) {
	err := errors.New(errors.ErrAnchorNotFound, "anchor missing")

	if got := errors.GetErrorCode(err); got != errors.ErrAnchorNotFound {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrAnchorNotFound)
	}

	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode(plain) = %v, want %v", got, errors.ErrUnknown)
	}
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrNotTracked, "not tracked").
		WithDetail("path", "/repo/home/.bashrc")

	if err.Details["path"] != "/repo/home/.bashrc" {
		t.Error("WithDetail() should store the detail")
	}
}
