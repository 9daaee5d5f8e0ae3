// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/brandforge/brandforge/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "brand_not_found_error",
			code:    errors.ErrBrandNotFound,
			message: "no such brand",
			wantStr: "[BRAND_NOT_FOUND] no such brand",
		},
		{
			name:    "asset_missing_error",
			code:    errors.ErrAssetMissing,
			message: "logo.png is missing",
			wantStr: "[ASSET_MISSING] logo.png is missing",
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

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	underlying := stderrors.New("disk full")
	err := errors.Wrap(underlying, errors.ErrFileWrite, "writing default512.png")

	if !stderrors.Is(err, underlying) {
		t.Error("Wrap() should preserve the wrapped error for errors.Is")
	}

	want := "[FILE_WRITE] writing default512.png: disk full"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	if errors.Wrap(nil, errors.ErrFileWrite, "noop") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestIsErrorCode(t *testing.T) {
	err := errors.Newf(errors.ErrUpstreamInconsistent, "found %d installer scripts", 2)

	if !errors.IsErrorCode(err, errors.ErrUpstreamInconsistent) {
		t.Error("IsErrorCode() should match the error's own code")
	}
	if errors.IsErrorCode(err, errors.ErrAssetMissing) {
		t.Error("IsErrorCode() should not match a different code")
	}
	if errors.IsErrorCode(stderrors.New("plain"), errors.ErrAssetMissing) {
		t.Error("IsErrorCode() should be false for a plain error")
	}
}

func TestGetErrorCode(t *testing.T) {
	err := errors.New(errors.ErrImageDecode, "bad png")
	if got := errors.GetErrorCode(err); got != errors.ErrImageDecode {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrImageDecode)
	}
	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrUnknown)
	}
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrAssetMissing, "missing assets").
		WithDetail("missing", []string{"logo.png"})

	if _, ok := err.Details["missing"]; !ok {
		t.Error("WithDetail() should record the detail")
	}
}
