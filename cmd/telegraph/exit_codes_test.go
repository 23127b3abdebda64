package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	telegraph "github.com/go-telegraph/telegraph"
	"github.com/go-telegraph/telegraph/internal/config"
	"github.com/go-telegraph/telegraph/internal/fileutil"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		// Success
		{"nil error", nil, ExitSuccess},

		// Service errors (exit 4)
		{"api error", &telegraph.APIError{Method: "createPage", Message: "CONTENT_TOO_BIG"}, ExitService},
		{"wrapped api error", fmt.Errorf("publish: %w", &telegraph.APIError{Method: "x", Message: "y"}), ExitService},
		{"upload failed", telegraph.ErrUploadFailed, ExitService},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"config not found", config.ErrConfigNotFound, ExitIO},
		{"wrapped file not exist", fmt.Errorf("reading: %w", os.ErrNotExist), ExitIO},

		// Usage/config/validation errors (exit 2)
		{"unknown command", ErrUnknownCommand, ExitUsage},
		{"missing input", ErrMissingInput, ExitUsage},
		{"missing token", ErrMissingToken, ExitUsage},
		{"usage shown", errUsageShown, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"config bad format", config.ErrInvalidFormat, ExitUsage},
		{"unknown extension", fileutil.ErrUnknownExtension, ExitUsage},
		{"invalid format", telegraph.ErrInvalidFormat, ExitUsage},
		{"invalid export format", telegraph.ErrInvalidExportFormat, ExitUsage},
		{"empty title", telegraph.ErrEmptyTitle, ExitUsage},
		{"no access token", telegraph.ErrNoAccessToken, ExitUsage},
		{"unsupported file", telegraph.ErrUnsupportedFile, ExitUsage},
		{"no files", telegraph.ErrNoFiles, ExitUsage},
		{"wrapped missing token", fmt.Errorf("publish: %w", ErrMissingToken), ExitUsage},

		// Everything else (exit 1)
		{"generic error", errors.New("boom"), ExitGeneral},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()
	codes := []int{ExitSuccess, ExitGeneral, ExitUsage, ExitIO, ExitService}
	for i, code := range codes {
		if code != i {
			t.Errorf("exit code %d out of sequence: %d", i, code)
		}
	}
	for _, code := range codes {
		if code < 0 || code >= 126 {
			t.Errorf("exit code %d outside portable range", code)
		}
	}
}
