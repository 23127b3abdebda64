package main

import (
	"errors"
	"os"

	telegraph "github.com/go-telegraph/telegraph"
	"github.com/go-telegraph/telegraph/internal/config"
	"github.com/go-telegraph/telegraph/internal/fileutil"
)

// CLI sentinel errors.
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrMissingInput   = errors.New("input file required")
	ErrMissingToken   = errors.New("no access token (flag --token or config account.accessToken)")
	errUsageShown     = errors.New("usage shown")
)

// Exit codes, Unix conventions: 0=success, 1=general, 2=usage, 3=I/O,
// 4=service error.
const (
	ExitSuccess = 0
	ExitGeneral = 1
	ExitUsage   = 2
	ExitIO      = 3
	ExitService = 4
)

// exitCodeFor maps an error to an exit code. It relies on errors.Is, so
// wrapping must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var apiErr *telegraph.APIError
	if errors.As(err, &apiErr) || errors.Is(err, telegraph.ErrUploadFailed) {
		return ExitService
	}

	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, config.ErrConfigNotFound) {
		return ExitIO
	}

	if errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrMissingInput) ||
		errors.Is(err, ErrMissingToken) ||
		errors.Is(err, errUsageShown) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidFormat) ||
		errors.Is(err, fileutil.ErrUnknownExtension) ||
		errors.Is(err, telegraph.ErrInvalidFormat) ||
		errors.Is(err, telegraph.ErrInvalidExportFormat) ||
		errors.Is(err, telegraph.ErrEmptyTitle) ||
		errors.Is(err, telegraph.ErrNoAccessToken) ||
		errors.Is(err, telegraph.ErrUnsupportedFile) ||
		errors.Is(err, telegraph.ErrNoFiles) {
		return ExitUsage
	}

	return ExitGeneral
}
