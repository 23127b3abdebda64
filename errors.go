package telegraph

import "errors"

// Sentinel errors for library operations.
var (
	// Content conversion errors. Conversion itself never fails on
	// malformed markup or Markdown; these cover structural misuse.
	ErrInvalidContent = errors.New("content must be a string or a node tree")
	ErrInvalidNode    = errors.New("node must be a string or a tagged object")
	ErrInvalidFormat  = errors.New("unknown content format")

	// Client errors.
	ErrNoAccessToken = errors.New("access token is required")
	ErrEmptyTitle    = errors.New("page title cannot be empty")
	ErrEmptyPath     = errors.New("page path cannot be empty")
	ErrEmptyContent  = errors.New("page content cannot be empty")

	// Upload errors.
	ErrNoFiles         = errors.New("no files to upload")
	ErrUnsupportedFile = errors.New("unsupported file type")
	ErrUploadFailed    = errors.New("upload failed")

	// Export errors.
	ErrInvalidExportFormat = errors.New("invalid export format")
)
