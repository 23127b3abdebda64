// Package config loads the CLI's YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrFieldTooLong   = errors.New("field exceeds maximum length")
	ErrInvalidFormat  = errors.New("invalid format in config")
)

// Field length limits; generous, but bounded so a bad file fails loudly.
const (
	MaxTokenLength      = 128  // access tokens are 60 hex chars today
	MaxShortNameLength  = 32   // service limit
	MaxAuthorNameLength = 128  // service limit
	MaxURLLength        = 2048 // browser limit
)

// MaxConfigSize limits config input to prevent memory exhaustion.
const MaxConfigSize = 1 << 20

// DefaultFileName is looked up in the working directory and in the
// user config directory when no --config flag is given.
const DefaultFileName = "telegraph.yaml"

// Config holds all CLI configuration.
type Config struct {
	Account AccountConfig `yaml:"account"`
	Publish PublishConfig `yaml:"publish"`
	Export  ExportConfig  `yaml:"export"`
}

// AccountConfig identifies the publishing account.
type AccountConfig struct {
	AccessToken string `yaml:"accessToken"`
	ShortName   string `yaml:"shortName"`
	AuthorName  string `yaml:"authorName"`
	AuthorURL   string `yaml:"authorUrl"`
}

// PublishConfig defines defaults for the publish command.
type PublishConfig struct {
	Format string `yaml:"format"` // "html" or "markdown" (default: by extension)
}

// ExportConfig defines defaults for the export command.
type ExportConfig struct {
	Dir      string `yaml:"dir"`      // output directory (default: "export")
	Format   string `yaml:"format"`   // "html", "markdown", or "json"
	PageSize int    `yaml:"pageSize"` // pages per list request (default: 50)
}

// Load reads and validates the config file at path.
func Load(path string) (*Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}
	if info.Size() > MaxConfigSize {
		return nil, fmt.Errorf("%w: %s: file too large", ErrConfigParse, path)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigNotFound, path, err)
	}

	var cfg Config
	if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Discover returns the first config file found: the explicit path if
// given, then ./telegraph.yaml, then the user config directory. An empty
// string means no config file; commands fall back to flags alone.
func Discover(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat(DefaultFileName); err == nil {
		return DefaultFileName
	}
	if dir, err := os.UserConfigDir(); err == nil {
		candidate := filepath.Join(dir, "telegraph", DefaultFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// Validate checks field lengths and enum values.
func (c *Config) Validate() error {
	checks := []struct {
		field string
		value string
		max   int
	}{
		{"account.accessToken", c.Account.AccessToken, MaxTokenLength},
		{"account.shortName", c.Account.ShortName, MaxShortNameLength},
		{"account.authorName", c.Account.AuthorName, MaxAuthorNameLength},
		{"account.authorUrl", c.Account.AuthorURL, MaxURLLength},
	}
	for _, check := range checks {
		if len(check.value) > check.max {
			return fmt.Errorf("%w: %s (%d > %d)", ErrFieldTooLong,
				check.field, len(check.value), check.max)
		}
	}

	switch c.Publish.Format {
	case "", "html", "markdown":
	default:
		return fmt.Errorf("%w: publish.format %q", ErrInvalidFormat, c.Publish.Format)
	}
	switch c.Export.Format {
	case "", "html", "markdown", "json":
	default:
		return fmt.Errorf("%w: export.format %q", ErrInvalidFormat, c.Export.Format)
	}
	if c.Export.PageSize < 0 || c.Export.PageSize > 200 {
		return fmt.Errorf("%w: export.pageSize %d (must be 0-200)", ErrInvalidFormat, c.Export.PageSize)
	}
	return nil
}
