package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "telegraph.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
account:
  accessToken: abc123
  shortName: Sandbox
  authorName: A. Writer
publish:
  format: markdown
export:
  dir: out
  format: json
  pageSize: 25
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Account.AccessToken != "abc123" {
		t.Errorf("AccessToken = %q", cfg.Account.AccessToken)
	}
	if cfg.Publish.Format != "markdown" {
		t.Errorf("Publish.Format = %q", cfg.Publish.Format)
	}
	if cfg.Export.Dir != "out" || cfg.Export.Format != "json" || cfg.Export.PageSize != 25 {
		t.Errorf("Export = %+v", cfg.Export)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("error = %v, want ErrConfigNotFound", err)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "account:\n  accessToken: x\n  typoField: y\n")
	_, err := Load(path)
	if !errors.Is(err, ErrConfigParse) {
		t.Errorf("error = %v, want ErrConfigParse", err)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "account: [unclosed\n")
	_, err := Load(path)
	if !errors.Is(err, ErrConfigParse) {
		t.Errorf("error = %v, want ErrConfigParse", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		expected error
	}{
		{
			name:     "zero config is valid",
			mutate:   func(c *Config) {},
			expected: nil,
		},
		{
			name: "token too long",
			mutate: func(c *Config) {
				c.Account.AccessToken = strings.Repeat("a", MaxTokenLength+1)
			},
			expected: ErrFieldTooLong,
		},
		{
			name: "short name too long",
			mutate: func(c *Config) {
				c.Account.ShortName = strings.Repeat("a", MaxShortNameLength+1)
			},
			expected: ErrFieldTooLong,
		},
		{
			name:     "bad publish format",
			mutate:   func(c *Config) { c.Publish.Format = "rst" },
			expected: ErrInvalidFormat,
		},
		{
			name:     "bad export format",
			mutate:   func(c *Config) { c.Export.Format = "pdf" },
			expected: ErrInvalidFormat,
		},
		{
			name:     "page size over limit",
			mutate:   func(c *Config) { c.Export.PageSize = 201 },
			expected: ErrInvalidFormat,
		},
		{
			name:     "negative page size",
			mutate:   func(c *Config) { c.Export.PageSize = -1 },
			expected: ErrInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg Config
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.expected == nil {
				if err != nil {
					t.Errorf("Validate: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.expected) {
				t.Errorf("Validate error = %v, want %v", err, tt.expected)
			}
		})
	}
}

func TestDiscoverExplicitWins(t *testing.T) {
	if got := Discover("/some/explicit.yaml"); got != "/some/explicit.yaml" {
		t.Errorf("Discover = %q", got)
	}
}

func TestDiscoverWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(orig) })

	if got := Discover(""); got != "" {
		// a config in the user config dir may legitimately resolve here
		if got != DefaultFileName && !strings.HasSuffix(got, filepath.Join("telegraph", DefaultFileName)) {
			t.Errorf("Discover = %q", got)
		}
	}

	if err := os.WriteFile(DefaultFileName, []byte("{}\n"), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if got := Discover(""); got != DefaultFileName {
		t.Errorf("Discover = %q, want %q", got, DefaultFileName)
	}
}
