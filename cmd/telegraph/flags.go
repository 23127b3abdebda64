package main

import (
	flag "github.com/spf13/pflag"

	"github.com/go-telegraph/telegraph/internal/config"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// convertFlags holds flags for the convert command.
type convertFlags struct {
	common commonFlags
	from   string // input format ("" = infer from extension)
	to     string // output format: html, markdown, json
	output string // output path ("" = stdout)
}

// publishFlags holds flags for the publish command.
type publishFlags struct {
	common     commonFlags
	token      string
	title      string
	authorName string
	authorURL  string
	format     string // "" = infer from extension
	editPath   string // edit an existing page instead of creating one
}

// exportFlags holds flags for the export command.
type exportFlags struct {
	common   commonFlags
	token    string
	dir      string
	format   string
	pageSize int
}

// previewFlags holds flags for the preview command.
type previewFlags struct {
	common commonFlags
	output string
	style  string
}

// uploadFlags holds flags for the upload command.
type uploadFlags struct {
	common commonFlags
}

// addCommonFlags adds the flags every command accepts.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")
}

// loadConfig resolves and loads the config file for a command. A missing
// file is only an error when it was requested explicitly.
func loadConfig(f commonFlags) (*config.Config, error) {
	path := config.Discover(f.config)
	if path == "" {
		return &config.Config{}, nil
	}
	return config.Load(path)
}

// pickString returns the first non-empty string.
func pickString(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
