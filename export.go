package telegraph

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ExportFormat selects the serializer used when writing pages to disk.
type ExportFormat string

const (
	ExportHTML     ExportFormat = "html"
	ExportMarkdown ExportFormat = "markdown"
	ExportJSON     ExportFormat = "json"
)

// extensions per export format.
var exportExtensions = map[ExportFormat]string{
	ExportHTML:     ".html",
	ExportMarkdown: ".md",
	ExportJSON:     ".json",
}

// exporterConfig holds internal configuration for Exporter.
type exporterConfig struct {
	format   ExportFormat
	pageSize int
	timeout  time.Duration
}

const (
	defaultExportPageSize = 50
	defaultExportTimeout  = 5 * time.Minute
)

// ExporterOption configures an Exporter.
type ExporterOption func(*Exporter)

// WithExportFormat selects the output serialization. Default is HTML.
func WithExportFormat(f ExportFormat) ExporterOption {
	return func(e *Exporter) { e.cfg.format = f }
}

// WithPageSize sets how many pages are fetched per list request.
func WithPageSize(n int) ExporterOption {
	return func(e *Exporter) { e.cfg.pageSize = n }
}

// WithExportTimeout bounds a whole ExportAll run.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithExportTimeout(d time.Duration) ExporterOption {
	if d <= 0 {
		panic("telegraph: WithExportTimeout duration must be positive")
	}
	return func(e *Exporter) { e.cfg.timeout = d }
}

// Exporter walks an account's page list and writes every page to disk,
// one file per page, serialized per the configured format. It only reads
// trees handed back by the client; no page content is mutated.
type Exporter struct {
	cfg    exporterConfig
	client *Client
}

// NewExporter creates an Exporter backed by client.
func NewExporter(client *Client, opts ...ExporterOption) *Exporter {
	e := &Exporter{
		cfg: exporterConfig{
			format:   ExportHTML,
			pageSize: defaultExportPageSize,
			timeout:  defaultExportTimeout,
		},
		client: client,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExportResult summarizes an ExportAll run.
type ExportResult struct {
	Exported int      // pages written
	Files    []string // paths written, in page-list order
}

// ExportAll fetches every page of the account and writes each one under
// dir. The directory is created if missing.
func (e *Exporter) ExportAll(ctx context.Context, dir string) (*ExportResult, error) {
	ext, ok := exportExtensions[e.cfg.format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidExportFormat, e.cfg.format)
	}

	ctx, cancel := context.WithTimeout(ctx, e.cfg.timeout)
	defer cancel()

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}

	result := &ExportResult{}
	offset := 0
	for {
		list, err := e.client.GetPageList(ctx, offset, e.cfg.pageSize)
		if err != nil {
			return nil, fmt.Errorf("export: listing pages at offset %d: %w", offset, err)
		}
		if len(list.Pages) == 0 {
			break
		}

		for _, entry := range list.Pages {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			page, err := e.client.GetPage(ctx, entry.Path, true)
			if err != nil {
				return nil, fmt.Errorf("export: fetching %q: %w", entry.Path, err)
			}
			path := filepath.Join(dir, exportFileName(page.Path)+ext)
			if err := e.writePage(path, page); err != nil {
				return nil, err
			}
			result.Exported++
			result.Files = append(result.Files, path)
		}

		offset += len(list.Pages)
		if offset >= list.TotalCount {
			break
		}
	}
	return result, nil
}

// writePage serializes one page and writes it to path.
func (e *Exporter) writePage(path string, page *Page) error {
	var data []byte
	switch e.cfg.format {
	case ExportHTML:
		data = []byte(NodesToHTML(page.Content))
	case ExportMarkdown:
		data = []byte(NodesToMarkdown(page.Content))
	case ExportJSON:
		encoded, err := NodesToJSON(page.Content)
		if err != nil {
			return fmt.Errorf("export: serializing %q: %w", page.Path, err)
		}
		data = encoded
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("export: writing %q: %w", path, err)
	}
	return nil
}

// exportFileName sanitizes a page path into a safe file name. Page paths
// are slug-like ("My-Title-12-31") but the service does not guarantee it.
func exportFileName(pagePath string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_' || r == '.':
			return r
		default:
			return '-'
		}
	}, pagePath)
	name = strings.Trim(name, "-.")
	if name == "" {
		name = "page"
	}
	return name
}
