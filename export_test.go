package telegraph

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// exportTestClient serves a fixed set of pages through getPageList and
// getPage, honoring offset/limit paging.
func exportTestClient(t *testing.T, pages []Page) *Client {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/getPageList", func(w http.ResponseWriter, r *http.Request) {
		offset, _ := strconv.Atoi(r.FormValue("offset"))
		limit, _ := strconv.Atoi(r.FormValue("limit"))
		end := offset + limit
		if end > len(pages) {
			end = len(pages)
		}
		var items []string
		for _, p := range pages[offset:end] {
			items = append(items, fmt.Sprintf(`{"path":%q,"url":"","title":%q}`, p.Path, p.Title))
		}
		fmt.Fprintf(w, `{"ok":true,"result":{"total_count":%d,"pages":[%s]}}`,
			len(pages), strings.Join(items, ","))
	})
	mux.HandleFunc("/getPage/", func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/getPage/")
		for _, p := range pages {
			if p.Path == path {
				content, err := NodesToJSON(p.Content)
				if err != nil {
					t.Fatalf("serializing fixture: %v", err)
				}
				fmt.Fprintf(w, `{"ok":true,"result":{"path":%q,"title":%q,"content":%s}}`,
					p.Path, p.Title, content)
				return
			}
		}
		fmt.Fprint(w, `{"ok":false,"error":"PAGE_NOT_FOUND"}`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return NewClient("tok", WithBaseURL(srv.URL))
}

func TestExportAll(t *testing.T) {
	pages := []Page{
		{Path: "First-01-01", Title: "First", Content: []Node{Elem("p", TextNode("one"))}},
		{Path: "Second-01-02", Title: "Second", Content: []Node{Elem("p", TextNode("two"))}},
		{Path: "Third-01-03", Title: "Third", Content: []Node{Elem("p", TextNode("three"))}},
	}
	c := exportTestClient(t, pages)
	dir := t.TempDir()

	// page size below the page count forces the paging loop to advance.
	exporter := NewExporter(c, WithExportFormat(ExportHTML), WithPageSize(2))
	result, err := exporter.ExportAll(context.Background(), dir)
	if err != nil {
		t.Fatalf("ExportAll: %v", err)
	}
	if result.Exported != 3 {
		t.Errorf("Exported = %d, want 3", result.Exported)
	}
	if len(result.Files) != 3 {
		t.Fatalf("Files = %v, want 3 entries", result.Files)
	}

	data, err := os.ReadFile(filepath.Join(dir, "First-01-01.html"))
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	if string(data) != "<p>one</p>" {
		t.Errorf("exported html = %q", data)
	}
}

func TestExportAllFormats(t *testing.T) {
	pages := []Page{
		{Path: "Note-01-01", Title: "Note", Content: []Node{Elem("h3", TextNode("T")), Elem("p", TextNode("b"))}},
	}

	tests := []struct {
		format   ExportFormat
		file     string
		expected string
	}{
		{ExportHTML, "Note-01-01.html", "<h3>T</h3><p>b</p>"},
		{ExportMarkdown, "Note-01-01.md", "# T\n\nb"},
		{ExportJSON, "Note-01-01.json", `[{"tag":"h3","children":["T"]},{"tag":"p","children":["b"]}]`},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			c := exportTestClient(t, pages)
			dir := t.TempDir()
			exporter := NewExporter(c, WithExportFormat(tt.format))
			if _, err := exporter.ExportAll(context.Background(), dir); err != nil {
				t.Fatalf("ExportAll: %v", err)
			}
			data, err := os.ReadFile(filepath.Join(dir, tt.file))
			if err != nil {
				t.Fatalf("reading export: %v", err)
			}
			if string(data) != tt.expected {
				t.Errorf("exported %s = %q, want %q", tt.format, data, tt.expected)
			}
		})
	}
}

func TestExportAllUnknownFormat(t *testing.T) {
	exporter := NewExporter(NewClient("tok"), WithExportFormat("pdf"))
	_, err := exporter.ExportAll(context.Background(), t.TempDir())
	if !errors.Is(err, ErrInvalidExportFormat) {
		t.Errorf("error = %v, want ErrInvalidExportFormat", err)
	}
}

func TestWithExportTimeoutPanicsOnNonPositive(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on zero duration")
		}
	}()
	WithExportTimeout(0)
}

func TestExportFileName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"My-Title-12-31", "My-Title-12-31"},
		{"with space/slash", "with-space-slash"},
		{"..--..", "page"},
		{"", "page"},
		{"snake_case.v2", "snake_case.v2"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := exportFileName(tt.input); got != tt.expected {
				t.Errorf("exportFileName(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
