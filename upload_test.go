package telegraph

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestUpload(t *testing.T) {
	jpg := writeTempFile(t, "photo.jpg", []byte("jpegdata"))
	png := writeTempFile(t, "chart.png", []byte("pngdata"))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parsing multipart: %v", err)
		}
		for i, want := range []string{"photo.jpg", "chart.png"} {
			field := fmt.Sprintf("file%d", i)
			headers, ok := r.MultipartForm.File[field]
			if !ok || len(headers) != 1 {
				t.Fatalf("missing part %s", field)
			}
			if headers[0].Filename != want {
				t.Errorf("%s filename = %q, want %q", field, headers[0].Filename, want)
			}
		}
		fmt.Fprint(w, `[{"src":"/file/aaa.jpg"},{"src":"/file/bbb.png"}]`)
	}))
	defer srv.Close()

	c := NewClient("", WithUploadURL(srv.URL))
	srcs, err := c.Upload(context.Background(), jpg, png)
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	expected := []string{"/file/aaa.jpg", "/file/bbb.png"}
	if !reflect.DeepEqual(srcs, expected) {
		t.Errorf("Upload = %v, want %v", srcs, expected)
	}
}

func TestUploadRejectsUnsupportedExtension(t *testing.T) {
	c := NewClient("")
	_, err := c.Upload(context.Background(), "notes.txt")
	if !errors.Is(err, ErrUnsupportedFile) {
		t.Errorf("error = %v, want ErrUnsupportedFile", err)
	}
}

func TestUploadNoFiles(t *testing.T) {
	c := NewClient("")
	if _, err := c.Upload(context.Background()); !errors.Is(err, ErrNoFiles) {
		t.Errorf("error = %v, want ErrNoFiles", err)
	}
}

func TestUploadServiceError(t *testing.T) {
	gif := writeTempFile(t, "x.gif", []byte("gifdata"))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"error":"File type invalid"}`)
	}))
	defer srv.Close()

	c := NewClient("", WithUploadURL(srv.URL))
	_, err := c.Upload(context.Background(), gif)
	if !errors.Is(err, ErrUploadFailed) {
		t.Fatalf("error = %v, want ErrUploadFailed", err)
	}
}

func TestParseUploadResponse(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected []string
		wantErr  bool
	}{
		{
			name:     "success array",
			body:     `[{"src":"/file/a.jpg"}]`,
			expected: []string{"/file/a.jpg"},
		},
		{
			name:    "error object",
			body:    `{"error":"quota exceeded"}`,
			wantErr: true,
		},
		{
			name:    "unexpected object",
			body:    `{"status":"weird"}`,
			wantErr: true,
		},
		{
			name:    "garbage",
			body:    `<html>whoops</html>`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseUploadResponse([]byte(tt.body))
			if tt.wantErr {
				if !errors.Is(err, ErrUploadFailed) {
					t.Errorf("error = %v, want ErrUploadFailed", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseUploadResponse: %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}
