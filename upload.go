package telegraph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// uploadMIMETypes maps file extensions to the content types the upload
// endpoint accepts. Anything outside this map is rejected client-side.
var uploadMIMETypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".mp4":  "video/mp4",
}

// uploadResult is one entry of the endpoint's response array.
type uploadResult struct {
	Src string `json:"src"`
}

// Upload sends local image/video files to the service's upload endpoint
// and returns the hosted paths (e.g. "/file/abc.jpg") in input order.
func (c *Client) Upload(ctx context.Context, paths ...string) ([]string, error) {
	if len(paths) == 0 {
		return nil, ErrNoFiles
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for i, path := range paths {
		contentType, ok := uploadMIMETypes[strings.ToLower(filepath.Ext(path))]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedFile, path)
		}

		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(
			`form-data; name="file%d"; filename=%q`, i, filepath.Base(path)))
		header.Set("Content-Type", contentType)

		part, err := writer.CreatePart(header)
		if err != nil {
			return nil, fmt.Errorf("upload: %w", err)
		}
		file, err := os.Open(path) // #nosec G304 -- caller-provided upload path
		if err != nil {
			return nil, fmt.Errorf("upload: %w", err)
		}
		_, err = io.Copy(part, file)
		file.Close()
		if err != nil {
			return nil, fmt.Errorf("upload %q: %w", path, err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("upload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL, &buf)
	if err != nil {
		return nil, fmt.Errorf("upload: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("upload: reading response: %w", err)
	}

	return parseUploadResponse(body)
}

// parseUploadResponse handles the endpoint's two response shapes: a JSON
// array of {"src": ...} on success, or an object with an error field.
func parseUploadResponse(body []byte) ([]string, error) {
	trimmed := bytes.TrimSpace(body)
	if bytes.HasPrefix(trimmed, []byte("{")) {
		var failure struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(trimmed, &failure); err == nil && failure.Error != "" {
			return nil, fmt.Errorf("%w: %s", ErrUploadFailed, failure.Error)
		}
		return nil, fmt.Errorf("%w: unexpected response %s", ErrUploadFailed, snippet(trimmed))
	}

	var results []uploadResult
	if err := json.Unmarshal(trimmed, &results); err != nil {
		return nil, fmt.Errorf("%w: unexpected response %s", ErrUploadFailed, snippet(trimmed))
	}
	srcs := make([]string, len(results))
	for i, r := range results {
		srcs[i] = r.Src
	}
	return srcs, nil
}

// snippet quotes at most 120 bytes of a response for error messages.
func snippet(b []byte) string {
	const max = 120
	if len(b) > max {
		b = b[:max]
	}
	return strconv.Quote(string(b))
}
