package telegraph

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Default endpoints and client settings.
const (
	DefaultBaseURL   = "https://api.telegra.ph"
	DefaultUploadURL = "https://telegra.ph/upload"

	defaultHTTPTimeout = 30 * time.Second
	defaultUserAgent   = "go-telegraph"

	// maxResponseSize bounds API response bodies (pages are small; this
	// is generous).
	maxResponseSize = 10 << 20
)

// Client talks to the publishing service. The zero value is not usable;
// construct with NewClient. Content passed to page operations goes
// through the Format dispatcher, so callers may supply a node tree, a
// markup string, or a Markdown string.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	uploadURL   string
	userAgent   string
	accessToken string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// WithBaseURL points the client at a different API endpoint. Used by
// tests and by self-hosted service instances.
func WithBaseURL(u string) ClientOption {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithUploadURL points file uploads at a different endpoint.
func WithUploadURL(u string) ClientOption {
	return func(c *Client) { c.uploadURL = u }
}

// WithUserAgent sets the User-Agent header on outgoing requests.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) { c.userAgent = ua }
}

// NewClient creates a Client. The access token may be empty for the
// account-creation call; every other authorized operation fails with
// ErrNoAccessToken until a token is set.
func NewClient(accessToken string, opts ...ClientOption) *Client {
	c := &Client{
		httpClient:  &http.Client{Timeout: defaultHTTPTimeout},
		baseURL:     DefaultBaseURL,
		uploadURL:   DefaultUploadURL,
		userAgent:   defaultUserAgent,
		accessToken: accessToken,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AccessToken returns the token the client currently authenticates with.
func (c *Client) AccessToken() string {
	return c.accessToken
}

// APIError is a service-reported failure: the request reached the service
// and it answered with ok=false.
type APIError struct {
	Method  string // API method that failed
	Message string // service error string, e.g. "PAGE_NOT_FOUND"
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegraph: %s: %s", e.Method, e.Message)
}

// apiResponse is the service's envelope: {"ok":true,"result":...} or
// {"ok":false,"error":"..."}.
type apiResponse struct {
	OK     bool            `json:"ok"`
	Error  string          `json:"error"`
	Result json.RawMessage `json:"result"`
}

// invoke POSTs a form-encoded request to an API method and decodes the
// result envelope into out.
func (c *Client) invoke(ctx context.Context, method string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/"+method, strings.NewReader(params.Encode()))
	if err != nil {
		return fmt.Errorf("telegraph: %s: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("telegraph: %s: %w", method, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("telegraph: %s: reading response: %w", method, err)
	}

	var envelope apiResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("telegraph: %s: decoding response (status %d): %w",
			method, resp.StatusCode, err)
	}
	if !envelope.OK {
		return &APIError{Method: method, Message: envelope.Error}
	}
	if out != nil {
		if err := json.Unmarshal(envelope.Result, out); err != nil {
			return fmt.Errorf("telegraph: %s: decoding result: %w", method, err)
		}
	}
	return nil
}

// requireToken guards operations that need an access token.
func (c *Client) requireToken() error {
	if c.accessToken == "" {
		return ErrNoAccessToken
	}
	return nil
}
