package blogapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ProfileService defines the profile read/write operations the UI needs.
// This interface is implemented by *Client and can be used for testing.
type ProfileService interface {
	FetchProfile(ctx context.Context) (*Profile, error)
	UpdateProfile(ctx context.Context, req UpdateRequest) (*Profile, error)
}

// Ensure Client implements ProfileService at compile time.
var _ ProfileService = (*Client)(nil)

// Client talks to the blog platform's HTTP API on behalf of one user.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	token     string
}

const (
	defaultAPIBase   = "127.0.0.1:8080"
	defaultUserAgent = "quill/0.1"
	requestTimeout   = 10 * time.Second
)

// APIError carries a server-reported failure. The message is surfaced to the
// user verbatim, so it must survive decoding untouched.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if strings.TrimSpace(e.Message) == "" {
		return fmt.Sprintf("api returned status %d", e.StatusCode)
	}
	return e.Message
}

// NewClient builds a Client using the provided apiBase host:port value and
// the session's bearer token.
func NewClient(apiBase, token string) (*Client, error) {
	base, err := parseBaseURL(apiBase)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
		token:     token,
	}, nil
}

// FetchProfile retrieves the authenticated user's profile.
func (c *Client) FetchProfile(ctx context.Context) (*Profile, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload Profile
	if err := c.do(ctx, http.MethodGet, "/api/users/me", nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// UpdateProfile submits edited profile fields and returns the server's view
// of the updated profile.
func (c *Client) UpdateProfile(ctx context.Context, req UpdateRequest) (*Profile, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload Profile
	if err := c.do(ctx, http.MethodPut, "/api/users", req, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	reqURL := c.baseURL.ResolveReference(&url.URL{Path: path})

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var failure errorBody
		if decodeErr := json.NewDecoder(resp.Body).Decode(&failure); decodeErr == nil {
			apiErr.Message = failure.Message
		}
		return apiErr
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(apiBase string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiBase)
	if trimmed == "" {
		trimmed = defaultAPIBase
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_base %q: %w", apiBase, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
