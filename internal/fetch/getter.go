package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Getter issues a GET for rawURL and decodes the JSON body into dest.
type Getter interface {
	GetJSON(ctx context.Context, rawURL string, dest any) error
}

// StatusError reports a response whose status fell outside 200..299.
// The body of such a response is never parsed.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d", e.Code)
}

// HTTPGetter is the plain net/http implementation of Getter.
type HTTPGetter struct {
	Client    *http.Client
	UserAgent string
}

const defaultTimeout = 10 * time.Second

// NewHTTPGetter returns a getter with the given request timeout.
func NewHTTPGetter(timeout time.Duration, userAgent string) *HTTPGetter {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPGetter{
		Client:    &http.Client{Timeout: timeout},
		UserAgent: userAgent,
	}
}

// GetJSON implements Getter.
func (g *HTTPGetter) GetJSON(ctx context.Context, rawURL string, dest any) error {
	if g == nil {
		return fmt.Errorf("getter is nil")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if g.UserAgent != "" {
		req.Header.Set("User-Agent", g.UserAgent)
	}

	client := g.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode, URL: rawURL}
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
