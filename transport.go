package tmdb

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout is the HTTP timeout of the default transport.
const DefaultTimeout = 30 * time.Second

// Transport performs the HTTP round trip for the client. Implementations
// issue a GET to the given URL and return the raw status code and the
// fully read body; they must not interpret either. Errors are reserved
// for failures that produced no response at all.
type Transport interface {
	Get(ctx context.Context, url string) (status int, body []byte, err error)
}

type httpTransport struct {
	client *http.Client
}

// NewHTTPTransport wraps an *http.Client as a Transport. A nil client
// gets a default one with a 30 second timeout.
func NewHTTPTransport(client *http.Client) Transport {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &httpTransport{client: client}
}

func (t *httpTransport) Get(ctx context.Context, url string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return resp.StatusCode, body, nil
}
