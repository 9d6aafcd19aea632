package tmdb

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the public TMDB v3 API base URL.
	DefaultBaseURL = "https://api.themoviedb.org/3"

	// DefaultRequestRate is the request rate TMDB documents as safe,
	// in requests per second. Throttling is off unless WithRequestRate
	// is given.
	DefaultRequestRate = 50

	apiKeyParam = "api_key"
)

// Client executes commands against the TMDB API. It holds the base URL,
// the API key and the transport, all fixed at construction, plus an
// optional rate limiter shared by every call on this instance. A Client
// is safe for concurrent use.
type Client struct {
	baseURL     string
	apiKey      string
	transport   Transport
	limiter     *rate.Limiter
	logger      zerolog.Logger
	requestRate int
}

// New creates a Client for the given API key.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	client := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(client)
	}

	if client.requestRate != 0 {
		if client.requestRate < 0 {
			return nil, ErrInvalidRequestRate
		}
		// Burst of one: the first call goes through untouched, every
		// following call keeps the minimum inter-request interval.
		client.limiter = rate.NewLimiter(rate.Limit(client.requestRate), 1)
	}

	if client.transport == nil {
		client.transport = NewHTTPTransport(nil)
	}

	// Strip a trailing slash so path concatenation stays predictable.
	if n := len(client.baseURL); n > 0 && client.baseURL[n-1] == '/' {
		client.baseURL = client.baseURL[:n-1]
	}

	return client, nil
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Execute performs one GET round trip for the given path and parameters
// and decodes the response into out. The API key is appended as the last
// query parameter. The outcome is exactly one of: a decoded success, a
// *ValidationError (HTTP 422), a *ServerError (any other non-2xx) or a
// *TransportError (network or decode failure). There are no retries.
func (c *Client) Execute(ctx context.Context, path string, params Params, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return &TransportError{Op: "request", Err: err}
		}
	}

	query := params.With(apiKeyParam, c.apiKey)
	url := c.baseURL + path + "?" + query.Encode()

	start := time.Now()
	status, body, err := c.transport.Get(ctx, url)
	if err != nil {
		return &TransportError{Op: "request", Err: err}
	}

	// The URL carries the API key, so log the path only.
	c.logger.Debug().
		Str("path", path).
		Int("status", status).
		Dur("duration", time.Since(start)).
		Msg("executed TMDB request")

	switch {
	case status >= 200 && status < 300:
		if err := json.Unmarshal(body, out); err != nil {
			return &TransportError{Op: "decode", Err: err}
		}
		return nil

	case status == 422:
		var validationErr ValidationError
		if err := json.Unmarshal(body, &validationErr); err != nil {
			return &TransportError{Op: "decode", Err: err}
		}
		return &validationErr

	default:
		serverErr := ServerError{StatusCode: status}
		if err := json.Unmarshal(body, &serverErr.Body); err != nil {
			return &TransportError{Op: "decode", Err: err}
		}
		return &serverErr
	}
}
