package tmdb

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL. Useful for proxies and tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTransport replaces the transport used for HTTP calls.
func WithTransport(transport Transport) Option {
	return func(c *Client) {
		c.transport = transport
	}
}

// WithHTTPClient uses the given *http.Client for the default transport.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.transport = NewHTTPTransport(client)
	}
}

// WithTimeout sets the HTTP timeout of the default transport.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.transport = NewHTTPTransport(&http.Client{Timeout: timeout})
	}
}

// WithLogger sets the logger used for request debug logging.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRequestRate throttles the client to perSecond requests per second.
// Concurrent callers share the limit; the first request never waits.
// Zero leaves throttling off; a negative value makes New return
// ErrInvalidRequestRate.
func WithRequestRate(perSecond int) Option {
	return func(c *Client) {
		c.requestRate = perSecond
	}
}
