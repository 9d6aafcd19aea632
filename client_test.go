package tmdb

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		apiKey  string
		opts    []Option
		wantErr error
	}{
		{
			name:   "valid config",
			apiKey: "test-key",
		},
		{
			name:    "missing API key",
			apiKey:  "",
			wantErr: ErrMissingAPIKey,
		},
		{
			name:   "valid request rate",
			apiKey: "test-key",
			opts:   []Option{WithRequestRate(10)},
		},
		{
			name:    "negative request rate",
			apiKey:  "test-key",
			opts:    []Option{WithRequestRate(-1)},
			wantErr: ErrInvalidRequestRate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := New(tt.apiKey, tt.opts...)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, DefaultBaseURL, client.BaseURL())
		})
	}
}

func TestNewOptions(t *testing.T) {
	t.Run("with base URL", func(t *testing.T) {
		client, err := New("test-key", WithBaseURL("http://localhost:8080/"))
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080", client.BaseURL())
	})

	t.Run("with custom http client", func(t *testing.T) {
		httpClient := &http.Client{Timeout: 10 * time.Second}
		client, err := New("test-key", WithHTTPClient(httpClient))
		require.NoError(t, err)

		transport, ok := client.transport.(*httpTransport)
		require.True(t, ok)
		assert.Equal(t, httpClient, transport.client)
	})

	t.Run("with timeout", func(t *testing.T) {
		client, err := New("test-key", WithTimeout(5*time.Second))
		require.NoError(t, err)

		transport, ok := client.transport.(*httpTransport)
		require.True(t, ok)
		assert.Equal(t, 5*time.Second, transport.client.Timeout)
	})

	t.Run("with transport", func(t *testing.T) {
		stub := &stubTransport{status: 200, body: []byte("{}")}
		client, err := New("test-key", WithTransport(stub))
		require.NoError(t, err)
		assert.Equal(t, stub, client.transport)
	})
}

// stubTransport returns a canned response without touching the network.
type stubTransport struct {
	status  int
	body    []byte
	err     error
	lastURL string
}

func (s *stubTransport) Get(_ context.Context, url string) (int, []byte, error) {
	s.lastURL = url
	return s.status, s.body, s.err
}

func TestExecuteClassification(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "success decodes body",
			status: 200,
			body:   `{"id": 550, "title": "Fight Club"}`,
			check: func(t *testing.T, err error) {
				require.NoError(t, err)
			},
		},
		{
			name:   "created counts as success",
			status: 201,
			body:   `{"id": 1}`,
			check: func(t *testing.T, err error) {
				require.NoError(t, err)
			},
		},
		{
			name:   "malformed success body is a decode failure",
			status: 200,
			body:   `{"id": `,
			check: func(t *testing.T, err error) {
				require.Error(t, err)
				var transportErr *TransportError
				require.ErrorAs(t, err, &transportErr)
				assert.Equal(t, "decode", transportErr.Op)
			},
		},
		{
			name:   "422 is a validation error",
			status: 422,
			body:   `{"errors": ["query: cannot be empty"]}`,
			check: func(t *testing.T, err error) {
				validationErr, ok := AsValidationError(err)
				require.True(t, ok)
				require.Len(t, validationErr.Messages, 1)
				assert.Equal(t, "query: cannot be empty", validationErr.Messages[0])
			},
		},
		{
			name:   "404 is a server error with the provider code",
			status: 404,
			body:   `{"status_code": 34, "status_message": "The resource you requested could not be found."}`,
			check: func(t *testing.T, err error) {
				serverErr, ok := AsServerError(err)
				require.True(t, ok)
				assert.Equal(t, 404, serverErr.StatusCode)
				assert.Equal(t, StatusResourceNotFound, serverErr.Body.StatusCode)
				assert.True(t, IsNotFound(err))
			},
		},
		{
			name:   "401 is a server error with the provider code",
			status: 401,
			body:   `{"status_code": 7, "status_message": "Invalid API key: You must be granted a valid key."}`,
			check: func(t *testing.T, err error) {
				serverErr, ok := AsServerError(err)
				require.True(t, ok)
				assert.Equal(t, 401, serverErr.StatusCode)
				assert.Equal(t, StatusInvalidAPIKey, serverErr.Body.StatusCode)
				assert.True(t, IsInvalidAPIKey(err))
			},
		},
		{
			name:   "500 keeps the exact HTTP status",
			status: 500,
			body:   `{"status_code": 11, "status_message": "Internal error: Something went wrong."}`,
			check: func(t *testing.T, err error) {
				serverErr, ok := AsServerError(err)
				require.True(t, ok)
				assert.Equal(t, 500, serverErr.StatusCode)
				assert.Equal(t, 11, serverErr.Body.StatusCode)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := New("test-key", WithTransport(&stubTransport{
				status: tt.status,
				body:   []byte(tt.body),
			}))
			require.NoError(t, err)

			var out map[string]any
			tt.check(t, client.Execute(context.Background(), "/movie/550", nil, &out))
		})
	}
}

func TestExecuteAppendsAPIKeyLast(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client, err := New("secret", WithBaseURL(server.URL))
	require.NoError(t, err)

	params := Params{}.With("query", "fight club").WithInt("page", 2)
	var out map[string]any
	require.NoError(t, client.Execute(context.Background(), "/search/movie", params, &out))

	assert.Equal(t, "query=fight+club&page=2&api_key=secret", gotQuery)
	assert.Equal(t, 1, strings.Count(gotQuery, "api_key="))

	t.Run("no caller params", func(t *testing.T) {
		require.NoError(t, client.Execute(context.Background(), "/movie/latest", nil, &out))
		assert.Equal(t, "api_key=secret", gotQuery)
	})
}

func TestExecuteTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	server.Close()

	client, err := New("test-key", WithBaseURL(server.URL))
	require.NoError(t, err)

	var out map[string]any
	err = client.Execute(context.Background(), "/movie/550", nil, &out)
	require.Error(t, err)

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, "request", transportErr.Op)
	assert.NotNil(t, transportErr.Unwrap())
}

func TestExecuteNeverLogsAPIKey(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.TraceLevel)

	client, err := New("super-secret-key", WithLogger(logger), WithTransport(&stubTransport{
		status: 200,
		body:   []byte(`{}`),
	}))
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, client.Execute(context.Background(), "/movie/550", nil, &out))

	assert.NotEmpty(t, buf.String())
	assert.NotContains(t, buf.String(), "super-secret-key")
}

func TestExecuteContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client, err := New("test-key", WithRequestRate(1), WithTransport(&stubTransport{
		status: 200,
		body:   []byte(`{}`),
	}))
	require.NoError(t, err)

	var out map[string]any
	// Burn the initial token so the second call has to wait on the limiter.
	require.NoError(t, client.Execute(context.Background(), "/movie/550", nil, &out))

	err = client.Execute(ctx, "/movie/550", nil, &out)
	require.Error(t, err)
	var transportErr *TransportError
	assert.ErrorAs(t, err, &transportErr)
}
