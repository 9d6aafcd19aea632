package watchproviders_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/tmdb"
	"github.com/s0up4200/tmdb/watchproviders"
)

func TestListParams(t *testing.T) {
	cmd := watchproviders.NewMovies().WithWatchRegion("SE").WithLanguage("sv-SE")
	assert.Equal(t, "/watch/providers/movie", cmd.Path())
	assert.Equal(t, "watch_region=SE&language=sv-SE", cmd.Params().Encode())

	assert.Equal(t, "/watch/providers/tv", watchproviders.NewTVShows().Path())
	assert.Empty(t, watchproviders.NewTVShows().Params())
}

func TestListExecute(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/watch/providers/movie", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"results": [
				{
					"display_priorities": {"SE": 4, "US": 0},
					"display_priority": 0,
					"logo_path": "/pbpMk2JmcoNnQwx5JGpXngfoWtp.jpg",
					"provider_name": "Netflix",
					"provider_id": 8
				}
			]
		}`))
	}))
	defer server.Close()

	client, err := tmdb.New("secret", tmdb.WithBaseURL(server.URL))
	require.NoError(t, err)

	providers, err := watchproviders.NewMovies().Execute(context.Background(), client)
	require.NoError(t, err)

	require.Len(t, providers, 1)
	assert.Equal(t, int64(8), providers[0].ProviderID)
	assert.Equal(t, "Netflix", providers[0].ProviderName)
	assert.Equal(t, 4, providers[0].DisplayPriorities["SE"])
	assert.Equal(t, 0, providers[0].DisplayPriorities["US"])
}
