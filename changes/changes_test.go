package changes_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/tmdb"
	"github.com/s0up4200/tmdb/changes"
)

func TestListPaths(t *testing.T) {
	assert.Equal(t, "/movie/changes", changes.NewMovies().Path())
	assert.Equal(t, "/tv/changes", changes.NewTVShows().Path())
	assert.Equal(t, "/person/changes", changes.NewPeople().Path())
}

func TestListParams(t *testing.T) {
	cmd := changes.NewMovies().
		WithStartDate(tmdb.NewDate(2023, time.March, 1)).
		WithEndDate(tmdb.NewDate(2023, time.March, 14)).
		WithPage(2)

	assert.Equal(t, "start_date=2023-03-01&end_date=2023-03-14&page=2", cmd.Params().Encode())
	assert.Empty(t, changes.NewMovies().Params())
}

func TestListExecute(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/person/changes", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"page": 1,
			"total_pages": 1,
			"total_results": 3,
			"results": [
				{"id": 287, "adult": false},
				{"id": 6384, "adult": null},
				{"id": null, "adult": null}
			]
		}`))
	}))
	defer server.Close()

	client, err := tmdb.New("secret", tmdb.WithBaseURL(server.URL))
	require.NoError(t, err)

	page, err := changes.NewPeople().Execute(context.Background(), client)
	require.NoError(t, err)

	assert.Equal(t, 3, page.TotalResults)
	require.Len(t, page.Results, 3)

	require.NotNil(t, page.Results[0].ID)
	assert.Equal(t, int64(287), *page.Results[0].ID)
	require.NotNil(t, page.Results[0].Adult)
	assert.False(t, *page.Results[0].Adult)

	assert.Nil(t, page.Results[1].Adult)
	assert.Nil(t, page.Results[2].ID)
}
