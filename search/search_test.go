package search_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/tmdb"
	"github.com/s0up4200/tmdb/search"
)

func newClient(t *testing.T, handler http.HandlerFunc) *tmdb.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := tmdb.New("secret", tmdb.WithBaseURL(server.URL))
	require.NoError(t, err)
	return client
}

func TestMoviesParams(t *testing.T) {
	tests := []struct {
		name string
		cmd  tmdb.Command
		want string
	}{
		{
			name: "query only",
			cmd:  search.NewMovies("fight club"),
			want: "query=fight+club",
		},
		{
			name: "empty query still sent",
			cmd:  search.NewMovies(""),
			want: "query=",
		},
		{
			name: "all options in order",
			cmd: search.NewMovies("dune").
				WithLanguage("en-US").
				WithPage(2).
				WithIncludeAdult().
				WithRegion("US").
				WithYear(2021).
				WithPrimaryReleaseYear(2021),
			want: "query=dune&language=en-US&page=2&include_adult=true&region=US&year=2021&primary_release_year=2021",
		},
		{
			name: "tv with first air date year",
			cmd:  search.NewTVShows("the wire").WithFirstAirDateYear(2002),
			want: "query=the+wire&first_air_date_year=2002",
		},
		{
			name: "multi",
			cmd:  search.NewMulti("tarantino").WithPage(3),
			want: "query=tarantino&page=3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cmd.Params().Encode())
		})
	}
}

func TestMovies(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/movie", r.URL.Path)
		assert.Equal(t, "query=fight+club&api_key=secret", r.URL.RawQuery)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"page": 1,
			"total_pages": 1,
			"total_results": 2,
			"results": [
				{"adult": false, "genre_ids": [18], "id": 550, "original_language": "en",
				 "original_title": "Fight Club", "overview": "An insomniac office worker.",
				 "popularity": 61.416, "release_date": "1999-10-15", "title": "Fight Club",
				 "video": false, "vote_average": 8.433, "vote_count": 26280},
				{"adult": false, "genre_ids": [], "id": 51021, "original_language": "en",
				 "original_title": "Fight Club Members Only", "overview": "",
				 "popularity": 2.2, "release_date": "", "title": "Fight Club Members Only",
				 "video": false, "vote_average": 4.3, "vote_count": 7}
			]
		}`))
	})

	page, err := search.NewMovies("fight club").Execute(context.Background(), client)
	require.NoError(t, err)

	assert.Equal(t, 2, page.TotalResults)
	require.Len(t, page.Results, 2)
	assert.Equal(t, int64(550), page.Results[0].ID)
	assert.Equal(t, 1999, page.Results[0].ReleaseDate.Year())
	assert.True(t, page.Results[1].ReleaseDate.IsZero())
}

func TestMoviesEmptyQueryValidation(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "query=&api_key=secret", r.URL.RawQuery)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"errors": ["query must be provided"]}`))
	})

	_, err := search.NewMovies("").Execute(context.Background(), client)
	require.Error(t, err)

	validationErr, ok := tmdb.AsValidationError(err)
	require.True(t, ok)
	require.Len(t, validationErr.Messages, 1)
	assert.Equal(t, "query must be provided", validationErr.Messages[0])
}

func TestTVShows(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/tv", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"page": 1,
			"total_pages": 1,
			"total_results": 1,
			"results": [
				{"adult": false, "genre_ids": [80, 18], "id": 1438, "origin_country": ["US"],
				 "original_language": "en", "original_name": "The Wire",
				 "overview": "Told from the points of view of both the police and their targets.",
				 "popularity": 130.5, "first_air_date": "2002-06-02", "name": "The Wire",
				 "vote_average": 8.6, "vote_count": 2358}
			]
		}`))
	})

	page, err := search.NewTVShows("the wire").Execute(context.Background(), client)
	require.NoError(t, err)

	require.Len(t, page.Results, 1)
	assert.Equal(t, "The Wire", page.Results[0].Name)
	assert.Equal(t, 2002, page.Results[0].FirstAirDate.Year())
}

func TestMulti(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/multi", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"page": 1,
			"total_pages": 1,
			"total_results": 3,
			"results": [
				{"media_type": "movie", "id": 550, "title": "Fight Club", "release_date": "1999-10-15", "genre_ids": [18]},
				{"media_type": "tv", "id": 1438, "name": "The Wire", "first_air_date": "2002-06-02", "origin_country": ["US"], "genre_ids": [80]},
				{"media_type": "person", "id": 287, "name": "Brad Pitt", "gender": 2, "profile_path": null}
			]
		}`))
	})

	page, err := search.NewMulti("anything").Execute(context.Background(), client)
	require.NoError(t, err)

	require.Len(t, page.Results, 3)

	first := page.Results[0]
	assert.Equal(t, tmdb.MediaTypeMovie, first.MediaType)
	require.NotNil(t, first.Movie)
	assert.Equal(t, "Fight Club", first.Movie.Title)
	assert.Nil(t, first.TVShow)
	assert.Nil(t, first.Person)

	second := page.Results[1]
	assert.Equal(t, tmdb.MediaTypeTV, second.MediaType)
	require.NotNil(t, second.TVShow)
	assert.Equal(t, "The Wire", second.TVShow.Name)

	third := page.Results[2]
	assert.Equal(t, tmdb.MediaTypePerson, third.MediaType)
	require.NotNil(t, third.Person)
	assert.Equal(t, "Brad Pitt", third.Person.Name)
}

func TestMultiUnknownMediaType(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"page": 1, "total_pages": 1, "total_results": 1, "results": [{"media_type": "collection", "id": 10}]}`))
	})

	_, err := search.NewMulti("anything").Execute(context.Background(), client)
	require.Error(t, err)

	var transportErr *tmdb.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, "decode", transportErr.Op)
}
