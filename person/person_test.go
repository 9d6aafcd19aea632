package person_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/tmdb"
	"github.com/s0up4200/tmdb/person"
)

func TestDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/person/287", r.URL.Path)
		assert.Equal(t, "api_key=secret", r.URL.RawQuery)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"adult": false,
			"also_known_as": ["Brad Pitt"],
			"biography": "William Bradley Pitt is an American actor.",
			"birthday": "1963-12-18",
			"deathday": null,
			"gender": 2,
			"homepage": null,
			"id": 287,
			"imdb_id": "nm0000093",
			"known_for_department": "Acting",
			"name": "Brad Pitt",
			"place_of_birth": "Shawnee, Oklahoma, USA",
			"popularity": 10.647,
			"profile_path": "/cckcYc2v0yh1tc9QjRelptcOBko.jpg"
		}`))
	}))
	defer server.Close()

	client, err := tmdb.New("secret", tmdb.WithBaseURL(server.URL))
	require.NoError(t, err)

	p, err := person.NewDetails(287).Execute(context.Background(), client)
	require.NoError(t, err)

	assert.Equal(t, int64(287), p.ID)
	assert.Equal(t, "Brad Pitt", p.Name)
	assert.Equal(t, 1963, p.Birthday.Year())
	assert.True(t, p.Deathday.IsZero())
	assert.Equal(t, "Acting", p.KnownForDepartment)
}

func TestDetailsEmptyDates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 1, "name": "Somebody", "birthday": "", "deathday": ""}`))
	}))
	defer server.Close()

	client, err := tmdb.New("secret", tmdb.WithBaseURL(server.URL))
	require.NoError(t, err)

	p, err := person.NewDetails(1).Execute(context.Background(), client)
	require.NoError(t, err)
	assert.True(t, p.Birthday.IsZero())
	assert.True(t, p.Deathday.IsZero())
}

func TestDetailsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status_code": 34, "status_message": "The resource you requested could not be found."}`))
	}))
	defer server.Close()

	client, err := tmdb.New("secret", tmdb.WithBaseURL(server.URL))
	require.NoError(t, err)

	_, err = person.NewDetails(0).Execute(context.Background(), client)
	require.Error(t, err)

	serverErr, ok := tmdb.AsServerError(err)
	require.True(t, ok)
	assert.Equal(t, tmdb.StatusResourceNotFound, serverErr.Body.StatusCode)
}

func TestDetailsLanguageParam(t *testing.T) {
	cmd := person.NewDetails(287).WithLanguage("de-DE")
	assert.Equal(t, "language=de-DE", cmd.Params().Encode())
}
