// Package collection reads movie collections, the franchise groupings
// a movie can belong to.
package collection

import (
	"context"
	"strconv"

	"github.com/s0up4200/tmdb"
)

// Collection is a franchise with the movies it contains.
type Collection struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Overview     string `json:"overview"`
	PosterPath   string `json:"poster_path"`
	BackdropPath string `json:"backdrop_path"`
	Parts        []Part `json:"parts"`
}

// Part is one movie inside a collection.
type Part struct {
	ID               int64          `json:"id"`
	MediaType        tmdb.MediaType `json:"media_type"`
	Title            string         `json:"title"`
	OriginalTitle    string         `json:"original_title"`
	OriginalLanguage string         `json:"original_language"`
	Overview         string         `json:"overview"`
	PosterPath       string         `json:"poster_path"`
	BackdropPath     string         `json:"backdrop_path"`
	GenreIDs         []int64        `json:"genre_ids"`
	Popularity       float64        `json:"popularity"`
	Adult            bool           `json:"adult"`
	Video            bool           `json:"video"`
	VoteAverage      float64        `json:"vote_average"`
	VoteCount        int            `json:"vote_count"`
	ReleaseDate      tmdb.Date      `json:"release_date"`
}

// DetailsCommand fetches one collection by id.
type DetailsCommand struct {
	CollectionID int64
	Language     string
}

// NewDetails builds a command fetching a collection's details.
func NewDetails(collectionID int64) DetailsCommand {
	return DetailsCommand{CollectionID: collectionID}
}

// WithLanguage returns a copy requesting translated fields.
func (c DetailsCommand) WithLanguage(language string) DetailsCommand {
	c.Language = language
	return c
}

func (c DetailsCommand) Path() string {
	return "/collection/" + strconv.FormatInt(c.CollectionID, 10)
}

func (c DetailsCommand) Params() tmdb.Params {
	var params tmdb.Params
	if c.Language != "" {
		params = params.With("language", c.Language)
	}
	return params
}

func (c DetailsCommand) Execute(ctx context.Context, client *tmdb.Client) (*Collection, error) {
	res, err := tmdb.Execute[Collection](ctx, client, c)
	if err != nil {
		return nil, err
	}
	return &res, nil
}
