// Package genre lists the official movie and TV genres.
package genre

import (
	"context"

	"github.com/s0up4200/tmdb"
)

type listEnvelope struct {
	Genres []tmdb.Genre `json:"genres"`
}

// MoviesCommand fetches the list of official movie genres.
type MoviesCommand struct {
	Language string
}

// NewMovies builds a command listing movie genres.
func NewMovies() MoviesCommand {
	return MoviesCommand{}
}

// WithLanguage returns a copy requesting translated genre names.
func (c MoviesCommand) WithLanguage(language string) MoviesCommand {
	c.Language = language
	return c
}

func (MoviesCommand) Path() string {
	return "/genre/movie/list"
}

func (c MoviesCommand) Params() tmdb.Params {
	var params tmdb.Params
	if c.Language != "" {
		params = params.With("language", c.Language)
	}
	return params
}

func (c MoviesCommand) Execute(ctx context.Context, client *tmdb.Client) ([]tmdb.Genre, error) {
	res, err := tmdb.Execute[listEnvelope](ctx, client, c)
	if err != nil {
		return nil, err
	}
	return res.Genres, nil
}

// TVShowsCommand fetches the list of official TV genres.
type TVShowsCommand struct {
	Language string
}

// NewTVShows builds a command listing TV genres.
func NewTVShows() TVShowsCommand {
	return TVShowsCommand{}
}

// WithLanguage returns a copy requesting translated genre names.
func (c TVShowsCommand) WithLanguage(language string) TVShowsCommand {
	c.Language = language
	return c
}

func (TVShowsCommand) Path() string {
	return "/genre/tv/list"
}

func (c TVShowsCommand) Params() tmdb.Params {
	var params tmdb.Params
	if c.Language != "" {
		params = params.With("language", c.Language)
	}
	return params
}

func (c TVShowsCommand) Execute(ctx context.Context, client *tmdb.Client) ([]tmdb.Genre, error) {
	res, err := tmdb.Execute[listEnvelope](ctx, client, c)
	if err != nil {
		return nil, err
	}
	return res.Genres, nil
}
