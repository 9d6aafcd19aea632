// Package certification lists the official movie and TV content
// ratings TMDB knows about, grouped by country.
package certification

import (
	"context"

	"github.com/s0up4200/tmdb"
)

// Certification is a single rating within a country's certification
// system, for example "PG-13" or "FSK 16".
type Certification struct {
	Certification string `json:"certification"`
	Meaning       string `json:"meaning"`
	Order         int    `json:"order"`
}

// listEnvelope matches the single-key wrapper the list endpoints use.
type listEnvelope struct {
	Certifications map[string][]Certification `json:"certifications"`
}

// MovieListCommand fetches the movie certifications.
type MovieListCommand struct{}

// NewMovieList builds a command listing movie certifications.
func NewMovieList() MovieListCommand {
	return MovieListCommand{}
}

func (MovieListCommand) Path() string {
	return "/certification/movie/list"
}

func (MovieListCommand) Params() tmdb.Params {
	return nil
}

// Execute returns the certifications keyed by ISO 3166-1 country code.
func (c MovieListCommand) Execute(ctx context.Context, client *tmdb.Client) (map[string][]Certification, error) {
	res, err := tmdb.Execute[listEnvelope](ctx, client, c)
	if err != nil {
		return nil, err
	}
	return res.Certifications, nil
}

// TVListCommand fetches the TV certifications.
type TVListCommand struct{}

// NewTVList builds a command listing TV certifications.
func NewTVList() TVListCommand {
	return TVListCommand{}
}

func (TVListCommand) Path() string {
	return "/certification/tv/list"
}

func (TVListCommand) Params() tmdb.Params {
	return nil
}

// Execute returns the certifications keyed by ISO 3166-1 country code.
func (c TVListCommand) Execute(ctx context.Context, client *tmdb.Client) (map[string][]Certification, error) {
	res, err := tmdb.Execute[listEnvelope](ctx, client, c)
	if err != nil {
		return nil, err
	}
	return res.Certifications, nil
}
