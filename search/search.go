// Package search queries movies, TV shows and people by text. The
// query is always sent, even when empty, so the provider's own
// validation answer comes back unchanged.
package search

import (
	"context"
	"strconv"

	"github.com/s0up4200/tmdb"
	"github.com/s0up4200/tmdb/movie"
	"github.com/s0up4200/tmdb/tvshow"
)

// MoviesCommand searches movies by title.
type MoviesCommand struct {
	Query              string
	Language           string
	Page               int
	IncludeAdult       bool
	Region             string
	Year               int
	PrimaryReleaseYear int
}

// NewMovies builds a movie search for the given query.
func NewMovies(query string) MoviesCommand {
	return MoviesCommand{Query: query}
}

// WithLanguage returns a copy requesting translated fields.
func (c MoviesCommand) WithLanguage(language string) MoviesCommand {
	c.Language = language
	return c
}

// WithPage returns a copy requesting the given result page.
func (c MoviesCommand) WithPage(page int) MoviesCommand {
	c.Page = page
	return c
}

// WithIncludeAdult returns a copy that includes adult titles.
func (c MoviesCommand) WithIncludeAdult() MoviesCommand {
	c.IncludeAdult = true
	return c
}

// WithRegion returns a copy restricted to one release region.
func (c MoviesCommand) WithRegion(region string) MoviesCommand {
	c.Region = region
	return c
}

// WithYear returns a copy restricted to one release year.
func (c MoviesCommand) WithYear(year int) MoviesCommand {
	c.Year = year
	return c
}

// WithPrimaryReleaseYear returns a copy restricted to one primary
// release year.
func (c MoviesCommand) WithPrimaryReleaseYear(year int) MoviesCommand {
	c.PrimaryReleaseYear = year
	return c
}

func (MoviesCommand) Path() string {
	return "/search/movie"
}

func (c MoviesCommand) Params() tmdb.Params {
	var params tmdb.Params
	params = params.With("query", c.Query)
	if c.Language != "" {
		params = params.With("language", c.Language)
	}
	if c.Page != 0 {
		params = params.WithInt("page", c.Page)
	}
	if c.IncludeAdult {
		params = params.With("include_adult", "true")
	}
	if c.Region != "" {
		params = params.With("region", c.Region)
	}
	if c.Year != 0 {
		params = params.With("year", strconv.Itoa(c.Year))
	}
	if c.PrimaryReleaseYear != 0 {
		params = params.With("primary_release_year", strconv.Itoa(c.PrimaryReleaseYear))
	}
	return params
}

func (c MoviesCommand) Execute(ctx context.Context, client *tmdb.Client) (tmdb.PaginatedResult[movie.Short], error) {
	return tmdb.Execute[tmdb.PaginatedResult[movie.Short]](ctx, client, c)
}

// TVShowsCommand searches TV shows by name.
type TVShowsCommand struct {
	Query            string
	Language         string
	Page             int
	IncludeAdult     bool
	Region           string
	Year             int
	FirstAirDateYear int
}

// NewTVShows builds a TV search for the given query.
func NewTVShows(query string) TVShowsCommand {
	return TVShowsCommand{Query: query}
}

// WithLanguage returns a copy requesting translated fields.
func (c TVShowsCommand) WithLanguage(language string) TVShowsCommand {
	c.Language = language
	return c
}

// WithPage returns a copy requesting the given result page.
func (c TVShowsCommand) WithPage(page int) TVShowsCommand {
	c.Page = page
	return c
}

// WithIncludeAdult returns a copy that includes adult titles.
func (c TVShowsCommand) WithIncludeAdult() TVShowsCommand {
	c.IncludeAdult = true
	return c
}

// WithRegion returns a copy restricted to one release region.
func (c TVShowsCommand) WithRegion(region string) TVShowsCommand {
	c.Region = region
	return c
}

// WithYear returns a copy restricted to one air year.
func (c TVShowsCommand) WithYear(year int) TVShowsCommand {
	c.Year = year
	return c
}

// WithFirstAirDateYear returns a copy restricted to shows that first
// aired in the given year.
func (c TVShowsCommand) WithFirstAirDateYear(year int) TVShowsCommand {
	c.FirstAirDateYear = year
	return c
}

func (TVShowsCommand) Path() string {
	return "/search/tv"
}

func (c TVShowsCommand) Params() tmdb.Params {
	var params tmdb.Params
	params = params.With("query", c.Query)
	if c.Language != "" {
		params = params.With("language", c.Language)
	}
	if c.Page != 0 {
		params = params.WithInt("page", c.Page)
	}
	if c.IncludeAdult {
		params = params.With("include_adult", "true")
	}
	if c.Region != "" {
		params = params.With("region", c.Region)
	}
	if c.Year != 0 {
		params = params.With("year", strconv.Itoa(c.Year))
	}
	if c.FirstAirDateYear != 0 {
		params = params.With("first_air_date_year", strconv.Itoa(c.FirstAirDateYear))
	}
	return params
}

func (c TVShowsCommand) Execute(ctx context.Context, client *tmdb.Client) (tmdb.PaginatedResult[tvshow.Short], error) {
	return tmdb.Execute[tmdb.PaginatedResult[tvshow.Short]](ctx, client, c)
}
