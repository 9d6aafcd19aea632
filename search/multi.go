package search

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/s0up4200/tmdb"
	"github.com/s0up4200/tmdb/movie"
	"github.com/s0up4200/tmdb/person"
	"github.com/s0up4200/tmdb/tvshow"
)

// Result is one entry of a mixed search. Exactly one of Movie, TVShow
// and Person is set, matching MediaType.
type Result struct {
	MediaType tmdb.MediaType
	Movie     *movie.Short
	TVShow    *tvshow.Short
	Person    *person.Short
}

// UnmarshalJSON reads the media_type discriminator first, then decodes
// the entry into the matching branch.
func (r *Result) UnmarshalJSON(data []byte) error {
	var probe struct {
		MediaType tmdb.MediaType `json:"media_type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}

	r.MediaType = probe.MediaType
	switch probe.MediaType {
	case tmdb.MediaTypeMovie:
		r.Movie = new(movie.Short)
		return json.Unmarshal(data, r.Movie)
	case tmdb.MediaTypeTV:
		r.TVShow = new(tvshow.Short)
		return json.Unmarshal(data, r.TVShow)
	case tmdb.MediaTypePerson:
		r.Person = new(person.Short)
		return json.Unmarshal(data, r.Person)
	default:
		return fmt.Errorf("unknown media type %q", probe.MediaType)
	}
}

// MultiCommand searches movies, TV shows and people in one query.
type MultiCommand struct {
	Query        string
	Language     string
	Page         int
	IncludeAdult bool
}

// NewMulti builds a mixed search for the given query.
func NewMulti(query string) MultiCommand {
	return MultiCommand{Query: query}
}

// WithLanguage returns a copy requesting translated fields.
func (c MultiCommand) WithLanguage(language string) MultiCommand {
	c.Language = language
	return c
}

// WithPage returns a copy requesting the given result page.
func (c MultiCommand) WithPage(page int) MultiCommand {
	c.Page = page
	return c
}

// WithIncludeAdult returns a copy that includes adult titles.
func (c MultiCommand) WithIncludeAdult() MultiCommand {
	c.IncludeAdult = true
	return c
}

func (MultiCommand) Path() string {
	return "/search/multi"
}

func (c MultiCommand) Params() tmdb.Params {
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
	return params
}

func (c MultiCommand) Execute(ctx context.Context, client *tmdb.Client) (tmdb.PaginatedResult[Result], error) {
	return tmdb.Execute[tmdb.PaginatedResult[Result]](ctx, client, c)
}
