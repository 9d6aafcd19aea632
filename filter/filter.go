// Package filter evaluates expr expressions against search results,
// so command line users can narrow listings with queries like
// `VoteAverage >= 7.5 and Year > 2015 and hasGenre(878)`.
package filter

import (
	"time"

	"github.com/s0up4200/tmdb"
	"github.com/s0up4200/tmdb/movie"
	"github.com/s0up4200/tmdb/person"
	"github.com/s0up4200/tmdb/search"
	"github.com/s0up4200/tmdb/tvshow"
)

// Item is the normalized view of a search result that expressions
// evaluate against. Movie and TV fields are folded onto shared names:
// a show's name becomes Title, its first air date becomes ReleaseDate.
type Item struct {
	MediaType     tmdb.MediaType
	Title         string
	OriginalTitle string
	Overview      string
	Language      string
	ReleaseDate   time.Time
	Adult         bool
	Popularity    float64
	VoteAverage   float64
	VoteCount     int
	GenreIDs      []int64
}

// Filter reports whether an item matches.
type Filter interface {
	Evaluate(item Item) (bool, error)
}

// CompiledFilter is a parsed expression ready for reuse across items.
type CompiledFilter interface {
	Filter

	// Expression returns the source text the filter was compiled from.
	Expression() string
}

// Compiler turns expression text into executable filters.
type Compiler interface {
	Compile(expression string) (CompiledFilter, error)
}

// FromMovie converts a movie search result.
func FromMovie(m movie.Short) Item {
	return Item{
		MediaType:     tmdb.MediaTypeMovie,
		Title:         m.Title,
		OriginalTitle: m.OriginalTitle,
		Overview:      m.Overview,
		Language:      m.OriginalLanguage,
		ReleaseDate:   m.ReleaseDate.Time,
		Adult:         m.Adult,
		Popularity:    m.Popularity,
		VoteAverage:   m.VoteAverage,
		VoteCount:     m.VoteCount,
		GenreIDs:      m.GenreIDs,
	}
}

// FromTVShow converts a TV search result.
func FromTVShow(s tvshow.Short) Item {
	return Item{
		MediaType:     tmdb.MediaTypeTV,
		Title:         s.Name,
		OriginalTitle: s.OriginalName,
		Overview:      s.Overview,
		Language:      s.OriginalLanguage,
		ReleaseDate:   s.FirstAirDate.Time,
		Adult:         s.Adult,
		Popularity:    s.Popularity,
		VoteAverage:   s.VoteAverage,
		VoteCount:     s.VoteCount,
		GenreIDs:      s.GenreIDs,
	}
}

// FromPerson converts a person search result. People carry no votes or
// release dates, so only the name and media type are populated.
func FromPerson(p person.Short) Item {
	return Item{
		MediaType: tmdb.MediaTypePerson,
		Title:     p.Name,
	}
}

// FromResult converts one entry of a multi search response.
func FromResult(r search.Result) Item {
	switch r.MediaType {
	case tmdb.MediaTypeMovie:
		return FromMovie(*r.Movie)
	case tmdb.MediaTypeTV:
		return FromTVShow(*r.TVShow)
	case tmdb.MediaTypePerson:
		return FromPerson(*r.Person)
	}
	return Item{MediaType: r.MediaType}
}

// FromMovies converts a page of movie results.
func FromMovies(movies []movie.Short) []Item {
	items := make([]Item, len(movies))
	for i, m := range movies {
		items[i] = FromMovie(m)
	}
	return items
}

// FromTVShows converts a page of TV results.
func FromTVShows(shows []tvshow.Short) []Item {
	items := make([]Item, len(shows))
	for i, s := range shows {
		items[i] = FromTVShow(s)
	}
	return items
}

// FromResults converts a page of multi search results.
func FromResults(results []search.Result) []Item {
	items := make([]Item, len(results))
	for i, r := range results {
		items[i] = FromResult(r)
	}
	return items
}
