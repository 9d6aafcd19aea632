// Package changes pages through the ids of recently edited movies, TV
// shows and people.
package changes

import (
	"context"

	"github.com/s0up4200/tmdb"
)

// Change is one changed entry. The provider occasionally emits null
// for both fields, so they stay pointers.
type Change struct {
	ID    *int64 `json:"id"`
	Adult *bool  `json:"adult"`
}

// ListCommand pages through the change list of one entity kind. The
// window between StartDate and EndDate may span at most 14 days;
// without a window the provider reports the last 24 hours.
type ListCommand struct {
	path      string
	StartDate tmdb.Date
	EndDate   tmdb.Date
	Page      int
}

// NewMovies builds a command listing changed movies.
func NewMovies() ListCommand {
	return ListCommand{path: "/movie/changes"}
}

// NewTVShows builds a command listing changed TV shows.
func NewTVShows() ListCommand {
	return ListCommand{path: "/tv/changes"}
}

// NewPeople builds a command listing changed people.
func NewPeople() ListCommand {
	return ListCommand{path: "/person/changes"}
}

// WithStartDate returns a copy with the window start set.
func (c ListCommand) WithStartDate(d tmdb.Date) ListCommand {
	c.StartDate = d
	return c
}

// WithEndDate returns a copy with the window end set.
func (c ListCommand) WithEndDate(d tmdb.Date) ListCommand {
	c.EndDate = d
	return c
}

// WithPage returns a copy requesting the given result page.
func (c ListCommand) WithPage(page int) ListCommand {
	c.Page = page
	return c
}

func (c ListCommand) Path() string {
	return c.path
}

func (c ListCommand) Params() tmdb.Params {
	var params tmdb.Params
	if !c.StartDate.IsZero() {
		params = params.With("start_date", c.StartDate.String())
	}
	if !c.EndDate.IsZero() {
		params = params.With("end_date", c.EndDate.String())
	}
	if c.Page != 0 {
		params = params.WithInt("page", c.Page)
	}
	return params
}

func (c ListCommand) Execute(ctx context.Context, client *tmdb.Client) (tmdb.PaginatedResult[Change], error) {
	return tmdb.Execute[tmdb.PaginatedResult[Change]](ctx, client, c)
}
