// Package watchproviders lists the streaming, rental and purchase
// providers the provider aggregates, per watch region.
package watchproviders

import (
	"context"

	"github.com/s0up4200/tmdb"
)

// Detail is one provider with its display priority per region.
type Detail struct {
	tmdb.WatchProvider
	DisplayPriorities map[string]int `json:"display_priorities"`
}

// ListCommand lists the providers available for one media kind.
type ListCommand struct {
	path        string
	WatchRegion string
	Language    string
}

// NewMovies builds a command listing movie watch providers.
func NewMovies() ListCommand {
	return ListCommand{path: "/watch/providers/movie"}
}

// NewTVShows builds a command listing TV watch providers.
func NewTVShows() ListCommand {
	return ListCommand{path: "/watch/providers/tv"}
}

// WithWatchRegion returns a copy restricted to one region.
func (c ListCommand) WithWatchRegion(region string) ListCommand {
	c.WatchRegion = region
	return c
}

// WithLanguage returns a copy requesting translated provider names.
func (c ListCommand) WithLanguage(language string) ListCommand {
	c.Language = language
	return c
}

func (c ListCommand) Path() string {
	return c.path
}

func (c ListCommand) Params() tmdb.Params {
	var params tmdb.Params
	if c.WatchRegion != "" {
		params = params.With("watch_region", c.WatchRegion)
	}
	if c.Language != "" {
		params = params.With("language", c.Language)
	}
	return params
}

func (c ListCommand) Execute(ctx context.Context, client *tmdb.Client) ([]Detail, error) {
	res, err := tmdb.Execute[tmdb.Results[[]Detail]](ctx, client, c)
	if err != nil {
		return nil, err
	}
	return res.Results, nil
}
