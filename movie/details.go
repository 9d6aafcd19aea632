package movie

import (
	"context"
	"strconv"

	"github.com/s0up4200/tmdb"
)

// DetailsCommand fetches one movie by id.
type DetailsCommand struct {
	MovieID  int64
	Language string
}

// NewDetails builds a command fetching a movie's details.
func NewDetails(movieID int64) DetailsCommand {
	return DetailsCommand{MovieID: movieID}
}

// WithLanguage returns a copy requesting translated fields.
func (c DetailsCommand) WithLanguage(language string) DetailsCommand {
	c.Language = language
	return c
}

func (c DetailsCommand) Path() string {
	return "/movie/" + strconv.FormatInt(c.MovieID, 10)
}

func (c DetailsCommand) Params() tmdb.Params {
	var params tmdb.Params
	if c.Language != "" {
		params = params.With("language", c.Language)
	}
	return params
}

func (c DetailsCommand) Execute(ctx context.Context, client *tmdb.Client) (*Movie, error) {
	res, err := tmdb.Execute[Movie](ctx, client, c)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// LatestCommand fetches the most recently created movie record.
type LatestCommand struct{}

// NewLatest builds a command fetching the newest movie record.
func NewLatest() LatestCommand {
	return LatestCommand{}
}

func (LatestCommand) Path() string {
	return "/movie/latest"
}

func (LatestCommand) Params() tmdb.Params {
	return nil
}

func (c LatestCommand) Execute(ctx context.Context, client *tmdb.Client) (*Movie, error) {
	res, err := tmdb.Execute[Movie](ctx, client, c)
	if err != nil {
		return nil, err
	}
	return &res, nil
}
