package tvshow

import (
	"context"
	"strconv"

	"github.com/s0up4200/tmdb"
)

// DetailsCommand fetches one show by id.
type DetailsCommand struct {
	TVShowID int64
	Language string
}

// NewDetails builds a command fetching a show's details.
func NewDetails(tvShowID int64) DetailsCommand {
	return DetailsCommand{TVShowID: tvShowID}
}

// WithLanguage returns a copy requesting translated fields.
func (c DetailsCommand) WithLanguage(language string) DetailsCommand {
	c.Language = language
	return c
}

func (c DetailsCommand) Path() string {
	return "/tv/" + strconv.FormatInt(c.TVShowID, 10)
}

func (c DetailsCommand) Params() tmdb.Params {
	return languageParams(c.Language)
}

func (c DetailsCommand) Execute(ctx context.Context, client *tmdb.Client) (*TVShow, error) {
	res, err := tmdb.Execute[TVShow](ctx, client, c)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// LatestCommand fetches the most recently created show record.
type LatestCommand struct{}

// NewLatest builds a command fetching the newest show record.
func NewLatest() LatestCommand {
	return LatestCommand{}
}

func (LatestCommand) Path() string {
	return "/tv/latest"
}

func (LatestCommand) Params() tmdb.Params {
	return nil
}

func (c LatestCommand) Execute(ctx context.Context, client *tmdb.Client) (*TVShow, error) {
	res, err := tmdb.Execute[TVShow](ctx, client, c)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// SeasonDetailsCommand fetches one season of a show with all its
// episodes.
type SeasonDetailsCommand struct {
	TVShowID     int64
	SeasonNumber int
	Language     string
}

// NewSeasonDetails builds a command fetching one season.
func NewSeasonDetails(tvShowID int64, seasonNumber int) SeasonDetailsCommand {
	return SeasonDetailsCommand{TVShowID: tvShowID, SeasonNumber: seasonNumber}
}

// WithLanguage returns a copy requesting translated fields.
func (c SeasonDetailsCommand) WithLanguage(language string) SeasonDetailsCommand {
	c.Language = language
	return c
}

func (c SeasonDetailsCommand) Path() string {
	return "/tv/" + strconv.FormatInt(c.TVShowID, 10) +
		"/season/" + strconv.Itoa(c.SeasonNumber)
}

func (c SeasonDetailsCommand) Params() tmdb.Params {
	return languageParams(c.Language)
}

func (c SeasonDetailsCommand) Execute(ctx context.Context, client *tmdb.Client) (*Season, error) {
	res, err := tmdb.Execute[Season](ctx, client, c)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// EpisodeDetailsCommand fetches one episode of a show.
type EpisodeDetailsCommand struct {
	TVShowID      int64
	SeasonNumber  int
	EpisodeNumber int
	Language      string
}

// NewEpisodeDetails builds a command fetching one episode.
func NewEpisodeDetails(tvShowID int64, seasonNumber, episodeNumber int) EpisodeDetailsCommand {
	return EpisodeDetailsCommand{
		TVShowID:      tvShowID,
		SeasonNumber:  seasonNumber,
		EpisodeNumber: episodeNumber,
	}
}

// WithLanguage returns a copy requesting translated fields.
func (c EpisodeDetailsCommand) WithLanguage(language string) EpisodeDetailsCommand {
	c.Language = language
	return c
}

func (c EpisodeDetailsCommand) Path() string {
	return "/tv/" + strconv.FormatInt(c.TVShowID, 10) +
		"/season/" + strconv.Itoa(c.SeasonNumber) +
		"/episode/" + strconv.Itoa(c.EpisodeNumber)
}

func (c EpisodeDetailsCommand) Params() tmdb.Params {
	return languageParams(c.Language)
}

func (c EpisodeDetailsCommand) Execute(ctx context.Context, client *tmdb.Client) (*Episode, error) {
	res, err := tmdb.Execute[Episode](ctx, client, c)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func languageParams(language string) tmdb.Params {
	var params tmdb.Params
	if language != "" {
		params = params.With("language", language)
	}
	return params
}
