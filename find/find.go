// Package find resolves external ids, such as an IMDb id, to the
// provider's own records.
package find

import (
	"context"

	"github.com/s0up4200/tmdb"
	"github.com/s0up4200/tmdb/movie"
	"github.com/s0up4200/tmdb/person"
	"github.com/s0up4200/tmdb/tvshow"
)

// Source names the external database an id comes from.
type Source string

// Supported external id sources.
const (
	SourceIMDb      Source = "imdb_id"
	SourceFacebook  Source = "facebook_id"
	SourceInstagram Source = "instagram_id"
	SourceTVDB      Source = "tvdb_id"
	SourceTikTok    Source = "tiktok_id"
	SourceTwitter   Source = "twitter_id"
	SourceWikidata  Source = "wikidata_id"
	SourceYouTube   Source = "youtube_id"
)

// Results groups the matches per record kind. An external id usually
// resolves to exactly one non-empty list.
type Results struct {
	MovieResults     []movie.Short       `json:"movie_results"`
	PersonResults    []person.Short      `json:"person_results"`
	TVResults        []tvshow.Short      `json:"tv_results"`
	TVSeasonResults  []tvshow.SeasonRef  `json:"tv_season_results"`
	TVEpisodeResults []tvshow.EpisodeRef `json:"tv_episode_results"`
}

// ByExternalIDCommand resolves one external id.
type ByExternalIDCommand struct {
	ExternalID string
	Source     Source
	Language   string
}

// NewByExternalID builds a command resolving the given id from the
// given source.
func NewByExternalID(externalID string, source Source) ByExternalIDCommand {
	return ByExternalIDCommand{ExternalID: externalID, Source: source}
}

// WithLanguage returns a copy requesting translated fields.
func (c ByExternalIDCommand) WithLanguage(language string) ByExternalIDCommand {
	c.Language = language
	return c
}

func (c ByExternalIDCommand) Path() string {
	return "/find/" + c.ExternalID
}

func (c ByExternalIDCommand) Params() tmdb.Params {
	params := tmdb.Params{}.With("external_source", string(c.Source))
	if c.Language != "" {
		params = params.With("language", c.Language)
	}
	return params
}

func (c ByExternalIDCommand) Execute(ctx context.Context, client *tmdb.Client) (*Results, error) {
	res, err := tmdb.Execute[Results](ctx, client, c)
	if err != nil {
		return nil, err
	}
	return &res, nil
}
