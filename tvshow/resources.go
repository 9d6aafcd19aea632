package tvshow

import (
	"context"
	"strconv"

	"github.com/s0up4200/tmdb"
)

// AggregateCreditsCommand fetches a show's credits merged across all
// episodes.
type AggregateCreditsCommand struct {
	TVShowID int64
	Language string
}

// NewAggregateCredits builds a command fetching a show's aggregate credits.
func NewAggregateCredits(tvShowID int64) AggregateCreditsCommand {
	return AggregateCreditsCommand{TVShowID: tvShowID}
}

// WithLanguage returns a copy requesting translated fields.
func (c AggregateCreditsCommand) WithLanguage(language string) AggregateCreditsCommand {
	c.Language = language
	return c
}

func (c AggregateCreditsCommand) Path() string {
	return "/tv/" + strconv.FormatInt(c.TVShowID, 10) + "/aggregate_credits"
}

func (c AggregateCreditsCommand) Params() tmdb.Params {
	return languageParams(c.Language)
}

func (c AggregateCreditsCommand) Execute(ctx context.Context, client *tmdb.Client) (*AggregateCredits, error) {
	res, err := tmdb.Execute[AggregateCredits](ctx, client, c)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// ContentRatingsCommand fetches a show's certifications per country.
type ContentRatingsCommand struct {
	TVShowID int64
}

// NewContentRatings builds a command listing a show's content ratings.
func NewContentRatings(tvShowID int64) ContentRatingsCommand {
	return ContentRatingsCommand{TVShowID: tvShowID}
}

func (c ContentRatingsCommand) Path() string {
	return "/tv/" + strconv.FormatInt(c.TVShowID, 10) + "/content_ratings"
}

func (ContentRatingsCommand) Params() tmdb.Params {
	return nil
}

func (c ContentRatingsCommand) Execute(ctx context.Context, client *tmdb.Client) ([]ContentRating, error) {
	res, err := tmdb.Execute[tmdb.EntityResults[[]ContentRating]](ctx, client, c)
	if err != nil {
		return nil, err
	}
	return res.Results, nil
}

// ExternalIDsCommand fetches a show's ids on other services.
type ExternalIDsCommand struct {
	TVShowID int64
}

// NewExternalIDs builds a command fetching a show's external ids.
func NewExternalIDs(tvShowID int64) ExternalIDsCommand {
	return ExternalIDsCommand{TVShowID: tvShowID}
}

func (c ExternalIDsCommand) Path() string {
	return "/tv/" + strconv.FormatInt(c.TVShowID, 10) + "/external_ids"
}

func (ExternalIDsCommand) Params() tmdb.Params {
	return nil
}

func (c ExternalIDsCommand) Execute(ctx context.Context, client *tmdb.Client) (*ExternalIDs, error) {
	res, err := tmdb.Execute[ExternalIDs](ctx, client, c)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// ImagesCommand fetches a show's artwork.
type ImagesCommand struct {
	TVShowID int64
	Language string
}

// NewImages builds a command fetching a show's artwork.
func NewImages(tvShowID int64) ImagesCommand {
	return ImagesCommand{TVShowID: tvShowID}
}

// WithLanguage returns a copy restricted to artwork in one language.
func (c ImagesCommand) WithLanguage(language string) ImagesCommand {
	c.Language = language
	return c
}

func (c ImagesCommand) Path() string {
	return "/tv/" + strconv.FormatInt(c.TVShowID, 10) + "/images"
}

func (c ImagesCommand) Params() tmdb.Params {
	return languageParams(c.Language)
}

func (c ImagesCommand) Execute(ctx context.Context, client *tmdb.Client) (*Images, error) {
	res, err := tmdb.Execute[Images](ctx, client, c)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// KeywordsCommand fetches the keywords tagged on a show.
type KeywordsCommand struct {
	TVShowID int64
}

// NewKeywords builds a command listing a show's keywords.
func NewKeywords(tvShowID int64) KeywordsCommand {
	return KeywordsCommand{TVShowID: tvShowID}
}

func (c KeywordsCommand) Path() string {
	return "/tv/" + strconv.FormatInt(c.TVShowID, 10) + "/keywords"
}

func (KeywordsCommand) Params() tmdb.Params {
	return nil
}

func (c KeywordsCommand) Execute(ctx context.Context, client *tmdb.Client) ([]tmdb.Keyword, error) {
	res, err := tmdb.Execute[tmdb.EntityResults[[]tmdb.Keyword]](ctx, client, c)
	if err != nil {
		return nil, err
	}
	return res.Results, nil
}

// SimilarCommand pages through shows similar to one.
type SimilarCommand struct {
	TVShowID int64
	Language string
	Page     int
}

// NewSimilar builds a command listing shows similar to one.
func NewSimilar(tvShowID int64) SimilarCommand {
	return SimilarCommand{TVShowID: tvShowID}
}

// WithLanguage returns a copy requesting translated fields.
func (c SimilarCommand) WithLanguage(language string) SimilarCommand {
	c.Language = language
	return c
}

// WithPage returns a copy requesting the given result page.
func (c SimilarCommand) WithPage(page int) SimilarCommand {
	c.Page = page
	return c
}

func (c SimilarCommand) Path() string {
	return "/tv/" + strconv.FormatInt(c.TVShowID, 10) + "/similar"
}

func (c SimilarCommand) Params() tmdb.Params {
	params := languageParams(c.Language)
	if c.Page != 0 {
		params = params.WithInt("page", c.Page)
	}
	return params
}

func (c SimilarCommand) Execute(ctx context.Context, client *tmdb.Client) (tmdb.PaginatedResult[Short], error) {
	return tmdb.Execute[tmdb.PaginatedResult[Short]](ctx, client, c)
}

// WatchProvidersCommand fetches where a show can be watched, keyed by
// country code.
type WatchProvidersCommand struct {
	TVShowID int64
}

// NewWatchProviders builds a command listing a show's watch providers.
func NewWatchProviders(tvShowID int64) WatchProvidersCommand {
	return WatchProvidersCommand{TVShowID: tvShowID}
}

func (c WatchProvidersCommand) Path() string {
	return "/tv/" + strconv.FormatInt(c.TVShowID, 10) + "/watch/providers"
}

func (WatchProvidersCommand) Params() tmdb.Params {
	return nil
}

func (c WatchProvidersCommand) Execute(ctx context.Context, client *tmdb.Client) (map[string]tmdb.WatchProviderGroup, error) {
	res, err := tmdb.Execute[tmdb.EntityResults[map[string]tmdb.WatchProviderGroup]](ctx, client, c)
	if err != nil {
		return nil, err
	}
	return res.Results, nil
}
