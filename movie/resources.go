package movie

import (
	"context"
	"strconv"
	"time"

	"github.com/s0up4200/tmdb"
)

// AlternativeTitle is one title a movie is released under elsewhere.
type AlternativeTitle struct {
	CountryCode string `json:"iso_3166_1"`
	Title       string `json:"title"`
	Type        string `json:"type"`
}

// ChangeGroup collects the edits made to one field of a movie record.
type ChangeGroup struct {
	Key   string       `json:"key"`
	Items []ChangeItem `json:"items"`
}

// ChangeItem is a single recorded edit.
type ChangeItem struct {
	ID           string    `json:"id"`
	Action       string    `json:"action"`
	Time         time.Time `json:"time"`
	LanguageCode string    `json:"iso_639_1"`
	CountryCode  string    `json:"iso_3166_1"`
}

// Credits holds a movie's cast and crew.
type Credits struct {
	ID   int64       `json:"id"`
	Cast []tmdb.Cast `json:"cast"`
	Crew []tmdb.Crew `json:"crew"`
}

// ExternalIDs links a movie to its ids on other databases and social
// networks.
type ExternalIDs struct {
	ID          int64  `json:"id"`
	IMDbID      string `json:"imdb_id"`
	FacebookID  string `json:"facebook_id"`
	InstagramID string `json:"instagram_id"`
	TwitterID   string `json:"twitter_id"`
	WikidataID  string `json:"wikidata_id"`
}

// Images holds a movie's artwork.
type Images struct {
	ID        int64        `json:"id"`
	Backdrops []tmdb.Image `json:"backdrops"`
	Posters   []tmdb.Image `json:"posters"`
}

// LocatedReleaseDates groups a movie's release dates for one country.
type LocatedReleaseDates struct {
	CountryCode  string             `json:"iso_3166_1"`
	ReleaseDates []tmdb.ReleaseDate `json:"release_dates"`
}

// Translation is a movie record translated into one language.
type Translation struct {
	CountryCode  string          `json:"iso_3166_1"`
	LanguageCode string          `json:"iso_639_1"`
	Name         string          `json:"name"`
	EnglishName  string          `json:"english_name"`
	Data         TranslationData `json:"data"`
}

// TranslationData carries the translated fields themselves.
type TranslationData struct {
	Title    string `json:"title"`
	Overview string `json:"overview"`
	Homepage string `json:"homepage"`
}

type alternativeTitlesEnvelope struct {
	ID     int64              `json:"id"`
	Titles []AlternativeTitle `json:"titles"`
}

type changesEnvelope struct {
	Changes []ChangeGroup `json:"changes"`
}

type keywordsEnvelope struct {
	ID       int64          `json:"id"`
	Keywords []tmdb.Keyword `json:"keywords"`
}

type translationsEnvelope struct {
	ID           int64         `json:"id"`
	Translations []Translation `json:"translations"`
}

// AlternativeTitlesCommand fetches the titles a movie goes by in other
// countries.
type AlternativeTitlesCommand struct {
	MovieID int64
	Country string
}

// NewAlternativeTitles builds a command listing a movie's alternative titles.
func NewAlternativeTitles(movieID int64) AlternativeTitlesCommand {
	return AlternativeTitlesCommand{MovieID: movieID}
}

// WithCountry returns a copy restricted to one country's titles.
func (c AlternativeTitlesCommand) WithCountry(country string) AlternativeTitlesCommand {
	c.Country = country
	return c
}

func (c AlternativeTitlesCommand) Path() string {
	return "/movie/" + strconv.FormatInt(c.MovieID, 10) + "/alternative_titles"
}

func (c AlternativeTitlesCommand) Params() tmdb.Params {
	var params tmdb.Params
	if c.Country != "" {
		params = params.With("country", c.Country)
	}
	return params
}

func (c AlternativeTitlesCommand) Execute(ctx context.Context, client *tmdb.Client) ([]AlternativeTitle, error) {
	res, err := tmdb.Execute[alternativeTitlesEnvelope](ctx, client, c)
	if err != nil {
		return nil, err
	}
	return res.Titles, nil
}

// ChangesCommand fetches the recorded edits of one movie.
type ChangesCommand struct {
	MovieID   int64
	StartDate tmdb.Date
	EndDate   tmdb.Date
	Page      int
}

// NewChanges builds a command listing a movie's recorded edits.
func NewChanges(movieID int64) ChangesCommand {
	return ChangesCommand{MovieID: movieID}
}

// WithStartDate returns a copy with the window start set.
func (c ChangesCommand) WithStartDate(d tmdb.Date) ChangesCommand {
	c.StartDate = d
	return c
}

// WithEndDate returns a copy with the window end set.
func (c ChangesCommand) WithEndDate(d tmdb.Date) ChangesCommand {
	c.EndDate = d
	return c
}

// WithPage returns a copy requesting the given result page.
func (c ChangesCommand) WithPage(page int) ChangesCommand {
	c.Page = page
	return c
}

func (c ChangesCommand) Path() string {
	return "/movie/" + strconv.FormatInt(c.MovieID, 10) + "/changes"
}

func (c ChangesCommand) Params() tmdb.Params {
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

func (c ChangesCommand) Execute(ctx context.Context, client *tmdb.Client) ([]ChangeGroup, error) {
	res, err := tmdb.Execute[changesEnvelope](ctx, client, c)
	if err != nil {
		return nil, err
	}
	return res.Changes, nil
}

// CreditsCommand fetches a movie's cast and crew.
type CreditsCommand struct {
	MovieID  int64
	Language string
}

// NewCredits builds a command fetching a movie's credits.
func NewCredits(movieID int64) CreditsCommand {
	return CreditsCommand{MovieID: movieID}
}

// WithLanguage returns a copy requesting translated fields.
func (c CreditsCommand) WithLanguage(language string) CreditsCommand {
	c.Language = language
	return c
}

func (c CreditsCommand) Path() string {
	return "/movie/" + strconv.FormatInt(c.MovieID, 10) + "/credits"
}

func (c CreditsCommand) Params() tmdb.Params {
	var params tmdb.Params
	if c.Language != "" {
		params = params.With("language", c.Language)
	}
	return params
}

func (c CreditsCommand) Execute(ctx context.Context, client *tmdb.Client) (*Credits, error) {
	res, err := tmdb.Execute[Credits](ctx, client, c)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// ExternalIDsCommand fetches a movie's ids on other services.
type ExternalIDsCommand struct {
	MovieID int64
}

// NewExternalIDs builds a command fetching a movie's external ids.
func NewExternalIDs(movieID int64) ExternalIDsCommand {
	return ExternalIDsCommand{MovieID: movieID}
}

func (c ExternalIDsCommand) Path() string {
	return "/movie/" + strconv.FormatInt(c.MovieID, 10) + "/external_ids"
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

// ImagesCommand fetches a movie's posters and backdrops.
type ImagesCommand struct {
	MovieID  int64
	Language string
}

// NewImages builds a command fetching a movie's artwork.
func NewImages(movieID int64) ImagesCommand {
	return ImagesCommand{MovieID: movieID}
}

// WithLanguage returns a copy restricted to artwork in one language.
func (c ImagesCommand) WithLanguage(language string) ImagesCommand {
	c.Language = language
	return c
}

func (c ImagesCommand) Path() string {
	return "/movie/" + strconv.FormatInt(c.MovieID, 10) + "/images"
}

func (c ImagesCommand) Params() tmdb.Params {
	var params tmdb.Params
	if c.Language != "" {
		params = params.With("language", c.Language)
	}
	return params
}

func (c ImagesCommand) Execute(ctx context.Context, client *tmdb.Client) (*Images, error) {
	res, err := tmdb.Execute[Images](ctx, client, c)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// KeywordsCommand fetches the keywords tagged on a movie.
type KeywordsCommand struct {
	MovieID int64
}

// NewKeywords builds a command listing a movie's keywords.
func NewKeywords(movieID int64) KeywordsCommand {
	return KeywordsCommand{MovieID: movieID}
}

func (c KeywordsCommand) Path() string {
	return "/movie/" + strconv.FormatInt(c.MovieID, 10) + "/keywords"
}

func (KeywordsCommand) Params() tmdb.Params {
	return nil
}

func (c KeywordsCommand) Execute(ctx context.Context, client *tmdb.Client) ([]tmdb.Keyword, error) {
	res, err := tmdb.Execute[keywordsEnvelope](ctx, client, c)
	if err != nil {
		return nil, err
	}
	return res.Keywords, nil
}

// ReleaseDatesCommand fetches a movie's release dates and
// certifications per country.
type ReleaseDatesCommand struct {
	MovieID int64
}

// NewReleaseDates builds a command listing a movie's release dates.
func NewReleaseDates(movieID int64) ReleaseDatesCommand {
	return ReleaseDatesCommand{MovieID: movieID}
}

func (c ReleaseDatesCommand) Path() string {
	return "/movie/" + strconv.FormatInt(c.MovieID, 10) + "/release_dates"
}

func (ReleaseDatesCommand) Params() tmdb.Params {
	return nil
}

func (c ReleaseDatesCommand) Execute(ctx context.Context, client *tmdb.Client) ([]LocatedReleaseDates, error) {
	res, err := tmdb.Execute[tmdb.EntityResults[[]LocatedReleaseDates]](ctx, client, c)
	if err != nil {
		return nil, err
	}
	return res.Results, nil
}

// TranslationsCommand fetches the translations of a movie record.
type TranslationsCommand struct {
	MovieID int64
}

// NewTranslations builds a command listing a movie's translations.
func NewTranslations(movieID int64) TranslationsCommand {
	return TranslationsCommand{MovieID: movieID}
}

func (c TranslationsCommand) Path() string {
	return "/movie/" + strconv.FormatInt(c.MovieID, 10) + "/translations"
}

func (TranslationsCommand) Params() tmdb.Params {
	return nil
}

func (c TranslationsCommand) Execute(ctx context.Context, client *tmdb.Client) ([]Translation, error) {
	res, err := tmdb.Execute[translationsEnvelope](ctx, client, c)
	if err != nil {
		return nil, err
	}
	return res.Translations, nil
}

// VideosCommand fetches the trailers and clips linked to a movie.
type VideosCommand struct {
	MovieID  int64
	Language string
}

// NewVideos builds a command listing a movie's videos.
func NewVideos(movieID int64) VideosCommand {
	return VideosCommand{MovieID: movieID}
}

// WithLanguage returns a copy restricted to videos in one language.
func (c VideosCommand) WithLanguage(language string) VideosCommand {
	c.Language = language
	return c
}

func (c VideosCommand) Path() string {
	return "/movie/" + strconv.FormatInt(c.MovieID, 10) + "/videos"
}

func (c VideosCommand) Params() tmdb.Params {
	var params tmdb.Params
	if c.Language != "" {
		params = params.With("language", c.Language)
	}
	return params
}

func (c VideosCommand) Execute(ctx context.Context, client *tmdb.Client) ([]tmdb.Video, error) {
	res, err := tmdb.Execute[tmdb.EntityResults[[]tmdb.Video]](ctx, client, c)
	if err != nil {
		return nil, err
	}
	return res.Results, nil
}

// WatchProvidersCommand fetches where a movie can be watched, keyed by
// country code.
type WatchProvidersCommand struct {
	MovieID int64
}

// NewWatchProviders builds a command listing a movie's watch providers.
func NewWatchProviders(movieID int64) WatchProvidersCommand {
	return WatchProvidersCommand{MovieID: movieID}
}

func (c WatchProvidersCommand) Path() string {
	return "/movie/" + strconv.FormatInt(c.MovieID, 10) + "/watch/providers"
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
