package movie

import (
	"context"

	"github.com/s0up4200/tmdb"
)

// DateRange bounds the release dates covered by a dated listing.
type DateRange struct {
	Minimum tmdb.Date `json:"minimum"`
	Maximum tmdb.Date `json:"maximum"`
}

// DatedResults is a page of movies together with the date window the
// listing covers.
type DatedResults struct {
	tmdb.PaginatedResult[Short]
	Dates DateRange `json:"dates"`
}

// NowPlayingCommand pages through the movies currently in theatres.
type NowPlayingCommand struct {
	Language string
	Page     int
	Region   string
}

// NewNowPlaying builds a command listing movies in theatres.
func NewNowPlaying() NowPlayingCommand {
	return NowPlayingCommand{}
}

// WithLanguage returns a copy requesting translated fields.
func (c NowPlayingCommand) WithLanguage(language string) NowPlayingCommand {
	c.Language = language
	return c
}

// WithPage returns a copy requesting the given result page.
func (c NowPlayingCommand) WithPage(page int) NowPlayingCommand {
	c.Page = page
	return c
}

// WithRegion returns a copy restricted to one release region.
func (c NowPlayingCommand) WithRegion(region string) NowPlayingCommand {
	c.Region = region
	return c
}

func (NowPlayingCommand) Path() string {
	return "/movie/now_playing"
}

func (c NowPlayingCommand) Params() tmdb.Params {
	return browseParams(c.Language, c.Page, c.Region)
}

func (c NowPlayingCommand) Execute(ctx context.Context, client *tmdb.Client) (*DatedResults, error) {
	res, err := tmdb.Execute[DatedResults](ctx, client, c)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// PopularCommand pages through movies ordered by popularity.
type PopularCommand struct {
	Language string
	Page     int
	Region   string
}

// NewPopular builds a command listing popular movies.
func NewPopular() PopularCommand {
	return PopularCommand{}
}

// WithLanguage returns a copy requesting translated fields.
func (c PopularCommand) WithLanguage(language string) PopularCommand {
	c.Language = language
	return c
}

// WithPage returns a copy requesting the given result page.
func (c PopularCommand) WithPage(page int) PopularCommand {
	c.Page = page
	return c
}

// WithRegion returns a copy restricted to one release region.
func (c PopularCommand) WithRegion(region string) PopularCommand {
	c.Region = region
	return c
}

func (PopularCommand) Path() string {
	return "/movie/popular"
}

func (c PopularCommand) Params() tmdb.Params {
	return browseParams(c.Language, c.Page, c.Region)
}

func (c PopularCommand) Execute(ctx context.Context, client *tmdb.Client) (tmdb.PaginatedResult[Short], error) {
	return tmdb.Execute[tmdb.PaginatedResult[Short]](ctx, client, c)
}

// TopRatedCommand pages through movies ordered by rating.
type TopRatedCommand struct {
	Language string
	Page     int
	Region   string
}

// NewTopRated builds a command listing top rated movies.
func NewTopRated() TopRatedCommand {
	return TopRatedCommand{}
}

// WithLanguage returns a copy requesting translated fields.
func (c TopRatedCommand) WithLanguage(language string) TopRatedCommand {
	c.Language = language
	return c
}

// WithPage returns a copy requesting the given result page.
func (c TopRatedCommand) WithPage(page int) TopRatedCommand {
	c.Page = page
	return c
}

// WithRegion returns a copy restricted to one release region.
func (c TopRatedCommand) WithRegion(region string) TopRatedCommand {
	c.Region = region
	return c
}

func (TopRatedCommand) Path() string {
	return "/movie/top_rated"
}

func (c TopRatedCommand) Params() tmdb.Params {
	return browseParams(c.Language, c.Page, c.Region)
}

func (c TopRatedCommand) Execute(ctx context.Context, client *tmdb.Client) (tmdb.PaginatedResult[Short], error) {
	return tmdb.Execute[tmdb.PaginatedResult[Short]](ctx, client, c)
}

// UpcomingCommand pages through movies about to release.
type UpcomingCommand struct {
	Language string
	Page     int
	Region   string
}

// NewUpcoming builds a command listing upcoming movies.
func NewUpcoming() UpcomingCommand {
	return UpcomingCommand{}
}

// WithLanguage returns a copy requesting translated fields.
func (c UpcomingCommand) WithLanguage(language string) UpcomingCommand {
	c.Language = language
	return c
}

// WithPage returns a copy requesting the given result page.
func (c UpcomingCommand) WithPage(page int) UpcomingCommand {
	c.Page = page
	return c
}

// WithRegion returns a copy restricted to one release region.
func (c UpcomingCommand) WithRegion(region string) UpcomingCommand {
	c.Region = region
	return c
}

func (UpcomingCommand) Path() string {
	return "/movie/upcoming"
}

func (c UpcomingCommand) Params() tmdb.Params {
	return browseParams(c.Language, c.Page, c.Region)
}

func (c UpcomingCommand) Execute(ctx context.Context, client *tmdb.Client) (tmdb.PaginatedResult[Short], error) {
	return tmdb.Execute[tmdb.PaginatedResult[Short]](ctx, client, c)
}

// browseParams builds the shared language/page/region triple in the
// order the endpoints document it.
func browseParams(language string, page int, region string) tmdb.Params {
	var params tmdb.Params
	if language != "" {
		params = params.With("language", language)
	}
	if page != 0 {
		params = params.WithInt("page", page)
	}
	if region != "" {
		params = params.With("region", region)
	}
	return params
}
