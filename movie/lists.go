package movie

import (
	"context"
	"strconv"
	"time"

	"github.com/s0up4200/tmdb"
)

// List is a user-curated list a movie appears on.
type List struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	ListType      string `json:"list_type"`
	PosterPath    string `json:"poster_path"`
	LanguageCode  string `json:"iso_639_1"`
	ItemCount     int    `json:"item_count"`
	FavoriteCount int    `json:"favorite_count"`
}

// Review is one user review.
type Review struct {
	ID            string        `json:"id"`
	Author        string        `json:"author"`
	AuthorDetails AuthorDetails `json:"author_details"`
	Content       string        `json:"content"`
	URL           string        `json:"url"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// AuthorDetails describes a review's author. Rating is nil when the
// author reviewed without rating.
type AuthorDetails struct {
	Name       string   `json:"name"`
	Username   string   `json:"username"`
	AvatarPath string   `json:"avatar_path"`
	Rating     *float64 `json:"rating"`
}

// ListsCommand pages through the lists containing a movie.
type ListsCommand struct {
	MovieID  int64
	Language string
	Page     int
}

// NewLists builds a command listing the lists a movie appears on.
func NewLists(movieID int64) ListsCommand {
	return ListsCommand{MovieID: movieID}
}

// WithLanguage returns a copy requesting translated fields.
func (c ListsCommand) WithLanguage(language string) ListsCommand {
	c.Language = language
	return c
}

// WithPage returns a copy requesting the given result page.
func (c ListsCommand) WithPage(page int) ListsCommand {
	c.Page = page
	return c
}

func (c ListsCommand) Path() string {
	return "/movie/" + strconv.FormatInt(c.MovieID, 10) + "/lists"
}

func (c ListsCommand) Params() tmdb.Params {
	return languagePageParams(c.Language, c.Page)
}

func (c ListsCommand) Execute(ctx context.Context, client *tmdb.Client) (tmdb.PaginatedResult[List], error) {
	return tmdb.Execute[tmdb.PaginatedResult[List]](ctx, client, c)
}

// RecommendationsCommand pages through movies recommended next to one.
type RecommendationsCommand struct {
	MovieID  int64
	Language string
	Page     int
}

// NewRecommendations builds a command listing recommendations for a movie.
func NewRecommendations(movieID int64) RecommendationsCommand {
	return RecommendationsCommand{MovieID: movieID}
}

// WithLanguage returns a copy requesting translated fields.
func (c RecommendationsCommand) WithLanguage(language string) RecommendationsCommand {
	c.Language = language
	return c
}

// WithPage returns a copy requesting the given result page.
func (c RecommendationsCommand) WithPage(page int) RecommendationsCommand {
	c.Page = page
	return c
}

func (c RecommendationsCommand) Path() string {
	return "/movie/" + strconv.FormatInt(c.MovieID, 10) + "/recommendations"
}

func (c RecommendationsCommand) Params() tmdb.Params {
	return languagePageParams(c.Language, c.Page)
}

func (c RecommendationsCommand) Execute(ctx context.Context, client *tmdb.Client) (tmdb.PaginatedResult[Short], error) {
	return tmdb.Execute[tmdb.PaginatedResult[Short]](ctx, client, c)
}

// SimilarCommand pages through movies similar to one, matched on
// genres and keywords.
type SimilarCommand struct {
	MovieID  int64
	Language string
	Page     int
}

// NewSimilar builds a command listing movies similar to one.
func NewSimilar(movieID int64) SimilarCommand {
	return SimilarCommand{MovieID: movieID}
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
	return "/movie/" + strconv.FormatInt(c.MovieID, 10) + "/similar"
}

func (c SimilarCommand) Params() tmdb.Params {
	return languagePageParams(c.Language, c.Page)
}

func (c SimilarCommand) Execute(ctx context.Context, client *tmdb.Client) (tmdb.PaginatedResult[Short], error) {
	return tmdb.Execute[tmdb.PaginatedResult[Short]](ctx, client, c)
}

// ReviewsCommand pages through a movie's user reviews.
type ReviewsCommand struct {
	MovieID  int64
	Language string
	Page     int
}

// NewReviews builds a command listing a movie's reviews.
func NewReviews(movieID int64) ReviewsCommand {
	return ReviewsCommand{MovieID: movieID}
}

// WithLanguage returns a copy requesting translated fields.
func (c ReviewsCommand) WithLanguage(language string) ReviewsCommand {
	c.Language = language
	return c
}

// WithPage returns a copy requesting the given result page.
func (c ReviewsCommand) WithPage(page int) ReviewsCommand {
	c.Page = page
	return c
}

func (c ReviewsCommand) Path() string {
	return "/movie/" + strconv.FormatInt(c.MovieID, 10) + "/reviews"
}

func (c ReviewsCommand) Params() tmdb.Params {
	return languagePageParams(c.Language, c.Page)
}

func (c ReviewsCommand) Execute(ctx context.Context, client *tmdb.Client) (tmdb.PaginatedResult[Review], error) {
	return tmdb.Execute[tmdb.PaginatedResult[Review]](ctx, client, c)
}

func languagePageParams(language string, page int) tmdb.Params {
	var params tmdb.Params
	if language != "" {
		params = params.With("language", language)
	}
	if page != 0 {
		params = params.WithInt("page", page)
	}
	return params
}
