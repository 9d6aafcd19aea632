package movie

import (
	"github.com/s0up4200/tmdb"
)

// Short is the compact movie shape used by search results, listings
// and recommendations.
type Short struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	OriginalTitle    string    `json:"original_title"`
	OriginalLanguage string    `json:"original_language"`
	Overview         string    `json:"overview"`
	ReleaseDate      tmdb.Date `json:"release_date"`
	PosterPath       string    `json:"poster_path"`
	BackdropPath     string    `json:"backdrop_path"`
	GenreIDs         []int64   `json:"genre_ids"`
	Adult            bool      `json:"adult"`
	Popularity       float64   `json:"popularity"`
	VoteCount        int       `json:"vote_count"`
	VoteAverage      float64   `json:"vote_average"`
	Video            bool      `json:"video"`
}

// Movie is the full movie record returned by the details endpoint.
// Runtime is zero when the provider has no runtime on file.
type Movie struct {
	ID                  int64            `json:"id"`
	Title               string           `json:"title"`
	OriginalTitle       string           `json:"original_title"`
	OriginalLanguage    string           `json:"original_language"`
	Overview            string           `json:"overview"`
	ReleaseDate         tmdb.Date        `json:"release_date"`
	PosterPath          string           `json:"poster_path"`
	BackdropPath        string           `json:"backdrop_path"`
	Adult               bool             `json:"adult"`
	Popularity          float64          `json:"popularity"`
	VoteCount           int              `json:"vote_count"`
	VoteAverage         float64          `json:"vote_average"`
	Video               bool             `json:"video"`
	Budget              int64            `json:"budget"`
	Genres              []tmdb.Genre     `json:"genres"`
	Homepage            string           `json:"homepage"`
	IMDbID              string           `json:"imdb_id"`
	ProductionCompanies []tmdb.CompanyRef `json:"production_companies"`
	ProductionCountries []tmdb.Country   `json:"production_countries"`
	Revenue             int64            `json:"revenue"`
	Runtime             int              `json:"runtime"`
	SpokenLanguages     []tmdb.Language  `json:"spoken_languages"`
	Status              tmdb.Status      `json:"status"`
	Tagline             string           `json:"tagline"`
}
