package tvshow

import (
	"github.com/s0up4200/tmdb"
	"github.com/s0up4200/tmdb/person"
)

// Short is the compact show shape used by search results and listings.
type Short struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	OriginalName     string    `json:"original_name"`
	OriginalLanguage string    `json:"original_language"`
	OriginCountry    []string  `json:"origin_country"`
	Overview         string    `json:"overview"`
	FirstAirDate     tmdb.Date `json:"first_air_date"`
	PosterPath       string    `json:"poster_path"`
	BackdropPath     string    `json:"backdrop_path"`
	GenreIDs         []int64   `json:"genre_ids"`
	Popularity       float64   `json:"popularity"`
	VoteCount        int       `json:"vote_count"`
	VoteAverage      float64   `json:"vote_average"`
	Adult            bool      `json:"adult"`
}

// TVShow is the full show record returned by the details endpoint.
//
// NumberOfEpisodes stays a pointer: the provider omits it or sends
// null for shows still in planning, which is distinct from a show
// with zero aired episodes.
type TVShow struct {
	ID                  int64             `json:"id"`
	Name                string            `json:"name"`
	OriginalName        string            `json:"original_name"`
	OriginalLanguage    string            `json:"original_language"`
	OriginCountry       []string          `json:"origin_country"`
	Overview            string            `json:"overview"`
	FirstAirDate        tmdb.Date         `json:"first_air_date"`
	PosterPath          string            `json:"poster_path"`
	BackdropPath        string            `json:"backdrop_path"`
	Popularity          float64           `json:"popularity"`
	VoteCount           int               `json:"vote_count"`
	VoteAverage         float64           `json:"vote_average"`
	Adult               bool              `json:"adult"`
	CreatedBy           []person.Short    `json:"created_by"`
	EpisodeRunTime      []int             `json:"episode_run_time"`
	Genres              []tmdb.Genre      `json:"genres"`
	Homepage            string            `json:"homepage"`
	InProduction        bool              `json:"in_production"`
	Languages           []string          `json:"languages"`
	LastAirDate         tmdb.Date         `json:"last_air_date"`
	LastEpisodeToAir    *EpisodeRef       `json:"last_episode_to_air"`
	NextEpisodeToAir    *EpisodeRef       `json:"next_episode_to_air"`
	Networks            []tmdb.CompanyRef `json:"networks"`
	NumberOfEpisodes    *int              `json:"number_of_episodes"`
	NumberOfSeasons     int               `json:"number_of_seasons"`
	ProductionCompanies []tmdb.CompanyRef `json:"production_companies"`
	ProductionCountries []tmdb.Country    `json:"production_countries"`
	Seasons             []SeasonRef       `json:"seasons"`
	SpokenLanguages     []tmdb.Language   `json:"spoken_languages"`
	Status              string            `json:"status"`
	Tagline             string            `json:"tagline"`
	Type                string            `json:"type"`
}

// EpisodeRef is the compact episode shape embedded in show details.
type EpisodeRef struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Overview       string    `json:"overview"`
	AirDate        tmdb.Date `json:"air_date"`
	EpisodeNumber  int       `json:"episode_number"`
	SeasonNumber   int       `json:"season_number"`
	ProductionCode string    `json:"production_code"`
	StillPath      string    `json:"still_path"`
	VoteAverage    float64   `json:"vote_average"`
	VoteCount      int       `json:"vote_count"`
}

// Episode is a full episode record with its crew and guest cast.
type Episode struct {
	ID             int64          `json:"id"`
	Name           string         `json:"name"`
	Overview       string         `json:"overview"`
	AirDate        tmdb.Date      `json:"air_date"`
	EpisodeNumber  int            `json:"episode_number"`
	SeasonNumber   int            `json:"season_number"`
	ProductionCode string         `json:"production_code"`
	StillPath      string         `json:"still_path"`
	VoteAverage    float64        `json:"vote_average"`
	VoteCount      int            `json:"vote_count"`
	Crew           []person.Short `json:"crew"`
	GuestStars     []person.Short `json:"guest_stars"`
}

// SeasonRef is the compact season shape embedded in show details.
type SeasonRef struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Overview     string    `json:"overview"`
	AirDate      tmdb.Date `json:"air_date"`
	PosterPath   string    `json:"poster_path"`
	SeasonNumber int       `json:"season_number"`
	EpisodeCount int       `json:"episode_count"`
}

// Season is a full season record with its episodes. SeasonID is the
// provider's internal object id, distinct from the numeric ID.
type Season struct {
	SeasonID     string    `json:"_id"`
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Overview     string    `json:"overview"`
	AirDate      tmdb.Date `json:"air_date"`
	PosterPath   string    `json:"poster_path"`
	SeasonNumber int       `json:"season_number"`
	Episodes     []Episode `json:"episodes"`
}

// CreditedPerson is the person shape shared by aggregate cast and
// crew entries.
type CreditedPerson struct {
	ID                 int64   `json:"id"`
	Adult              bool    `json:"adult"`
	Gender             int     `json:"gender"`
	KnownForDepartment string  `json:"known_for_department"`
	Name               string  `json:"name"`
	OriginalName       string  `json:"original_name"`
	Popularity         float64 `json:"popularity"`
	ProfilePath        string  `json:"profile_path"`
	TotalEpisodeCount  int     `json:"total_episode_count"`
}

// Role is one character a cast member played across episodes.
type Role struct {
	CreditID     string `json:"credit_id"`
	Character    string `json:"character"`
	EpisodeCount int    `json:"episode_count"`
}

// Job is one position a crew member held across episodes.
type Job struct {
	CreditID     string `json:"credit_id"`
	Job          string `json:"job"`
	EpisodeCount int    `json:"episode_count"`
}

// CastPerson aggregates every role one person played on a show.
type CastPerson struct {
	CreditedPerson
	Roles []Role `json:"roles"`
	Order int    `json:"order"`
}

// CrewPerson aggregates every job one person held on a show.
type CrewPerson struct {
	CreditedPerson
	Jobs       []Job  `json:"jobs"`
	Department string `json:"department"`
}

// AggregateCredits merges a show's credits across all its episodes.
type AggregateCredits struct {
	ID   int64        `json:"id"`
	Cast []CastPerson `json:"cast"`
	Crew []CrewPerson `json:"crew"`
}

// ContentRating is a show's certification in one country.
type ContentRating struct {
	Descriptors []string `json:"descriptors"`
	CountryCode string   `json:"iso_3166_1"`
	Rating      string   `json:"rating"`
}

// ExternalIDs links a show to its ids on other databases and social
// networks.
type ExternalIDs struct {
	ID          int64  `json:"id"`
	IMDbID      string `json:"imdb_id"`
	FreebaseMID string `json:"freebase_mid"`
	FreebaseID  string `json:"freebase_id"`
	TVDBID      int64  `json:"tvdb_id"`
	TVRageID    int64  `json:"tvrage_id"`
	WikidataID  string `json:"wikidata_id"`
	FacebookID  string `json:"facebook_id"`
	InstagramID string `json:"instagram_id"`
	TwitterID   string `json:"twitter_id"`
}

// Images holds a show's artwork. TV images include network logos next
// to posters and backdrops.
type Images struct {
	ID        int64        `json:"id"`
	Backdrops []tmdb.Image `json:"backdrops"`
	Posters   []tmdb.Image `json:"posters"`
	Logos     []tmdb.Image `json:"logos"`
}
