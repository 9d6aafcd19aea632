package tmdb

import "time"

// PaginatedResult is the standard page envelope for list endpoints.
type PaginatedResult[T any] struct {
	Page         int `json:"page"`
	TotalResults int `json:"total_results"`
	TotalPages   int `json:"total_pages"`
	Results      []T `json:"results"`
}

// Results wraps endpoints that return a bare results member.
type Results[T any] struct {
	Results T `json:"results"`
}

// EntityResults wraps sub-resource endpoints that echo the parent id
// next to the results member.
type EntityResults[T any] struct {
	ID      int64 `json:"id"`
	Results T     `json:"results"`
}

// MediaType discriminates entries in mixed media lists.
type MediaType string

const (
	// MediaTypeMovie marks a movie entry.
	MediaTypeMovie MediaType = "movie"
	// MediaTypeTV marks a TV show entry.
	MediaTypeTV MediaType = "tv"
	// MediaTypePerson marks a person entry.
	MediaTypePerson MediaType = "person"
)

// Genre is a movie or TV genre.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Country pairs an ISO 3166-1 code with a display name.
type Country struct {
	CountryCode string `json:"iso_3166_1"`
	Name        string `json:"name"`
}

// Language pairs an ISO 639-1 code with a display name.
type Language struct {
	LanguageCode string `json:"iso_639_1"`
	Name         string `json:"name"`
}

// Keyword tags a movie or TV show.
type Keyword struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CompanyRef is the compact company shape embedded in credits, details
// and network lists.
type CompanyRef struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	LogoPath      string `json:"logo_path"`
	OriginCountry string `json:"origin_country"`
}

// Image describes one poster, backdrop, still or logo.
type Image struct {
	AspectRatio  float64 `json:"aspect_ratio"`
	FilePath     string  `json:"file_path"`
	Height       int     `json:"height"`
	Width        int     `json:"width"`
	LanguageCode string  `json:"iso_639_1"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int     `json:"vote_count"`
}

// Video is a trailer, teaser, clip or featurette hosted off-site.
type Video struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	Site         string    `json:"site"`
	Key          string    `json:"key"`
	Size         int       `json:"size"`
	Official     bool      `json:"official"`
	PublishedAt  time.Time `json:"published_at"`
	LanguageCode string    `json:"iso_639_1"`
	CountryCode  string    `json:"iso_3166_1"`
}

// Cast is one acting credit.
type Cast struct {
	ID                 int64   `json:"id"`
	CreditID           string  `json:"credit_id"`
	CastID             int64   `json:"cast_id"`
	Name               string  `json:"name"`
	OriginalName       string  `json:"original_name"`
	Character          string  `json:"character"`
	Order              int     `json:"order"`
	Adult              bool    `json:"adult"`
	Gender             int     `json:"gender"`
	KnownForDepartment string  `json:"known_for_department"`
	Popularity         float64 `json:"popularity"`
	ProfilePath        string  `json:"profile_path"`
}

// Crew is one production credit.
type Crew struct {
	ID                 int64   `json:"id"`
	CreditID           string  `json:"credit_id"`
	Name               string  `json:"name"`
	OriginalName       string  `json:"original_name"`
	Department         string  `json:"department"`
	Job                string  `json:"job"`
	Adult              bool    `json:"adult"`
	Gender             int     `json:"gender"`
	KnownForDepartment string  `json:"known_for_department"`
	Popularity         float64 `json:"popularity"`
	ProfilePath        string  `json:"profile_path"`
}

// Status is the release status of a movie.
type Status string

// Movie release statuses.
const (
	StatusRumored        Status = "Rumored"
	StatusPlanned        Status = "Planned"
	StatusInProduction   Status = "In Production"
	StatusPostProduction Status = "Post Production"
	StatusReleased       Status = "Released"
	StatusCanceled       Status = "Canceled"
)

// ReleaseDateType classifies a release date entry.
type ReleaseDateType int

// Release date types as documented by TMDB.
const (
	ReleasePremiere ReleaseDateType = iota + 1
	ReleaseTheatricalLimited
	ReleaseTheatrical
	ReleaseDigital
	ReleasePhysical
	ReleaseTV
)

// ReleaseDate is a single dated release with its certification.
type ReleaseDate struct {
	Certification string          `json:"certification"`
	LanguageCode  string          `json:"iso_639_1"`
	Note          string          `json:"note"`
	ReleaseDate   time.Time       `json:"release_date"`
	Type          ReleaseDateType `json:"type"`
}

// WatchProvider is a streaming, rental or purchase provider.
type WatchProvider struct {
	ProviderID      int64  `json:"provider_id"`
	ProviderName    string `json:"provider_name"`
	DisplayPriority int    `json:"display_priority"`
	LogoPath        string `json:"logo_path"`
}

// WatchProviderGroup lists the providers available in one country,
// grouped by how the title can be watched.
type WatchProviderGroup struct {
	Link     string          `json:"link"`
	Flatrate []WatchProvider `json:"flatrate"`
	Rent     []WatchProvider `json:"rent"`
	Buy      []WatchProvider `json:"buy"`
}
