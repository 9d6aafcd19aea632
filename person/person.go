// Package person reads people records, the actors and crew members
// movies and TV shows link to.
package person

import (
	"context"
	"strconv"

	"github.com/s0up4200/tmdb"
)

// Short is the compact person shape embedded in credits and mixed
// search results.
type Short struct {
	ID          int64  `json:"id"`
	CreditID    string `json:"credit_id"`
	Name        string `json:"name"`
	Gender      int    `json:"gender"`
	ProfilePath string `json:"profile_path"`
}

// Person is the full person record.
type Person struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	Adult              bool      `json:"adult"`
	AlsoKnownAs        []string  `json:"also_known_as"`
	Biography          string    `json:"biography"`
	Birthday           tmdb.Date `json:"birthday"`
	Deathday           tmdb.Date `json:"deathday"`
	Gender             int       `json:"gender"`
	Homepage           string    `json:"homepage"`
	IMDbID             string    `json:"imdb_id"`
	KnownForDepartment string    `json:"known_for_department"`
	Popularity         float64   `json:"popularity"`
	PlaceOfBirth       string    `json:"place_of_birth"`
	ProfilePath        string    `json:"profile_path"`
}

// DetailsCommand fetches one person by id.
type DetailsCommand struct {
	PersonID int64
	Language string
}

// NewDetails builds a command fetching a person's details.
func NewDetails(personID int64) DetailsCommand {
	return DetailsCommand{PersonID: personID}
}

// WithLanguage returns a copy requesting translated fields.
func (c DetailsCommand) WithLanguage(language string) DetailsCommand {
	c.Language = language
	return c
}

func (c DetailsCommand) Path() string {
	return "/person/" + strconv.FormatInt(c.PersonID, 10)
}

func (c DetailsCommand) Params() tmdb.Params {
	var params tmdb.Params
	if c.Language != "" {
		params = params.With("language", c.Language)
	}
	return params
}

func (c DetailsCommand) Execute(ctx context.Context, client *tmdb.Client) (*Person, error) {
	res, err := tmdb.Execute[Person](ctx, client, c)
	if err != nil {
		return nil, err
	}
	return &res, nil
}
