// Package configuration exposes the provider's static configuration
// lists: countries, translation languages and the department/job
// catalogue used by credits.
package configuration

import (
	"context"

	"github.com/s0up4200/tmdb"
)

// Country is a country the provider serves content metadata for.
type Country struct {
	CountryCode string `json:"iso_3166_1"`
	EnglishName string `json:"english_name"`
	NativeName  string `json:"native_name"`
}

// Job groups the job titles of one production department.
type Job struct {
	Department string   `json:"department"`
	Jobs       []string `json:"jobs"`
}

// Language is a translation language known to the provider.
type Language struct {
	LanguageCode string `json:"iso_639_1"`
	EnglishName  string `json:"english_name"`
	Name         string `json:"name"`
}

// CountriesCommand fetches the country list.
type CountriesCommand struct {
	Language string
}

// NewCountries builds a command listing the known countries.
func NewCountries() CountriesCommand {
	return CountriesCommand{}
}

// WithLanguage returns a copy requesting translated native names.
func (c CountriesCommand) WithLanguage(language string) CountriesCommand {
	c.Language = language
	return c
}

func (CountriesCommand) Path() string {
	return "/configuration/countries"
}

func (c CountriesCommand) Params() tmdb.Params {
	var params tmdb.Params
	if c.Language != "" {
		params = params.With("language", c.Language)
	}
	return params
}

func (c CountriesCommand) Execute(ctx context.Context, client *tmdb.Client) ([]Country, error) {
	return tmdb.Execute[[]Country](ctx, client, c)
}

// JobsCommand fetches the department and job catalogue.
type JobsCommand struct{}

// NewJobs builds a command listing departments and their jobs.
func NewJobs() JobsCommand {
	return JobsCommand{}
}

func (JobsCommand) Path() string {
	return "/configuration/jobs"
}

func (JobsCommand) Params() tmdb.Params {
	return nil
}

func (c JobsCommand) Execute(ctx context.Context, client *tmdb.Client) ([]Job, error) {
	return tmdb.Execute[[]Job](ctx, client, c)
}

// LanguagesCommand fetches the language list.
type LanguagesCommand struct{}

// NewLanguages builds a command listing the known languages.
func NewLanguages() LanguagesCommand {
	return LanguagesCommand{}
}

func (LanguagesCommand) Path() string {
	return "/configuration/languages"
}

func (LanguagesCommand) Params() tmdb.Params {
	return nil
}

func (c LanguagesCommand) Execute(ctx context.Context, client *tmdb.Client) ([]Language, error) {
	return tmdb.Execute[[]Language](ctx, client, c)
}
