// Package company reads production company details, alternative names
// and logos.
package company

import (
	"context"
	"strconv"

	"github.com/s0up4200/tmdb"
)

// Company is the full production company record.
type Company struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	LogoPath      string          `json:"logo_path"`
	OriginCountry string          `json:"origin_country"`
	Description   string          `json:"description"`
	Headquarters  string          `json:"headquarters"`
	Homepage      string          `json:"homepage"`
	ParentCompany *tmdb.CompanyRef `json:"parent_company"`
}

// AlternativeName is one additional name a company is known under.
type AlternativeName struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Logo is a company logo image. Unlike poster and backdrop images it
// carries its own id and file type.
type Logo struct {
	ID          string  `json:"id"`
	AspectRatio float64 `json:"aspect_ratio"`
	FilePath    string  `json:"file_path"`
	FileType    string  `json:"file_type"`
	Height      int     `json:"height"`
	Width       int     `json:"width"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int     `json:"vote_count"`
}

type imagesEnvelope struct {
	ID    int64  `json:"id"`
	Logos []Logo `json:"logos"`
}

// DetailsCommand fetches one company by id.
type DetailsCommand struct {
	CompanyID int64
}

// NewDetails builds a command fetching a company's details.
func NewDetails(companyID int64) DetailsCommand {
	return DetailsCommand{CompanyID: companyID}
}

func (c DetailsCommand) Path() string {
	return "/company/" + strconv.FormatInt(c.CompanyID, 10)
}

func (DetailsCommand) Params() tmdb.Params {
	return nil
}

func (c DetailsCommand) Execute(ctx context.Context, client *tmdb.Client) (*Company, error) {
	res, err := tmdb.Execute[Company](ctx, client, c)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// AlternativeNamesCommand fetches the other names a company goes by.
type AlternativeNamesCommand struct {
	CompanyID int64
}

// NewAlternativeNames builds a command listing a company's alternative names.
func NewAlternativeNames(companyID int64) AlternativeNamesCommand {
	return AlternativeNamesCommand{CompanyID: companyID}
}

func (c AlternativeNamesCommand) Path() string {
	return "/company/" + strconv.FormatInt(c.CompanyID, 10) + "/alternative_names"
}

func (AlternativeNamesCommand) Params() tmdb.Params {
	return nil
}

func (c AlternativeNamesCommand) Execute(ctx context.Context, client *tmdb.Client) ([]AlternativeName, error) {
	res, err := tmdb.Execute[tmdb.EntityResults[[]AlternativeName]](ctx, client, c)
	if err != nil {
		return nil, err
	}
	return res.Results, nil
}

// ImagesCommand fetches a company's logos.
type ImagesCommand struct {
	CompanyID int64
}

// NewImages builds a command listing a company's logos.
func NewImages(companyID int64) ImagesCommand {
	return ImagesCommand{CompanyID: companyID}
}

func (c ImagesCommand) Path() string {
	return "/company/" + strconv.FormatInt(c.CompanyID, 10) + "/images"
}

func (ImagesCommand) Params() tmdb.Params {
	return nil
}

func (c ImagesCommand) Execute(ctx context.Context, client *tmdb.Client) ([]Logo, error) {
	res, err := tmdb.Execute[imagesEnvelope](ctx, client, c)
	if err != nil {
		return nil, err
	}
	return res.Logos, nil
}
