package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/tmdb"
	"github.com/s0up4200/tmdb/tvshow"
)

// tvCmd groups the TV show subcommands
var tvCmd = &cobra.Command{
	Use:   "tv",
	Short: "TV show details and seasons",
}

var tvDetailsCmd = &cobra.Command{
	Use:   "details <id>",
	Short: "Show details, certifications and external ids for one show",
	Args:  cobra.ExactArgs(1),
	RunE:  runTVDetails,
}

var tvSeasonCmd = &cobra.Command{
	Use:   "season <id> <number>",
	Short: "List the episodes of one season",
	Args:  cobra.ExactArgs(2),
	RunE:  runTVSeason,
}

func init() {
	rootCmd.AddCommand(tvCmd)
	tvCmd.AddCommand(tvDetailsCmd)
	tvCmd.AddCommand(tvSeasonCmd)
}

func runTVDetails(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid show id %q", args[0])
	}

	details := tvshow.NewDetails(id)
	if cfg.TMDB.Language != "" {
		details = details.WithLanguage(cfg.TMDB.Language)
	}

	var (
		show    *tvshow.TVShow
		ratings []tvshow.ContentRating
		ids     *tvshow.ExternalIDs
	)

	// The three lookups are independent, so fetch them concurrently.
	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		var err error
		show, err = details.Execute(ctx, client)
		return err
	})
	g.Go(func() error {
		var err error
		ratings, err = tvshow.NewContentRatings(id).Execute(ctx, client)
		return err
	})
	g.Go(func() error {
		var err error
		ids, err = tvshow.NewExternalIDs(id).Execute(ctx, client)
		return err
	})

	if err := g.Wait(); err != nil {
		if tmdb.IsNotFound(err) {
			return fmt.Errorf("TV show %d not found", id)
		}
		return describeError(err)
	}

	printTVDetails(show, ratings, ids)
	return nil
}

func printTVDetails(show *tvshow.TVShow, ratings []tvshow.ContentRating, ids *tvshow.ExternalIDs) {
	fmt.Printf("%s", show.Name)
	if show.FirstAirDate.Year() > 0 {
		fmt.Printf(" (%d)", show.FirstAirDate.Year())
	}
	fmt.Println()
	fmt.Println(strings.Repeat("-", 80))

	if show.Tagline != "" {
		fmt.Printf("%s\n\n", show.Tagline)
	}

	fmt.Printf("Status: %s", show.Status)
	if show.Type != "" {
		fmt.Printf("  Type: %s", show.Type)
	}
	if show.VoteCount > 0 {
		fmt.Printf("  Rating: %.1f (%d votes)", show.VoteAverage, show.VoteCount)
	}
	fmt.Println()

	// The provider reports no episode count for shows still in planning.
	episodes := "unknown"
	if show.NumberOfEpisodes != nil {
		episodes = strconv.Itoa(*show.NumberOfEpisodes)
	}
	fmt.Printf("Seasons: %d  Episodes: %s\n", show.NumberOfSeasons, episodes)

	if len(show.Genres) > 0 {
		names := make([]string, len(show.Genres))
		for i, g := range show.Genres {
			names[i] = g.Name
		}
		fmt.Printf("Genres: %s\n", strings.Join(names, ", "))
	}
	if len(show.Networks) > 0 {
		names := make([]string, len(show.Networks))
		for i, n := range show.Networks {
			names[i] = n.Name
		}
		fmt.Printf("Networks: %s\n", strings.Join(names, ", "))
	}

	if rating := certificationFor(ratings); rating != "" {
		fmt.Printf("Certification: %s\n", rating)
	}

	if ids.IMDbID != "" || ids.TVDBID != 0 {
		fmt.Printf("External ids:")
		if ids.IMDbID != "" {
			fmt.Printf("  IMDb %s", ids.IMDbID)
		}
		if ids.TVDBID != 0 {
			fmt.Printf("  TVDB %d", ids.TVDBID)
		}
		fmt.Println()
	}

	if show.Overview != "" {
		fmt.Printf("\n%s\n", show.Overview)
	}

	if show.NextEpisodeToAir != nil {
		ep := show.NextEpisodeToAir
		fmt.Printf("\nNext episode: S%02dE%02d %q", ep.SeasonNumber, ep.EpisodeNumber, ep.Name)
		if !ep.AirDate.IsZero() {
			fmt.Printf(" airing %s", ep.AirDate)
		}
		fmt.Println()
	}
}

// certificationFor picks the rating for the configured region, falling
// back to the US rating.
func certificationFor(ratings []tvshow.ContentRating) string {
	region := cfg.TMDB.Region
	if region == "" {
		region = "US"
	}

	var fallback string
	for _, r := range ratings {
		if r.CountryCode == region {
			return fmt.Sprintf("%s (%s)", r.Rating, r.CountryCode)
		}
		if r.CountryCode == "US" {
			fallback = fmt.Sprintf("%s (US)", r.Rating)
		}
	}
	return fallback
}

func runTVSeason(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid show id %q", args[0])
	}
	seasonNumber, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid season number %q", args[1])
	}

	req := tvshow.NewSeasonDetails(id, seasonNumber)
	if cfg.TMDB.Language != "" {
		req = req.WithLanguage(cfg.TMDB.Language)
	}

	season, err := req.Execute(cmd.Context(), client)
	if err != nil {
		if tmdb.IsNotFound(err) {
			return fmt.Errorf("season %d of show %d not found", seasonNumber, id)
		}
		return describeError(err)
	}

	fmt.Println(season.Name)
	fmt.Println(strings.Repeat("-", 80))

	for _, ep := range season.Episodes {
		fmt.Printf("S%02dE%02d  %-48s", ep.SeasonNumber, ep.EpisodeNumber, ep.Name)
		if !ep.AirDate.IsZero() {
			fmt.Printf("  %s", ep.AirDate)
		}
		if ep.VoteCount > 0 {
			fmt.Printf("  %.1f", ep.VoteAverage)
		}
		fmt.Println()
	}

	return nil
}
