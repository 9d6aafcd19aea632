package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/tmdb"
	"github.com/s0up4200/tmdb/filter"
	"github.com/s0up4200/tmdb/movie"
)

// movieCmd groups the movie subcommands
var movieCmd = &cobra.Command{
	Use:   "movie",
	Short: "Movie details and listings",
}

var movieDetailsCmd = &cobra.Command{
	Use:   "details <id>",
	Short: "Show details, top cast and videos for one movie",
	Args:  cobra.ExactArgs(1),
	RunE:  runMovieDetails,
}

var moviePopularCmd = &cobra.Command{
	Use:   "popular",
	Short: "List popular movies",
	RunE:  runMoviePopular,
}

var movieNowPlayingCmd = &cobra.Command{
	Use:   "now-playing",
	Short: "List movies currently in theatres",
	RunE:  runMovieNowPlaying,
}

func init() {
	rootCmd.AddCommand(movieCmd)
	movieCmd.AddCommand(movieDetailsCmd)
	movieCmd.AddCommand(moviePopularCmd)
	movieCmd.AddCommand(movieNowPlayingCmd)

	for _, c := range []*cobra.Command{moviePopularCmd, movieNowPlayingCmd} {
		c.Flags().IntVar(&page, "page", 0, "result page to fetch")
		c.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression applied to the results")
		c.Flags().StringVarP(&preset, "preset", "p", "", "named filter from config applied to the results")
	}
}

func runMovieDetails(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid movie id %q", args[0])
	}

	details := movie.NewDetails(id)
	creditsReq := movie.NewCredits(id)
	videosReq := movie.NewVideos(id)
	if cfg.TMDB.Language != "" {
		details = details.WithLanguage(cfg.TMDB.Language)
		creditsReq = creditsReq.WithLanguage(cfg.TMDB.Language)
		videosReq = videosReq.WithLanguage(cfg.TMDB.Language)
	}

	var (
		m       *movie.Movie
		credits *movie.Credits
		videos  []tmdb.Video
	)

	// The three lookups are independent, so fetch them concurrently.
	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		var err error
		m, err = details.Execute(ctx, client)
		return err
	})
	g.Go(func() error {
		var err error
		credits, err = creditsReq.Execute(ctx, client)
		return err
	})
	g.Go(func() error {
		var err error
		videos, err = videosReq.Execute(ctx, client)
		return err
	})

	if err := g.Wait(); err != nil {
		if tmdb.IsNotFound(err) {
			return fmt.Errorf("movie %d not found", id)
		}
		return describeError(err)
	}

	printMovieDetails(m, credits, videos)
	return nil
}

func printMovieDetails(m *movie.Movie, credits *movie.Credits, videos []tmdb.Video) {
	fmt.Printf("%s", m.Title)
	if m.ReleaseDate.Year() > 0 {
		fmt.Printf(" (%d)", m.ReleaseDate.Year())
	}
	fmt.Println()
	fmt.Println(strings.Repeat("-", 80))

	if m.Tagline != "" {
		fmt.Printf("%s\n\n", m.Tagline)
	}

	fmt.Printf("Status: %s", m.Status)
	if m.Runtime > 0 {
		fmt.Printf("  Runtime: %d min", m.Runtime)
	}
	if m.VoteCount > 0 {
		fmt.Printf("  Rating: %.1f (%d votes)", m.VoteAverage, m.VoteCount)
	}
	fmt.Println()

	if len(m.Genres) > 0 {
		names := make([]string, len(m.Genres))
		for i, g := range m.Genres {
			names[i] = g.Name
		}
		fmt.Printf("Genres: %s\n", strings.Join(names, ", "))
	}
	if m.Budget > 0 || m.Revenue > 0 {
		fmt.Printf("Budget: $%d  Revenue: $%d\n", m.Budget, m.Revenue)
	}
	if m.Homepage != "" {
		fmt.Printf("Homepage: %s\n", m.Homepage)
	}
	if m.Overview != "" {
		fmt.Printf("\n%s\n", m.Overview)
	}

	if len(credits.Cast) > 0 {
		fmt.Println("\nTop cast:")
		for i, c := range credits.Cast {
			if i == 10 {
				break
			}
			fmt.Printf("  • %s as %s\n", c.Name, c.Character)
		}
	}

	if len(videos) > 0 {
		fmt.Println("\nVideos:")
		for i, v := range videos {
			if i == 5 {
				break
			}
			fmt.Printf("  • %s: %s (%s)\n", v.Type, v.Name, v.Site)
		}
	}
}

func runMoviePopular(cmd *cobra.Command, args []string) error {
	req := movie.NewPopular()
	if cfg.TMDB.Language != "" {
		req = req.WithLanguage(cfg.TMDB.Language)
	}
	if cfg.TMDB.Region != "" {
		req = req.WithRegion(cfg.TMDB.Region)
	}
	if page > 0 {
		req = req.WithPage(page)
	}

	ctx := cmd.Context()
	res, err := req.Execute(ctx, client)
	if err != nil {
		return describeError(err)
	}

	items, err := applyFilter(ctx, filter.FromMovies(res.Results))
	if err != nil {
		return err
	}

	printResults(items, res.Page, res.TotalPages, res.TotalResults, false)
	return nil
}

func runMovieNowPlaying(cmd *cobra.Command, args []string) error {
	req := movie.NewNowPlaying()
	if cfg.TMDB.Language != "" {
		req = req.WithLanguage(cfg.TMDB.Language)
	}
	if cfg.TMDB.Region != "" {
		req = req.WithRegion(cfg.TMDB.Region)
	}
	if page > 0 {
		req = req.WithPage(page)
	}

	ctx := cmd.Context()
	res, err := req.Execute(ctx, client)
	if err != nil {
		return describeError(err)
	}

	if !res.Dates.Minimum.IsZero() && !res.Dates.Maximum.IsZero() {
		fmt.Printf("In theatres %s to %s\n", res.Dates.Minimum, res.Dates.Maximum)
	}

	items, err := applyFilter(ctx, filter.FromMovies(res.Results))
	if err != nil {
		return err
	}

	printResults(items, res.Page, res.TotalPages, res.TotalResults, false)
	return nil
}
