package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/tmdb/filter"
	"github.com/s0up4200/tmdb/search"
)

var (
	// Command flags
	filterExpr  string
	preset      string
	page        int
	year        int
	airDateYear int
)

// searchCmd groups the search subcommands
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search movies, TV shows or everything at once",
}

var searchMovieCmd = &cobra.Command{
	Use:   "movie <query>",
	Short: "Search movies by title",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearchMovie,
}

var searchTVCmd = &cobra.Command{
	Use:   "tv <query>",
	Short: "Search TV shows by name",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearchTV,
}

var searchMultiCmd = &cobra.Command{
	Use:   "multi <query>",
	Short: "Search movies, TV shows and people in one query",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearchMulti,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.AddCommand(searchMovieCmd)
	searchCmd.AddCommand(searchTVCmd)
	searchCmd.AddCommand(searchMultiCmd)

	for _, c := range []*cobra.Command{searchMovieCmd, searchTVCmd, searchMultiCmd} {
		c.Flags().IntVar(&page, "page", 0, "result page to fetch")
		c.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression applied to the results")
		c.Flags().StringVarP(&preset, "preset", "p", "", "named filter from config applied to the results")
	}
	searchMovieCmd.Flags().IntVar(&year, "year", 0, "restrict matches to a release year")
	searchTVCmd.Flags().IntVar(&airDateYear, "year", 0, "restrict matches to a first air date year")
}

func runSearchMovie(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	logger.Info().Str("query", query).Msg("Searching movies")

	req := search.NewMovies(query)
	if cfg.TMDB.Language != "" {
		req = req.WithLanguage(cfg.TMDB.Language)
	}
	if cfg.TMDB.Region != "" {
		req = req.WithRegion(cfg.TMDB.Region)
	}
	if cfg.TMDB.IncludeAdult {
		req = req.WithIncludeAdult()
	}
	if page > 0 {
		req = req.WithPage(page)
	}
	if year > 0 {
		req = req.WithYear(year)
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

func runSearchTV(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	logger.Info().Str("query", query).Msg("Searching TV shows")

	req := search.NewTVShows(query)
	if cfg.TMDB.Language != "" {
		req = req.WithLanguage(cfg.TMDB.Language)
	}
	if cfg.TMDB.Region != "" {
		req = req.WithRegion(cfg.TMDB.Region)
	}
	if cfg.TMDB.IncludeAdult {
		req = req.WithIncludeAdult()
	}
	if page > 0 {
		req = req.WithPage(page)
	}
	if airDateYear > 0 {
		req = req.WithFirstAirDateYear(airDateYear)
	}

	ctx := cmd.Context()
	res, err := req.Execute(ctx, client)
	if err != nil {
		return describeError(err)
	}

	items, err := applyFilter(ctx, filter.FromTVShows(res.Results))
	if err != nil {
		return err
	}

	printResults(items, res.Page, res.TotalPages, res.TotalResults, false)
	return nil
}

func runSearchMulti(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	logger.Info().Str("query", query).Msg("Searching everything")

	req := search.NewMulti(query)
	if cfg.TMDB.Language != "" {
		req = req.WithLanguage(cfg.TMDB.Language)
	}
	if cfg.TMDB.IncludeAdult {
		req = req.WithIncludeAdult()
	}
	if page > 0 {
		req = req.WithPage(page)
	}

	ctx := cmd.Context()
	res, err := req.Execute(ctx, client)
	if err != nil {
		return describeError(err)
	}

	items, err := applyFilter(ctx, filter.FromResults(res.Results))
	if err != nil {
		return err
	}

	printResults(items, res.Page, res.TotalPages, res.TotalResults, true)
	return nil
}

// applyFilter narrows items with the --filter expression or a named
// preset from config. An explicit expression wins over a preset.
func applyFilter(ctx context.Context, items []filter.Item) ([]filter.Item, error) {
	if filterExpr != "" {
		compiled, err := filter.NewExprCompiler().Compile(filterExpr)
		if err != nil {
			return nil, fmt.Errorf("invalid filter expression: %w", err)
		}
		return filter.NewEvaluator().Evaluate(ctx, compiled, items)
	}
	if preset != "" {
		return filters.EvaluateFilter(ctx, preset, items)
	}
	return items, nil
}

// printResults displays filtered items with the page position of the
// underlying response.
func printResults(items []filter.Item, pageNum, totalPages, totalResults int, showType bool) {
	if len(items) == 0 {
		fmt.Println("No results matched the query and filters.")
		return
	}

	fmt.Printf("\nFound %d results (page %d of %d, %d total):\n", len(items), pageNum, totalPages, totalResults)
	fmt.Println(strings.Repeat("-", 80))

	for _, item := range items {
		fmt.Printf("• %s", item.Title)
		if !item.ReleaseDate.IsZero() {
			fmt.Printf(" (%d)", item.ReleaseDate.Year())
		}
		if showType {
			fmt.Printf(" [%s]", item.MediaType)
		}
		fmt.Println()
		if item.VoteCount > 0 {
			fmt.Printf("  Rating: %.1f (%d votes)", item.VoteAverage, item.VoteCount)
			if item.Language != "" {
				fmt.Printf("  Language: %s", item.Language)
			}
			fmt.Println()
		}
	}
}
