package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/tmdb"
	"github.com/s0up4200/tmdb/genre"
)

var genresCmd = &cobra.Command{
	Use:       "genres <movie|tv>",
	Short:     "List official genres and their ids",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"movie", "tv"},
	RunE:      runGenres,
}

func init() {
	rootCmd.AddCommand(genresCmd)
}

func runGenres(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var (
		genres []tmdb.Genre
		err    error
	)
	switch args[0] {
	case "movie":
		req := genre.NewMovies()
		if cfg.TMDB.Language != "" {
			req = req.WithLanguage(cfg.TMDB.Language)
		}
		genres, err = req.Execute(ctx, client)
	case "tv":
		req := genre.NewTVShows()
		if cfg.TMDB.Language != "" {
			req = req.WithLanguage(cfg.TMDB.Language)
		}
		genres, err = req.Execute(ctx, client)
	}
	if err != nil {
		return describeError(err)
	}

	for _, g := range genres {
		fmt.Printf("%6d  %s\n", g.ID, g.Name)
	}
	return nil
}
