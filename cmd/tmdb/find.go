package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/tmdb/find"
)

var findSource = string(find.SourceIMDb)

var findCmd = &cobra.Command{
	Use:   "find <external-id>",
	Short: "Look up movies, shows and people by an external id",
	Long: `Find resolves an id from an external catalogue (IMDb, TVDB, a social
network) to the TMDB objects it belongs to.

  tmdb find tt0137523
  tmdb find 121361 --source tvdb`,
	Args: cobra.ExactArgs(1),
	RunE: runFind,
}

func init() {
	rootCmd.AddCommand(findCmd)

	findCmd.Flags().StringVar(&findSource, "source", findSource, "external catalogue the id comes from")
}

var findSources = []find.Source{
	find.SourceIMDb,
	find.SourceFacebook,
	find.SourceInstagram,
	find.SourceTVDB,
	find.SourceTikTok,
	find.SourceTwitter,
	find.SourceWikidata,
	find.SourceYouTube,
}

// parseFindSource accepts the wire form ("imdb_id") as well as the bare
// catalogue name ("imdb").
func parseFindSource(s string) (find.Source, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, src := range findSources {
		if name == string(src) || name == strings.TrimSuffix(string(src), "_id") {
			return src, nil
		}
	}

	known := make([]string, len(findSources))
	for i, src := range findSources {
		known[i] = strings.TrimSuffix(string(src), "_id")
	}
	return "", fmt.Errorf("unknown source %q (one of %s)", s, strings.Join(known, ", "))
}

func runFind(cmd *cobra.Command, args []string) error {
	source, err := parseFindSource(findSource)
	if err != nil {
		return err
	}

	externalID := args[0]
	q := find.NewByExternalID(externalID, source)
	if cfg.TMDB.Language != "" {
		q = q.WithLanguage(cfg.TMDB.Language)
	}

	res, err := q.Execute(cmd.Context(), client)
	if err != nil {
		return describeError(err)
	}

	total := len(res.MovieResults) + len(res.TVResults) + len(res.PersonResults) +
		len(res.TVSeasonResults) + len(res.TVEpisodeResults)
	if total == 0 {
		fmt.Printf("Nothing found for %s (%s).\n", externalID, source)
		return nil
	}

	for _, m := range res.MovieResults {
		fmt.Printf("• Movie: %s (%d)  id %d\n", m.Title, m.ReleaseDate.Year(), m.ID)
	}
	for _, s := range res.TVResults {
		fmt.Printf("• TV: %s (%d)  id %d\n", s.Name, s.FirstAirDate.Year(), s.ID)
	}
	for _, p := range res.PersonResults {
		fmt.Printf("• Person: %s  id %d\n", p.Name, p.ID)
	}
	for _, s := range res.TVSeasonResults {
		fmt.Printf("• Season: %s (%d episodes)  id %d\n", s.Name, s.EpisodeCount, s.ID)
	}
	for _, e := range res.TVEpisodeResults {
		fmt.Printf("• Episode: %s (S%02dE%02d)  id %d\n", e.Name, e.SeasonNumber, e.EpisodeNumber, e.ID)
	}
	return nil
}
