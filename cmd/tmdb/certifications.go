package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/tmdb/certification"
)

var certCountry string

var certificationsCmd = &cobra.Command{
	Use:       "certifications <movie|tv>",
	Short:     "List content certifications per country",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"movie", "tv"},
	RunE:      runCertifications,
}

func init() {
	rootCmd.AddCommand(certificationsCmd)

	certificationsCmd.Flags().StringVar(&certCountry, "country", "", "show the meanings for one country only")
}

func runCertifications(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var (
		certs map[string][]certification.Certification
		err   error
	)
	switch args[0] {
	case "movie":
		certs, err = certification.NewMovieList().Execute(ctx, client)
	case "tv":
		certs, err = certification.NewTVList().Execute(ctx, client)
	}
	if err != nil {
		return describeError(err)
	}

	if certCountry != "" {
		country := strings.ToUpper(certCountry)
		list, ok := certs[country]
		if !ok {
			return fmt.Errorf("no certifications listed for country %q", country)
		}
		sortByOrder(list)

		fmt.Printf("%s:\n", country)
		for _, c := range list {
			fmt.Printf("  %-8s %s\n", c.Certification, c.Meaning)
		}
		return nil
	}

	countries := make([]string, 0, len(certs))
	for country := range certs {
		countries = append(countries, country)
	}
	slices.Sort(countries)

	for _, country := range countries {
		list := certs[country]
		sortByOrder(list)

		names := make([]string, len(list))
		for i, c := range list {
			names[i] = c.Certification
		}
		fmt.Printf("%-4s %s\n", country, strings.Join(names, ", "))
	}
	return nil
}

// sortByOrder sorts certifications by the provider's ascending
// strictness order.
func sortByOrder(list []certification.Certification) {
	slices.SortFunc(list, func(a, b certification.Certification) int {
		return a.Order - b.Order
	})
}
