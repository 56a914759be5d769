package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var noCache bool

// searchCmd runs one price query against the loaded rate sheets.
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search for a shipping price",
	Long: `Search parses a natural-language price query and looks the price up in
the loaded rate sheets.

Query formats:
  "FedEx 2Day, Zone 5, 3 lb"          comma form, packaging optional
  "Express Saver Z8 1 lb"             space form
  "3lb to zone 5"                     space form, weight first`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		searcher, _, err := buildSearcher()
		if err != nil {
			return err
		}

		query := strings.Join(args, " ")
		result, err := searcher.Search(query, !noCache)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Search failed: %v\n", err)
			return err
		}

		fmt.Printf("%s, Zone %d, %s lb: $%s %s",
			result.Service, result.Zone, result.Weight, result.Price, result.Currency)
		if result.SourceDocument != "" {
			fmt.Printf("  (%s)", result.SourceDocument)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	searchCmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the result cache")
}
