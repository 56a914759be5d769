package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"ratefinder/adapters/pdf"
	"ratefinder/core/catalog"
	"ratefinder/core/search"
)

// loadCmd extracts one rate sheet and reports what was recovered. Useful
// for checking a PDF before dropping it into the data directory.
var loadCmd = &cobra.Command{
	Use:   "load <pdf>",
	Short: "Extract a rate-sheet PDF and report its contents",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var variants catalog.VariantTable
		if cfg.Data.VariantsFile != "" {
			loaded, err := catalog.LoadVariants(cfg.Data.VariantsFile)
			if err != nil {
				return err
			}
			variants = loaded
		}

		repo := catalog.NewRepository(pdf.NewAdapter(cfg.Data.MaxFileSizeMB), catalog.NewFactory(variants))

		start := time.Now()
		services, err := repo.Load(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Loaded %d services in %s:\n", len(services), time.Since(start).Round(time.Millisecond))
		searcher := search.NewSearcher(repo, nil, 0)
		for _, info := range searcher.Services() {
			fmt.Printf("  %s: zones %v, %s-%s lb\n", info.Name, info.Zones, info.MinWeight, info.MaxWeight)
		}
		return nil
	},
}
