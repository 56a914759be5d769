package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// servicesCmd lists the services found in the loaded rate sheets.
var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "List available shipping services",
	RunE: func(cmd *cobra.Command, args []string) error {
		searcher, _, err := buildSearcher()
		if err != nil {
			return err
		}

		infos := searcher.Services()
		if len(infos) == 0 {
			fmt.Println("No services loaded.")
			return nil
		}

		for _, info := range infos {
			zones := make([]string, len(info.Zones))
			for i, z := range info.Zones {
				zones[i] = fmt.Sprintf("%d", z)
			}
			fmt.Printf("%s\n", info.Name)
			fmt.Printf("  zones: %s\n", strings.Join(zones, ", "))
			fmt.Printf("  weights: %s-%s lb\n", info.MinWeight, info.MaxWeight)
			if len(info.Variants) > 0 {
				fmt.Printf("  aliases: %s\n", strings.Join(info.Variants, ", "))
			}
		}
		return nil
	},
}
