// Package cmd provides the CLI commands for ratefinder.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"ratefinder/adapters/cache"
	"ratefinder/adapters/pdf"
	"ratefinder/core/catalog"
	"ratefinder/core/search"
	"ratefinder/internal/config"
	"ratefinder/internal/logging"
)

var (
	cfgFile string
	verbose bool
	cfg     *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "ratefinder",
	Short: "Look up shipping prices in PDF rate sheets",
	Long: `ratefinder extracts price tables from shipping rate-sheet PDFs and
answers natural-language price queries against them.

Examples:
  ratefinder search "FedEx 2Day, Zone 5, 3 lb"
  ratefinder search "Express Saver Z8 1 lb"
  ratefinder services
  ratefinder load ./rates/fedex-2024.pdf`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.ratefinder.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(servicesCmd)
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	path := cfgFile
	if path == "" {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, ".ratefinder.json")
	}

	loaded, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	cfg = loaded

	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// buildSearcher wires the repository and searcher from the active config
// and loads every rate sheet in the data directory.
func buildSearcher() (*search.Searcher, *catalog.Repository, error) {
	var variants catalog.VariantTable
	if cfg.Data.VariantsFile != "" {
		loaded, err := catalog.LoadVariants(cfg.Data.VariantsFile)
		if err != nil {
			return nil, nil, err
		}
		variants = loaded
	}

	repo := catalog.NewRepository(pdf.NewAdapter(cfg.Data.MaxFileSizeMB), catalog.NewFactory(variants))

	var resultCache search.Cache
	if cfg.Cache.Enabled && cfg.Cache.Path != "" {
		sqlCache, err := cache.OpenSQLite(cfg.Cache.Path)
		if err == nil {
			resultCache = sqlCache
		}
	}

	if paths, err := ratePaths(cfg.Data.Directory); err == nil && len(paths) > 0 {
		if err := repo.LoadAll(paths); err != nil {
			return nil, nil, err
		}
	}

	searcher := search.NewSearcher(repo, resultCache, time.Duration(cfg.Cache.TTLSeconds)*time.Second)
	return searcher, repo, nil
}

func ratePaths(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return paths, nil
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("ratefinder version 0.1.0")
	},
}
