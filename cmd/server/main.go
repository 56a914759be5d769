package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"ratefinder/adapters/cache"
	"ratefinder/adapters/pdf"
	"ratefinder/api"
	"ratefinder/core/catalog"
	"ratefinder/core/search"
	"ratefinder/internal/config"
	"ratefinder/internal/logging"
)

func main() {
	var (
		addr    = flag.String("addr", ":8080", "listen address")
		cfgPath = flag.String("config", "", "config file path")
	)
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	var variants catalog.VariantTable
	if cfg.Data.VariantsFile != "" {
		loaded, err := catalog.LoadVariants(cfg.Data.VariantsFile)
		if err != nil {
			logging.Fatal("failed to load variants file", zap.Error(err))
		}
		variants = loaded
	}

	repo := catalog.NewRepository(pdf.NewAdapter(cfg.Data.MaxFileSizeMB), catalog.NewFactory(variants))

	var resultCache search.Cache
	if cfg.Cache.Enabled {
		if cfg.Cache.Path != "" {
			sqlCache, err := cache.OpenSQLite(cfg.Cache.Path)
			if err != nil {
				logging.Error("failed to open cache, continuing without", zap.Error(err))
			} else {
				defer sqlCache.Close()
				resultCache = sqlCache
			}
		} else {
			resultCache = cache.NewMemory()
		}
	}

	searcher := search.NewSearcher(repo, resultCache, time.Duration(cfg.Cache.TTLSeconds)*time.Second)

	// Preload every rate sheet found in the data directory.
	if paths, err := ratePaths(cfg.Data.Directory); err == nil && len(paths) > 0 {
		if err := repo.LoadAll(paths); err != nil {
			logging.Error("rate sheet preload failed", zap.Error(err))
		}
	}

	server := api.NewServer(searcher, repo)
	logging.Info("listening", zap.String("addr", *addr), zap.Int("services", repo.Count()))

	if err := http.ListenAndServe(*addr, server.Handler()); err != nil {
		logging.Fatal("server stopped", zap.Error(err))
	}
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
