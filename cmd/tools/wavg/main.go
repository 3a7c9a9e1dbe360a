package main

import (
	"flag"
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/soltixdb/wavg/internal/config"
	"github.com/soltixdb/wavg/internal/demo"
	"github.com/soltixdb/wavg/internal/logging"
)

var (
	Version   = "dev"     // Injected via ldflags during build
	GitCommit = "unknown" // Injected via ldflags during build
)

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to configuration file")
	dataset := flag.String("dataset", "", "Run only the named dataset (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.NewFromConfig(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logging.SetGlobal(logger)

	logger.Debug("Weighted average demo starting", "version", Version, "commit", GitCommit)

	datasets := cfg.Demo.Datasets
	if *dataset != "" {
		ds, ok := cfg.Demo.Find(*dataset)
		if !ok {
			logger.Fatal("Unknown dataset", "dataset", *dataset)
		}
		datasets = []config.Dataset{ds}
	}

	summary := demo.NewRunner(os.Stdout, logger, cfg.Demo.Precision).Run(datasets)

	logger.Debug("Weighted average demo finished",
		"computed", summary.Computed, "failed", summary.Failed)
}
