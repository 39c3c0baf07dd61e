// Command standardize runs the simple-family pipeline: WHO and CDC chart
// CSVs are classified, gender-split, combined and written as one file per
// (measurement, gender, source).
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"growthref/internal/config"
	"growthref/internal/infrastructure"
	"growthref/internal/pipeline"
	"growthref/pkg/contracts"
)

func main() {
	configFile := flag.String("config", "", "path to YAML config file")
	inDir := flag.String("in", "", "raw data directory holding who/ and cdc/ (overrides config)")
	outDir := flag.String("out", "", "output directory for combined CSV files (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	if *inDir != "" {
		cfg.Paths.RawDataDir = *inDir
	}
	if *outDir != "" {
		cfg.Paths.OutputDir = *outDir
	}

	if _, err := infrastructure.InitializeLogger(cfg.Logging); err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
	}

	slog.Info("Starting growth chart standardization",
		slog.String("version", contracts.Version),
		slog.String("raw_data_dir", cfg.Paths.RawDataDir),
		slog.String("output_dir", cfg.Paths.OutputDir))

	summary, err := pipeline.NewStandardizer(cfg).Run(context.Background())
	if err != nil {
		slog.Error("Standardization failed", "error", err)
		os.Exit(1)
	}
	summary.Log("standardize")
}
