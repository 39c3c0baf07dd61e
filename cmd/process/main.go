// Command process runs the statistical-family pipeline over the
// configured source registry: LMS extraction from Excel workbooks, raw
// and CSV passthrough, and the JSON provenance record.
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
	inDir := flag.String("in", "", "root directory holding the source dataset directories (overrides config)")
	outDir := flag.String("out", "", "output directory for processed files and metadata (overrides config)")
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

	slog.Info("Starting growth reference processing",
		slog.String("version", contracts.Version),
		slog.String("raw_data_dir", cfg.Paths.RawDataDir),
		slog.String("output_dir", cfg.Paths.OutputDir),
		slog.Int("sources", len(cfg.Pipeline.Sources)))

	summary, err := pipeline.NewProcessor(cfg).Run(context.Background())
	if err != nil {
		slog.Error("Processing failed", "error", err)
		os.Exit(1)
	}
	summary.Log("process")
}
