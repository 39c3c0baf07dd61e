// Command convert turns every Excel workbook in the raw data directories
// into per-sheet CSV files, ready for the standardization pipeline.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"growthref/internal/config"
	"growthref/internal/infrastructure"
	"growthref/internal/pipeline"
)

func main() {
	configFile := flag.String("config", "", "path to YAML config file")
	dir := flag.String("dir", "", "convert a single directory instead of the raw data who/ and cdc/ directories")
	outDir := flag.String("out", "", "output directory (default: next to each workbook)")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	if _, err := infrastructure.InitializeLogger(cfg.Logging); err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
	}

	dirs := []string{
		filepath.Join(cfg.Paths.RawDataDir, "who"),
		filepath.Join(cfg.Paths.RawDataDir, "cdc"),
	}
	if *dir != "" {
		dirs = []string{*dir}
	}

	converter := pipeline.NewConverter(*outDir)
	converted, errors := 0, 0
	for _, d := range dirs {
		if _, err := os.Stat(d); err != nil {
			slog.Warn("Directory not found", slog.String("dir", d))
			continue
		}
		summary, err := converter.ConvertDirectory(context.Background(), d)
		if err != nil {
			slog.Error("Conversion failed", slog.String("dir", d), "error", err)
			os.Exit(1)
		}
		converted += len(summary.Outputs)
		errors += summary.Skipped
	}

	slog.Info("Conversion complete",
		slog.Int("files_converted", converted),
		slog.Int("errors", errors))
}
