package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"growthref/internal/config"
	"growthref/internal/dataprocessing"
	pipeerrors "growthref/internal/errors"
	"growthref/internal/exporter"
	"growthref/internal/files"
	"growthref/internal/reader"
	"growthref/pkg/contracts/domain"
)

// SeriesKey identifies one logical output series.
type SeriesKey struct {
	Measurement domain.Measurement
	Gender      domain.Gender
}

// Standardizer runs the simple-family pipeline: WHO and CDC chart CSVs
// in, one combined file per (measurement, gender, source) out.
type Standardizer struct {
	discovery *files.Discovery
	csv       *exporter.CSVWriter
	workers   int
}

// NewStandardizer wires a standardizer from configuration.
func NewStandardizer(cfg *config.Config) *Standardizer {
	return &Standardizer{
		discovery: files.NewDiscovery(cfg.Paths.RawDataDir),
		csv:       exporter.NewCSVWriter(cfg.Paths.OutputDir),
		workers:   cfg.Pipeline.Workers,
	}
}

// simpleSource binds a source directory to its per-file standardizer.
type simpleSource struct {
	name        string
	dir         string
	standardize func(stem string, t *domain.Table) ([]dataprocessing.SimpleSeries, error)
}

func whoStandardize(stem string, t *domain.Table) ([]dataprocessing.SimpleSeries, error) {
	s, err := dataprocessing.StandardizeWHOTable(stem, t)
	if err != nil {
		return nil, err
	}
	return []dataprocessing.SimpleSeries{*s}, nil
}

// Run processes both simple sources and writes every combined series.
func (s *Standardizer) Run(ctx context.Context) (*Summary, error) {
	summary := &Summary{}
	sources := []simpleSource{
		{name: "who", dir: "who", standardize: whoStandardize},
		{name: "cdc", dir: "cdc", standardize: dataprocessing.StandardizeCDCTable},
	}
	for _, src := range sources {
		if err := s.runSource(ctx, src, summary); err != nil {
			return summary, err
		}
	}
	return summary, nil
}

func (s *Standardizer) runSource(ctx context.Context, src simpleSource, summary *Summary) error {
	if !s.discovery.DirExists(src.dir) {
		slog.Warn("Source directory not found", slog.String("source", src.name), slog.String("dir", src.dir))
		return nil
	}
	infos, err := s.discovery.FindCSVFiles(src.dir)
	if err != nil {
		return fmt.Errorf("discovering %s files: %w", src.name, err)
	}
	slog.Info("Processing source",
		slog.String("source", src.name),
		slog.Int("files", len(infos)))

	outcomes := s.standardizeFiles(ctx, src, infos)

	// Collect-all barrier: buckets are filled in input order so the
	// combiner's last-wins policy sees files the way they were listed.
	buckets := map[SeriesKey][]*domain.Table{}
	var order []SeriesKey
	for i, outcome := range outcomes {
		if outcome.err != nil {
			summary.skip(infos[i].Name, outcome.err)
			continue
		}
		summary.Processed++
		for _, series := range outcome.series {
			key := SeriesKey{Measurement: series.Measurement, Gender: series.Gender}
			if _, ok := buckets[key]; !ok {
				order = append(order, key)
			}
			buckets[key] = append(buckets[key], series.Table)
		}
	}

	for _, key := range order {
		tables := buckets[key]
		combined := dataprocessing.Combine(tables, seriesXColumn(tables))
		name := fmt.Sprintf("%s_%s_%s.csv", key.Measurement, key.Gender, src.name)
		path, err := s.csv.WriteTable(name, combined)
		if err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
		summary.output(path)
		slog.Info("Saved combined series",
			slog.String("file", filepath.Base(path)),
			slog.Int("rows", len(combined.Rows)))
	}
	return nil
}

type fileOutcome struct {
	series []dataprocessing.SimpleSeries
	err    error
}

// standardizeFiles maps the per-file work across a bounded worker pool.
// Every outcome lands in the slot matching its input index, so downstream
// collection stays deterministic regardless of scheduling.
func (s *Standardizer) standardizeFiles(ctx context.Context, src simpleSource, infos []files.FileInfo) []fileOutcome {
	outcomes := make([]fileOutcome, len(infos))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, info := range infos {
		i, info := i, info
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				outcomes[i] = fileOutcome{err: err}
				return nil
			}
			outcomes[i] = s.standardizeFile(src, info)
			return nil
		})
	}
	g.Wait() // workers report per-file failures via their slot, never an error
	return outcomes
}

func (s *Standardizer) standardizeFile(src simpleSource, info files.FileInfo) fileOutcome {
	t, err := reader.ReadCSV(info.Path)
	if err != nil {
		return fileOutcome{err: pipeerrors.Unreadable(info.Name, err)}
	}
	series, err := src.standardize(info.Stem, t)
	if err != nil {
		return fileOutcome{err: err}
	}
	return fileOutcome{series: series}
}

// seriesXColumn picks the combiner's x-axis: the first column of the
// first table when it is a recognized x-axis name, Month otherwise.
func seriesXColumn(tables []*domain.Table) string {
	if len(tables) > 0 && len(tables[0].Columns) > 0 {
		first := tables[0].Columns[0]
		for _, known := range domain.XAxisColumns {
			if first == known {
				return first
			}
		}
	}
	return "Month"
}
