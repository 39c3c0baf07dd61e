package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"growthref/internal/config"
	"growthref/internal/dataprocessing"
	pipeerrors "growthref/internal/errors"
	"growthref/internal/exporter"
	"growthref/internal/files"
	"growthref/internal/reader"
	"growthref/pkg/contracts/domain"
)

// Processor runs the statistical-family pipeline over the configured
// source registry: LMS extraction from Excel workbooks, raw passthrough
// for sheets without extractable data, CSV passthrough, and the JSON
// provenance record.
type Processor struct {
	discovery *files.Discovery
	csv       *exporter.CSVWriter
	metadata  *exporter.MetadataWriter
	sources   []config.SourceConfig
	meta      string
}

// NewProcessor wires a processor from configuration.
func NewProcessor(cfg *config.Config) *Processor {
	return &Processor{
		discovery: files.NewDiscovery(cfg.Paths.RawDataDir),
		csv:       exporter.NewCSVWriter(cfg.Paths.OutputDir),
		metadata:  exporter.NewMetadataWriter(),
		sources:   cfg.Pipeline.Sources,
		meta:      filepath.Join(cfg.Paths.OutputDir, cfg.Paths.MetadataFile),
	}
}

// Run processes every configured source and writes the provenance
// record. Per-file failures are reported in the summary, never fatal.
func (p *Processor) Run(ctx context.Context) (*Summary, error) {
	summary := &Summary{}
	for _, src := range p.sources {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		if !p.discovery.DirExists(src.Directory) {
			slog.Warn("Source directory not found",
				slog.String("source", src.Name),
				slog.String("dir", src.Directory))
			continue
		}
		slog.Info("Processing source", slog.String("source", src.Name))
		p.metadata.AddSource(src.Name, src.Directory)

		workbooks, err := p.discovery.WalkExcelFiles(src.Directory)
		if err != nil {
			return summary, fmt.Errorf("discovering %s workbooks: %w", src.Name, err)
		}
		for _, info := range workbooks {
			p.processWorkbook(src, info, summary)
		}

		csvs, err := p.discovery.WalkCSVFiles(src.Directory)
		if err != nil {
			return summary, fmt.Errorf("discovering %s csv files: %w", src.Name, err)
		}
		for _, info := range csvs {
			p.processCSV(src, info, summary)
		}
	}

	if err := p.metadata.Write(p.meta); err != nil {
		return summary, err
	}
	return summary, nil
}

// processWorkbook extracts LMS rows from every sheet of one workbook.
// Sheets with nothing extractable are written through raw; extracted rows
// across sheets are combined into one processed file.
func (p *Processor) processWorkbook(src config.SourceConfig, info files.FileInfo, summary *Summary) {
	tables, err := reader.ReadWorkbook(info.Path)
	if err != nil {
		summary.skip(info.Name, pipeerrors.Unreadable(info.Name, err))
		return
	}

	c := dataprocessing.ClassifyStatStem(info.Stem)
	sctx := domain.SourceContext{
		Source:      src.Name,
		Measurement: c.Measurement,
		Gender:      c.Gender,
		AgeRange:    c.AgeRange,
	}

	var extracted []domain.CanonicalRow
	wrote := false
	for _, t := range tables {
		if t.IsEmpty() {
			continue
		}
		rows, raw := dataprocessing.ProcessStatSheet(t, sctx)
		if rows != nil {
			extracted = append(extracted, rows...)
			continue
		}
		name := fmt.Sprintf("%s_%s_%s.csv", src.Name, info.Stem, sanitizeSheetName(t.Name))
		path, err := p.csv.WriteTable(name, raw)
		if err != nil {
			summary.skip(info.Name, err)
			return
		}
		summary.output(path)
		wrote = true
		p.metadata.AddFile(domain.FileRecord{
			Source:      src.Name,
			Original:    info.Path,
			Output:      path,
			Type:        domain.FileRecordRawCSV,
			Measurement: sctx.Measurement,
			Gender:      sctx.Gender,
			AgeRange:    sctx.AgeRange,
		})
	}

	if len(extracted) > 0 {
		name := fmt.Sprintf("%s_%s_processed.csv", src.Name, info.Stem)
		path, err := p.csv.WriteLMSRows(name, extracted)
		if err != nil {
			summary.skip(info.Name, err)
			return
		}
		summary.output(path)
		wrote = true
		p.metadata.AddFile(domain.FileRecord{
			Source:      src.Name,
			Original:    info.Path,
			Output:      path,
			Type:        domain.FileRecordProcessedLMS,
			Measurement: sctx.Measurement,
			Gender:      sctx.Gender,
			AgeRange:    sctx.AgeRange,
			Rows:        len(extracted),
		})
	}

	if wrote {
		summary.Processed++
	}
}

// processCSV passes an already-delimited file through with normalized
// headers.
func (p *Processor) processCSV(src config.SourceConfig, info files.FileInfo, summary *Summary) {
	t, err := reader.ReadCSV(info.Path)
	if err != nil {
		summary.skip(info.Name, pipeerrors.Unreadable(info.Name, err))
		return
	}
	t.Columns = dataprocessing.NormalizeHeaders(t.Columns)

	name := fmt.Sprintf("%s_%s", src.Name, info.Name)
	path, err := p.csv.WriteTable(name, t)
	if err != nil {
		summary.skip(info.Name, err)
		return
	}
	summary.output(path)
	summary.Processed++

	record := domain.FileRecord{
		Source:   src.Name,
		Original: info.Path,
		Output:   path,
		Type:     domain.FileRecordCSV,
		Rows:     len(t.Rows),
	}
	if c := dataprocessing.ClassifyStatStem(info.Stem); c.Measurement != domain.MeasurementUnknown {
		record.Measurement = c.Measurement
	}
	p.metadata.AddFile(record)
}

func sanitizeSheetName(name string) string {
	name = strings.ReplaceAll(name, "/", "_")
	return strings.ReplaceAll(name, "\\", "_")
}
