package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	pipeerrors "growthref/internal/errors"
	"growthref/internal/exporter"
	"growthref/internal/files"
	"growthref/internal/reader"
)

// Converter turns Excel workbooks into CSV files, one per sheet. A
// single-sheet workbook keeps its stem; multi-sheet workbooks append the
// sheet name. With no explicit output root, CSVs land next to their
// workbook.
type Converter struct {
	outputRoot string
}

// NewConverter creates a converter. outputRoot may be empty.
func NewConverter(outputRoot string) *Converter {
	return &Converter{outputRoot: outputRoot}
}

// ConvertDirectory converts every workbook directly inside dir.
func (c *Converter) ConvertDirectory(ctx context.Context, dir string) (*Summary, error) {
	discovery := files.NewDiscovery(dir)
	infos, err := discovery.FindExcelFiles(".")
	if err != nil {
		return nil, fmt.Errorf("discovering workbooks: %w", err)
	}
	slog.Info("Converting workbooks", slog.String("dir", dir), slog.Int("files", len(infos)))

	summary := &Summary{}
	for _, info := range infos {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		outputs, err := c.ConvertFile(info.Path)
		if err != nil {
			summary.skip(info.Name, err)
			continue
		}
		summary.Processed++
		summary.Outputs = append(summary.Outputs, outputs...)
	}
	return summary, nil
}

// ConvertFile converts one workbook and returns the created CSV paths.
func (c *Converter) ConvertFile(path string) ([]string, error) {
	tables, err := reader.ReadWorkbook(path)
	if err != nil {
		return nil, pipeerrors.Unreadable(filepath.Base(path), err)
	}

	outDir := c.outputRoot
	if outDir == "" {
		outDir = filepath.Dir(path)
	}
	writer := exporter.NewCSVWriter(outDir)

	stem := filepath.Base(path)
	stem = stem[:len(stem)-len(filepath.Ext(stem))]

	var outputs []string
	for _, t := range tables {
		name := stem + ".csv"
		if len(tables) > 1 {
			name = fmt.Sprintf("%s_%s.csv", stem, sanitizeSheetName(t.Name))
		}
		out, err := writer.WriteTable(name, t)
		if err != nil {
			return outputs, err
		}
		slog.Info("Converted sheet",
			slog.String("workbook", filepath.Base(path)),
			slog.String("sheet", t.Name),
			slog.String("output", filepath.Base(out)))
		outputs = append(outputs, out)
	}
	return outputs, nil
}
