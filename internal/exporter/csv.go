package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"growthref/pkg/contracts/domain"
)

// CSVWriter writes canonical tables beneath a fixed output root.
type CSVWriter struct {
	outputRoot string
}

// NewCSVWriter creates a CSV writer rooted at outputRoot.
func NewCSVWriter(outputRoot string) *CSVWriter {
	return &CSVWriter{outputRoot: outputRoot}
}

// WriteOptions configures CSV writing behavior.
type WriteOptions struct {
	Headers   []string
	Records   [][]string
	BOMPrefix bool // add UTF-8 BOM for Excel compatibility
}

// WriteCSV writes data to a file relative to the output root, creating
// parent directories as needed.
func (w *CSVWriter) WriteCSV(name string, options WriteOptions) (string, error) {
	fullPath := w.resolvePath(name)

	slog.Info("Writing CSV file",
		slog.String("file", name),
		slog.String("full_path", fullPath),
		slog.Int("record_count", len(options.Records)))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	if options.BOMPrefix {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return "", fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if len(options.Headers) > 0 {
		if err := writer.Write(options.Headers); err != nil {
			return "", fmt.Errorf("failed to write headers: %w", err)
		}
	}
	for i, record := range options.Records {
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}
	writer.Flush()
	return fullPath, writer.Error()
}

// WriteTable writes a canonical table to name, padding ragged rows so
// every record has as many cells as the header.
func (w *CSVWriter) WriteTable(name string, t *domain.Table) (string, error) {
	records := make([][]string, len(t.Rows))
	for i := range t.Rows {
		row := make([]string, len(t.Columns))
		for j := range t.Columns {
			row[j] = t.Cell(i, j)
		}
		records[i] = row
	}
	return w.WriteCSV(name, WriteOptions{Headers: t.Columns, Records: records})
}

func (w *CSVWriter) resolvePath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(w.outputRoot, name)
}
