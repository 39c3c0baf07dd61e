package exporter

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"growthref/pkg/contracts/domain"
)

// MetadataWriter accumulates the provenance record for one pipeline run
// and writes it as indented JSON. Not safe for concurrent use; the
// pipeline appends records from its single collection pass.
type MetadataWriter struct {
	meta domain.RunMetadata
}

// NewMetadataWriter starts a provenance record with a fresh run id.
func NewMetadataWriter() *MetadataWriter {
	return &MetadataWriter{
		meta: domain.RunMetadata{
			RunID:       uuid.NewString(),
			GeneratedAt: time.Now().UTC(),
		},
	}
}

// RunID returns the identifier assigned to this run.
func (m *MetadataWriter) RunID() string { return m.meta.RunID }

// AddSource records a dataset source contributing to the run.
func (m *MetadataWriter) AddSource(name, directory string) {
	m.meta.Sources = append(m.meta.Sources, domain.SourceRecord{Name: name, Directory: directory})
}

// AddFile records one processed file and its output location.
func (m *MetadataWriter) AddFile(record domain.FileRecord) {
	m.meta.Files = append(m.meta.Files, record)
}

// Write persists the accumulated record to path.
func (m *MetadataWriter) Write(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	data, err := json.MarshalIndent(m.meta, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write metadata: %w", err)
	}
	slog.Info("Wrote provenance metadata",
		slog.String("path", path),
		slog.String("run_id", m.meta.RunID),
		slog.Int("files", len(m.meta.Files)))
	return nil
}
