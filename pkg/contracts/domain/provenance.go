package domain

import "time"

// FileRecordType classifies a provenance record's output.
type FileRecordType string

const (
	FileRecordRawCSV       FileRecordType = "raw_csv"
	FileRecordProcessedLMS FileRecordType = "processed_lms"
	FileRecordCSV          FileRecordType = "csv"
)

// FileRecord describes one processed input file and where its canonical
// output landed. Consumed only by the metadata sink.
type FileRecord struct {
	Source      string         `json:"source"`
	Original    string         `json:"original"`
	Output      string         `json:"output"`
	Type        FileRecordType `json:"type"`
	Measurement Measurement    `json:"measurement,omitempty"`
	Gender      Gender         `json:"gender,omitempty"`
	AgeRange    string         `json:"age_range,omitempty"`
	Rows        int            `json:"rows,omitempty"`
}

// SourceRecord names one dataset source that contributed files to a run.
type SourceRecord struct {
	Name      string `json:"name"`
	Directory string `json:"directory"`
}

// RunMetadata is the provenance record accumulated over one pipeline run.
type RunMetadata struct {
	RunID       string         `json:"run_id"`
	GeneratedAt time.Time      `json:"generated_at"`
	Sources     []SourceRecord `json:"sources"`
	Files       []FileRecord   `json:"files"`
}
