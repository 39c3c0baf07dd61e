package reader

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"growthref/pkg/contracts/domain"
)

// ReadCSV loads a delimited file into a table named after the file stem.
// Records may vary in length; a leading UTF-8 BOM is stripped.
func ReadCSV(filePath string) (*domain.Table, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("file has no header row")
	}

	header := trimAll(records[0])
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}

	name := filepath.Base(filePath)
	return &domain.Table{
		Name:    strings.TrimSuffix(name, filepath.Ext(name)),
		Columns: header,
		Rows:    records[1:],
	}, nil
}
