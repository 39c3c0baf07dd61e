// Package reader loads tabular sources into domain tables: Excel
// workbooks (one table per sheet) and delimited CSV files.
package reader

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"growthref/pkg/contracts/domain"
)

// ReadWorkbook opens an Excel workbook and returns one table per sheet.
// The first row of each sheet is taken as the header; entirely blank
// sheets are skipped. Callers decide what to do with header-only tables.
func ReadWorkbook(filePath string) ([]*domain.Table, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	var tables []*domain.Table
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			slog.Warn("Skipping unreadable sheet",
				slog.String("file", filePath),
				slog.String("sheet", sheet),
				slog.String("error", err.Error()))
			continue
		}
		if len(rows) == 0 {
			continue
		}
		t := &domain.Table{
			Name:    sheet,
			Columns: trimAll(rows[0]),
			Rows:    rows[1:],
		}
		tables = append(tables, t)
	}
	return tables, nil
}

func trimAll(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = strings.TrimSpace(c)
	}
	return out
}
