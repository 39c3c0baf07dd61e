package exporter

import (
	"strconv"

	"growthref/pkg/contracts/domain"
)

// lmsHeaders is the column layout of processed LMS output files.
var lmsHeaders = []string{
	"source", "measurement", "age_years", "age_weeks", "age_months",
	"gender", "age_range", "L", "M", "S",
}

// WriteLMSRows writes extracted canonical rows to name as a processed
// LMS file. Absent L or S values become empty cells.
func (w *CSVWriter) WriteLMSRows(name string, rows []domain.CanonicalRow) (string, error) {
	records := make([][]string, len(rows))
	for i, r := range rows {
		records[i] = []string{
			r.Source,
			string(r.Measurement),
			formatFloat(r.AgeYears),
			formatFloat(r.AgeWeeks),
			formatFloat(r.AgeMonths),
			string(r.Gender),
			r.AgeRange,
			formatOptional(r.L),
			formatFloat(r.M),
			formatOptional(r.S),
		}
	}
	return w.WriteCSV(name, WriteOptions{Headers: lmsHeaders, Records: records})
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}
