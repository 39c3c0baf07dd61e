package dataprocessing

import (
	"strconv"

	pipeerrors "growthref/internal/errors"
	"growthref/pkg/contracts/domain"
)

// SimpleSeries is one standardized per-gender table from a simple-family
// source, keyed for the combination pass.
type SimpleSeries struct {
	Measurement domain.Measurement
	Gender      domain.Gender
	Table       *domain.Table
}

// StandardizeWHOTable turns a WHO chart table into one per-gender series:
// classify the stem, standardize the x-axis to Month (converting an
// explicit Week column), and move the x-axis column to the front.
func StandardizeWHOTable(stem string, t *domain.Table) (*SimpleSeries, error) {
	c := ClassifyWHOStem(stem)
	if c.Measurement == "" {
		return nil, pipeerrors.Unclassifiable(stem, "no measurement pattern matched")
	}
	if c.Gender == domain.GenderUnset {
		return nil, pipeerrors.Unclassifiable(stem, "no gender pattern matched")
	}

	if c.Measurement.LengthBased() {
		xCol := ""
		for _, candidate := range []string{"Length", "Height"} {
			if t.HasColumn(candidate) {
				xCol = candidate
				break
			}
		}
		if xCol == "" {
			return nil, pipeerrors.MissingColumn(stem, "Length or Height")
		}
		return &SimpleSeries{Measurement: c.Measurement, Gender: c.Gender, Table: t.MoveColumnFirst(xCol)}, nil
	}

	switch {
	case t.HasColumn("Week"):
		t = convertWeekColumn(t)
	case !t.HasColumn("Month"):
		return nil, pipeerrors.MissingColumn(stem, "Month or Week")
	}
	return &SimpleSeries{Measurement: c.Measurement, Gender: c.Gender, Table: t.MoveColumnFirst("Month")}, nil
}

// convertWeekColumn rewrites an explicit Week column as Month using the
// fixed weeks-per-month constant. Rows with a non-numeric week value are
// dropped.
func convertWeekColumn(t *domain.Table) *domain.Table {
	weekIdx := t.ColumnIndex("Week")
	out := &domain.Table{Name: t.Name, Columns: append([]string(nil), t.Columns...)}
	out.Columns[weekIdx] = "Month"
	for i := range t.Rows {
		weeks, ok := parseCell(t.Cell(i, weekIdx))
		if !ok {
			continue
		}
		row := make([]string, len(t.Columns))
		for j := range t.Columns {
			row[j] = t.Cell(i, j)
		}
		row[weekIdx] = strconv.FormatFloat(WeeksToMonths(weeks), 'g', -1, 64)
		out.Rows = append(out.Rows, row)
	}
	return out
}

// StandardizeCDCTable turns a CDC data table into per-gender series. CDC
// files carry gender as a per-row Sex code, so one input yields up to two
// series.
func StandardizeCDCTable(stem string, t *domain.Table) ([]SimpleSeries, error) {
	c := ClassifyCDCStem(stem)
	if c.Measurement == "" {
		return nil, pipeerrors.Unclassifiable(stem, "no measurement pattern matched")
	}
	if !t.HasColumn("Sex") {
		return nil, pipeerrors.MissingColumn(stem, "Sex")
	}

	xCol := ""
	if c.Measurement.LengthBased() {
		for _, candidate := range []string{"Length", "Height", "Stature"} {
			if t.HasColumn(candidate) {
				xCol = candidate
				break
			}
		}
		if xCol == "" {
			return nil, pipeerrors.MissingColumn(stem, "Length, Height, or Stature")
		}
	} else {
		if !t.HasColumn("Agemos") {
			return nil, pipeerrors.MissingColumn(stem, "Agemos")
		}
		t = t.Clone()
		t.RenameColumn("Agemos", "Month")
		xCol = "Month"
	}

	boys, girls := SplitBySex(t, "Sex", xCol)
	var series []SimpleSeries
	if !boys.IsEmpty() {
		series = append(series, SimpleSeries{Measurement: c.Measurement, Gender: domain.GenderBoys, Table: boys})
	}
	if !girls.IsEmpty() {
		series = append(series, SimpleSeries{Measurement: c.Measurement, Gender: domain.GenderGirls, Table: girls})
	}
	if len(series) == 0 {
		return nil, pipeerrors.Unclassifiable(stem, "no row matched a known sex code")
	}
	return series, nil
}

// ProcessStatSheet normalizes a statistical sheet's headers and attempts
// LMS extraction. When nothing is extractable the normalized table is
// returned instead, for raw passthrough output.
func ProcessStatSheet(t *domain.Table, ctx domain.SourceContext) ([]domain.CanonicalRow, *domain.Table) {
	normalized := &domain.Table{
		Name:    t.Name,
		Columns: NormalizeHeaders(t.Columns),
		Rows:    t.Rows,
	}
	if rows := ExtractLMS(normalized, ctx); len(rows) > 0 {
		return rows, nil
	}
	return nil, normalized
}
