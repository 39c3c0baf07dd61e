package dataprocessing

import (
	"strconv"
	"strings"

	"growthref/pkg/contracts/domain"
)

// lmsTriplet accumulates candidate L/M/S values while a row's columns are
// scanned. Fields stay nil until some column assigns them.
type lmsTriplet struct {
	l, m, s *float64
}

// assign stores v into the field named by the column suffix. When fillOnly
// is set, a field that already has a value is left alone.
func (t *lmsTriplet) assign(column string, v *float64, fillOnly bool) {
	switch {
	case strings.HasSuffix(column, "l") || strings.Contains(column, "_l"):
		if !fillOnly || t.l == nil {
			t.l = v
		}
	case strings.HasSuffix(column, "m") || strings.Contains(column, "_m"):
		if !fillOnly || t.m == nil {
			t.m = v
		}
	case strings.HasSuffix(column, "s") || strings.Contains(column, "_s"):
		if !fillOnly || t.s == nil {
			t.s = v
		}
	}
}

// AgeColumnIndex returns the index of the first column usable as the age
// axis (any normalized name mentioning age, week or month), or -1.
func AgeColumnIndex(columns []string) int {
	for i, c := range columns {
		lower := strings.ToLower(c)
		if strings.Contains(lower, "age") || strings.Contains(lower, "week") || strings.Contains(lower, "month") {
			return i
		}
	}
	return -1
}

// ExtractLMS pulls canonical LMS rows out of a statistical table whose
// headers have already been normalized. Rows without a numeric age or
// without a resolvable M value are dropped; a nil, empty result is the
// expected outcome for auxiliary sheets and is not an error.
func ExtractLMS(t *domain.Table, ctx domain.SourceContext) []domain.CanonicalRow {
	ageIdx := AgeColumnIndex(t.Columns)
	if ageIdx < 0 {
		return nil
	}

	measurement := strings.ToLower(string(ctx.Measurement))
	genderToken := ctx.Gender.Token()

	var rows []domain.CanonicalRow
	for i := range t.Rows {
		ageVal, ok := parseCell(t.Cell(i, ageIdx))
		if !ok {
			continue
		}
		age := ResolveAge(ageVal)

		var triplet lmsTriplet
		for j, col := range t.Columns {
			lower := strings.ToLower(col)
			if !strings.Contains(lower, measurement) && !strings.Contains(lower, "lms") {
				continue
			}
			triplet.assign(lower, cellPtr(t.Cell(i, j)), false)
		}

		// Gender-qualified columns fill whatever the generic scan left
		// unset.
		if genderToken != "" {
			for j, col := range t.Columns {
				lower := strings.ToLower(col)
				if !strings.Contains(lower, genderToken) || !mentionsMeasurement(lower) {
					continue
				}
				triplet.assign(lower, cellPtr(t.Cell(i, j)), true)
			}
		}

		if triplet.m == nil {
			continue
		}
		rows = append(rows, domain.CanonicalRow{
			Source:      ctx.Source,
			Measurement: ctx.Measurement,
			Gender:      ctx.Gender,
			AgeRange:    ctx.AgeRange,
			AgeYears:    age.Years,
			AgeWeeks:    age.Weeks,
			AgeMonths:   age.Months,
			L:           triplet.l,
			M:           *triplet.m,
			S:           triplet.s,
		})
	}
	return rows
}

func mentionsMeasurement(column string) bool {
	return strings.Contains(column, "height") || strings.Contains(column, "weight") ||
		strings.Contains(column, "bmi") || strings.Contains(column, "hc")
}

// parseCell parses a numeric cell, tolerating thousands separators and
// surrounding whitespace.
func parseCell(cell string) (float64, bool) {
	cell = strings.ReplaceAll(strings.TrimSpace(cell), ",", "")
	if cell == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func cellPtr(cell string) *float64 {
	if v, ok := parseCell(cell); ok {
		return &v
	}
	return nil
}
