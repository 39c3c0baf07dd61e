package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"growthref/pkg/contracts/domain"
)

func statContext(m domain.Measurement, g domain.Gender) domain.SourceContext {
	return domain.SourceContext{Source: "uk90", Measurement: m, Gender: g}
}

func TestExtractLMSGeneric(t *testing.T) {
	table := &domain.Table{
		Name:    "LMS",
		Columns: []string{"age_years", "height_l", "height_m", "height_s"},
		Rows: [][]string{
			{"1.5", "1", "76.3", "0.04"},
			{"4", "0.9", "58.1", "0.05"},
		},
	}
	rows := ExtractLMS(table, statContext(domain.MeasurementHeight, domain.GenderUnset))
	require.Len(t, rows, 2)

	first := rows[0]
	assert.Equal(t, "uk90", first.Source)
	assert.Equal(t, domain.MeasurementHeight, first.Measurement)
	assert.Equal(t, 1.5, first.AgeYears)
	assert.InDelta(t, 18, first.AgeMonths, 1e-9)
	require.NotNil(t, first.L)
	assert.Equal(t, 1.0, *first.L)
	assert.Equal(t, 76.3, first.M)
	require.NotNil(t, first.S)
	assert.Equal(t, 0.04, *first.S)

	// 4 falls in the weeks band of the magnitude heuristic.
	assert.Equal(t, 4.0, rows[1].AgeWeeks)
	assert.InDelta(t, 4.0/WeeksPerMonth, rows[1].AgeMonths, 1e-9)
}

func TestExtractLMSRowWithoutMDropped(t *testing.T) {
	table := &domain.Table{
		Columns: []string{"age_years", "height_l", "height_m", "height_s"},
		Rows: [][]string{
			{"1", "0.8", "", "0.05"},  // M missing
			{"1.5", "0.8", "77", ""},  // S missing is fine
			{"bad", "0.8", "78", ""},  // non-numeric age
			{"", "0.8", "79", "0.04"}, // missing age
		},
	}
	rows := ExtractLMS(table, statContext(domain.MeasurementHeight, domain.GenderUnset))
	require.Len(t, rows, 1)
	assert.Equal(t, 77.0, rows[0].M)
	assert.Nil(t, rows[0].S)
}

func TestExtractLMSColumnsMatchedByLMSKeyword(t *testing.T) {
	table := &domain.Table{
		Columns: []string{"age_months", "lms_l", "lms_m", "lms_s"},
		Rows:    [][]string{{"60", "-1.2", "15.9", "0.08"}},
	}
	rows := ExtractLMS(table, statContext(domain.MeasurementUnknown, domain.GenderUnset))
	require.Len(t, rows, 1)
	assert.Equal(t, 15.9, rows[0].M)
	assert.Equal(t, 60.0, rows[0].AgeMonths)
}

func TestExtractLMSGenderQualifiedFillsUnsetOnly(t *testing.T) {
	// The male_height columns never mention "weight", so only the
	// gender-qualified strategy can see them.
	table := &domain.Table{
		Columns: []string{"age_years", "weight_m", "male_height_l", "male_height_s", "male_height_m"},
		Rows:    [][]string{{"1", "16.2", "-0.7", "0.09", "99"}},
	}
	rows := ExtractLMS(table, statContext(domain.MeasurementWeight, domain.GenderBoys))
	require.Len(t, rows, 1)
	// M came from the generic strategy and must not be overridden.
	assert.Equal(t, 16.2, rows[0].M)
	// L and S were unset and get filled by the gender-qualified pass.
	require.NotNil(t, rows[0].L)
	assert.Equal(t, -0.7, *rows[0].L)
	require.NotNil(t, rows[0].S)
	assert.Equal(t, 0.09, *rows[0].S)
}

func TestExtractLMSNoAgeColumn(t *testing.T) {
	table := &domain.Table{
		Columns: []string{"height_l", "height_m", "height_s"},
		Rows:    [][]string{{"1", "76", "0.04"}},
	}
	assert.Nil(t, ExtractLMS(table, statContext(domain.MeasurementHeight, domain.GenderUnset)))
}

func TestAgeColumnIndex(t *testing.T) {
	assert.Equal(t, 0, AgeColumnIndex([]string{"age_years", "m"}))
	assert.Equal(t, 1, AgeColumnIndex([]string{"reference", "age_months"}))
	assert.Equal(t, -1, AgeColumnIndex([]string{"reference", "l", "m", "s"}))
}
