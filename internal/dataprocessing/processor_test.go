package dataprocessing

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pipeerrors "growthref/internal/errors"
	"growthref/pkg/contracts/domain"
)

func TestStandardizeWHOTableWithMonthColumn(t *testing.T) {
	table := &domain.Table{
		Columns: []string{"L", "Month", "M", "S"},
		Rows:    [][]string{{"1", "0", "49.9", "0.038"}},
	}
	series, err := StandardizeWHOTable("lhfa_boys_0-to-2-years", table)
	require.NoError(t, err)

	assert.Equal(t, domain.MeasurementLengthHeightForAge, series.Measurement)
	assert.Equal(t, domain.GenderBoys, series.Gender)
	assert.Equal(t, []string{"Month", "L", "M", "S"}, series.Table.Columns)
	assert.Equal(t, [][]string{{"0", "1", "49.9", "0.038"}}, series.Table.Rows)
}

func TestStandardizeWHOTableConvertsWeeks(t *testing.T) {
	table := &domain.Table{
		Columns: []string{"Week", "M"},
		Rows: [][]string{
			{"0", "3.3"},
			{"13", "6.4"},
			{"n/a", "9.9"},
		},
	}
	series, err := StandardizeWHOTable("wfa_boys_0-to-13-weeks", table)
	require.NoError(t, err)

	assert.Equal(t, []string{"Month", "M"}, series.Table.Columns)
	require.Len(t, series.Table.Rows, 2) // the non-numeric week row is dropped
	assert.Equal(t, "0", series.Table.Rows[0][0])
	want := strconv.FormatFloat(WeeksToMonths(13), 'g', -1, 64)
	assert.Equal(t, want, series.Table.Rows[1][0])
}

func TestStandardizeWHOTableLengthBased(t *testing.T) {
	table := &domain.Table{
		Columns: []string{"L", "Length", "M", "S"},
		Rows:    [][]string{{"-0.35", "45", "2.44", "0.083"}},
	}
	series, err := StandardizeWHOTable("wfl_girls_0-to-2-years", table)
	require.NoError(t, err)
	assert.Equal(t, []string{"Length", "L", "M", "S"}, series.Table.Columns)
}

func TestStandardizeWHOTableErrors(t *testing.T) {
	tests := []struct {
		name string
		stem string
		cols []string
		code pipeerrors.Code
	}{
		{name: "unknown measurement", stem: "randomfile", cols: []string{"Month", "M"}, code: pipeerrors.CodeUnclassifiable},
		{name: "missing gender", stem: "wfa_all", cols: []string{"Month", "M"}, code: pipeerrors.CodeUnclassifiable},
		{name: "no age column", stem: "wfa_boys", cols: []string{"Day", "M"}, code: pipeerrors.CodeMissingColumn},
		{name: "no length column", stem: "wfl_boys", cols: []string{"Month", "M"}, code: pipeerrors.CodeMissingColumn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := &domain.Table{Columns: tt.cols, Rows: [][]string{{"1", "2"}}}
			_, err := StandardizeWHOTable(tt.stem, table)
			require.Error(t, err)
			var fe *pipeerrors.FileError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.code, fe.Code)
		})
	}
}

func TestStandardizeCDCTableSplitsByGender(t *testing.T) {
	table := &domain.Table{
		Columns: []string{"Sex", "Agemos", "L", "M", "S"},
		Rows: [][]string{
			{"1", "0", "-0.2", "3.5", "0.09"},
			{"2", "0", "-0.1", "3.4", "0.08"},
		},
	}
	series, err := StandardizeCDCTable("wtageinf", table)
	require.NoError(t, err)
	require.Len(t, series, 2)

	boys := series[0]
	assert.Equal(t, domain.MeasurementWeightForAge, boys.Measurement)
	assert.Equal(t, domain.GenderBoys, boys.Gender)
	assert.Equal(t, []string{"Month", "L", "M", "S"}, boys.Table.Columns)
	assert.Equal(t, [][]string{{"0", "-0.2", "3.5", "0.09"}}, boys.Table.Rows)

	girls := series[1]
	assert.Equal(t, domain.GenderGirls, girls.Gender)
	assert.Equal(t, [][]string{{"0", "-0.1", "3.4", "0.08"}}, girls.Table.Rows)
}

func TestStandardizeCDCTableSingleGender(t *testing.T) {
	table := &domain.Table{
		Columns: []string{"Sex", "Agemos", "M"},
		Rows:    [][]string{{"2", "0", "3.4"}},
	}
	series, err := StandardizeCDCTable("bmiage", table)
	require.NoError(t, err)
	require.Len(t, series, 1)
	assert.Equal(t, domain.GenderGirls, series[0].Gender)
}

func TestStandardizeCDCTableLengthBased(t *testing.T) {
	table := &domain.Table{
		Columns: []string{"Sex", "Stature", "M"},
		Rows:    [][]string{{"1", "90", "13.1"}},
	}
	series, err := StandardizeCDCTable("wtstat", table)
	require.NoError(t, err)
	require.Len(t, series, 1)
	assert.Equal(t, []string{"Stature", "M"}, series[0].Table.Columns)
}

func TestStandardizeCDCTableErrors(t *testing.T) {
	tests := []struct {
		name string
		stem string
		cols []string
		rows [][]string
		code pipeerrors.Code
	}{
		{name: "unknown measurement", stem: "randomfile", cols: []string{"Sex", "Agemos"}, rows: [][]string{{"1", "0"}}, code: pipeerrors.CodeUnclassifiable},
		{name: "missing sex", stem: "wtage", cols: []string{"Agemos", "M"}, rows: [][]string{{"0", "3.5"}}, code: pipeerrors.CodeMissingColumn},
		{name: "missing agemos", stem: "wtage", cols: []string{"Sex", "M"}, rows: [][]string{{"1", "3.5"}}, code: pipeerrors.CodeMissingColumn},
		{name: "no valid sex codes", stem: "wtage", cols: []string{"Sex", "Agemos"}, rows: [][]string{{"9", "0"}}, code: pipeerrors.CodeUnclassifiable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := &domain.Table{Columns: tt.cols, Rows: tt.rows}
			_, err := StandardizeCDCTable(tt.stem, table)
			require.Error(t, err)
			var fe *pipeerrors.FileError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.code, fe.Code)
		})
	}
}

func TestProcessStatSheetExtracts(t *testing.T) {
	sheet := &domain.Table{
		Name:    "LMS",
		Columns: []string{"Age", "Height L", "Height M", "Height S"},
		Rows:    [][]string{{"1.5", "1", "76.3", "0.04"}},
	}
	ctx := domain.SourceContext{Source: "uk90", Measurement: domain.MeasurementHeight}
	rows, raw := ProcessStatSheet(sheet, ctx)
	require.Nil(t, raw)
	require.Len(t, rows, 1)
	assert.Equal(t, 76.3, rows[0].M)
}

func TestProcessStatSheetFallsBackToRaw(t *testing.T) {
	sheet := &domain.Table{
		Name:    "Notes",
		Columns: []string{"Chart", "Comment"},
		Rows:    [][]string{{"uk90", "for clinical use"}},
	}
	ctx := domain.SourceContext{Source: "uk90", Measurement: domain.MeasurementUnknown}
	rows, raw := ProcessStatSheet(sheet, ctx)
	assert.Nil(t, rows)
	require.NotNil(t, raw)
	// Headers come back normalized even on the passthrough path.
	assert.Equal(t, []string{"reference", "comment"}, raw.Columns)
}
