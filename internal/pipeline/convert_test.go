package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverterSingleSheetKeepsStem(t *testing.T) {
	dir := t.TempDir()
	writeWorkbook(t, filepath.Join(dir, "wfa_boys.xlsx"),
		[]string{"zscores"},
		map[string][][]string{
			"zscores": {
				{"Month", "M"},
				{"0", "3.3"},
			},
		})

	outputs, err := NewConverter("").ConvertFile(filepath.Join(dir, "wfa_boys.xlsx"))
	require.NoError(t, err)
	require.Len(t, outputs, 1)
	assert.Equal(t, filepath.Join(dir, "wfa_boys.csv"), outputs[0])

	records := readCSVFile(t, outputs[0])
	assert.Equal(t, [][]string{{"Month", "M"}, {"0", "3.3"}}, records)
}

func TestConverterMultiSheetAppendsSheetName(t *testing.T) {
	dir := t.TempDir()
	writeWorkbook(t, filepath.Join(dir, "charts.xlsx"),
		[]string{"boys", "girls"},
		map[string][][]string{
			"boys":  {{"Month", "M"}, {"0", "3.3"}},
			"girls": {{"Month", "M"}, {"0", "3.2"}},
		})

	outputs, err := NewConverter("").ConvertFile(filepath.Join(dir, "charts.xlsx"))
	require.NoError(t, err)
	require.Len(t, outputs, 2)
	assert.Equal(t, filepath.Join(dir, "charts_boys.csv"), outputs[0])
	assert.Equal(t, filepath.Join(dir, "charts_girls.csv"), outputs[1])
}

func TestConverterExplicitOutputRoot(t *testing.T) {
	dir := t.TempDir()
	out := t.TempDir()
	writeWorkbook(t, filepath.Join(dir, "wfa_boys.xlsx"),
		[]string{"zscores"},
		map[string][][]string{"zscores": {{"Month", "M"}, {"0", "3.3"}}})

	outputs, err := NewConverter(out).ConvertFile(filepath.Join(dir, "wfa_boys.xlsx"))
	require.NoError(t, err)
	require.Len(t, outputs, 1)
	assert.Equal(t, filepath.Join(out, "wfa_boys.csv"), outputs[0])
}

func TestConvertDirectory(t *testing.T) {
	dir := t.TempDir()
	writeWorkbook(t, filepath.Join(dir, "a.xlsx"),
		[]string{"s"}, map[string][][]string{"s": {{"Month"}, {"0"}}})
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.xlsx"), []byte("nope"), 0644))

	summary, err := NewConverter("").ConvertDirectory(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Processed)
	assert.Equal(t, 1, summary.Skipped)
	assert.Len(t, summary.Outputs, 1)
}
