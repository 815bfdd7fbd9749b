package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sdecli/internal/dataset"
)

// buildDataset constructs a record set with the full required column set.
// Each entry of rows maps a column to its raw cell.
func buildDataset(t *testing.T, rows []dataset.Row) *dataset.Dataset {
	t.Helper()
	ds := dataset.New(RequiredColumns())
	for _, row := range rows {
		ds.Append(row)
	}
	return ds
}

func TestCoerceNumeric(t *testing.T) {
	t.Run("parses text numbers in place", func(t *testing.T) {
		ds := buildDataset(t, []dataset.Row{
			{ColStudentID: dataset.Text("S001"), ColMaths: dataset.Text("80.5")},
		})
		CoerceNumeric(ds, NumericColumns())

		f, ok := ds.Get(0, ColMaths).Float()
		require.True(t, ok)
		assert.Equal(t, 80.5, f)
	})

	t.Run("unparsable values become missing without error", func(t *testing.T) {
		ds := buildDataset(t, []dataset.Row{
			{ColStudentID: dataset.Text("S001"), ColMaths: dataset.Text("eighty")},
			{ColStudentID: dataset.Text("S002"), ColMaths: dataset.Text("70")},
		})
		before := CoerceNumeric(ds, NumericColumns())

		assert.True(t, ds.Get(0, ColMaths).IsMissing())
		assert.Equal(t, 1, before[ColMaths])
	})

	t.Run("counts absent and empty cells as missing before", func(t *testing.T) {
		ds := buildDataset(t, []dataset.Row{
			{ColStudentID: dataset.Text("S001"), ColMaths: dataset.Text("80")},
			{ColStudentID: dataset.Text("S002")},
		})
		before := CoerceNumeric(ds, NumericColumns())

		// The second row has no maths cell at all; absent counts the same
		// as empty.
		assert.Equal(t, 1, before[ColMaths])
		assert.Equal(t, 2, before[ColPhysics])
	})

	t.Run("idempotent on already-numeric columns", func(t *testing.T) {
		ds := buildDataset(t, []dataset.Row{
			{ColStudentID: dataset.Text("S001"), ColMaths: dataset.Number(80.25)},
		})
		first := CoerceNumeric(ds, NumericColumns())
		second := CoerceNumeric(ds, NumericColumns())

		f, ok := ds.Get(0, ColMaths).Float()
		require.True(t, ok)
		assert.Equal(t, 80.25, f)
		assert.Equal(t, first, second)
	})

	t.Run("rejects NaN and infinity text", func(t *testing.T) {
		ds := buildDataset(t, []dataset.Row{
			{ColStudentID: dataset.Text("S001"), ColMaths: dataset.Text("NaN"), ColPhysics: dataset.Text("+Inf")},
		})
		before := CoerceNumeric(ds, NumericColumns())

		assert.True(t, ds.Get(0, ColMaths).IsMissing())
		assert.True(t, ds.Get(0, ColPhysics).IsMissing())
		assert.Equal(t, 1, before[ColMaths])
		assert.Equal(t, 1, before[ColPhysics])
	})

	t.Run("never touches student_id", func(t *testing.T) {
		ds := buildDataset(t, []dataset.Row{
			{ColStudentID: dataset.Text("12345"), ColMaths: dataset.Text("80")},
		})
		CoerceNumeric(ds, NumericColumns())

		id := ds.Get(0, ColStudentID)
		assert.Equal(t, dataset.KindText, id.Kind())
		assert.Equal(t, "12345", id.String())
	})
}

func TestMissingCounts(t *testing.T) {
	ds := buildDataset(t, []dataset.Row{
		{ColStudentID: dataset.Text("S001"), ColMaths: dataset.Number(80)},
		{ColStudentID: dataset.Text("S002")},
	})
	counts := MissingCounts(ds, []string{ColMaths, ColPhysics})
	assert.Equal(t, 1, counts[ColMaths])
	assert.Equal(t, 2, counts[ColPhysics])
}
