package dataprocessing

import (
	"context"
	stderrors "errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sdecli/internal/dataset"
	"sdecli/internal/errors"
)

// rawRow builds a record the way it arrives from a tabular reader, every
// cell still text.
func rawRow(cells map[string]string) dataset.Row {
	row := dataset.Row{}
	for col, cell := range cells {
		row[col] = dataset.Text(cell)
	}
	return row
}

func TestPipelineRun(t *testing.T) {
	p := NewPipeline(slog.Default())
	ctx := context.Background()

	t.Run("end to end scenario", func(t *testing.T) {
		ds := buildDataset(t, []dataset.Row{
			rawRow(map[string]string{
				ColStudentID: "S001", ColMaths: "60", ColCS: "60", ColPhysics: "",
				ColStudyHours: "4", ColAttendance: "80",
			}),
			rawRow(map[string]string{
				ColStudentID: "S002", ColMaths: "70", ColCS: "70", ColPhysics: "50",
				ColStudyHours: "6", ColAttendance: "85",
			}),
			rawRow(map[string]string{
				ColStudentID: "S003", ColMaths: "80", ColCS: "80", ColPhysics: "70",
				ColStudyHours: "9", ColAttendance: "90",
			}),
		})

		quality, summary, err := p.Run(ctx, ds)
		require.NoError(t, err)

		// Physics mean over present values is 60, filled into row 1.
		assert.Equal(t, 1, quality.PhysicsFilled)
		assert.Equal(t, 1, quality.MissingBefore[ColPhysics])
		assert.Equal(t, 0, quality.MissingAfter[ColPhysics])

		f, ok := ds.Get(0, ColPhysics).Float()
		require.True(t, ok)
		assert.Equal(t, 60.0, f)

		want := []float64{60, 190.0 / 3, 230.0 / 3}
		for i, expected := range want {
			got, ok := ds.Get(i, ColAverageScore).Float()
			require.True(t, ok)
			assert.InDelta(t, expected, got, 1e-9, "row %d", i)
		}

		assert.Equal(t, "S003", summary.TopStudent)
		assert.Equal(t, 76.67, summary.TopAverage)
		assert.Equal(t, "S001", summary.LowestStudent)
		assert.Equal(t, 60.0, summary.LowestAverage)
	})

	t.Run("row count and order survive the run", func(t *testing.T) {
		ds := buildDataset(t, []dataset.Row{
			rawRow(map[string]string{ColStudentID: "S001", ColMaths: "60", ColCS: "60", ColPhysics: "50", ColStudyHours: "4", ColAttendance: "80"}),
			rawRow(map[string]string{ColStudentID: "S002", ColMaths: "70", ColCS: "70", ColPhysics: "60", ColStudyHours: "6", ColAttendance: "85"}),
		})

		_, _, err := p.Run(ctx, ds)
		require.NoError(t, err)

		assert.Equal(t, 2, ds.Len())
		assert.Equal(t, "S001", ds.Get(0, ColStudentID).String())
		assert.Equal(t, "S002", ds.Get(1, ColStudentID).String())
	})

	t.Run("schema failure aborts before numeric work", func(t *testing.T) {
		ds := dataset.New([]string{ColStudentID, ColMaths})
		_, _, err := p.Run(ctx, ds)
		require.Error(t, err)

		var schemaErr *errors.SchemaError
		assert.True(t, stderrors.As(err, &schemaErr))
	})

	t.Run("all-missing physics aborts the run", func(t *testing.T) {
		ds := buildDataset(t, []dataset.Row{
			rawRow(map[string]string{ColStudentID: "S001", ColMaths: "60", ColCS: "60", ColPhysics: "n/a", ColStudyHours: "4", ColAttendance: "80"}),
		})

		_, _, err := p.Run(ctx, ds)
		require.Error(t, err)

		var dataErr *errors.DataError
		assert.True(t, stderrors.As(err, &dataErr))
	})

	t.Run("empty record set aborts at summarisation", func(t *testing.T) {
		ds := buildDataset(t, nil)
		_, _, err := p.Run(ctx, ds)
		require.Error(t, err)

		var statsErr *errors.StatisticsError
		assert.True(t, stderrors.As(err, &statsErr))
	})

	t.Run("quality counters track unparsable values", func(t *testing.T) {
		ds := buildDataset(t, []dataset.Row{
			rawRow(map[string]string{ColStudentID: "S001", ColMaths: "abc", ColCS: "60", ColPhysics: "50", ColStudyHours: "4", ColAttendance: "80"}),
			rawRow(map[string]string{ColStudentID: "S002", ColMaths: "70", ColCS: "70", ColPhysics: "60", ColStudyHours: "6", ColAttendance: "85"}),
		})

		quality, _, err := p.Run(ctx, ds)
		require.NoError(t, err)

		assert.Equal(t, 1, quality.MissingBefore[ColMaths])
		assert.Equal(t, 1, quality.MissingAfter[ColMaths])
		assert.Equal(t, 0, quality.PhysicsFilled)
	})
}
