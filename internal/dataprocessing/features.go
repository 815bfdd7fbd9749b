package dataprocessing

import (
	"fmt"

	"sdecli/internal/dataset"
)

// AddAverageScore derives the average_score column as the per-row mean of
// maths, computer_science, and physics. Missing values are skipped; only if
// all three are missing is the result missing. Must run after imputation so
// physics contributes a real value where it was filled.
func AddAverageScore(ds *dataset.Dataset) error {
	if err := ds.AddColumn(ColAverageScore); err != nil {
		return fmt.Errorf("add derived column: %w", err)
	}
	for i := 0; i < ds.Len(); i++ {
		var (
			sum     float64
			present int
		)
		for _, col := range ScoreColumns() {
			if f, ok := ds.Get(i, col).Float(); ok {
				sum += f
				present++
			}
		}
		if present == 0 {
			ds.Set(i, ColAverageScore, dataset.Missing())
			continue
		}
		ds.Set(i, ColAverageScore, dataset.Number(sum/float64(present)))
	}
	return nil
}
