package dataprocessing

import (
	"sdecli/internal/dataset"
	"sdecli/internal/errors"
)

// ImputeColumnMean fills missing values in the named column with the
// arithmetic mean of the column's present values, returning how many cells
// were filled. Zero missing values is a no-op with a zero fill count. A
// column with no present values at all has an undefined mean; that is a
// fatal DataError rather than a silent NaN fill, since a poisoned fill
// value would corrupt every downstream average.
func ImputeColumnMean(ds *dataset.Dataset, column string) (int, error) {
	var (
		sum     float64
		present int
		missing int
	)
	for i := 0; i < ds.Len(); i++ {
		if f, ok := ds.Get(i, column).Float(); ok {
			sum += f
			present++
		} else {
			missing++
		}
	}

	if missing == 0 {
		return 0, nil
	}
	if present == 0 {
		return 0, errors.NewDataError(column, "no present values to compute an imputation mean")
	}

	mean := sum / float64(present)
	for i := 0; i < ds.Len(); i++ {
		if ds.Get(i, column).IsMissing() {
			ds.Set(i, column, dataset.Number(mean))
		}
	}
	return missing, nil
}
