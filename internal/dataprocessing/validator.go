package dataprocessing

import (
	"sdecli/internal/dataset"
	"sdecli/internal/errors"
)

// EnsureColumns verifies every required column is present before numeric
// work begins. It collects the full missing set so the error names all
// absent columns, not just the first.
func EnsureColumns(ds *dataset.Dataset, required []string) error {
	var missing []string
	for _, col := range required {
		if !ds.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return errors.NewSchemaError(missing, ds.Columns())
	}
	return nil
}
