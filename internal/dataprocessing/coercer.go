package dataprocessing

import (
	"math"
	"strconv"
	"strings"

	"sdecli/internal/dataset"
)

// CoerceNumeric converts the given columns to numeric values in place and
// returns the per-column count of values that were missing under the source
// representation (empty, absent, or unparsable). Unparsable values become
// the missing marker rather than an error; that tolerance is the cleaning
// policy, matching how invalid entries arrive in real exports. Values that
// are already numeric pass through unchanged, so coercion is idempotent.
// Non-numeric columns such as student_id are never touched.
func CoerceNumeric(ds *dataset.Dataset, columns []string) map[string]int {
	missingBefore := make(map[string]int, len(columns))
	for _, col := range columns {
		missingBefore[col] = 0
		for i := 0; i < ds.Len(); i++ {
			v := ds.Get(i, col)
			if v.IsNumber() {
				continue
			}
			num, ok := parseNumber(v)
			if !ok {
				missingBefore[col]++
				ds.Set(i, col, dataset.Missing())
				continue
			}
			ds.Set(i, col, dataset.Number(num))
		}
	}
	return missingBefore
}

// parseNumber attempts to read a finite number out of a non-numeric cell.
// NaN and infinities are rejected so that after coercion every value is
// either finite or the explicit missing marker.
func parseNumber(v dataset.Value) (float64, bool) {
	if v.IsMissing() {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v.String()), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// MissingCounts returns the number of missing values per column.
func MissingCounts(ds *dataset.Dataset, columns []string) map[string]int {
	counts := make(map[string]int, len(columns))
	for _, col := range columns {
		counts[col] = 0
		for i := 0; i < ds.Len(); i++ {
			if ds.Get(i, col).IsMissing() {
				counts[col]++
			}
		}
	}
	return counts
}
