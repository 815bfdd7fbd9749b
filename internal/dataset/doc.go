// Package dataset provides the tabular record-set model used throughout the
// Student Data Explorer pipeline.
//
// A Dataset is an ordered sequence of rows, each row a mapping from column
// name to Value. Row order and column order are preserved end-to-end, so the
// cleaned output keeps the exact shape of the input plus any appended
// columns.
//
// Values are a tagged union of number, text, and an explicit missing marker.
// The missing marker is distinct from zero and survives round-trips through
// the pipeline; aggregate functions skip it rather than propagating NaN.
//
// Two readers are provided:
//
//	ds, err := dataset.ReadCSV("students.csv")
//	ds, err := dataset.ReadXLSX("students.xlsx")
//
// Both treat the first row as the header defining column names and pad short
// rows with missing values.
package dataset
