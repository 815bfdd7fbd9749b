package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind discriminates the representations a cell value can take.
type Kind int

const (
	// KindMissing marks the absence of a valid value, distinct from zero.
	KindMissing Kind = iota
	// KindNumber is a finite float64 value.
	KindNumber
	// KindText is an opaque string value, e.g. a student identifier.
	KindText
)

// Value is a single cell in a Dataset. The zero Value is missing.
type Value struct {
	kind Kind
	num  float64
	str  string
}

// Missing returns the missing marker.
func Missing() Value {
	return Value{kind: KindMissing}
}

// Number returns a numeric value.
func Number(v float64) Value {
	return Value{kind: KindNumber, num: v}
}

// Text returns an opaque text value. Empty or whitespace-only strings are
// treated as missing, matching how blank cells arrive from CSV and XLSX.
func Text(s string) Value {
	if strings.TrimSpace(s) == "" {
		return Missing()
	}
	return Value{kind: KindText, str: s}
}

// Kind returns the value's representation.
func (v Value) Kind() Kind {
	return v.kind
}

// IsMissing reports whether the value is the missing marker.
func (v Value) IsMissing() bool {
	return v.kind == KindMissing
}

// IsNumber reports whether the value holds a finite number.
func (v Value) IsNumber() bool {
	return v.kind == KindNumber
}

// Float returns the numeric value and whether one is present.
func (v Value) Float() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// String renders the value for export. Missing renders as the empty string
// so cleaned CSV cells stay blank; numbers use the shortest positional
// representation that round-trips, so spreadsheet tools never see
// scientific notation for ordinary magnitudes.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return formatNumber(v.num)
	case KindText:
		return v.str
	default:
		return ""
	}
}

// formatNumber keeps positional notation for the magnitudes real student
// data takes; only extremes fall back to scientific form.
func formatNumber(f float64) string {
	if abs := math.Abs(f); abs != 0 && (abs < 1e-4 || abs >= 1e15) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Row maps column names to cell values for a single record.
type Row map[string]Value

// Dataset is an ordered tabular record set. Column order follows the input
// header plus any appended derived columns; row order follows input order.
type Dataset struct {
	columns []string
	rows    []Row
}

// New creates an empty dataset with the given column order.
func New(columns []string) *Dataset {
	return &Dataset{columns: append([]string(nil), columns...)}
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return len(d.rows)
}

// Columns returns the column names in order. The returned slice is a copy.
func (d *Dataset) Columns() []string {
	return append([]string(nil), d.columns...)
}

// HasColumn reports whether the named column exists.
func (d *Dataset) HasColumn(name string) bool {
	for _, c := range d.columns {
		if c == name {
			return true
		}
	}
	return false
}

// AddColumn appends a new column to the column order. Existing rows gain a
// missing value for it; adding an existing column is an error.
func (d *Dataset) AddColumn(name string) error {
	if d.HasColumn(name) {
		return fmt.Errorf("column %q already exists", name)
	}
	d.columns = append(d.columns, name)
	for _, row := range d.rows {
		if _, ok := row[name]; !ok {
			row[name] = Missing()
		}
	}
	return nil
}

// Append adds a row. Cells for unknown columns are dropped; cells for known
// columns that are absent become missing.
func (d *Dataset) Append(row Row) {
	r := make(Row, len(d.columns))
	for _, c := range d.columns {
		if v, ok := row[c]; ok {
			r[c] = v
		} else {
			r[c] = Missing()
		}
	}
	d.rows = append(d.rows, r)
}

// Row returns the row at index i.
func (d *Dataset) Row(i int) Row {
	return d.rows[i]
}

// Get returns the cell at (row, column), or the missing marker when the
// column does not exist.
func (d *Dataset) Get(i int, column string) Value {
	v, ok := d.rows[i][column]
	if !ok {
		return Missing()
	}
	return v
}

// Set replaces the cell at (row, column).
func (d *Dataset) Set(i int, column string, v Value) {
	d.rows[i][column] = v
}

// Column returns all values of the named column in row order.
func (d *Dataset) Column(name string) []Value {
	out := make([]Value, len(d.rows))
	for i := range d.rows {
		out[i] = d.Get(i, name)
	}
	return out
}
