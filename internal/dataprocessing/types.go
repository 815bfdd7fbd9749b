package dataprocessing

import (
	"strconv"

	"sdecli/internal/dataset"
)

// Column names recognized in the input dataset.
const (
	ColStudentID    = "student_id"
	ColMaths        = "maths"
	ColCS           = "computer_science"
	ColPhysics      = "physics"
	ColStudyHours   = "study_hours"
	ColAttendance   = "attendance"
	ColAverageScore = "average_score"
)

// NumericColumns lists the columns coerced to numeric, in report order.
func NumericColumns() []string {
	return []string{ColMaths, ColCS, ColPhysics, ColStudyHours, ColAttendance}
}

// RequiredColumns lists every column the input must supply.
func RequiredColumns() []string {
	return append([]string{ColStudentID}, NumericColumns()...)
}

// ScoreColumns lists the columns averaged into the derived metric.
func ScoreColumns() []string {
	return []string{ColMaths, ColCS, ColPhysics}
}

// QualityReport records what the cleaning stages found and fixed. It is
// created once per run and read only by the report writer.
type QualityReport struct {
	// MissingBefore counts, per numeric column, values that were missing
	// under the source representation (empty, absent, or unparsable).
	MissingBefore map[string]int `json:"missing_before"`
	// MissingAfter counts missing values after coercion and imputation.
	MissingAfter map[string]int `json:"missing_after"`
	// PhysicsFilled is the number of physics cells imputed with the mean.
	PhysicsFilled int `json:"physics_missing_filled"`
}

// Summary holds the aggregate insights for one run, with fixed key order
// exposed through Entries. Averages and correlations are pre-rounded;
// undefined statistics carry the missing marker and render as "n/a".
type Summary struct {
	Rows int

	AverageMaths      dataset.Value
	AverageCS         dataset.Value
	AveragePhysics    dataset.Value
	AverageStudyHours dataset.Value
	AverageAttendance dataset.Value

	TopStudent    string
	TopAverage    float64
	LowestStudent string
	LowestAverage float64

	CorrStudyVsAverage      dataset.Value
	CorrAttendanceVsAverage dataset.Value
}

// Entry is one rendered summary line.
type Entry struct {
	Key   string
	Value string
}

// NASentinel is what undefined averages and correlations render as.
const NASentinel = "n/a"

// Entries returns the summary in its defined key order, values formatted
// for the report: averages and extremes to 2 decimal places, correlations
// to 3, undefined statistics as "n/a".
func (s Summary) Entries() []Entry {
	return []Entry{
		{"rows", strconv.Itoa(s.Rows)},
		{"average_maths", formatValue(s.AverageMaths, 2)},
		{"average_cs", formatValue(s.AverageCS, 2)},
		{"average_physics", formatValue(s.AveragePhysics, 2)},
		{"average_study_hours", formatValue(s.AverageStudyHours, 2)},
		{"average_attendance", formatValue(s.AverageAttendance, 2)},
		{"top_student_by_average", s.TopStudent},
		{"top_average_score", strconv.FormatFloat(s.TopAverage, 'f', 2, 64)},
		{"lowest_student_by_average", s.LowestStudent},
		{"lowest_average_score", strconv.FormatFloat(s.LowestAverage, 'f', 2, 64)},
		{"corr_study_vs_average", formatValue(s.CorrStudyVsAverage, 3)},
		{"corr_attendance_vs_average", formatValue(s.CorrAttendanceVsAverage, 3)},
	}
}

// formatValue renders a possibly-missing numeric value with fixed precision.
func formatValue(v dataset.Value, prec int) string {
	f, ok := v.Float()
	if !ok {
		return NASentinel
	}
	return strconv.FormatFloat(f, 'f', prec, 64)
}
