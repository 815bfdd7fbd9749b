package exporter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sdecli/internal/dataprocessing"
	"sdecli/internal/dataset"
)

// RenderReport formats the quality report and summary into the fixed report
// layout. It is a pure function of its inputs: header, data-quality block,
// then the insight entries in their defined key order.
func RenderReport(quality dataprocessing.QualityReport, summary dataprocessing.Summary) string {
	var b strings.Builder

	b.WriteString("Student Data Explorer — Summary Report\n")
	b.WriteString("-------------------------------------\n\n")

	b.WriteString("Data Quality\n")
	b.WriteString("-----------\n")
	fmt.Fprintf(&b, "Physics missing values filled: %d\n", quality.PhysicsFilled)
	fmt.Fprintf(&b, "Missing before cleaning: %s\n", formatCounts(quality.MissingBefore))
	fmt.Fprintf(&b, "Missing after cleaning:  %s\n\n", formatCounts(quality.MissingAfter))

	b.WriteString("Insights\n")
	b.WriteString("--------\n")
	for _, entry := range summary.Entries() {
		fmt.Fprintf(&b, "%s: %s\n", entry.Key, entry.Value)
	}

	return b.String()
}

// formatCounts renders per-column counts in numeric-column order.
func formatCounts(counts map[string]int) string {
	parts := make([]string, 0, len(counts))
	for _, col := range dataprocessing.NumericColumns() {
		if n, ok := counts[col]; ok {
			parts = append(parts, fmt.Sprintf("%s=%d", col, n))
		}
	}
	return strings.Join(parts, ", ")
}

// WriteReport renders the text report and writes it to outputPath as UTF-8.
func WriteReport(quality dataprocessing.QualityReport, summary dataprocessing.Summary, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(outputPath, []byte(RenderReport(quality, summary)), 0644); err != nil {
		return fmt.Errorf("write summary report: %w", err)
	}
	return nil
}

// summaryJSON builds the machine-readable form of the summary. Undefined
// statistics marshal as null rather than the "n/a" sentinel.
func summaryJSON(summary dataprocessing.Summary) map[string]any {
	out := map[string]any{
		"rows":                      summary.Rows,
		"top_student_by_average":    summary.TopStudent,
		"top_average_score":         summary.TopAverage,
		"lowest_student_by_average": summary.LowestStudent,
		"lowest_average_score":      summary.LowestAverage,
	}
	optional := map[string]dataset.Value{
		"average_maths":              summary.AverageMaths,
		"average_cs":                 summary.AverageCS,
		"average_physics":            summary.AveragePhysics,
		"average_study_hours":        summary.AverageStudyHours,
		"average_attendance":         summary.AverageAttendance,
		"corr_study_vs_average":      summary.CorrStudyVsAverage,
		"corr_attendance_vs_average": summary.CorrAttendanceVsAverage,
	}
	for key, val := range optional {
		if f, ok := val.Float(); ok {
			out[key] = f
		} else {
			out[key] = nil
		}
	}
	return out
}

// WriteSummaryJSON writes the summary and quality report as indented JSON.
func WriteSummaryJSON(quality dataprocessing.QualityReport, summary dataprocessing.Summary, outputPath string) error {
	payload := map[string]any{
		"quality": quality,
		"summary": summaryJSON(summary),
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("write summary JSON: %w", err)
	}
	return nil
}
