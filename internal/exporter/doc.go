// Package exporter writes the Student Data Explorer's output artifacts.
//
// Three writers are provided:
//
// CSVWriter: persists the cleaned dataset with support for UTF-8 BOM
// prefixes for Excel compatibility. Rows keep their input order; missing
// cells export as empty strings.
//
// ReportWriter: renders the quality report and summary into the fixed
// text report layout. Rendering is a pure function of its inputs; no
// computation happens at export time.
//
// WriteSummaryJSON: machine-readable companion to the text report.
package exporter
