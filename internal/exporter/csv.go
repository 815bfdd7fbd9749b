package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"sdecli/internal/dataset"
)

// CSVWriter provides CSV export functionality for cleaned datasets
type CSVWriter struct {
	logger *slog.Logger
}

// NewCSVWriter creates a new CSV writer instance
func NewCSVWriter(logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{logger: logger}
}

// WriteOptions configures CSV writing behavior
type WriteOptions struct {
	// BOMPrefix adds a UTF-8 BOM so Excel recognizes the encoding
	BOMPrefix bool
}

// WriteDataset writes the dataset to a CSV file, header first, rows in
// input order, missing cells as empty strings.
func (w *CSVWriter) WriteDataset(ds *dataset.Dataset, outputPath string, options WriteOptions) error {
	w.logger.Info("writing cleaned CSV",
		slog.String("path", outputPath),
		slog.Int("rows", ds.Len()))

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create CSV file: %w", err)
	}
	defer file.Close()

	if options.BOMPrefix {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	columns := ds.Columns()
	if err := writer.Write(columns); err != nil {
		return fmt.Errorf("write CSV header: %w", err)
	}

	record := make([]string, len(columns))
	for i := 0; i < ds.Len(); i++ {
		for j, col := range columns {
			record[j] = ds.Get(i, col).String()
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write CSV record %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
