// Command explorer runs the Student Data Explorer batch pipeline: load a
// tabular dataset of student records, clean it, derive average_score, and
// write the cleaned CSV plus a text summary report.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"sdecli/internal/config"
	"sdecli/internal/dataprocessing"
	"sdecli/internal/dataset"
	"sdecli/internal/exporter"
	"sdecli/internal/infrastructure"
)

func main() {
	inputPath := flag.String("input", "", "input dataset (.csv or .xlsx; defaults to configured path)")
	outputDir := flag.String("out", "", "output directory for cleaned CSV and report (defaults to configured dir)")
	configFile := flag.String("config", "", "optional YAML config file")
	writeJSON := flag.Bool("json", false, "also write a machine-readable summary JSON")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if *inputPath != "" {
		cfg.Input.Path = *inputPath
	}
	if *outputDir != "" {
		cfg.Output.Dir = *outputDir
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.ContextWithRunID(context.Background())
	log := infrastructure.LoggerWithContext(ctx)

	log.Info("Student Data Explorer starting", slog.String("input", cfg.Input.Path))

	ds, err := dataset.Read(cfg.Input.Path)
	if err != nil {
		log.Error("Failed to load dataset", "error", err)
		os.Exit(1)
	}
	log.Info("Loaded dataset",
		slog.Int("rows", ds.Len()),
		slog.String("path", cfg.Input.Path))

	pipeline := dataprocessing.NewPipeline(logger)
	quality, summary, err := pipeline.Run(ctx, ds)
	if err != nil {
		log.Error("Pipeline failed", "error", err)
		os.Exit(1)
	}
	log.Info("Cleaned data", slog.Int("physics_missing_filled", quality.PhysicsFilled))
	log.Info("Added feature", slog.String("column", "average_score"))

	log.Info("Key insights",
		slog.String("average_maths", entryValue(summary, "average_maths")),
		slog.String("average_cs", entryValue(summary, "average_cs")),
		slog.String("average_physics", entryValue(summary, "average_physics")),
		slog.String("top_student", summary.TopStudent),
		slog.String("top_average_score", entryValue(summary, "top_average_score")),
		slog.String("corr_study_vs_average", entryValue(summary, "corr_study_vs_average")),
		slog.String("corr_attendance_vs_average", entryValue(summary, "corr_attendance_vs_average")))

	writer := exporter.NewCSVWriter(logger)
	cleanedPath := cfg.CleanedPath()
	if err := writer.WriteDataset(ds, cleanedPath, exporter.WriteOptions{BOMPrefix: cfg.Output.ExcelBOM}); err != nil {
		log.Error("Failed to save cleaned dataset", "error", err)
		os.Exit(1)
	}

	reportPath := cfg.ReportPath()
	if err := exporter.WriteReport(quality, summary, reportPath); err != nil {
		log.Error("Failed to save summary report", "error", err)
		os.Exit(1)
	}

	if *writeJSON {
		jsonPath := cfg.SummaryJSONPath()
		if err := exporter.WriteSummaryJSON(quality, summary, jsonPath); err != nil {
			log.Error("Failed to save summary JSON", "error", err)
			os.Exit(1)
		}
		log.Info("Saved summary JSON", slog.String("path", jsonPath))
	}

	log.Info("Saved outputs",
		slog.String("cleaned", cleanedPath),
		slog.String("report", reportPath))
}

// entryValue looks up a rendered summary entry by key.
func entryValue(summary dataprocessing.Summary, key string) string {
	for _, e := range summary.Entries() {
		if e.Key == key {
			return e.Value
		}
	}
	return ""
}
