// Package dataprocessing implements the clean → feature → summarise pipeline
// for the Student Data Explorer.
//
// # Architecture
//
// The package is organized into five sequential stages:
//
// 1. Validator: confirms the required column set before any numeric work
// 2. Coercer: converts numeric columns in place, unparsable values become missing
// 3. Imputer: fills missing physics values with the column mean
// 4. Features: derives the per-row average_score column
// 5. Summarizer: dataset-wide averages, extremal rows, Pearson correlations
//
// Each stage mutates the dataset in place and fully completes before the
// next begins; the Pipeline driver holds sole access for the run's duration.
//
// # Usage
//
//	p := dataprocessing.NewPipeline(slog.Default())
//	quality, summary, err := p.Run(ctx, ds)
//	if err != nil {
//	    log.Fatal(err)
//	}
package dataprocessing
