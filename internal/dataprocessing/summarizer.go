package dataprocessing

import (
	"math"

	"sdecli/internal/dataset"
	"sdecli/internal/errors"
)

// Summarize computes the dataset-wide insights over the post-derivation
// record set. Column averages ignore missing values and round to 2 decimal
// places; correlations use pairwise-complete rows and round to 3. An
// average over a column with no present values, or a correlation over fewer
// than 2 complete pairs or zero-variance data, is undefined and carried as
// the missing marker (rendered "n/a" in the report). An empty record set or
// one with no present average_score at all cannot produce extremal rows and
// fails outright.
func Summarize(ds *dataset.Dataset) (Summary, error) {
	if ds.Len() == 0 {
		return Summary{}, errors.NewStatisticsError("summary", "record set has no rows")
	}

	top, lowest, err := extremalRows(ds)
	if err != nil {
		return Summary{}, err
	}

	topScore, _ := ds.Get(top, ColAverageScore).Float()
	lowestScore, _ := ds.Get(lowest, ColAverageScore).Float()

	return Summary{
		Rows:              ds.Len(),
		AverageMaths:      roundValue(columnMean(ds, ColMaths), 2),
		AverageCS:         roundValue(columnMean(ds, ColCS), 2),
		AveragePhysics:    roundValue(columnMean(ds, ColPhysics), 2),
		AverageStudyHours: roundValue(columnMean(ds, ColStudyHours), 2),
		AverageAttendance: roundValue(columnMean(ds, ColAttendance), 2),

		TopStudent:    ds.Get(top, ColStudentID).String(),
		TopAverage:    round(topScore, 2),
		LowestStudent: ds.Get(lowest, ColStudentID).String(),
		LowestAverage: round(lowestScore, 2),

		CorrStudyVsAverage:      roundValue(pearson(ds, ColStudyHours, ColAverageScore), 3),
		CorrAttendanceVsAverage: roundValue(pearson(ds, ColAttendance, ColAverageScore), 3),
	}, nil
}

// extremalRows finds the first row holding the maximum average_score and
// the first holding the minimum. Strict comparisons keep the earliest row
// on ties.
func extremalRows(ds *dataset.Dataset) (top, lowest int, err error) {
	top, lowest = -1, -1
	var max, min float64
	for i := 0; i < ds.Len(); i++ {
		f, ok := ds.Get(i, ColAverageScore).Float()
		if !ok {
			continue
		}
		if top == -1 || f > max {
			top, max = i, f
		}
		if lowest == -1 || f < min {
			lowest, min = i, f
		}
	}
	if top == -1 {
		return 0, 0, errors.NewStatisticsError("top_student_by_average",
			"no rows with a present average_score")
	}
	return top, lowest, nil
}

// columnMean is the arithmetic mean over present values; missing when the
// column has no present values.
func columnMean(ds *dataset.Dataset, column string) dataset.Value {
	var (
		sum     float64
		present int
	)
	for i := 0; i < ds.Len(); i++ {
		if f, ok := ds.Get(i, column).Float(); ok {
			sum += f
			present++
		}
	}
	if present == 0 {
		return dataset.Missing()
	}
	return dataset.Number(sum / float64(present))
}

// pearson computes the Pearson correlation coefficient between two columns
// over pairwise-complete rows. Fewer than 2 complete pairs or zero variance
// in either series leaves the coefficient undefined (missing).
func pearson(ds *dataset.Dataset, colX, colY string) dataset.Value {
	var xs, ys []float64
	for i := 0; i < ds.Len(); i++ {
		x, okX := ds.Get(i, colX).Float()
		y, okY := ds.Get(i, colY).Float()
		if okX && okY {
			xs = append(xs, x)
			ys = append(ys, y)
		}
	}
	n := len(xs)
	if n < 2 {
		return dataset.Missing()
	}

	var meanX, meanY float64
	for i := 0; i < n; i++ {
		meanX += xs[i]
		meanY += ys[i]
	}
	meanX /= float64(n)
	meanY /= float64(n)

	var cov, varX, varY float64
	for i := 0; i < n; i++ {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return dataset.Missing()
	}
	return dataset.Number(cov / math.Sqrt(varX*varY))
}

// round rounds to the given number of decimal places, half away from zero.
func round(v float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(v*pow) / pow
}

// roundValue rounds a possibly-missing value, passing missing through.
func roundValue(v dataset.Value, places int) dataset.Value {
	f, ok := v.Float()
	if !ok {
		return dataset.Missing()
	}
	return dataset.Number(round(f, places))
}
