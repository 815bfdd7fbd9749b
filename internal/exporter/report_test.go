package exporter

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sdecli/internal/dataprocessing"
	"sdecli/internal/dataset"
)

func sampleQuality() dataprocessing.QualityReport {
	return dataprocessing.QualityReport{
		MissingBefore: map[string]int{
			"maths": 0, "computer_science": 1, "physics": 2, "study_hours": 0, "attendance": 0,
		},
		MissingAfter: map[string]int{
			"maths": 0, "computer_science": 1, "physics": 0, "study_hours": 0, "attendance": 0,
		},
		PhysicsFilled: 2,
	}
}

func sampleSummary() dataprocessing.Summary {
	return dataprocessing.Summary{
		Rows:                    3,
		AverageMaths:            dataset.Number(70),
		AverageCS:               dataset.Number(70),
		AveragePhysics:          dataset.Number(60),
		AverageStudyHours:       dataset.Number(6.33),
		AverageAttendance:       dataset.Number(85),
		TopStudent:              "S003",
		TopAverage:              76.67,
		LowestStudent:           "S001",
		LowestAverage:           60,
		CorrStudyVsAverage:      dataset.Number(0.997),
		CorrAttendanceVsAverage: dataset.Missing(),
	}
}

func TestRenderReport(t *testing.T) {
	report := RenderReport(sampleQuality(), sampleSummary())

	t.Run("fixed section order", func(t *testing.T) {
		headerIdx := strings.Index(report, "Student Data Explorer — Summary Report")
		qualityIdx := strings.Index(report, "Data Quality")
		insightsIdx := strings.Index(report, "Insights")
		require.GreaterOrEqual(t, headerIdx, 0)
		assert.Greater(t, qualityIdx, headerIdx)
		assert.Greater(t, insightsIdx, qualityIdx)
	})

	t.Run("quality block", func(t *testing.T) {
		assert.Contains(t, report, "Physics missing values filled: 2")
		assert.Contains(t, report, "Missing before cleaning: maths=0, computer_science=1, physics=2, study_hours=0, attendance=0")
		assert.Contains(t, report, "Missing after cleaning:  maths=0, computer_science=1, physics=0, study_hours=0, attendance=0")
	})

	t.Run("insight lines in key order", func(t *testing.T) {
		assert.Contains(t, report, "rows: 3\n")
		assert.Contains(t, report, "top_student_by_average: S003\n")
		assert.Contains(t, report, "top_average_score: 76.67\n")
		assert.Contains(t, report, "corr_study_vs_average: 0.997\n")
		assert.Contains(t, report, "corr_attendance_vs_average: n/a\n")

		rowsIdx := strings.Index(report, "rows: 3")
		corrIdx := strings.Index(report, "corr_attendance_vs_average")
		assert.Greater(t, corrIdx, rowsIdx)
	})

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, report, RenderReport(sampleQuality(), sampleSummary()))
	})
}

func TestWriteReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "summary.txt")
	require.NoError(t, WriteReport(sampleQuality(), sampleSummary(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, RenderReport(sampleQuality(), sampleSummary()), string(data))
}

func TestWriteSummaryJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.json")
	require.NoError(t, WriteSummaryJSON(sampleQuality(), sampleSummary(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var payload struct {
		Quality struct {
			PhysicsFilled int            `json:"physics_missing_filled"`
			MissingBefore map[string]int `json:"missing_before"`
		} `json:"quality"`
		Summary map[string]any `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(data, &payload))

	assert.Equal(t, 2, payload.Quality.PhysicsFilled)
	assert.Equal(t, 2, payload.Quality.MissingBefore["physics"])
	assert.Equal(t, float64(3), payload.Summary["rows"])
	assert.Equal(t, "S003", payload.Summary["top_student_by_average"])
	assert.Equal(t, 0.997, payload.Summary["corr_study_vs_average"])

	// Undefined statistics marshal as null, never the n/a sentinel.
	val, present := payload.Summary["corr_attendance_vs_average"]
	require.True(t, present)
	assert.Nil(t, val)
}
