// report/aggregate_test.go
package report_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	console_errors "github.com/buildtrack/epc-console/errors"
	logger "github.com/buildtrack/epc-console/logging"
	"github.com/buildtrack/epc-console/model"
	"github.com/buildtrack/epc-console/report"
)

func TestMain(m *testing.M) {
	logger.InitLogger("")
	m.Run()
}

func inspectionsWithStatuses(statuses ...string) []model.Inspection {
	out := make([]model.Inspection, len(statuses))
	for i, s := range statuses {
		out[i] = model.Inspection{ID: int64(i + 1), Status: s}
	}
	return out
}

func TestSummarize_CountsAndOrder(t *testing.T) {
	summary, err := report.Summarize(inspectionsWithStatuses(
		"pending", "approved", "rejected", "approved", "approved", "pending", "approved",
	))
	require.NoError(t, err)

	assert.Equal(t, 7, summary.Total)
	require.Len(t, summary.Slices, 3)

	// Slice order is status name ascending, so repeated exports of the same
	// data render identically.
	assert.Equal(t, "approved", summary.Slices[0].Status)
	assert.Equal(t, "pending", summary.Slices[1].Status)
	assert.Equal(t, "rejected", summary.Slices[2].Status)

	countSum := 0
	for _, slice := range summary.Slices {
		countSum += slice.Count
	}
	assert.Equal(t, summary.Total, countSum)

	assert.Equal(t, "approved", summary.MostCommon)
	assert.InDelta(t, 57.1, summary.ApprovedRate, 0.001)
	assert.Equal(t, 2, summary.PendingCount)
}

func TestSummarize_PercentagesAndAngles(t *testing.T) {
	// 1/3 + 1/3 + 1/3 has no exact decimal representation; rounding is
	// display-only and the angles still close the circle.
	summary, err := report.Summarize(inspectionsWithStatuses("approved", "pending", "rejected"))
	require.NoError(t, err)

	// Sum in integer tenths so float accumulation cannot push the total
	// past the tolerance it is being checked against.
	pctTenths := 0
	for _, slice := range summary.Slices {
		assert.InDelta(t, 33.3, slice.Percentage, 0.001)
		pctTenths += int(math.Round(slice.Percentage * 10))
	}
	assert.InDelta(t, 1000, pctTenths, 1, "rounded percentages drift at most a tenth from 100")

	// Slices are contiguous and the last one ends exactly at 2π.
	assert.Zero(t, summary.Slices[0].StartAngle)
	for i := 1; i < len(summary.Slices); i++ {
		assert.Equal(t, summary.Slices[i-1].EndAngle, summary.Slices[i].StartAngle)
	}
	assert.Equal(t, 2*math.Pi, summary.Slices[len(summary.Slices)-1].EndAngle)
}

func TestSummarize_SingleStatusFillsCircle(t *testing.T) {
	summary, err := report.Summarize(inspectionsWithStatuses("approved", "approved"))
	require.NoError(t, err)

	require.Len(t, summary.Slices, 1)
	assert.Equal(t, 100.0, summary.Slices[0].Percentage)
	assert.Zero(t, summary.Slices[0].StartAngle)
	assert.Equal(t, 2*math.Pi, summary.Slices[0].EndAngle)
	assert.InDelta(t, 100, summary.ApprovedRate, 0.001)
}

func TestSummarize_BlankStatusBucketsAsUnknown(t *testing.T) {
	summary, err := report.Summarize(inspectionsWithStatuses("approved", ""))
	require.NoError(t, err)

	require.Len(t, summary.Slices, 2)
	assert.Equal(t, "unknown", summary.Slices[1].Status)
	assert.Equal(t, 1, summary.Slices[1].Count)
}

func TestSummarize_EmptyDataset(t *testing.T) {
	_, err := report.Summarize(nil)
	assert.ErrorIs(t, err, console_errors.ErrEmptyDataset)
}

func TestRenderPieChart_ProducesPNG(t *testing.T) {
	summary, err := report.Summarize(inspectionsWithStatuses("approved", "pending", "rejected"))
	require.NoError(t, err)

	png, err := report.RenderPieChart(summary)
	require.NoError(t, err)
	require.NotEmpty(t, png)
	assert.Equal(t, []byte("\x89PNG\r\n\x1a\n"), png[:8])
}
