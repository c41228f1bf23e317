// report/aggregate.go

// Package report turns an already-fetched, already-filtered inspection list
// into a styled spreadsheet workbook. Everything here is pure formatting and
// aggregation over data resident in memory; there are no network calls.
package report

import (
	"math"
	"sort"
	"strings"

	console_errors "github.com/buildtrack/epc-console/errors"
	"github.com/buildtrack/epc-console/model"
)

// StatusSlice is one pie slice: a status, its frequency, its display
// percentage (rounded to one decimal) and its angular span in radians.
// Angles are accumulated in floating point; rounding happens only in the
// Percentage field, so the slice spans always sum to exactly 2π.
type StatusSlice struct {
	Status     string
	Count      int
	Percentage float64
	StartAngle float64
	EndAngle   float64
}

// Summary is the aggregate the analysis sheet is built from.
type Summary struct {
	Total        int
	Slices       []StatusSlice
	MostCommon   string
	ApprovedRate float64
	PendingCount int
}

// Summarize computes the per-status frequency breakdown of the input list.
// Slices are emitted in a deterministic order (status name ascending) so the
// chart is stable across exports of the same data.
func Summarize(inspections []model.Inspection) (*Summary, error) {
	if len(inspections) == 0 {
		return nil, console_errors.ErrEmptyDataset
	}

	counts := make(map[string]int)
	for _, insp := range inspections {
		status := insp.Status
		if status == "" {
			status = "unknown"
		}
		counts[status]++
	}

	statuses := make([]string, 0, len(counts))
	for status := range counts {
		statuses = append(statuses, status)
	}
	sort.Strings(statuses)

	total := len(inspections)
	summary := &Summary{Total: total}

	cumulative := 0
	for _, status := range statuses {
		count := counts[status]
		start := 2 * math.Pi * float64(cumulative) / float64(total)
		cumulative += count
		end := 2 * math.Pi * float64(cumulative) / float64(total)

		summary.Slices = append(summary.Slices, StatusSlice{
			Status:     status,
			Count:      count,
			Percentage: math.Round(float64(count)/float64(total)*1000) / 10,
			StartAngle: start,
			EndAngle:   end,
		})

		if summary.MostCommon == "" || count > counts[summary.MostCommon] {
			summary.MostCommon = status
		}

		switch strings.ToLower(status) {
		case "approved":
			summary.ApprovedRate = math.Round(float64(count)/float64(total)*1000) / 10
		case "pending":
			summary.PendingCount = count
		}
	}

	return summary, nil
}
