// report/workbook.go
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/buildtrack/epc-console/model"
)

const (
	dataSheet     = "Inspections"
	chartSheet    = "Chart Data"
	analysisSheet = "Analysis"
)

var inspectionHeaders = []string{
	"ID", "Material", "Status", "Remarks", "Inspected By", "Verified By", "Created At",
}

// BuildWorkbook produces the three-sheet quality report for one project:
// the raw inspection rows, the chart data, and a styled analysis sheet with
// the embedded pie chart. Any error aborts the whole build; a partial
// workbook is never returned.
func BuildWorkbook(project model.Project, inspections []model.Inspection, date time.Time) (*excelize.File, string, error) {
	summary, err := Summarize(inspections)
	if err != nil {
		return nil, "", err
	}

	chartPNG, err := RenderPieChart(summary)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	f.SetSheetName("Sheet1", dataSheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 11},
		Fill:   excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 1}},
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to create header style: %w", err)
	}

	if err := writeDataSheet(f, headerStyle, inspections); err != nil {
		return nil, "", err
	}
	if err := writeChartSheet(f, headerStyle, summary); err != nil {
		return nil, "", err
	}
	if err := writeAnalysisSheet(f, project, summary, chartPNG); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("%s_quality_report_%s.xlsx", sanitizeFilename(project.Name), date.Format("2006-01-02"))
	return f, filename, nil
}

func writeDataSheet(f *excelize.File, headerStyle int, inspections []model.Inspection) error {
	for i, h := range inspectionHeaders {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		cell := col + "1"
		if err := f.SetCellValue(dataSheet, cell, h); err != nil {
			return err
		}
		if err := f.SetCellStyle(dataSheet, cell, cell, headerStyle); err != nil {
			return err
		}
	}

	for rowIdx, insp := range inspections {
		row := rowIdx + 2
		values := []any{
			insp.ID,
			insp.MaterialName,
			insp.Status,
			insp.Remarks,
			insp.InspectedBy,
			insp.VerifiedBy,
			insp.CreatedAt.Format("2006-01-02 15:04"),
		}
		for i, v := range values {
			col, err := excelize.ColumnNumberToName(i + 1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(dataSheet, fmt.Sprintf("%s%d", col, row), v); err != nil {
				return err
			}
		}
	}

	colWidths := []float64{8, 24, 14, 32, 18, 18, 18}
	for i, w := range colWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(dataSheet, col, col, w); err != nil {
			return err
		}
	}
	return nil
}

func writeChartSheet(f *excelize.File, headerStyle int, summary *Summary) error {
	if _, err := f.NewSheet(chartSheet); err != nil {
		return err
	}

	headers := []string{"Status", "Count", "Percentage"}
	for i, h := range headers {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		cell := col + "1"
		if err := f.SetCellValue(chartSheet, cell, h); err != nil {
			return err
		}
		if err := f.SetCellStyle(chartSheet, cell, cell, headerStyle); err != nil {
			return err
		}
	}

	for i, slice := range summary.Slices {
		row := i + 2
		if err := f.SetCellValue(chartSheet, fmt.Sprintf("A%d", row), slice.Status); err != nil {
			return err
		}
		if err := f.SetCellValue(chartSheet, fmt.Sprintf("B%d", row), slice.Count); err != nil {
			return err
		}
		if err := f.SetCellValue(chartSheet, fmt.Sprintf("C%d", row), fmt.Sprintf("%.1f%%", slice.Percentage)); err != nil {
			return err
		}
	}

	totalRow := len(summary.Slices) + 2
	if err := f.SetCellValue(chartSheet, fmt.Sprintf("A%d", totalRow), "Total"); err != nil {
		return err
	}
	return f.SetCellValue(chartSheet, fmt.Sprintf("B%d", totalRow), summary.Total)
}

func writeAnalysisSheet(f *excelize.File, project model.Project, summary *Summary, chartPNG []byte) error {
	if _, err := f.NewSheet(analysisSheet); err != nil {
		return err
	}

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return err
	}
	if err := f.SetCellValue(analysisSheet, "A1", fmt.Sprintf("Quality Inspection Analysis - %s", project.Name)); err != nil {
		return err
	}
	if err := f.SetCellStyle(analysisSheet, "A1", "A1", titleStyle); err != nil {
		return err
	}

	insights := [][2]any{
		{"Total inspections", summary.Total},
		{"Most common status", summary.MostCommon},
		{"Approval rate", fmt.Sprintf("%.1f%%", summary.ApprovedRate)},
		{"Pending inspections", summary.PendingCount},
	}
	for i, insight := range insights {
		row := i + 3
		if err := f.SetCellValue(analysisSheet, fmt.Sprintf("A%d", row), insight[0]); err != nil {
			return err
		}
		if err := f.SetCellValue(analysisSheet, fmt.Sprintf("B%d", row), insight[1]); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(analysisSheet, "A", "A", 24); err != nil {
		return err
	}

	return f.AddPictureFromBytes(analysisSheet, "D3", &excelize.Picture{
		Extension: ".png",
		File:      chartPNG,
		Format:    &excelize.GraphicOptions{ScaleX: 0.75, ScaleY: 0.75},
	})
}

func sanitizeFilename(name string) string {
	if name == "" {
		return "project"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-", ":", "-")
	return replacer.Replace(name)
}
