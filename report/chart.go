// report/chart.go
package report

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
)

const (
	chartSize   = 400
	chartMargin = 20
)

// Slices start at 12 o'clock and run clockwise, like the browser console's
// canvas chart did.
const chartStartAngle = -math.Pi / 2

var slicePalette = []color.RGBA{
	{R: 0x4C, G: 0xAF, B: 0x50, A: 0xFF}, // green
	{R: 0xFF, G: 0xC1, B: 0x07, A: 0xFF}, // amber
	{R: 0xF4, G: 0x43, B: 0x36, A: 0xFF}, // red
	{R: 0x21, G: 0x96, B: 0xF3, A: 0xFF}, // blue
	{R: 0x9C, G: 0x27, B: 0xB0, A: 0xFF}, // purple
	{R: 0x79, G: 0x55, B: 0x48, A: 0xFF}, // brown
	{R: 0x60, G: 0x7D, B: 0x8B, A: 0xFF}, // slate
	{R: 0xFF, G: 0x98, B: 0x00, A: 0xFF}, // orange
}

// SliceColor returns the palette color of the i-th slice, also used for the
// chart-data sheet legend.
func SliceColor(i int) color.RGBA {
	return slicePalette[i%len(slicePalette)]
}

// RenderPieChart rasterizes the summary's slices into a PNG. The slice
// geometry comes straight from the summary's accumulated angles, so the
// rendered spans cover the full circle with no rounding drift.
func RenderPieChart(summary *Summary) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, chartSize, chartSize))

	white := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	for y := 0; y < chartSize; y++ {
		for x := 0; x < chartSize; x++ {
			img.SetRGBA(x, y, white)
		}
	}

	center := float64(chartSize) / 2
	radius := center - chartMargin

	for y := 0; y < chartSize; y++ {
		for x := 0; x < chartSize; x++ {
			dx := float64(x) - center
			dy := float64(y) - center
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			angle := math.Atan2(dy, dx) - chartStartAngle
			for angle < 0 {
				angle += 2 * math.Pi
			}
			for angle >= 2*math.Pi {
				angle -= 2 * math.Pi
			}
			for i, slice := range summary.Slices {
				if angle >= slice.StartAngle && (angle < slice.EndAngle || i == len(summary.Slices)-1) {
					img.SetRGBA(x, y, SliceColor(i))
					break
				}
			}
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode chart: %w", err)
	}
	return buf.Bytes(), nil
}
