// Package charts renders rate series as PNG images.
package charts

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/currency_rates_app/internal/core/domain"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrNotEnoughPoints is returned when a series is too short to draw a line.
var ErrNotEnoughPoints = errors.New("at least two rates are needed to draw a chart")

const (
	chartWidth  = 1024
	chartHeight = 480
)

// RenderRateChart draws the rates of one currency over time together with a flat threshold line.
// Rows may come in any order; they are plotted by date.
func RenderRateChart(charcode string, rows []domain.RateRow, threshold int64) ([]byte, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrNotEnoughPoints, len(rows))
	}

	sorted := make([]domain.RateRow, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	xValues := make([]time.Time, len(sorted))
	values := make([]float64, len(sorted))
	limit := make([]float64, len(sorted))
	for i, r := range sorted {
		xValues[i] = r.Date
		values[i] = r.Value.InexactFloat64()
		limit[i] = float64(threshold)
	}

	graph := chart.Chart{
		Title:  charcode,
		Width:  chartWidth,
		Height: chartHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatter,
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				return chart.FloatValueFormatterWithFormat(v, "%.4f")
			},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name: charcode,
				Style: chart.Style{
					StrokeColor: drawing.ColorFromHex("2563eb"),
					StrokeWidth: 2.5,
				},
				XValues: xValues,
				YValues: values,
			},
			chart.TimeSeries{
				Name: fmt.Sprintf("threshold %d", threshold),
				Style: chart.Style{
					StrokeColor:     drawing.ColorFromHex("dc2626"),
					StrokeWidth:     1.5,
					StrokeDashArray: []float64{5.0, 3.0},
				},
				XValues: xValues,
				YValues: limit,
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}
