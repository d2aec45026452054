package charts

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"hrdashboard/database"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrEmpty marks a chart whose filtered view has no data points. The
// page shows a placeholder instead of an image for these.
var ErrEmpty = errors.New("no data points to chart")

const (
	chartWidth  = 640
	chartHeight = 400
)

var (
	ColorPrimary = drawing.ColorFromHex("636efa")
	ColorAccent  = drawing.ColorFromHex("ef553b")
)

func barStyle(col drawing.Color) chart.Style {
	return chart.Style{
		FillColor:   col,
		StrokeColor: col,
		StrokeWidth: 0,
	}
}

// Bar renders per-value counts as a bar chart.
func Bar(title string, counts []database.ValueCount, col drawing.Color) ([]byte, error) {
	if len(counts) == 0 {
		return nil, ErrEmpty
	}

	bars := make([]chart.Value, 0, len(counts))
	for _, vc := range counts {
		label := vc.Value
		if label == "" {
			label = "(none)"
		}
		bars = append(bars, chart.Value{
			Value: float64(vc.Count),
			Label: label,
			Style: barStyle(col),
		})
	}

	return renderBars(title, bars)
}

// MeanBar renders a group-by mean as a bar chart.
func MeanBar(title string, means []database.GroupMean) ([]byte, error) {
	if len(means) == 0 {
		return nil, ErrEmpty
	}

	bars := make([]chart.Value, 0, len(means))
	for _, gm := range means {
		bars = append(bars, chart.Value{
			Value: gm.Mean,
			Label: gm.Group,
			Style: barStyle(ColorPrimary),
		})
	}

	return renderBars(title, bars)
}

// Histogram bins numeric values and renders the bins as bars.
func Histogram(title string, values []float64, bins int) ([]byte, error) {
	if len(values) == 0 {
		return nil, ErrEmpty
	}
	if bins < 1 {
		bins = 1
	}

	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	width := (max - min) / float64(bins)
	if width == 0 {
		width = 1
		bins = 1
	}

	counts := make([]int, bins)
	for _, v := range values {
		idx := int((v - min) / width)
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}

	bars := make([]chart.Value, 0, bins)
	for i, count := range counts {
		lo := min + float64(i)*width
		hi := lo + width
		bars = append(bars, chart.Value{
			Value: float64(count),
			Label: fmt.Sprintf("%.0f–%.0f", lo, hi),
			Style: barStyle(ColorPrimary),
		})
	}

	return renderBars(title, bars)
}

// Donut renders value counts as a donut chart (the gender panel).
func Donut(title string, counts []database.ValueCount) ([]byte, error) {
	if len(counts) == 0 {
		return nil, ErrEmpty
	}

	values := make([]chart.Value, 0, len(counts))
	for _, vc := range counts {
		label := vc.Value
		if label == "" {
			label = "(none)"
		}
		values = append(values, chart.Value{
			Value: float64(vc.Count),
			Label: fmt.Sprintf("%s (%d)", label, vc.Count),
		})
	}

	donut := chart.DonutChart{
		Title:  title,
		Width:  chartWidth,
		Height: chartHeight,
		Values: values,
	}

	var buf bytes.Buffer
	if err := donut.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Scatter renders (x, y) pairs as dots.
func Scatter(title, xName, yName string, points []database.Point) ([]byte, error) {
	if len(points) == 0 {
		return nil, ErrEmpty
	}

	xs := make([]float64, 0, len(points))
	ys := make([]float64, 0, len(points))
	for _, p := range points {
		xs = append(xs, p.X)
		ys = append(ys, p.Y)
	}
	// Pad to at least two X values for go-chart
	if len(xs) == 1 {
		xs = append(xs, xs[0]+1)
		ys = append(ys, ys[0])
	}

	graph := chart.Chart{
		Title:  title,
		Width:  chartWidth,
		Height: chartHeight,
		XAxis:  chart.XAxis{Name: xName},
		YAxis:  chart.YAxis{Name: yName},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    4,
					DotColor:    ColorPrimary,
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderBars(title string, bars []chart.Value) ([]byte, error) {
	barChart := chart.BarChart{
		Title:    title,
		Width:    chartWidth,
		Height:   chartHeight,
		BarWidth: barWidthFor(len(bars)),
		Bars:     bars,
		XAxis:    chart.Style{TextRotationDegrees: 45},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f", f)
				}
				return ""
			},
		},
	}

	var buf bytes.Buffer
	if err := barChart.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// barWidthFor keeps many bars from overflowing the canvas.
func barWidthFor(n int) int {
	if n == 0 {
		return 40
	}
	w := int(math.Floor(float64(chartWidth-100) / float64(n)))
	if w > 60 {
		return 60
	}
	if w < 8 {
		return 8
	}
	return w
}
