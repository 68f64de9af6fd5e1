package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Eight bar heights, shortest first.
var trendLevels = []rune("▁▂▃▄▅▆▇█")

// Trend describes the direction of a series from its first to last point.
type Trend int

const (
	TrendFlat Trend = iota
	TrendUp
	TrendDown
)

// Sparkline draws the last width values as bar heights scaled between the
// smallest and largest of them. A series with no spread sits at mid height.
// NaN points are skipped. The line takes its color from the direction of the
// drawn points.
func Sparkline(values []float64, width int) string {
	if width <= 0 {
		return ""
	}
	points := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			points = append(points, v)
		}
	}
	if len(points) == 0 {
		return ""
	}
	if len(points) > width {
		points = points[len(points)-width:]
	}

	lo, hi := points[0], points[0]
	for _, v := range points[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	top := len(trendLevels) - 1
	var sb strings.Builder
	for _, v := range points {
		level := top / 2
		if hi > lo {
			level = int((v - lo) / (hi - lo) * float64(top))
		}
		sb.WriteRune(trendLevels[level])
	}

	return lipgloss.NewStyle().Foreground(TrendColor(points)).Render(sb.String())
}

// TrendOf compares the last point of values against the first.
func TrendOf(values []float64) Trend {
	if len(values) < 2 {
		return TrendFlat
	}
	first, last := values[0], values[len(values)-1]
	switch {
	case last > first:
		return TrendUp
	case last < first:
		return TrendDown
	default:
		return TrendFlat
	}
}

// TrendColor is green for rising, red for falling and muted for flat values.
func TrendColor(values []float64) lipgloss.Color {
	switch TrendOf(values) {
	case TrendUp:
		return ColorSuccess
	case TrendDown:
		return ColorError
	default:
		return ColorMuted
	}
}

// TrendSymbol returns the arrow for a trend.
func TrendSymbol(t Trend) string {
	switch t {
	case TrendUp:
		return SymbolTrendUp
	case TrendDown:
		return SymbolTrendDown
	default:
		return SymbolTrendFlat
	}
}
