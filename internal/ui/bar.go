package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Bar glyphs.
const (
	barFilled = "▰"
	barEmpty  = "▱"
)

// BarStyle controls how RenderBar draws a percentage.
type BarStyle struct {
	Width       int
	Color       func(percent float64) lipgloss.Color // nil draws the bar unstyled
	HidePercent bool
}

// GoalBarStyle is the style dashboard progress bars use.
func GoalBarStyle(width int) BarStyle {
	return BarStyle{Width: width, Color: GoalColor}
}

// GoalColor shades a bar by how far along it is: pink under half, purple
// under three quarters, cyan after that.
func GoalColor(percent float64) lipgloss.Color {
	switch {
	case percent >= 75:
		return ColorNeonCyan
	case percent >= 50:
		return ColorNeonPurple
	default:
		return ColorNeonPink
	}
}

// ClampPercent limits percent to 0-100. NaN passes through so callers can
// reject it.
func ClampPercent(percent float64) float64 {
	return math.Max(0, math.Min(100, percent))
}

// FilledCells is how many of width cells percent covers. It rounds down, so
// a bar only looks full at 100%.
func FilledCells(percent float64, width int) int {
	if width <= 0 || math.IsNaN(percent) {
		return 0
	}
	n := int(ClampPercent(percent) / 100 * float64(width))
	return min(n, width)
}

// RenderBar draws percent across style.Width cells, followed by the rounded
// percentage unless HidePercent is set.
func RenderBar(percent float64, style BarStyle) string {
	if style.Width <= 0 {
		return ""
	}
	if math.IsNaN(percent) {
		percent = 0
	}
	percent = ClampPercent(percent)

	filled := FilledCells(percent, style.Width)
	bar := strings.Repeat(barFilled, filled) + strings.Repeat(barEmpty, style.Width-filled)
	if style.Color != nil {
		bar = lipgloss.NewStyle().Foreground(style.Color(percent)).Render(bar)
	}
	if !style.HidePercent {
		bar += fmt.Sprintf(" %3.0f%%", percent)
	}
	return bar
}
