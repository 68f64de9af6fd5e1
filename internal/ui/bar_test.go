package ui

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampPercent(t *testing.T) {
	assert.Equal(t, 0.0, ClampPercent(-12))
	assert.Equal(t, 41.75, ClampPercent(41.75))
	assert.Equal(t, 100.0, ClampPercent(250))
	assert.True(t, math.IsNaN(ClampPercent(math.NaN())), "NaN is left for the caller to reject")
}

func TestFilledCells(t *testing.T) {
	tests := []struct {
		name    string
		percent float64
		width   int
		want    int
	}{
		{"empty", 0, 10, 0},
		{"half", 50, 10, 5},
		{"full", 100, 10, 10},
		{"rounds down", 99.9, 10, 9},
		{"small slice stays empty", 4, 20, 0},
		{"over range clamps", 180, 8, 8},
		{"negative clamps", -5, 8, 0},
		{"NaN draws nothing", math.NaN(), 8, 0},
		{"zero width", 50, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilledCells(tt.percent, tt.width))
		})
	}
}

func TestGoalColor(t *testing.T) {
	tests := []struct {
		percent float64
		want    string
	}{
		{0, string(ColorNeonPink)},
		{49.9, string(ColorNeonPink)},
		{50, string(ColorNeonPurple)},
		{74.9, string(ColorNeonPurple)},
		{75, string(ColorNeonCyan)},
		{100, string(ColorNeonCyan)},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, string(GoalColor(tt.percent)), "percent %v", tt.percent)
	}
}

func TestRenderBar(t *testing.T) {
	tests := []struct {
		name    string
		percent float64
		style   BarStyle
		want    string
	}{
		{"zero width draws nothing", 50, BarStyle{Width: 0}, ""},
		{"bare bar", 50, BarStyle{Width: 6, HidePercent: true}, "▰▰▰▱▱▱"},
		{"percent is right aligned", 25, BarStyle{Width: 4}, "▰▱▱▱  25%"},
		{"percent rounds", 41.75, BarStyle{Width: 4}, "▰▱▱▱  42%"},
		{"over range shows 100", 140, BarStyle{Width: 4}, "▰▰▰▰ 100%"},
		{"NaN shows empty", math.NaN(), BarStyle{Width: 2}, "▱▱   0%"},
		{"goal style keeps glyphs", 100, GoalBarStyle(3), "▰▰▰ 100%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderBar(tt.percent, tt.style))
		})
	}
}
