package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatCardRender(t *testing.T) {
	card := StatCard{
		Label: "Revenue",
		Value: "₹12,400",
		Hint:  "this month",
		Icon:  "$",
	}

	out := card.Render()
	lines := strings.Split(out, "\n")

	// Border, label, value, hint, border.
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "╭"))
	assert.True(t, strings.HasPrefix(lines[4], "╰"))
	assert.Contains(t, lines[1], "$ Revenue")
	assert.Contains(t, lines[2], "₹12,400")
	assert.Contains(t, lines[3], "this month")
	for _, line := range lines {
		assert.Equal(t, DefaultCardWidth, lipgloss.Width(line))
	}
}

func TestStatCardCustomWidth(t *testing.T) {
	card := StatCard{Label: "Orders", Value: "318", Width: 30}
	for _, line := range strings.Split(card.Render(), "\n") {
		assert.Equal(t, 30, lipgloss.Width(line))
	}
}

func TestStatCardPending(t *testing.T) {
	t.Run("placeholder", func(t *testing.T) {
		out := StatCard{Label: "Users"}.Render()
		assert.Contains(t, out, SymbolPending)
	})

	t.Run("spinner frame", func(t *testing.T) {
		out := StatCard{Label: "Users", Spinner: "⣾"}.Render()
		assert.Contains(t, out, "⣾")
		assert.NotContains(t, out, SymbolPending)
	})
}

func TestStatCardTrend(t *testing.T) {
	card := StatCard{
		Label: "Signups",
		Value: "42",
		Hint:  "vs last week",
		Trend: []float64{1, 2, 3, 5},
	}

	out := card.Render()
	assert.Contains(t, out, SymbolTrendUp+" vs last week")
	assert.Contains(t, out, "▁")
	assert.Contains(t, out, "█")

	down := StatCard{Label: "Churn", Value: "3", Trend: []float64{5, 1}}.Render()
	assert.Contains(t, down, SymbolTrendDown)
}

func TestStatCardTruncatesLongValues(t *testing.T) {
	card := StatCard{Label: "x", Value: strings.Repeat("9", 40), Width: 12}
	out := card.Render()

	assert.Contains(t, out, "…")
	for _, line := range strings.Split(out, "\n") {
		assert.Equal(t, 12, lipgloss.Width(line))
	}
}

func TestStatCardSelected(t *testing.T) {
	plain := StatCard{Label: "a", Value: "1"}.Render()
	selected := StatCard{Label: "a", Value: "1", Selected: true}.Render()

	// Only the border color differs, which monochrome output drops.
	assert.Equal(t, plain, selected)
}

func TestRenderCardGrid(t *testing.T) {
	cards := []StatCard{
		{Label: "one", Value: "1"},
		{Label: "two", Value: "2"},
		{Label: "three", Value: "3"},
	}

	t.Run("wraps to width", func(t *testing.T) {
		out := RenderCardGrid(cards, 2*DefaultCardWidth+cardGap)
		lines := strings.Split(out, "\n")

		// Two rows of four-line cards.
		require.Len(t, lines, 8)
		assert.Equal(t, 2*DefaultCardWidth+cardGap, lipgloss.Width(lines[0]))
		assert.Contains(t, lines[1], "one")
		assert.Contains(t, lines[1], "two")
		assert.Contains(t, lines[5], "three")
	})

	t.Run("narrow terminal keeps one per row", func(t *testing.T) {
		lines := strings.Split(RenderCardGrid(cards, 10), "\n")
		assert.Len(t, lines, 12)
	})

	t.Run("unbounded", func(t *testing.T) {
		lines := strings.Split(RenderCardGrid(cards, 0), "\n")
		assert.Len(t, lines, 4)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, RenderCardGrid(nil, 80))
	})
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly", 7, "exactly"},
		{"toolong", 5, "tool…"},
		{"₹12,400", 4, "₹12…"},
		{"any", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, truncate(tt.input, tt.width))
		})
	}
}
