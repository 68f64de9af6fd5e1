package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DefaultCardWidth is the outer width of a stat card, border included.
const DefaultCardWidth = 24

// cardGap is the horizontal space between cards in a grid.
const cardGap = 1

// StatCard is a bordered tile showing a label, a value, an optional hint
// and an optional sparkline of recent values.
type StatCard struct {
	Label    string
	Value    string // Rendered value; empty while waiting for the first one
	Hint     string
	Icon     string
	Trend    []float64
	Width    int // Outer width; DefaultCardWidth when zero
	Selected bool
	Spinner  string // Shown in place of an empty Value
}

// Render draws the card.
func (c StatCard) Render() string {
	width := c.Width
	if width <= 0 {
		width = DefaultCardWidth
	}
	// Border takes one cell per side, padding one more.
	inner := max(width-4, 1)

	borderColor := ColorGlassBorder
	if c.Selected {
		borderColor = ColorNeonPink
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(inner + 2)

	labelStyle := lipgloss.NewStyle().Foreground(ColorSecondary)
	valueStyle := lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	hintStyle := lipgloss.NewStyle().Foreground(ColorMuted)

	lines := make([]string, 0, 4)

	title := c.Label
	if c.Icon != "" {
		title = c.Icon + " " + title
	}
	lines = append(lines, labelStyle.Render(truncate(title, inner)))

	switch {
	case c.Value != "":
		lines = append(lines, valueStyle.Render(truncate(c.Value, inner)))
	case c.Spinner != "":
		lines = append(lines, c.Spinner)
	default:
		lines = append(lines, hintStyle.Render(SymbolPending))
	}

	hint := c.Hint
	if len(c.Trend) >= 2 {
		trend := TrendOf(c.Trend)
		arrow := lipgloss.NewStyle().Foreground(TrendColor(c.Trend)).Render(TrendSymbol(trend))
		if hint == "" {
			hint = arrow
		} else {
			hint = arrow + " " + hintStyle.Render(truncate(hint, inner-2))
		}
		lines = append(lines, hint)
	} else if hint != "" {
		lines = append(lines, hintStyle.Render(truncate(hint, inner)))
	}

	if len(c.Trend) > 0 {
		lines = append(lines, Sparkline(c.Trend, inner))
	}

	return box.Render(strings.Join(lines, "\n"))
}

// RenderCardGrid lays cards out left to right, wrapping to fit totalWidth.
// A non-positive totalWidth puts every card on one row.
func RenderCardGrid(cards []StatCard, totalWidth int) string {
	if len(cards) == 0 {
		return ""
	}

	cardWidth := cards[0].Width
	if cardWidth <= 0 {
		cardWidth = DefaultCardWidth
	}
	perRow := len(cards)
	if totalWidth > 0 {
		perRow = max((totalWidth+cardGap)/(cardWidth+cardGap), 1)
	}

	spacer := strings.Repeat(" ", cardGap)
	var rows []string
	for start := 0; start < len(cards); start += perRow {
		end := min(start+perRow, len(cards))
		parts := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			if i > start {
				parts = append(parts, spacer)
			}
			parts = append(parts, cards[i].Render())
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// truncate shortens s to width cells, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
