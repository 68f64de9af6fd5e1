package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// TableStyle groups the styles shared by the snapshot tables.
type TableStyle struct {
	Header   lipgloss.Style
	Cell     lipgloss.Style
	Selected lipgloss.Style
	Border   lipgloss.Style
}

// DefaultTableStyle returns the default table styling.
func DefaultTableStyle() TableStyle {
	return TableStyle{
		Header:   lipgloss.NewStyle().Bold(true).Foreground(ColorNeonCyan),
		Cell:     lipgloss.NewStyle().Foreground(ColorPrimary),
		Selected: lipgloss.NewStyle().Foreground(ColorPrimary).Background(ColorGlassBorder),
		Border:   lipgloss.NewStyle().Foreground(ColorMuted),
	}
}

// TableColumn defines a table column with name and width.
type TableColumn struct {
	Title string
	Width int
}

// NewTable creates a Bubbles table with the dashboard styling.
func NewTable(columns []TableColumn, rows []table.Row) table.Model {
	cols := make([]table.Column, len(columns))
	for i, c := range columns {
		cols[i] = table.Column{Title: c.Title, Width: c.Width}
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1), // +1 for header
	)

	ts := DefaultTableStyle()
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		BorderBottom(true).
		Inherit(ts.Header)
	s.Cell = s.Cell.Inherit(ts.Cell)
	s.Selected = s.Selected.Inherit(ts.Selected).Bold(false)

	t.SetStyles(s)
	return t
}

// ProgressRow is one line of the snapshot progress table.
type ProgressRow struct {
	Tab     string
	Key     string
	Label   string
	Percent float64
}

// RenderProgressTable lists progress bars with their rounded percentages.
// Columns are sized to fit the widest entry.
func RenderProgressTable(rows []ProgressRow) string {
	if len(rows) == 0 {
		return ""
	}

	cols := []TableColumn{{Title: "TAB"}, {Title: "KEY"}, {Title: "LABEL"}, {Title: "PERCENT"}}
	tableRows := make([]table.Row, len(rows))
	for i, r := range rows {
		tableRows[i] = table.Row{r.Tab, r.Key, r.Label, fmt.Sprintf("%.0f%%", r.Percent)}
	}
	for ci := range cols {
		cols[ci].Width = lipgloss.Width(cols[ci].Title)
		for _, row := range tableRows {
			cols[ci].Width = max(cols[ci].Width, lipgloss.Width(row[ci]))
		}
	}

	return NewTable(cols, tableRows).View()
}

// ValueRow is one line of the snapshot value table.
type ValueRow struct {
	Tab   string
	Key   string
	Label string
	Value string // Already formatted
}

// RenderValueTable renders card values grouped under their tab names.
// Keys and labels are padded into fixed columns; values are right-aligned.
func RenderValueTable(rows []ValueRow) string {
	if len(rows) == 0 {
		return "No cards configured"
	}

	style := DefaultTableStyle()
	tabStyle := lipgloss.NewStyle().Bold(true).Foreground(ColorNeonPink)

	keyWidth, labelWidth, valueWidth := len("KEY"), len("LABEL"), len("VALUE")
	for _, r := range rows {
		keyWidth = max(keyWidth, lipgloss.Width(r.Key))
		labelWidth = max(labelWidth, lipgloss.Width(r.Label))
		valueWidth = max(valueWidth, lipgloss.Width(r.Value))
	}
	keyWidth += 2
	labelWidth += 2

	var sb strings.Builder
	sb.WriteString(style.Header.Render("  " + padRight("KEY", keyWidth) + padRight("LABEL", labelWidth) + padLeft("VALUE", valueWidth)))
	sb.WriteString("\n")

	currentTab := ""
	for i, r := range rows {
		if i == 0 || r.Tab != currentTab {
			currentTab = r.Tab
			sb.WriteString(tabStyle.Render(r.Tab))
			sb.WriteString("\n")
		}
		line := "  " + style.Border.Render(padRight(r.Key, keyWidth)) +
			padRight(r.Label, labelWidth) +
			style.Cell.Render(padLeft(r.Value, valueWidth))
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	return sb.String()
}

// padRight pads a string to the specified visible width.
func padRight(s string, width int) string {
	visibleLen := lipgloss.Width(s)
	if visibleLen >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visibleLen)
}

// padLeft right-aligns a string within the specified visible width.
func padLeft(s string, width int) string {
	visibleLen := lipgloss.Width(s)
	if visibleLen >= width {
		return s
	}
	return strings.Repeat(" ", width-visibleLen) + s
}
