package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/statdeck/internal/ui"
	"github.com/rileyhilliard/statdeck/internal/util"
)

var (
	tabTitleStyle = lipgloss.NewStyle().Foreground(ui.ColorNeonPink).Bold(true)
	footerStyle   = lipgloss.NewStyle().Foreground(ui.ColorMuted)
)

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(ui.RenderHeader(ui.HeaderInfo{
		Version: m.version,
		Tagline: m.statusLine(),
		Width:   m.dividerWidth(),
	}))
	b.WriteString(m.tabs.View())
	b.WriteString("\n\n")

	if len(m.pages) > 0 {
		b.WriteString(m.renderPage(m.tabs.Active()))
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// renderPage draws the cards and bars of page i.
func (m Model) renderPage(i int) string {
	pg := m.pages[i]
	var sections []string

	if len(pg.cards) > 0 {
		cards := make([]ui.StatCard, 0, len(pg.cards))
		for _, c := range pg.cards {
			cards = append(cards, m.statCard(c))
		}
		sections = append(sections, ui.RenderCardGrid(cards, m.width))
	}

	if len(pg.bars) > 0 {
		lines := make([]string, 0, len(pg.bars))
		for _, br := range pg.bars {
			lines = append(lines, br.progress.View())
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	return strings.Join(sections, "\n\n") + "\n"
}

// statCard converts a card into its rendered tile.
func (m Model) statCard(c card) ui.StatCard {
	sc := ui.StatCard{
		Label: c.cfg.Label,
		Hint:  c.cfg.Hint,
		Icon:  c.cfg.Icon,
		Trend: m.history.Values(c.cfg.Key, 0),
	}
	if _, ok := c.counter.Target(); ok {
		sc.Value = c.counter.View()
	} else {
		sc.Spinner = m.pending.Frame()
	}
	return sc
}

func (m Model) statusLine() string {
	var parts []string
	if m.streaming {
		parts = append(parts, "live · reading values from stdin")
	}
	if n := m.Ignored(); n > 0 {
		parts = append(parts, fmt.Sprintf("%d %s ignored", n, util.Pluralize(n, "value", "values")))
	}
	return strings.Join(parts, " · ")
}

func (m Model) dividerWidth() int {
	if m.width <= 0 {
		return ui.HeaderWidth
	}
	return m.width
}

// Snapshot renders every tab with all animations finished, one after
// another. It is the static form of the dashboard.
func (m Model) Snapshot(width int) string {
	pages := make([]page, len(m.pages))
	for i, pg := range m.pages {
		pages[i] = page{
			name:  pg.name,
			cards: append([]card(nil), pg.cards...),
			bars:  append([]bar(nil), pg.bars...),
		}
	}
	m.pages = pages
	m.width = width
	m.resizeBars()
	m.Settle()

	var b strings.Builder
	for i, pg := range m.pages {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(tabTitleStyle.Render(pg.name))
		b.WriteString("\n")
		b.WriteString(m.renderPage(i))
	}
	if n := m.pendingCards(); n > 0 {
		b.WriteString("\n")
		b.WriteString(footerStyle.Render(fmt.Sprintf("%s %d %s no value yet",
			ui.SymbolPending, n, util.Pluralize(n, "card has", "cards have"))))
		b.WriteString("\n")
	}
	return b.String()
}
