package dashboard

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/statdeck/internal/ui"
)

// KeyMap holds the dashboard key bindings.
type KeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Jump   key.Binding
	Replay key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "l", "right"),
			key.WithHelp("tab/→", "next tab"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "h", "left"),
			key.WithHelp("shift+tab/←", "prev tab"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "jump to tab"),
		),
		Replay: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "replay"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Replay, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Jump},
		{k.Replay, k.Help, k.Quit},
	}
}

// newHelp returns a help model styled with the dashboard palette.
func newHelp() help.Model {
	h := help.New()
	keyStyle := lipgloss.NewStyle().Foreground(ui.ColorNeonCyan)
	descStyle := lipgloss.NewStyle().Foreground(ui.ColorMuted)
	sepStyle := lipgloss.NewStyle().Foreground(ui.ColorGlassBorder)
	h.Styles.ShortKey = keyStyle
	h.Styles.ShortDesc = descStyle
	h.Styles.ShortSeparator = sepStyle
	h.Styles.FullKey = keyStyle
	h.Styles.FullDesc = descStyle
	h.Styles.FullSeparator = sepStyle
	h.Styles.Ellipsis = sepStyle
	return h
}

// handleKey processes keyboard input. It returns false for keys the
// dashboard doesn't bind.
func (m *Model) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return true, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return true, nil

	case key.Matches(msg, m.keys.Next):
		return true, m.tabs.Next()

	case key.Matches(msg, m.keys.Prev):
		return true, m.tabs.Prev()

	case key.Matches(msg, m.keys.Jump):
		i := int(msg.String()[0] - '1')
		if i >= m.tabs.Len() {
			return true, nil
		}
		return true, m.tabs.Select(i)

	case key.Matches(msg, m.keys.Replay):
		return true, m.Replay()
	}

	return false, nil
}
