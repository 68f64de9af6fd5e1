package ui

import (
	"math"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
)

var lastTabBarID int64

// TabFrameMsg advances a tab bar's highlight. Frames for another bar or an
// older selection are ignored.
type TabFrameMsg struct {
	ID  int
	Gen uint64
}

// tabGap separates rendered tabs.
const tabGap = 1

// settleEpsilon is how close (in cells) the highlight must be to stop.
const settleEpsilon = 0.01

// TabBar is a row of tabs with a highlight that slides to the active one.
// Two tabs make a toggle.
type TabBar struct {
	id     int
	gen    uint64
	labels []string
	active int

	spring   harmonica.Spring
	interval time.Duration

	// Highlight left edge and width, in cells.
	pos, posVel     float64
	width, widthVel float64
	moving          bool
}

// NewTabBar creates a tab bar with the first tab active and the highlight
// already under it.
func NewTabBar(labels ...string) TabBar {
	t := TabBar{
		id:       int(atomic.AddInt64(&lastTabBarID, 1)),
		labels:   append([]string(nil), labels...),
		spring:   harmonica.NewSpring(harmonica.FPS(60), 6.0, 1.0),
		interval: time.Second / 60,
	}
	t.Snap()
	return t
}

// NewToggle creates a two-state tab bar.
func NewToggle(off, on string) TabBar {
	return NewTabBar(off, on)
}

// ID returns the id carried by this bar's frame messages.
func (t TabBar) ID() int { return t.id }

// Active returns the active tab index.
func (t TabBar) Active() int { return t.active }

// Len returns the number of tabs.
func (t TabBar) Len() int { return len(t.labels) }

// Labels returns a copy of the tab labels.
func (t TabBar) Labels() []string { return append([]string(nil), t.labels...) }

// Moving reports whether the highlight is still sliding.
func (t TabBar) Moving() bool { return t.moving }

// Highlight returns the highlight's left edge and width in cells.
func (t TabBar) Highlight() (pos, width float64) { return t.pos, t.width }

// Select activates tab i and starts the highlight moving. Out of range or
// already active indexes are ignored.
func (t *TabBar) Select(i int) tea.Cmd {
	if i < 0 || i >= len(t.labels) || i == t.active {
		return nil
	}
	t.active = i
	t.gen++
	t.moving = true
	return t.frame()
}

// Next activates the following tab, wrapping around.
func (t *TabBar) Next() tea.Cmd {
	if len(t.labels) < 2 {
		return nil
	}
	return t.Select((t.active + 1) % len(t.labels))
}

// Prev activates the preceding tab, wrapping around.
func (t *TabBar) Prev() tea.Cmd {
	if len(t.labels) < 2 {
		return nil
	}
	return t.Select((t.active - 1 + len(t.labels)) % len(t.labels))
}

// Toggle flips a two-state bar.
func (t *TabBar) Toggle() tea.Cmd {
	return t.Next()
}

// Snap moves the highlight to the active tab immediately.
func (t *TabBar) Snap() {
	t.pos, t.width = t.slot(t.active)
	t.posVel, t.widthVel = 0, 0
	if t.moving {
		t.gen++
	}
	t.moving = false
}

// Step advances the spring by one frame. It returns true while the
// highlight is still moving.
func (t *TabBar) Step() bool {
	if !t.moving {
		return false
	}
	targetPos, targetWidth := t.slot(t.active)
	t.pos, t.posVel = t.spring.Update(t.pos, t.posVel, targetPos)
	t.width, t.widthVel = t.spring.Update(t.width, t.widthVel, targetWidth)

	if settled(t.pos, t.posVel, targetPos) && settled(t.width, t.widthVel, targetWidth) {
		t.pos, t.width = targetPos, targetWidth
		t.posVel, t.widthVel = 0, 0
		t.moving = false
		return false
	}
	return true
}

// Init returns no command; the highlight starts in place.
func (t TabBar) Init() tea.Cmd { return nil }

// Update handles TabFrameMsg for this bar.
func (t TabBar) Update(msg tea.Msg) (TabBar, tea.Cmd) {
	frame, ok := msg.(TabFrameMsg)
	if !ok || frame.ID != t.id || frame.Gen != t.gen {
		return t, nil
	}
	if t.Step() {
		return t, t.frame()
	}
	return t, nil
}

// View renders the tab labels with the highlight line beneath them.
func (t TabBar) View() string {
	if len(t.labels) == 0 {
		return ""
	}

	activeStyle := lipgloss.NewStyle().Foreground(ColorNeonPink).Bold(true)
	inactiveStyle := lipgloss.NewStyle().Foreground(ColorMuted)

	var row strings.Builder
	for i, label := range t.labels {
		if i > 0 {
			row.WriteString(strings.Repeat(" ", tabGap))
		}
		cell := " " + label + " "
		if i == t.active {
			row.WriteString(activeStyle.Render(cell))
		} else {
			row.WriteString(inactiveStyle.Render(cell))
		}
	}

	return row.String() + "\n" + t.underline()
}

func (t TabBar) underline() string {
	total := t.totalWidth()
	start := clampInt(int(math.Round(t.pos)), 0, total)
	end := clampInt(int(math.Round(t.pos+t.width)), start, total)

	trackStyle := lipgloss.NewStyle().Foreground(ColorGlassBorder)
	accentStyle := lipgloss.NewStyle().Foreground(ColorNeonPink)

	return trackStyle.Render(strings.Repeat("─", start)) +
		accentStyle.Render(strings.Repeat("━", end-start)) +
		trackStyle.Render(strings.Repeat("─", total-end))
}

// slot returns the left edge and width of tab i.
func (t TabBar) slot(i int) (pos, width float64) {
	if i < 0 || i >= len(t.labels) {
		return 0, 0
	}
	x := 0
	for j := 0; j < i; j++ {
		x += tabWidth(t.labels[j]) + tabGap
	}
	return float64(x), float64(tabWidth(t.labels[i]))
}

func (t TabBar) totalWidth() int {
	if len(t.labels) == 0 {
		return 0
	}
	w := 0
	for _, l := range t.labels {
		w += tabWidth(l)
	}
	return w + tabGap*(len(t.labels)-1)
}

func (t TabBar) frame() tea.Cmd {
	id, gen := t.id, t.gen
	return tea.Tick(t.interval, func(time.Time) tea.Msg {
		return TabFrameMsg{ID: id, Gen: gen}
	})
}

func tabWidth(label string) int {
	return lipgloss.Width(label) + 2
}

func settled(pos, vel, target float64) bool {
	return math.Abs(pos-target) < settleEpsilon && math.Abs(vel) < settleEpsilon
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
