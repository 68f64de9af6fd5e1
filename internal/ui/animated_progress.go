package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/statdeck/internal/tween"
)

// DefaultProgressDuration is how long a bar takes to fill to a new percentage.
const DefaultProgressDuration = 600 * time.Millisecond

// AnimatedProgress is a labeled bar whose fill animates toward a percentage.
// The fill is a tween.Counter over 0-100, so it shares the counter's frame
// messages and supersession rules.
type AnimatedProgress struct {
	Label      string
	LabelWidth int
	Width      int
	Style      BarStyle

	counter tween.Counter
}

// NewAnimatedProgress creates a bar at 0%. Options are applied to the
// underlying counter after the progress defaults.
func NewAnimatedProgress(label string, width int, opts ...tween.Option) AnimatedProgress {
	base := []tween.Option{tween.WithDuration(DefaultProgressDuration)}
	return AnimatedProgress{
		Label:   label,
		Width:   width,
		Style:   GoalBarStyle(width),
		counter: tween.NewCounter(append(base, opts...)...),
	}
}

// ID returns the id carried by this bar's frame messages.
func (p AnimatedProgress) ID() int { return p.counter.ID() }

// Generation returns the generation of the current fill animation.
func (p AnimatedProgress) Generation() uint64 { return p.counter.Generation() }

// Percent returns the percentage currently drawn.
func (p AnimatedProgress) Percent() float64 { return p.counter.Value() }

// Target returns the clamped percentage the bar is heading to.
func (p AnimatedProgress) Target() float64 {
	t, _ := p.counter.Target()
	return t
}

// Animating reports whether the fill is still moving.
func (p AnimatedProgress) Animating() bool { return p.counter.Animating() }

// SetPercent clamps percent to 0-100 and animates from the current fill.
// Non-finite input leaves the bar unchanged.
func (p *AnimatedProgress) SetPercent(percent float64) tea.Cmd {
	return p.counter.SetTarget(ClampPercent(percent))
}

// Restart re-stamps a running fill so it begins now.
func (p *AnimatedProgress) Restart() tea.Cmd { return p.counter.Restart() }

// Replay animates from empty to the current target again.
func (p *AnimatedProgress) Replay() tea.Cmd { return p.counter.Replay() }

// Settle jumps to the target.
func (p *AnimatedProgress) Settle() { p.counter.Settle() }

// Init returns no command; bars start empty.
func (p AnimatedProgress) Init() tea.Cmd { return nil }

// Update forwards frame messages to the fill counter.
func (p AnimatedProgress) Update(msg tea.Msg) (AnimatedProgress, tea.Cmd) {
	var cmd tea.Cmd
	p.counter, cmd = p.counter.Update(msg)
	return p, cmd
}

// View renders "label bar pct%".
func (p AnimatedProgress) View() string {
	style := p.Style
	style.Width = p.Width
	bar := RenderBar(p.counter.Value(), style)
	if p.Label == "" {
		return bar
	}

	labelStyle := lipgloss.NewStyle().Foreground(ColorSecondary)
	label := p.Label
	if p.LabelWidth > 0 {
		label = padRight(label, p.LabelWidth)
	}
	return labelStyle.Render(label) + " " + bar
}
