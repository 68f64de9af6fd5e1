package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// WaitFrames is the braille scan shown in a card that has no value yet.
var WaitFrames = spinner.Spinner{
	Frames: []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"},
	FPS:    time.Second / 16,
}

// PendingState tracks whether any card is still waiting for its first value.
type PendingState int

const (
	PendingIdle PendingState = iota
	PendingWaiting
	PendingFilled
	PendingAbandoned // the value source closed before every card was filled
)

// Pending is the shared wait indicator for cards without a value. One
// instance drives every empty card so they animate in step.
type Pending struct {
	spinner spinner.Model
	State   PendingState
	since   time.Time
}

// NewPending returns an idle indicator.
func NewPending() Pending {
	sp := spinner.New()
	sp.Spinner = WaitFrames
	sp.Style = lipgloss.NewStyle().Foreground(ColorNeonPurple)
	return Pending{spinner: sp}
}

// Wait starts the animation. The returned command delivers the first tick.
func (p *Pending) Wait() tea.Cmd {
	p.State = PendingWaiting
	p.since = time.Now()
	return p.spinner.Tick
}

// Fill stops the animation once every card has a value.
func (p *Pending) Fill() {
	if p.State == PendingWaiting {
		p.State = PendingFilled
	}
}

// Abandon stops the animation when no more values can arrive.
func (p *Pending) Abandon() {
	if p.State == PendingWaiting {
		p.State = PendingAbandoned
	}
}

// Waiting reports whether the animation is running.
func (p Pending) Waiting() bool {
	return p.State == PendingWaiting
}

// Update advances the animation. Ticks arriving after the wait ended are
// dropped, which ends the tick chain.
func (p Pending) Update(msg tea.Msg) (Pending, tea.Cmd) {
	tick, ok := msg.(spinner.TickMsg)
	if !ok || p.State != PendingWaiting {
		return p, nil
	}
	var cmd tea.Cmd
	p.spinner, cmd = p.spinner.Update(tick)
	return p, cmd
}

// Frame is the glyph drawn in place of a missing value.
func (p Pending) Frame() string {
	switch p.State {
	case PendingWaiting:
		return p.spinner.View()
	case PendingAbandoned:
		return lipgloss.NewStyle().Foreground(ColorMuted).Render("no value")
	default:
		return lipgloss.NewStyle().Foreground(ColorMuted).Render(SymbolPending)
	}
}

// Waited is how long the indicator has been running, zero if it never ran.
func (p Pending) Waited() time.Duration {
	if p.since.IsZero() {
		return 0
	}
	return time.Since(p.since)
}
