package ui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/statdeck/internal/tween"
)

// InlineCounter animates a tween.Counter on a single terminal line, outside
// of a Bubble Tea program. A ticker goroutine advances the counter and
// redraws the line with a carriage return.
type InlineCounter struct {
	mu        sync.Mutex
	counter   tween.Counter
	label     string
	output    io.Writer
	interval  time.Duration
	now       func() time.Time
	running   bool
	stopChan  chan struct{}
	doneChan  chan struct{}
	idleChan  chan struct{}
	lastWidth int
}

// NewInlineCounter creates an idle inline counter writing to w. Options are
// passed to the underlying counter.
func NewInlineCounter(w io.Writer, label string, opts ...tween.Option) *InlineCounter {
	idle := make(chan struct{})
	close(idle)
	return &InlineCounter{
		counter:  tween.NewCounter(opts...),
		label:    label,
		output:   w,
		interval: tween.DefaultFrameInterval,
		now:      time.Now,
		idleChan: idle,
	}
}

// SetInterval changes the redraw interval. It has no effect once started.
func (c *InlineCounter) SetInterval(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d > 0 && !c.running {
		c.interval = d
	}
}

// Value returns the displayed value.
func (c *InlineCounter) Value() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counter.Value()
}

// ParseFailures returns how many targets were ignored.
func (c *InlineCounter) ParseFailures() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counter.ParseFailures()
}

// Start draws the current value and begins redrawing on every interval.
func (c *InlineCounter) Start() {
	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return
	}
	c.running = true
	c.stopChan = make(chan struct{})
	c.doneChan = make(chan struct{})
	c.render()
	c.mu.Unlock()

	go c.animate()
}

// SetTarget starts animating toward value. Unparseable values and the current
// target are ignored. It reports whether a new run started.
func (c *InlineCounter) SetTarget(value any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Frames come from the ticker, so the returned command is not needed.
	if c.counter.SetTarget(value) == nil {
		return false
	}
	select {
	case <-c.idleChan:
		c.idleChan = make(chan struct{})
	default:
	}
	return true
}

// Wait blocks until the counter reaches its target or ctx is done.
func (c *InlineCounter) Wait(ctx context.Context) error {
	c.mu.Lock()
	idle := c.idleChan
	c.mu.Unlock()

	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop halts the animation, jumping to the target.
func (c *InlineCounter) Stop() {
	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return
	}
	c.running = false
	close(c.stopChan)
	c.mu.Unlock()

	<-c.doneChan

	c.mu.Lock()
	defer c.mu.Unlock()
	c.counter.Settle()
	c.markIdle()
}

// Finish stops the animation and leaves the final value on its own line.
func (c *InlineCounter) Finish() {
	c.Stop()
	c.mu.Lock()
	defer c.mu.Unlock()
	c.render()
	fmt.Fprintln(c.output)
	c.lastWidth = 0
}

func (c *InlineCounter) animate() {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	defer close(c.doneChan)

	for {
		select {
		case <-c.stopChan:
			return
		case <-ticker.C:
			c.mu.Lock()
			if c.counter.Animating() {
				if !c.counter.Tick(c.now()) {
					c.markIdle()
				}
				c.render()
			}
			c.mu.Unlock()
		}
	}
}

// markIdle must be called with mu held.
func (c *InlineCounter) markIdle() {
	select {
	case <-c.idleChan:
	default:
		close(c.idleChan)
	}
}

// render must be called with mu held.
func (c *InlineCounter) render() {
	line := c.counter.View()
	if c.label != "" {
		line = lipgloss.NewStyle().Foreground(ColorSecondary).Render(c.label) + " " + line
	}

	width := lipgloss.Width(line)
	pad := ""
	if width < c.lastWidth {
		pad = strings.Repeat(" ", c.lastWidth-width)
	}
	fmt.Fprint(c.output, "\r"+line+pad)
	c.lastWidth = width
}
