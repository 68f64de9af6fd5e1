package tween

import (
	"fmt"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileyhilliard/statdeck/internal/format"
	"github.com/rileyhilliard/statdeck/internal/logger"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// FrameMsg advances a counter's active run. ID and Gen identify the counter
// and the run that scheduled the frame; Time is the frame timestamp.
type FrameMsg struct {
	ID   int
	Gen  uint64
	Time time.Time
}

// Counter displays a number that animates toward its target.
type Counter struct {
	id  int
	gen uint64

	displayed float64
	target    float64
	hasTarget bool
	run       Run
	animating bool

	duration time.Duration
	interval time.Duration
	now      func() time.Time

	formatter *format.Formatter
	mode      format.Mode
	prefix    string
	suffix    string

	log            logger.Logger
	onParseFailure func(raw any)
	parseFailures  int
}

// Option configures a Counter.
type Option func(*Counter)

// WithDuration sets the run duration. Non-positive durations snap to the target
// on the first frame.
func WithDuration(d time.Duration) Option {
	return func(c *Counter) { c.duration = d }
}

// WithFrameInterval sets the delay between frames.
func WithFrameInterval(d time.Duration) Option {
	return func(c *Counter) {
		if d > 0 {
			c.interval = d
		}
	}
}

// WithClock sets the time source used to stamp new runs.
func WithClock(now func() time.Time) Option {
	return func(c *Counter) {
		if now != nil {
			c.now = now
		}
	}
}

// WithFormatter sets the formatter used by View.
func WithFormatter(f *format.Formatter) Option {
	return func(c *Counter) {
		if f != nil {
			c.formatter = f
		}
	}
}

// WithMode sets the presentation mode.
func WithMode(m format.Mode) Option {
	return func(c *Counter) { c.mode = m }
}

// WithPrefix sets text rendered before the value.
func WithPrefix(p string) Option {
	return func(c *Counter) { c.prefix = p }
}

// WithSuffix sets text rendered after the value.
func WithSuffix(s string) Option {
	return func(c *Counter) { c.suffix = s }
}

// WithInitialValue sets the displayed value before the first target, so the
// first run starts from v instead of 0.
func WithInitialValue(v float64) Option {
	return func(c *Counter) { c.displayed = v }
}

// WithLogger sets the logger for dropped frames and ignored targets.
func WithLogger(l logger.Logger) Option {
	return func(c *Counter) {
		if l != nil {
			c.log = l
		}
	}
}

// WithParseFailureHook registers a callback for targets that don't parse.
func WithParseFailureHook(fn func(raw any)) Option {
	return func(c *Counter) { c.onParseFailure = fn }
}

// NewCounter creates an idle counter displaying 0.
func NewCounter(opts ...Option) Counter {
	c := Counter{
		id:        nextID(),
		duration:  DefaultDuration,
		interval:  DefaultFrameInterval,
		now:       time.Now,
		formatter: format.Default(),
		mode:      format.ModePlain,
		log:       logger.NewEnvLogger("[tween]"),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// ID returns the counter's unique id.
func (c Counter) ID() int { return c.id }

// Generation returns the generation of the most recent run.
func (c Counter) Generation() uint64 { return c.gen }

// Value returns the displayed value.
func (c Counter) Value() float64 { return c.displayed }

// Target returns the last accepted target and whether one has been set.
func (c Counter) Target() (float64, bool) { return c.target, c.hasTarget }

// Animating reports whether a run is in progress.
func (c Counter) Animating() bool { return c.animating }

// ParseFailures returns how many targets have been ignored as unparseable.
func (c Counter) ParseFailures() int { return c.parseFailures }

// Mode returns the presentation mode.
func (c Counter) Mode() format.Mode { return c.mode }

// SetMode changes the presentation mode.
func (c *Counter) SetMode(m format.Mode) { c.mode = m }

// SetTarget starts a run toward value from the currently displayed value and
// returns the command for its first frame.
//
// It returns nil without starting a run when value doesn't parse to a finite
// number (the displayed value is held) or when it equals the current target.
func (c *Counter) SetTarget(value any) tea.Cmd {
	end, ok := ParseTarget(value)
	if !ok {
		c.parseFailures++
		c.log.Debug("ignoring unparseable target %q (holding %v)", fmt.Sprint(value), c.displayed)
		if c.onParseFailure != nil {
			c.onParseFailure(value)
		}
		return nil
	}

	if c.hasTarget && end == c.target {
		return nil
	}

	c.target = end
	c.hasTarget = true
	c.gen++
	c.run = Run{
		Start:     c.displayed,
		End:       end,
		StartTime: c.now(),
		Duration:  c.duration,
	}
	c.animating = true

	return c.frame()
}

// Restart re-stamps the active run so it begins now from the displayed value.
// Frames scheduled for the old stamp are dropped when they arrive.
func (c *Counter) Restart() tea.Cmd {
	if !c.animating {
		return nil
	}
	c.gen++
	c.run.Start = c.displayed
	c.run.StartTime = c.now()
	return c.frame()
}

// Replay restarts the animation toward the current target from zero.
func (c *Counter) Replay() tea.Cmd {
	if !c.hasTarget {
		return nil
	}
	target := c.target
	c.displayed = 0
	c.hasTarget = false
	return c.SetTarget(target)
}

// Settle finishes any active run immediately. Frames already scheduled for
// that run are dropped when they arrive.
func (c *Counter) Settle() {
	if !c.animating {
		return
	}
	c.displayed = c.run.End
	c.animating = false
	c.gen++
}

// Tick advances the active run to now. It returns true when another frame is
// needed. With no active run it changes nothing and returns false.
func (c *Counter) Tick(now time.Time) bool {
	if !c.animating {
		return false
	}

	v, done := c.run.ValueAt(now)
	c.displayed = v
	if done {
		c.animating = false
		return false
	}
	return true
}

// Init returns no command; counters start idle.
func (c Counter) Init() tea.Cmd {
	return nil
}

// Update handles FrameMsg for this counter. Frames from another counter or a
// superseded run are ignored.
func (c Counter) Update(msg tea.Msg) (Counter, tea.Cmd) {
	frame, ok := msg.(FrameMsg)
	if !ok || frame.ID != c.id {
		return c, nil
	}
	if frame.Gen != c.gen {
		c.log.Debug("dropping stale frame for counter %d (gen %d, current %d)", c.id, frame.Gen, c.gen)
		return c, nil
	}

	if c.Tick(frame.Time) {
		return c, c.frame()
	}
	return c, nil
}

// View renders prefix + formatted value + suffix.
func (c Counter) View() string {
	return c.prefix + c.formatter.Format(c.displayed, c.mode) + c.suffix
}

func (c Counter) frame() tea.Cmd {
	id, gen := c.id, c.gen
	return tea.Tick(c.interval, func(t time.Time) tea.Msg {
		return FrameMsg{ID: id, Gen: gen, Time: t}
	})
}
