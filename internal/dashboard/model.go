package dashboard

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileyhilliard/statdeck/internal/config"
	"github.com/rileyhilliard/statdeck/internal/errors"
	"github.com/rileyhilliard/statdeck/internal/format"
	"github.com/rileyhilliard/statdeck/internal/logger"
	"github.com/rileyhilliard/statdeck/internal/tween"
	"github.com/rileyhilliard/statdeck/internal/ui"
)

// Bar width limits, in cells.
const (
	DefaultBarWidth = 30
	minBarWidth     = 10
	maxBarWidth     = 60
)

// card is one stat card and the counter animating its value.
type card struct {
	cfg     config.CardConfig
	counter tween.Counter
}

// bar is one progress bar.
type bar struct {
	key      string
	progress ui.AnimatedProgress
}

// page holds the cards and bars of one tab.
type page struct {
	name  string
	cards []card
	bars  []bar
}

// location finds a card or bar within the pages.
type location struct {
	page  int
	index int
	isBar bool
}

// Model is the Bubble Tea model for the dashboard.
type Model struct {
	pages   []page
	tabs    ui.TabBar
	keys    KeyMap
	help    help.Model
	pending ui.Pending
	history *History

	// Frame routing by counter id, and stream routing by key.
	byID  map[int]location
	byKey map[string]location

	stream    <-chan ValueMsg
	streaming bool

	log     logger.Logger
	now     func() time.Time
	version string

	// Stream values that didn't parse, shared across model copies.
	ignored *int

	width    int
	height   int
	quitting bool

	// Commands returned from Init besides the start message.
	initCmds []tea.Cmd
}

// startMsg re-stamps the initial runs once the program is running, so time
// spent setting up the terminal doesn't eat into them.
type startMsg struct{}

// Option configures a Model.
type Option func(*Model)

// WithStream feeds "key value" updates from ch into the dashboard.
func WithStream(ch <-chan ValueMsg) Option {
	return func(m *Model) { m.stream = ch }
}

// WithLogger sets the logger for ignored stream values.
func WithLogger(l logger.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.log = l
		}
	}
}

// WithClock sets the time source used to stamp animation runs.
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

// WithVersion sets the version shown in the header.
func WithVersion(v string) Option {
	return func(m *Model) { m.version = v }
}

// NewModel builds the dashboard from cfg. Cards and bars start animating
// toward their configured values once the program calls Init.
func NewModel(cfg *config.Config, opts ...Option) (Model, error) {
	if err := config.Validate(cfg); err != nil {
		return Model{}, err
	}
	formatter, err := config.FormatterFor(cfg)
	if err != nil {
		return Model{}, errors.WrapWithCode(err, errors.ErrFormat,
			"Can't build the number formatter",
			"Check the 'format' section in your .statdeck.yaml.")
	}

	m := Model{
		keys:    DefaultKeyMap(),
		help:    newHelp(),
		pending: ui.NewPending(),
		history: NewHistory(DefaultHistorySize),
		byID:    make(map[int]location),
		byKey:   make(map[string]location),
		log:     logger.NewEnvLogger("[dashboard]"),
		now:     time.Now,
		ignored: new(int),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.streaming = m.stream != nil
	ignored := m.ignored
	countIgnored := func(any) { *ignored++ }

	anim := cfg.Animation
	names := make([]string, 0, len(cfg.Tabs))
	for pi, tab := range cfg.Tabs {
		names = append(names, tab.Name)
		pg := page{name: tab.Name}

		for _, cc := range tab.Cards {
			mode := format.DetectMode(cc.Value)
			if cc.Mode != "" {
				// Validate already checked the mode name.
				mode, _ = format.ParseMode(cc.Mode)
			}
			counter := tween.NewCounter(
				tween.WithDuration(anim.Duration),
				tween.WithFrameInterval(anim.FrameInterval()),
				tween.WithClock(m.now),
				tween.WithFormatter(formatter),
				tween.WithMode(mode),
				tween.WithPrefix(cc.Prefix),
				tween.WithSuffix(cc.Suffix),
				tween.WithLogger(m.log),
				tween.WithParseFailureHook(countIgnored),
			)
			if cc.Value != "" {
				// Runs are re-stamped and their frames scheduled on startMsg.
				counter.SetTarget(cc.Value)
			}
			m.history.Seed(cc.Key, cc.Trend)

			loc := location{page: pi, index: len(pg.cards)}
			m.byID[counter.ID()] = loc
			m.byKey[cc.Key] = loc
			pg.cards = append(pg.cards, card{cfg: cc, counter: counter})
		}

		labelWidth := 0
		for _, pc := range tab.Progress {
			labelWidth = max(labelWidth, len([]rune(pc.Label)))
		}
		for _, pc := range tab.Progress {
			progress := ui.NewAnimatedProgress(pc.Label, DefaultBarWidth,
				tween.WithDuration(anim.ProgressDuration),
				tween.WithFrameInterval(anim.FrameInterval()),
				tween.WithClock(m.now),
				tween.WithLogger(m.log),
			)
			progress.LabelWidth = labelWidth
			progress.SetPercent(pc.Percent)

			loc := location{page: pi, index: len(pg.bars), isBar: true}
			m.byID[progress.ID()] = loc
			m.byKey[pc.Key] = loc
			pg.bars = append(pg.bars, bar{key: pc.Key, progress: progress})
		}

		m.pages = append(m.pages, pg)
	}
	m.tabs = ui.NewTabBar(names...)

	if m.pendingCards() > 0 {
		m.initCmds = append(m.initCmds, m.pending.Wait())
	}

	return m, nil
}

// Init starts the initial animations and begins reading the value stream.
func (m Model) Init() tea.Cmd {
	start := func() tea.Msg { return startMsg{} }
	cmds := append([]tea.Cmd{start}, m.initCmds...)
	if m.stream != nil {
		cmds = append(cmds, waitForValue(m.stream))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if handled, cmd := m.handleKey(msg); handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizeBars()

	case startMsg:
		return m, m.restartRuns()

	case tween.FrameMsg:
		return m, m.routeFrame(msg)

	case ui.TabFrameMsg:
		var cmd tea.Cmd
		m.tabs, cmd = m.tabs.Update(msg)
		return m, cmd

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.pending, cmd = m.pending.Update(msg)
		return m, cmd

	case ValueMsg:
		cmd := m.applyValue(msg)
		if m.stream == nil {
			return m, cmd
		}
		return m, tea.Batch(cmd, waitForValue(m.stream))

	case StreamClosedMsg:
		m.streaming = false
		m.pending.Abandon()
		m.log.Debug("value stream closed")
	}

	return m, nil
}

// restartRuns re-stamps every running card and bar to start now.
func (m *Model) restartRuns() tea.Cmd {
	var cmds []tea.Cmd
	for pi := range m.pages {
		for ci := range m.pages[pi].cards {
			cmds = append(cmds, m.pages[pi].cards[ci].counter.Restart())
		}
		for bi := range m.pages[pi].bars {
			cmds = append(cmds, m.pages[pi].bars[bi].progress.Restart())
		}
	}
	return tea.Batch(cmds...)
}

// Replay restarts every card and bar from zero toward its current target.
func (m *Model) Replay() tea.Cmd {
	var cmds []tea.Cmd
	for pi := range m.pages {
		for ci := range m.pages[pi].cards {
			cmds = append(cmds, m.pages[pi].cards[ci].counter.Replay())
		}
		for bi := range m.pages[pi].bars {
			cmds = append(cmds, m.pages[pi].bars[bi].progress.Replay())
		}
	}
	return tea.Batch(cmds...)
}

// ActiveTab returns the index of the visible tab.
func (m Model) ActiveTab() int { return m.tabs.Active() }

// Ignored returns how many values were dropped because they held no number.
func (m Model) Ignored() int { return *m.ignored }

// Streaming reports whether the value stream is still open.
func (m Model) Streaming() bool { return m.streaming }

// History returns the per-card value history.
func (m Model) History() *History { return m.history }

// CardValue returns the displayed value of the card with key.
func (m Model) CardValue(key string) (float64, bool) {
	c := m.cardByKey(key)
	if c == nil {
		return 0, false
	}
	return c.counter.Value(), true
}

// CardText returns the rendered value of the card with key.
func (m Model) CardText(key string) string {
	c := m.cardByKey(key)
	if c == nil {
		return ""
	}
	return c.counter.View()
}

// BarPercent returns the drawn percentage of the progress bar with key.
func (m Model) BarPercent(key string) (float64, bool) {
	loc, ok := m.byKey[key]
	if !ok || !loc.isBar {
		return 0, false
	}
	return m.pages[loc.page].bars[loc.index].progress.Percent(), true
}

// CardState describes one card as currently displayed.
type CardState struct {
	Tab     string
	Key     string
	Label   string
	Value   float64
	Text    string
	Pending bool // No value has arrived yet
}

// BarState describes one progress bar as currently drawn.
type BarState struct {
	Tab     string
	Key     string
	Label   string
	Percent float64
}

// Cards returns every card in tab order.
func (m Model) Cards() []CardState {
	var out []CardState
	for _, pg := range m.pages {
		for _, c := range pg.cards {
			_, has := c.counter.Target()
			out = append(out, CardState{
				Tab:     pg.name,
				Key:     c.cfg.Key,
				Label:   c.cfg.Label,
				Value:   c.counter.Value(),
				Text:    c.counter.View(),
				Pending: !has,
			})
		}
	}
	return out
}

// Bars returns every progress bar in tab order.
func (m Model) Bars() []BarState {
	var out []BarState
	for _, pg := range m.pages {
		for _, b := range pg.bars {
			out = append(out, BarState{
				Tab:     pg.name,
				Key:     b.key,
				Label:   b.progress.Label,
				Percent: b.progress.Percent(),
			})
		}
	}
	return out
}

// Settle finishes every running animation immediately.
func (m *Model) Settle() {
	for pi := range m.pages {
		for ci := range m.pages[pi].cards {
			m.pages[pi].cards[ci].counter.Settle()
		}
		for bi := range m.pages[pi].bars {
			m.pages[pi].bars[bi].progress.Settle()
		}
	}
	m.tabs.Snap()
}

func (m Model) cardByKey(key string) *card {
	loc, ok := m.byKey[key]
	if !ok || loc.isBar {
		return nil
	}
	return &m.pages[loc.page].cards[loc.index]
}

// routeFrame hands a frame to the counter or bar that scheduled it.
func (m *Model) routeFrame(msg tween.FrameMsg) tea.Cmd {
	loc, ok := m.byID[msg.ID]
	if !ok {
		return nil
	}

	var cmd tea.Cmd
	if loc.isBar {
		b := &m.pages[loc.page].bars[loc.index]
		b.progress, cmd = b.progress.Update(msg)
		return cmd
	}
	c := &m.pages[loc.page].cards[loc.index]
	c.counter, cmd = c.counter.Update(msg)
	return cmd
}

// applyValue retargets the card or bar named by msg.Key.
func (m *Model) applyValue(msg ValueMsg) tea.Cmd {
	loc, ok := m.byKey[msg.Key]
	if !ok {
		m.log.Debug("no card or progress bar with key %q", msg.Key)
		return nil
	}

	if loc.isBar {
		percent, ok := tween.ParseTarget(msg.Raw)
		if !ok {
			*m.ignored++
			m.log.Debug("ignoring unparseable percent %q for %q", msg.Raw, msg.Key)
			return nil
		}
		return m.pages[loc.page].bars[loc.index].progress.SetPercent(percent)
	}

	c := &m.pages[loc.page].cards[loc.index]
	if _, ok := tween.ParseTarget(msg.Raw); ok && c.cfg.Mode == "" {
		// Without a configured mode, each target's own symbol decides.
		c.counter.SetMode(format.DetectMode(msg.Raw))
	}
	cmd := c.counter.SetTarget(msg.Raw)
	if cmd != nil {
		target, _ := c.counter.Target()
		m.history.Push(msg.Key, target)
	}
	if m.pendingCards() == 0 {
		m.pending.Fill()
	}
	return cmd
}

// pendingCards counts cards still waiting for their first value.
func (m Model) pendingCards() int {
	n := 0
	for _, pg := range m.pages {
		for _, c := range pg.cards {
			if _, ok := c.counter.Target(); !ok {
				n++
			}
		}
	}
	return n
}

// resizeBars fits progress bars to the window width.
func (m *Model) resizeBars() {
	for pi := range m.pages {
		for bi := range m.pages[pi].bars {
			p := &m.pages[pi].bars[bi].progress
			// Label, a space, the bar, and " 100%".
			width := m.width - p.LabelWidth - 6
			p.Width = min(max(width, minBarWidth), maxBarWidth)
		}
	}
}
