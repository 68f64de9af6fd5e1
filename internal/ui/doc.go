// Package ui provides the Lip Gloss components statdeck draws with.
//
// # Components Overview
//
//	AnimatedProgress - Bar whose fill animates toward a clamped percentage
//	TabBar           - Tabs (or a two-state toggle) with a spring-driven highlight
//	StatCard         - Bordered label/value/hint/icon tile with a sparkline
//	InlineCounter    - Animated number on one terminal line, outside Bubble Tea
//	Pending          - Shared wait animation for cards that have no value yet
//	Sparkline        - Bar-height line of a card's recent values
//	Tables           - Snapshot tables for non-interactive output
//
// # Color Scheme
//
// Colors are hex values from a neon palette:
//
//	ColorNeonPink   - Active tab, selected card, low progress
//	ColorNeonPurple - Wait animation, mid progress
//	ColorNeonCyan   - Table headers, high progress
//	ColorSuccess    - Rising trends
//	ColorError      - Falling trends
//	ColorMuted      - Hints and inactive tabs
//
// Use DisableColors() to switch to monochrome output (for --no-color flag).
//
// # Animation
//
// Animated components follow the Bubble Tea pattern: a state change returns a
// tea.Cmd for the first frame and each frame message schedules the next until
// the animation settles. Frame messages carry the component id and a
// generation so frames from a superseded animation are dropped:
//
//	var cmd tea.Cmd
//	bar := ui.NewAnimatedProgress("Monthly goal", 20)
//	cmd = bar.SetPercent(72)
//	...
//	bar, cmd = bar.Update(msg)
package ui
