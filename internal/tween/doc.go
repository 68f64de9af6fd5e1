// Package tween animates numeric values toward a target over a short, fixed
// duration.
//
// # Runs
//
// A Run is one bounded animation from Start to End. Progress is the elapsed
// fraction of the run's duration, clamped to [0, 1], and the displayed value
// is Start + (End-Start)*ease(progress). The default easing is a quartic
// ease-out, which starts fast and settles slowly:
//
//	EaseOutQuart(0.5) == 0.9375
//
// # Counter
//
// Counter is a Bubble Tea component that owns a displayed value and animates
// it whenever its target changes:
//
//	c := tween.NewCounter(tween.WithMode(format.ModeCurrency))
//	cmd := c.SetTarget("₹1,200") // starts a run from the current value
//	// ... in Update:
//	c, cmd = c.Update(msg)      // FrameMsg advances the run
//	// ... in View:
//	c.View()                    // "₹1,200" once settled
//
// Each frame schedules at most one successor, so frames for a run arrive in
// order. Every FrameMsg carries the counter's id and the generation of the
// run that scheduled it; SetTarget bumps the generation, and frames from a
// superseded run are dropped without touching state. A new run always starts
// from the value on screen at the moment of interruption.
//
// Targets that cannot be parsed into a finite number are ignored: the
// displayed value is held, a failure counter is incremented and the optional
// parse-failure hook is called.
package tween
