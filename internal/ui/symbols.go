package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess  = "✓" // Completed successfully
	SymbolFail     = "✗" // Failed
	SymbolPending  = "○" // Waiting for a value
	SymbolProgress = "◐" // Animating
	SymbolComplete = "●" // Settled
	SymbolWarning  = "⚠" // Warning
)

// Trend arrows used in card hints.
const (
	SymbolTrendUp   = "▲"
	SymbolTrendDown = "▼"
	SymbolTrendFlat = "▬"
)
