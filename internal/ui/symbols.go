package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess  = "✓" // Probe succeeded
	SymbolFail     = "✗" // Probe failed
	SymbolPending  = "○" // No probe completed yet
	SymbolProgress = "◐" // Probe in flight
	SymbolStar     = "★" // Favorite endpoint
	SymbolWarn     = "⚠" // Degraded but responding
)
