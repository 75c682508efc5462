package dashboard

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/erwinh22/free-coding-models-sub000/internal/endpoint"
	"github.com/erwinh22/free-coding-models-sub000/internal/engine"
	"github.com/erwinh22/free-coding-models-sub000/internal/ui"
)

// Spinner frames for endpoints that have not completed a probe yet.
var probingSpinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Width breakpoint below which the latency columns collapse.
const compactBreakpoint = 100

// sparklineWidth is how many history samples the inline graph shows.
const sparklineWidth = 12

// renderDashboard renders the complete dashboard view.
func (m Model) renderDashboard() string {
	if m.showHelp {
		return m.renderHelpOverlay()
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if m.viewMode == ViewDetail {
		b.WriteString(m.detailViewport.View())
	} else {
		b.WriteString(m.renderRows())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderHeader renders the dashboard header with summary stats.
func (m Model) renderHeader() string {
	total := len(m.visible)
	reachable := m.ReachableCount()
	lastUpdate := m.SecondsSinceUpdate()

	var updateText string
	switch {
	case m.lastUpdate.IsZero():
		updateText = "waiting"
	case lastUpdate == 0:
		updateText = "just now"
	case lastUpdate == 1:
		updateText = "1s ago"
	default:
		updateText = fmt.Sprintf("%ds ago", lastUpdate)
	}

	arrow := "↑"
	if m.direction == engine.Descending {
		arrow = "↓"
	}
	sortText := fmt.Sprintf("sort %s %s", m.column, arrow)

	tierText := "all tiers"
	if m.tierLetter != "" {
		tierText = "tier " + m.tierLetter
	}

	title := TitleStyle.Render("fcm dashboard")
	stats := LabelStyle.Render(fmt.Sprintf(" | %d endpoints | %d reachable | %s | %s | updated %s",
		total, reachable, sortText, tierText, updateText))

	return HeaderStyle.Render(title + stats)
}

// renderRows renders one line per visible endpoint.
func (m Model) renderRows() string {
	if len(m.visible) == 0 {
		if m.tierLetter != "" {
			return LabelStyle.Render("No endpoints in tier " + m.tierLetter)
		}
		return LabelStyle.Render("No endpoints configured")
	}

	compact := m.width > 0 && m.width < compactBreakpoint

	var b strings.Builder
	b.WriteString(m.renderColumnHeader(compact))
	b.WriteString("\n")

	for i, e := range m.visible {
		b.WriteString(m.renderRow(e, i == m.selected, compact))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) renderColumnHeader(compact bool) string {
	cols := fmt.Sprintf("  %-2s %-28s %-12s %-4s %8s %8s", "", "MODEL", "PROVIDER", "TIER", "PING", "AVG")
	if !compact {
		cols += fmt.Sprintf(" %8s %10s %7s %5s  %s", "P95", "VERDICT", "UPTIME", "SCORE", "HISTORY")
	} else {
		cols += fmt.Sprintf(" %10s", "VERDICT")
	}
	return MutedStyle.Render(cols)
}

// renderRow renders a single endpoint line.
func (m Model) renderRow(e *endpoint.Endpoint, selected, compact bool) string {
	symbol := m.statusSymbol(e)

	name := e.Label
	if m.IsFavorite(e.ID) {
		name = ui.SymbolStar + " " + name
	}
	if len([]rune(name)) > 28 {
		name = string([]rune(name)[:27]) + "…"
	}

	verdict := engine.ComputeVerdict(e)
	verdictText := lipgloss.NewStyle().Foreground(VerdictColor(verdict)).Render(fmt.Sprintf("%10s", verdict))

	row := fmt.Sprintf("%-2s %-28s %-12s %-4s %8s %8s",
		symbol, name, e.Provider, string(e.Tier),
		formatLatency(latestLatencyMs(e)),
		formatLatency(engine.AverageLatency(e.History)),
	)

	if compact {
		line := row + " " + verdictText
		if selected {
			return SelectedRowStyle.Render("▸ ") + line
		}
		return "  " + line
	}

	row += fmt.Sprintf(" %8s", formatLatency(engine.Percentile95(e.History)))
	row += " " + verdictText
	row += fmt.Sprintf(" %6d%% %5s", engine.Uptime(e.History), formatStability(engine.StabilityScore(e.History)))
	row += "  " + ui.RenderSparkline(historyLatencies(e), sparklineWidth)

	if selected {
		return SelectedRowStyle.Render("▸ ") + row
	}
	return "  " + row
}

// statusSymbol picks the indicator for an endpoint's current state.
func (m Model) statusSymbol(e *endpoint.Endpoint) string {
	if e.Status == endpoint.StatusPending {
		return probingSpinnerFrames[m.spinnerFrame%len(probingSpinnerFrames)]
	}

	style := lipgloss.NewStyle().Foreground(StatusColor(e.Status))
	switch e.Status {
	case endpoint.StatusReachable:
		return style.Render(ui.SymbolSuccess)
	case endpoint.StatusRateLimited, endpoint.StatusAuthMissing:
		return style.Render(ui.SymbolWarn)
	default:
		return style.Render(ui.SymbolFail)
	}
}

// renderFooter renders the key hint bar.
func (m Model) renderFooter() string {
	if m.viewMode == ViewDetail {
		return FooterStyle.Render("esc back | ↑/↓ scroll | u use | q quit | ? help")
	}
	return FooterStyle.Render("↑/↓ select | enter details | s sort | o order | 1-4/0 tier | f fav | u use | r refresh | q quit | ? help")
}

// updateDetailViewportContent rebuilds the detail view for the selection.
func (m *Model) updateDetailViewportContent() {
	if !m.viewportReady {
		return
	}
	e := m.Selected()
	if e == nil {
		m.detailViewport.SetContent(LabelStyle.Render("No endpoint selected"))
		return
	}
	m.detailViewport.SetContent(m.renderDetail(e))
}

// renderDetail renders the full metric breakdown for one endpoint.
func (m Model) renderDetail(e *endpoint.Endpoint) string {
	verdict := engine.ComputeVerdict(e)

	var b strings.Builder
	b.WriteString(TitleStyle.Render(e.Label))
	if m.IsFavorite(e.ID) {
		b.WriteString(" " + FavoriteStyle.Render(ui.SymbolStar))
	}
	b.WriteString("\n\n")

	rows := []struct {
		label string
		value string
	}{
		{"Provider", e.Provider},
		{"Model", e.Model},
		{"URL", e.URL},
		{"Tier", string(e.Tier)},
		{"Benchmark score", e.Score},
		{"Context window", e.Context},
		{"Status", e.Status.String()},
		{"Verdict", lipgloss.NewStyle().Foreground(VerdictColor(verdict)).Render(verdict.String())},
		{"Latest ping", formatLatency(latestLatencyMs(e))},
		{"Average latency", formatLatency(engine.AverageLatency(e.History))},
		{"P95 latency", formatLatency(engine.Percentile95(e.History))},
		{"Jitter", formatLatency(engine.Jitter(e.History))},
		{"Uptime", fmt.Sprintf("%d%%", engine.Uptime(e.History))},
		{"Stability", formatStability(engine.StabilityScore(e.History))},
		{"Samples", fmt.Sprintf("%d", len(e.History))},
	}
	if e.LastErrorCode != "" {
		rows = append(rows, struct {
			label string
			value string
		}{"Last error", e.LastErrorCode})
	}

	for _, r := range rows {
		b.WriteString(LabelStyle.Render(fmt.Sprintf("%-16s", r.label)))
		b.WriteString(" " + r.value + "\n")
	}

	if spark := ui.RenderSparkline(historyLatencies(e), 40); spark != "" {
		b.WriteString("\n")
		b.WriteString(LabelStyle.Render("Latency history"))
		b.WriteString("\n" + spark + "\n")
	}

	return DetailBorderStyle.Render(b.String())
}

// historyLatencies extracts successful latency samples for the sparkline.
func historyLatencies(e *endpoint.Endpoint) []float64 {
	var out []float64
	for _, p := range e.History {
		if p.Outcome == endpoint.OutcomeSuccess {
			out = append(out, float64(p.ElapsedMs))
		}
	}
	return out
}

// latestLatencyMs returns the most recent ping's latency, or +Inf when the
// last probe failed or none has run.
func latestLatencyMs(e *endpoint.Endpoint) float64 {
	p, ok := e.LatestPing()
	if !ok || p.Outcome != endpoint.OutcomeSuccess {
		return math.Inf(1)
	}
	return float64(p.ElapsedMs)
}

// formatLatency renders a millisecond value, using a dash for the +Inf
// sentinel and switching to seconds above one second.
func formatLatency(ms float64) string {
	if math.IsInf(ms, 1) {
		return "—"
	}
	if ms >= 1000 {
		return fmt.Sprintf("%.1fs", ms/1000)
	}
	return fmt.Sprintf("%dms", int(ms))
}

// formatStability renders the composite stability score, using a dash for
// the no-successes sentinel.
func formatStability(score int) string {
	if score < 0 {
		return "—"
	}
	return fmt.Sprintf("%d", score)
}
