package dashboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HelpBinding represents a single keyboard shortcut entry.
type HelpBinding struct {
	Key  string
	Desc string
}

// helpBindings defines all keyboard shortcuts shown in the help overlay.
var helpBindings = []HelpBinding{
	{Key: "q / Ctrl+C", Desc: "Quit"},
	{Key: "r", Desc: "Force a probe cycle"},
	{Key: "s", Desc: "Cycle sort column"},
	{Key: "o", Desc: "Reverse sort order"},
	{Key: "1-4", Desc: "Filter by tier (S/A/B/C)"},
	{Key: "0", Desc: "Show all tiers"},
	{Key: "up / k", Desc: "Select previous endpoint"},
	{Key: "down / j", Desc: "Select next endpoint"},
	{Key: "Home", Desc: "Select first endpoint"},
	{Key: "End", Desc: "Select last endpoint"},
	{Key: "Enter", Desc: "Expand selected endpoint"},
	{Key: "f", Desc: "Toggle favorite"},
	{Key: "u", Desc: "Use selected endpoint"},
	{Key: "Esc", Desc: "Collapse / close"},
	{Key: "?", Desc: "Toggle this help"},
}

// Help overlay styles
var (
	helpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Background(ColorSurfaceBg).
			Padding(1, 2)

	helpTitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			MarginBottom(1)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Bold(true).
			Width(12)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)
)

// renderHelpOverlay renders the keyboard shortcut reference.
func (m Model) renderHelpOverlay() string {
	var b strings.Builder

	b.WriteString(helpTitleStyle.Render("Keyboard shortcuts"))
	b.WriteString("\n")

	for _, binding := range helpBindings {
		b.WriteString(helpKeyStyle.Render(binding.Key))
		b.WriteString(helpDescStyle.Render(binding.Desc))
		b.WriteString("\n")
	}

	box := helpBoxStyle.Render(b.String())
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}
