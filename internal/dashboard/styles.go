package dashboard

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/erwinh22/free-coding-models-sub000/internal/endpoint"
	"github.com/erwinh22/free-coding-models-sub000/internal/engine"
)

// Dashboard color palette
const (
	ColorHealthy  = lipgloss.Color("#39FF14") // Neon green
	ColorWarning  = lipgloss.Color("#FFAA00") // Electric amber
	ColorCritical = lipgloss.Color("#FF0055") // Hot red-pink

	ColorTextPrimary   = lipgloss.Color("#FFFFFF")
	ColorTextSecondary = lipgloss.Color("#B4B4D0")
	ColorTextMuted     = lipgloss.Color("#6B6B8D")

	ColorAccent    = lipgloss.Color("#FF2E97") // Neon pink
	ColorAccentDim = lipgloss.Color("#BF40FF") // Neon purple

	ColorSurfaceBg = lipgloss.Color("#12121A")
	ColorBorder    = lipgloss.Color("#2A2A4A")
)

// Base styles for the dashboard
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Background(ColorSurfaceBg).
			Bold(true).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	SelectedRowStyle = lipgloss.NewStyle().
				Foreground(ColorTextPrimary).
				Background(ColorSurfaceBg).
				Bold(true)

	FavoriteStyle = lipgloss.NewStyle().
			Foreground(ColorAccentDim)

	DetailBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorder).
				Padding(0, 1)
)

// VerdictColor maps a health verdict to its display color.
func VerdictColor(v engine.Verdict) lipgloss.Color {
	switch v {
	case engine.VerdictPerfect, engine.VerdictNormal:
		return ColorHealthy
	case engine.VerdictSlow, engine.VerdictSpiky, engine.VerdictVerySlow:
		return ColorWarning
	case engine.VerdictOverloaded, engine.VerdictUnstable, engine.VerdictNotActive:
		return ColorCritical
	default:
		return ColorTextMuted
	}
}

// StatusColor maps an endpoint status to its display color.
func StatusColor(s endpoint.Status) lipgloss.Color {
	switch s {
	case endpoint.StatusReachable:
		return ColorHealthy
	case endpoint.StatusRateLimited, endpoint.StatusAuthMissing:
		return ColorWarning
	case endpoint.StatusUnreachable, endpoint.StatusTimedOut:
		return ColorCritical
	default:
		return ColorTextMuted
	}
}
