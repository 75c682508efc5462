package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/erwinh22/free-coding-models-sub000/internal/util"
)

// TableColumn defines a plain-output table column with name and width.
type TableColumn struct {
	Title string
	Width int
}

// TerminalWidth returns the current terminal width, or a sane default when
// stdout isn't a terminal (piped output).
func TerminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 100
	}
	return w
}

// ColorEnabled reports whether stdout supports color output.
func ColorEnabled() bool {
	return termenv.EnvColorProfile() != termenv.Ascii
}

// RenderTable renders a non-interactive table for plain CLI output
// (fcm list and the unattended best-pick summary), truncating cells to
// their column width and every line to the live terminal width.
func RenderTable(columns []TableColumn, rows [][]string) string {
	return renderTable(columns, rows, TerminalWidth())
}

func renderTable(columns []TableColumn, rows [][]string, maxWidth int) string {
	var sb strings.Builder

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	ruleStyle := lipgloss.NewStyle().Foreground(ColorMuted)

	var header strings.Builder
	totalWidth := 0
	for i, c := range columns {
		if i > 0 {
			header.WriteString("  ")
			totalWidth += 2
		}
		header.WriteString(fmt.Sprintf("%-*s", c.Width, c.Title))
		totalWidth += c.Width
	}
	sb.WriteString(headerStyle.Render(util.Truncate(header.String(), maxWidth)))
	sb.WriteString("\n")
	ruleWidth := totalWidth
	if ruleWidth > maxWidth {
		ruleWidth = maxWidth
	}
	sb.WriteString(ruleStyle.Render(strings.Repeat("─", ruleWidth)))
	sb.WriteString("\n")

	for _, row := range rows {
		var line strings.Builder
		for i, c := range columns {
			if i > 0 {
				line.WriteString("  ")
			}
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			line.WriteString(fmt.Sprintf("%-*s", c.Width, util.Truncate(cell, c.Width)))
		}
		sb.WriteString(util.Truncate(line.String(), maxWidth))
		sb.WriteString("\n")
	}

	return sb.String()
}
