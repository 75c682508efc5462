package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable(t *testing.T) {
	columns := []TableColumn{
		{Title: "NAME", Width: 10},
		{Title: "TIER", Width: 4},
	}
	rows := [][]string{
		{"qwen", "S+"},
		{"llama", "A"},
	}

	out := RenderTable(columns, rows)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)

	assert.Contains(t, lines[0], "NAME")
	assert.Contains(t, lines[0], "TIER")
	assert.Contains(t, lines[1], "─")
	assert.Contains(t, lines[2], "qwen")
	assert.Contains(t, lines[3], "llama")
}

func TestRenderTable_ShortRowsPadWithEmptyCells(t *testing.T) {
	columns := []TableColumn{
		{Title: "A", Width: 3},
		{Title: "B", Width: 3},
	}
	out := RenderTable(columns, [][]string{{"x"}})
	assert.Contains(t, out, "x")
}

func TestRenderTable_ClampsToTerminalWidth(t *testing.T) {
	columns := []TableColumn{
		{Title: "NAME", Width: 20},
		{Title: "PROVIDER", Width: 20},
	}
	rows := [][]string{
		{"a-rather-long-model", "a-rather-long-origin"},
	}

	out := renderTable(columns, rows, 24)
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), 24, "line %q overflows", line)
	}
	assert.Contains(t, out, "…")
}

func TestRenderTable_WideTerminalLeavesLinesAlone(t *testing.T) {
	columns := []TableColumn{{Title: "NAME", Width: 10}}
	out := renderTable(columns, [][]string{{"qwen"}}, 200)
	assert.Contains(t, out, "qwen")
	assert.NotContains(t, out, "…")
}
