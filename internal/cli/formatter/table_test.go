package formatter

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func tableLines(out string) []string {
	return strings.Split(strings.TrimRight(out, "\n"), "\n")
}

func TestRenderTableAlignsColumns(t *testing.T) {
	lines := tableLines(RenderTable([]string{"A", "LONGER"}, [][]string{{"wide cell", "x"}, {"y"}}))

	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], "LONGER")
	assert.Equal(t, "wide cell  x", lines[2])
	assert.Equal(t, "y", strings.TrimRight(lines[3], " "))
}

func TestRenderAlignedTable_RightAlignsNumbers(t *testing.T) {
	lines := tableLines(RenderAlignedTable(
		[]string{"NAME", "PCT"},
		[][]string{{"a", "5%"}, {"bb", "100%"}},
		[]Align{AlignLeft, AlignRight},
	))

	assert.Len(t, lines, 4)
	assert.True(t, strings.HasSuffix(lines[2], "  5%"), lines[2])
	assert.True(t, strings.HasSuffix(lines[3], "100%"), lines[3])
	assert.Equal(t, lipgloss.Width(lines[2]), lipgloss.Width(lines[3]))
	assert.Equal(t, lipgloss.Width(lines[0]), lipgloss.Width(lines[3]))
}

func TestRenderAlignedTable_StyledBarsLineUp(t *testing.T) {
	rows := [][]string{
		{"Distinction", RenderShareBar(0.5, 10, StyleGreen)},
		{"Pass", RenderShareBar(0.05, 10, StyleBlue)},
	}
	lines := tableLines(RenderAlignedTable([]string{"OUTCOME", "PROBABILITY"}, rows, nil))

	col := strings.Index(lines[2], filledBlock)
	assert.Positive(t, col)
	assert.Equal(t, lipgloss.Width(lines[2][:col]), lipgloss.Width(lines[3][:strings.Index(lines[3], emptyBlock)]))
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))
}
