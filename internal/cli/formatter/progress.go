package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

func blocks(pct float64, width int) (string, float64) {
	pct = min(max(pct, 0), 1)
	width = max(width, 2)
	filled := min(int(pct*float64(width)), width)
	return strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled), pct
}

// RenderProgress renders a bar like [████░░░░] 45%, colored red below 33%
// and yellow below 66%.
func RenderProgress(pct float64, width int) string {
	bar, pct := blocks(pct, width)

	style := StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}

// RenderShareBar renders a bar in a fixed style, for shares where a low
// value is not a warning sign.
func RenderShareBar(pct float64, width int, style lipgloss.Style) string {
	bar, pct := blocks(pct, width)
	return fmt.Sprintf("%s %3.0f%%", style.Render(bar), pct*100)
}
