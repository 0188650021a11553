package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

var (
	scrollTrackStyle = lipgloss.NewStyle().Foreground(colorBorder)
	scrollThumbStyle = lipgloss.NewStyle().Foreground(colorTeal)
)

// renderScrollbar draws a one-column scrollbar for vp, one cell per visible line.
func renderScrollbar(vp viewport.Model) string {
	height := vp.Height
	total := vp.TotalLineCount()
	if height <= 0 {
		return ""
	}

	lines := make([]string, height)
	if total <= height {
		for i := range lines {
			lines[i] = scrollTrackStyle.Render("│")
		}
		return strings.Join(lines, "\n")
	}

	thumbSize := max(1, min(height, height*height/total))
	ratio := float64(vp.YOffset) / float64(total-height)
	ratio = max(0, min(1, ratio))
	thumbPos := int(ratio * float64(height-thumbSize))

	for i := range lines {
		if i >= thumbPos && i < thumbPos+thumbSize {
			lines[i] = scrollThumbStyle.Render("█")
		} else {
			lines[i] = scrollTrackStyle.Render("│")
		}
	}
	return strings.Join(lines, "\n")
}
