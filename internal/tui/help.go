package tui

import (
	"strings"
)

type helpItem struct {
	key  string
	desc string
}

var helpItems = []helpItem{
	{"Enter", "Send draft / open selected link"},
	{"↑ / ↓", "Browse sent history"},
	{"PgUp / PgDn", "Scroll messages"},
	{"Ctrl+End", "Jump to newest"},
	{"Ctrl+N / Ctrl+P", "Select next / previous link"},
	{"Ctrl+E", "Emoji picker"},
	{"Ctrl+R", "Refresh now"},
	{"Esc", "Clear selection / close"},
	{"Ctrl+X", "Log out"},
	{"F1", "Toggle help"},
	{"Ctrl+C", "Quit"},
}

// RenderHelp renders the centered help box.
func RenderHelp(width, height int) string {
	lines := []string{titleStyle.Render("⌨ Keyboard Shortcuts"), ""}

	maxKeyLen := 0
	for _, item := range helpItems {
		maxKeyLen = max(maxKeyLen, len([]rune(item.key)))
	}
	for _, item := range helpItems {
		key := helpKeyStyle.Render(padRight(item.key, maxKeyLen))
		lines = append(lines, key+"  "+helpDescStyle.Render(item.desc))
	}

	return placeCenter(helpStyle.Render(strings.Join(lines, "\n")), width, height)
}

func padRight(s string, length int) string {
	n := len([]rune(s))
	if n >= length {
		return s
	}
	return s + strings.Repeat(" ", length-n)
}
