package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/xonecas/chatbridge/internal/palette"
)

// Colors - retro terminal palette, purple brand with teal accents
var (
	colorBrand    = lipgloss.Color("#9D00FF")
	colorTeal     = lipgloss.Color("#00FFCC")
	colorBrandDim = lipgloss.Color("#6B00B3")

	colorWarning = lipgloss.Color("#FF6600")
	colorError   = lipgloss.Color("#FF3366")
	colorMuted   = lipgloss.Color("#5555AA")

	colorBgAlt   = lipgloss.Color("#101018")
	colorBgPanel = lipgloss.Color("#14141F")
	colorBorder  = lipgloss.Color("#2A2A55")
)

// Sender colors, one per palette token
var tokenColors = map[palette.Token]lipgloss.Color{
	palette.Self:      colorBrand,
	palette.Success:   lipgloss.Color("#00FF66"),
	palette.Info:      lipgloss.Color("#00CCFF"),
	palette.Warning:   lipgloss.Color("#FFCC00"),
	palette.Danger:    lipgloss.Color("#FF3366"),
	palette.Secondary: lipgloss.Color("#A0A0C0"),
	palette.Dark:      lipgloss.Color("#7777DD"),
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBrand).
			Background(colorBgAlt)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBrand)

	panelTitleStyle = lipgloss.NewStyle().
			Foreground(colorTeal).
			Bold(true)

	// Message bubbles; border color is set per sender
	bubbleStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	// Emoji-only bubbles drop the frame and get extra room
	emojiBubbleStyle = lipgloss.NewStyle().
				Padding(1, 2)

	senderStyle = lipgloss.NewStyle().
			Bold(true)

	timestampStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	linkStyle = lipgloss.NewStyle().
			Foreground(colorTeal).
			Underline(true)

	videoStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	selectedLinkStyle = lipgloss.NewStyle().
				Foreground(colorBgAlt).
				Background(colorTeal).
				Bold(true)

	errorBannerStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	statusStyle = lipgloss.NewStyle().
			Foreground(colorTeal)

	inputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorTeal).
			Padding(0, 1)

	inputPendingStyle = inputStyle.
				BorderForeground(colorMuted)

	inputPromptStyle = lipgloss.NewStyle().
				Foreground(colorBrand).
				Bold(true)

	// Login card
	loginStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorBrandDim).
			Background(colorBgPanel).
			Padding(1, 2)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Help and overlays
	helpStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorBrand).
			Background(colorBgPanel).
			Padding(1, 2)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(colorTeal).
			Bold(true)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorTeal).
			Background(colorBgPanel).
			Padding(1, 2)

	pickerSelectedStyle = lipgloss.NewStyle().
				Background(colorBrand).
				Padding(0, 1)

	pickerItemStyle = lipgloss.NewStyle().
			Padding(0, 1)

	dimmedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorBrand).
			Bold(true)
)

// TokenColor returns the display color for a sender token.
func TokenColor(tok palette.Token) lipgloss.Color {
	if c, ok := tokenColors[tok]; ok {
		return c
	}
	return colorMuted
}

// renderSectionTitle renders a title bar that spans the full width.
func renderSectionTitle(title string, width int) string {
	return renderSectionTitleWithSuffix(title, "", width)
}

// renderSectionTitleWithSuffix renders a title bar with a right-hand suffix.
func renderSectionTitleWithSuffix(title, suffix string, width int) string {
	// ⬧── TITLE ──⬧ suffix
	titleWithSpaces := " " + title + " "
	available := width - lipgloss.Width(titleWithSpaces) - 4 - lipgloss.Width(suffix)
	if available < 2 {
		available = 2
	}
	left := available / 2
	right := available - left

	line := "⬧─" + strings.Repeat("─", left) + titleWithSpaces + strings.Repeat("─", right) + "─⬧"
	return panelTitleStyle.Render(line) + suffix
}

// truncateWithEllipsis shortens s to maxWidth display columns.
func truncateWithEllipsis(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// placeCenter centers block inside a width x height area.
func placeCenter(block string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}
