package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xonecas/chatbridge/internal/content"
)

const pickerColumns = 8

// EmojiPicker is a grid of the known shortcodes.
type EmojiPicker struct {
	items    []content.Shortcode
	selected int
}

// NewEmojiPicker creates a picker over every known shortcode.
func NewEmojiPicker() EmojiPicker {
	return EmojiPicker{items: content.Shortcodes()}
}

var pickerKeys = struct {
	Left  key.Binding
	Right key.Binding
	Up    key.Binding
	Down  key.Binding
}{
	Left:  key.NewBinding(key.WithKeys("left", "h")),
	Right: key.NewBinding(key.WithKeys("right", "l")),
	Up:    key.NewBinding(key.WithKeys("up", "k")),
	Down:  key.NewBinding(key.WithKeys("down", "j")),
}

// Update moves the selection.
func (p EmojiPicker) Update(msg tea.Msg) (EmojiPicker, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(p.items) == 0 {
		return p, nil
	}

	next := p.selected
	switch {
	case key.Matches(keyMsg, pickerKeys.Left):
		next--
	case key.Matches(keyMsg, pickerKeys.Right):
		next++
	case key.Matches(keyMsg, pickerKeys.Up):
		next -= pickerColumns
	case key.Matches(keyMsg, pickerKeys.Down):
		next += pickerColumns
	}
	if next >= 0 && next < len(p.items) {
		p.selected = next
	}
	return p, nil
}

// Selected returns the highlighted emoji.
func (p EmojiPicker) Selected() content.Shortcode {
	if len(p.items) == 0 {
		return content.Shortcode{}
	}
	return p.items[p.selected]
}

func (p EmojiPicker) View(width, height int) string {
	var rows []string
	var row []string
	for i, item := range p.items {
		style := pickerItemStyle
		if i == p.selected {
			style = pickerSelectedStyle
		}
		row = append(row, style.Render(item.Emoji))
		if len(row) == pickerColumns {
			rows = append(rows, strings.Join(row, ""))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, strings.Join(row, ""))
	}

	sel := p.Selected()
	footer := helpKeyStyle.Render(":"+sel.Name+":") + "  " +
		helpDescStyle.Render("enter insert · esc close")

	box := overlayStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Emoji"), "",
		strings.Join(rows, "\n"), "",
		footer,
	))
	return placeCenter(box, width, height)
}
