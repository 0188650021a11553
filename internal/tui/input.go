package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xonecas/chatbridge/internal/constants"
)

// InputModel is the draft editor with history browsing.
type InputModel struct {
	textInput    textinput.Model
	history      []string // Sent drafts, oldest first
	historyIndex int      // Position in history (-1 = not browsing)
	draft        string   // Draft saved while browsing history
}

// NewInputModel creates an input seeded with previously sent drafts.
func NewInputModel(history []string) InputModel {
	ti := textinput.New()
	ti.Placeholder = "Type a message... (:tada: expands, ctrl+e picks emoji)"
	ti.CharLimit = constants.MaxDraftLength
	ti.Width = 60
	ti.Prompt = inputPromptStyle.Render("💬 ") + " "

	m := InputModel{
		textInput:    ti,
		history:      make([]string, 0, constants.MaxHistorySize),
		historyIndex: -1,
	}
	for _, h := range history {
		m.AddToHistory(h)
	}
	return m
}

// Value returns the current draft.
func (m InputModel) Value() string {
	return m.textInput.Value()
}

// SetValue replaces the draft and moves the cursor to the end.
func (m *InputModel) SetValue(s string) {
	m.textInput.SetValue(s)
	m.textInput.CursorEnd()
}

// Insert appends s at the end of the draft.
func (m *InputModel) Insert(s string) {
	m.SetValue(m.textInput.Value() + s)
}

// Focus starts the cursor.
func (m *InputModel) Focus() tea.Cmd {
	return m.textInput.Focus()
}

// Blur hides the cursor.
func (m *InputModel) Blur() {
	m.textInput.Blur()
}

// Focused reports whether the input takes keystrokes.
func (m InputModel) Focused() bool {
	return m.textInput.Focused()
}

var historyKeys = struct {
	Up   key.Binding
	Down key.Binding
}{
	Up:   key.NewBinding(key.WithKeys("up")),
	Down: key.NewBinding(key.WithKeys("down")),
}

// Update handles input updates.
func (m InputModel) Update(msg tea.Msg) (InputModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, historyKeys.Up):
			m.navigateHistory(1)
			return m, nil
		case key.Matches(keyMsg, historyKeys.Down):
			m.navigateHistory(-1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// navigateHistory moves through sent drafts.
// direction: 1 = older (up), -1 = newer (down)
func (m *InputModel) navigateHistory(direction int) {
	if len(m.history) == 0 {
		return
	}

	if m.historyIndex == -1 && direction == 1 {
		m.draft = m.textInput.Value()
	}

	newIndex := m.historyIndex + direction
	if newIndex < -1 {
		newIndex = -1
	}
	if newIndex >= len(m.history) {
		newIndex = len(m.history) - 1
	}
	m.historyIndex = newIndex

	if m.historyIndex == -1 {
		m.SetValue(m.draft)
		return
	}
	m.SetValue(m.history[len(m.history)-1-m.historyIndex])
}

// View renders the input box. A pending send dims the frame and shows spin.
func (m InputModel) View(width int, pending bool, spin string) string {
	style := inputStyle
	view := m.textInput.View()
	if pending {
		style = inputPendingStyle
		view = spin + " " + dimmedStyle.Render("sending...")
	}
	return style.Width(width - 2).Render(view)
}

// Clear empties the draft after a successful send.
func (m *InputModel) Clear() {
	m.textInput.Reset()
	m.historyIndex = -1
	m.draft = ""
}

// AddToHistory records a sent draft.
func (m *InputModel) AddToHistory(message string) {
	if message == "" {
		return
	}
	if len(m.history) > 0 && m.history[len(m.history)-1] == message {
		return
	}

	m.history = append(m.history, message)
	if len(m.history) > constants.MaxHistorySize {
		m.history = m.history[len(m.history)-constants.MaxHistorySize:]
	}
}

// History returns sent drafts, oldest first.
func (m InputModel) History() []string {
	return m.history
}

// SetWidth sets the input width.
func (m *InputModel) SetWidth(width int) {
	m.textInput.Width = width - 8 // border, padding and prompt
}
