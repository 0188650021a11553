package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xonecas/chatbridge/internal/session"
)

const (
	loginFieldUser = iota
	loginFieldPassword
)

// LoginModel is the sign-in form.
type LoginModel struct {
	username textinput.Model
	password textinput.Model
	focus    int
	err      string
	loading  bool
}

// NewLoginModel creates an empty form focused on the username.
func NewLoginModel() LoginModel {
	user := textinput.New()
	user.Placeholder = "ctezop or ctezop@example.edu"
	user.CharLimit = 120
	user.Width = 32
	user.Prompt = ""
	user.Focus()

	pass := textinput.New()
	pass.Placeholder = "password"
	pass.CharLimit = 120
	pass.Width = 32
	pass.Prompt = ""
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '•'

	return LoginModel{username: user, password: pass}
}

var loginKeys = struct {
	Next key.Binding
	Prev key.Binding
}{
	Next: key.NewBinding(key.WithKeys("tab", "down")),
	Prev: key.NewBinding(key.WithKeys("shift+tab", "up")),
}

// Update routes keys to the focused field.
func (m LoginModel) Update(msg tea.Msg) (LoginModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, loginKeys.Next):
			return m, m.setFocus(loginFieldPassword)
		case key.Matches(keyMsg, loginKeys.Prev):
			return m, m.setFocus(loginFieldUser)
		}
	}

	var cmd tea.Cmd
	if m.focus == loginFieldUser {
		m.username, cmd = m.username.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m *LoginModel) setFocus(field int) tea.Cmd {
	m.focus = field
	if field == loginFieldUser {
		m.password.Blur()
		return m.username.Focus()
	}
	m.username.Blur()
	return m.password.Focus()
}

// Ready reports whether both fields are filled in. When only the username
// is, focus moves on to the password.
func (m *LoginModel) Ready() (bool, tea.Cmd) {
	if strings.TrimSpace(m.username.Value()) == "" {
		return false, m.setFocus(loginFieldUser)
	}
	if m.password.Value() == "" {
		return false, m.setFocus(loginFieldPassword)
	}
	return true, nil
}

// Credentials returns the login name, cut at '@', and the password.
func (m LoginModel) Credentials() (string, string) {
	return session.LoginName(m.username.Value()), m.password.Value()
}

// SetLoading marks a login request in flight.
func (m *LoginModel) SetLoading(loading bool) {
	m.loading = loading
	if loading {
		m.err = ""
	}
}

// Loading reports whether a login request is in flight.
func (m LoginModel) Loading() bool {
	return m.loading
}

// SetError shows err under the form and clears the password.
func (m *LoginModel) SetError(err string) {
	m.err = err
	m.loading = false
	m.password.Reset()
}

// Error returns the message shown under the form.
func (m LoginModel) Error() string {
	return m.err
}

// View renders the centered login card.
func (m LoginModel) View(width, height int, spin string) string {
	var lines []string
	lines = append(lines, titleStyle.Render("⬢ CHATBRIDGE"), "")
	lines = append(lines, labelStyle.Render("Username (the part before @)"))
	lines = append(lines, m.username.View(), "")
	lines = append(lines, labelStyle.Render("Password"))
	lines = append(lines, m.password.View(), "")

	switch {
	case m.loading:
		lines = append(lines, spin+" "+dimmedStyle.Render("Signing in..."))
	case m.err != "":
		lines = append(lines, errorBannerStyle.Width(40).Render(m.err))
	default:
		lines = append(lines, dimmedStyle.Render("enter: sign in · tab: next field · ctrl+c: quit"))
	}

	card := loginStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	return placeCenter(card, width, height)
}
