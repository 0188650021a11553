package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// NetActivity is what the client is waiting on.
type NetActivity int

const (
	NetActivityIdle NetActivity = iota
	NetActivityPoll             // Reading the feed
	NetActivitySend             // Posting a message
	NetActivityAuth             // Signing in
)

func (a NetActivity) label() string {
	switch a {
	case NetActivityPoll:
		return "SYNC"
	case NetActivitySend:
		return "SEND"
	case NetActivityAuth:
		return "AUTH"
	default:
		return "IDLE"
	}
}

// NetIndicator is a bouncing bar shown while requests are in flight. Polls
// and sends can overlap, so each activity is counted.
type NetIndicator struct {
	inflight  map[NetActivity]int
	position  int
	direction int
	width     int
}

// NetIndicatorTickMsg animates the indicator.
type NetIndicatorTickMsg time.Time

func NewNetIndicator() NetIndicator {
	return NetIndicator{
		inflight:  make(map[NetActivity]int),
		direction: 1,
		width:     10,
	}
}

// Begin records a request of kind a.
func (n *NetIndicator) Begin(a NetActivity) {
	n.inflight[a]++
}

// End records that a request of kind a resolved.
func (n *NetIndicator) End(a NetActivity) {
	if n.inflight[a] > 0 {
		n.inflight[a]--
	}
}

// Activity returns the most significant activity in flight.
func (n NetIndicator) Activity() NetActivity {
	for _, a := range []NetActivity{NetActivitySend, NetActivityAuth, NetActivityPoll} {
		if n.inflight[a] > 0 {
			return a
		}
	}
	return NetActivityIdle
}

// Update advances the animation on each tick.
func (n NetIndicator) Update(msg tea.Msg) (NetIndicator, tea.Cmd) {
	if _, ok := msg.(NetIndicatorTickMsg); !ok {
		return n, nil
	}
	if n.Activity() != NetActivityIdle {
		n.position += n.direction
		if n.position >= n.width-1 {
			n.position = n.width - 1
			n.direction = -1
		} else if n.position <= 0 {
			n.position = 0
			n.direction = 1
		}
	}
	return n, n.tick()
}

func (n NetIndicator) tick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return NetIndicatorTickMsg(t)
	})
}

// Init starts the animation.
func (n NetIndicator) Init() tea.Cmd {
	return n.tick()
}

func (n NetIndicator) View() string {
	activity := n.Activity()

	var bar strings.Builder
	bar.WriteString("▐")
	for i := 0; i < n.width; i++ {
		if activity != NetActivityIdle && i >= n.position-1 && i <= n.position+1 {
			bar.WriteString("█")
		} else {
			bar.WriteString("░")
		}
	}
	bar.WriteString("▌")

	style := lipgloss.NewStyle().Foreground(colorMuted)
	marker := "⬦"
	if activity != NetActivityIdle {
		style = lipgloss.NewStyle().Foreground(colorTeal).Bold(true)
		marker = "⬥"
	}
	return style.Render(marker + " " + activity.label() + " " + bar.String())
}
