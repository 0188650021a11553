package feed

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xonecas/chatbridge/internal/constants"
)

// SendState is the lifecycle of the most recent outgoing message.
type SendState int

const (
	SendIdle SendState = iota
	SendPending
	SendFailed
	SendSucceeded
)

func (s SendState) String() string {
	switch s {
	case SendPending:
		return "pending"
	case SendFailed:
		return "failed"
	case SendSucceeded:
		return "succeeded"
	default:
		return "idle"
	}
}

// Submission is an accepted draft ready to be posted.
type Submission struct {
	Content string
}

// SendResult tells the view what to do once a send resolves.
type SendResult struct {
	State SendState
	// ClearDraft is only set on success; failures keep the draft for retry.
	ClearDraft  bool
	Refresh     bool
	ForceScroll bool
	Error       string
}

// ErrInvalidMessage marks an outgoing message rejected before it reached the network.
var ErrInvalidMessage = errors.New("invalid outgoing message")

// statusCoder is implemented by transport errors that carry an HTTP status.
type statusCoder interface {
	HTTPStatus() int
}

// Coordinator drives a State through one send at a time.
type Coordinator struct {
	state *State
}

// NewCoordinator binds a coordinator to s.
func NewCoordinator(s *State) *Coordinator {
	return &Coordinator{state: s}
}

// Begin accepts draft unless it is blank or another send is pending.
// Rejections are silent: no error is recorded.
func (c *Coordinator) Begin(draft string) (Submission, bool) {
	if strings.TrimSpace(draft) == "" || c.state.PendingSend() {
		return Submission{}, false
	}
	c.state.Send = SendPending
	c.state.LastError = ""
	return Submission{Content: draft}, true
}

// Finish resolves the pending send with the transport result.
func (c *Coordinator) Finish(err error) SendResult {
	if err == nil {
		c.state.Send = SendSucceeded
		return SendResult{State: SendSucceeded, ClearDraft: true, Refresh: true, ForceScroll: true}
	}

	c.state.Send = SendFailed
	c.state.LastError = SendErrorText(err)
	return SendResult{State: SendFailed, Error: c.state.LastError}
}

// SendErrorText maps a send failure onto the message shown to the user.
func SendErrorText(err error) string {
	if errors.Is(err, ErrInvalidMessage) {
		return constants.SendInvalidError
	}
	var sc statusCoder
	if errors.As(err, &sc) {
		if sc.HTTPStatus() == 401 {
			return constants.SendAuthError
		}
		return fmt.Sprintf(constants.SendStatusErrorFormat, sc.HTTPStatus())
	}
	return constants.SendNetworkError
}

// FetchErrorText maps a poll failure onto the message shown to the user.
func FetchErrorText(err error) string {
	var sc statusCoder
	switch {
	case errors.As(err, &sc):
		return fmt.Sprintf(constants.FeedStatusErrorFormat, sc.HTTPStatus())
	case errors.Is(err, ErrMalformedFeed):
		return constants.FeedDecodeError
	default:
		return constants.FeedNetworkError
	}
}
