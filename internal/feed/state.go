package feed

// State is the client's copy of the feed. Only Reconcile, Fail and the
// Coordinator mutate it, and only from the UI event loop.
type State struct {
	Messages        []Message
	InitialLoadDone bool
	Send            SendState
	LastError       string
}

// PendingSend reports whether an outgoing message is awaiting its response.
func (s *State) PendingSend() bool {
	return s.Send == SendPending
}

// Reconciliation describes what a poll did to State.
type Reconciliation struct {
	Adopted     bool
	FirstLoad   bool
	ForceScroll bool
}

// Reconcile adopts fetched when the first load has not happened yet or the
// message count changed. Same-length results are ignored even if their
// contents differ; in-place edits are not detected.
func Reconcile(s *State, fetched []Message) Reconciliation {
	s.LastError = ""
	if s.InitialLoadDone && len(fetched) == len(s.Messages) {
		return Reconciliation{}
	}

	first := !s.InitialLoadDone
	s.Messages = fetched
	s.InitialLoadDone = true
	return Reconciliation{Adopted: true, FirstLoad: first, ForceScroll: first}
}

// Fail records a failed poll. Messages are left untouched.
func (s *State) Fail(msg string) {
	s.LastError = msg
}
