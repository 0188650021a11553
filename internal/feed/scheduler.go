package feed

import "time"

// Handle identifies one run of the poll loop.
type Handle struct {
	gen uint64
}

// Tick is emitted each time a poll interval elapses.
type Tick struct {
	Handle Handle
	Time   time.Time
}

// Scheduler owns the periodic poll. Starting it again or cancelling it makes
// ticks from earlier handles inert; the caller drops them via Live.
type Scheduler struct {
	Interval time.Duration

	gen     uint64
	active  bool
	seq     uint64
	applied uint64
}

// NewScheduler creates a stopped scheduler.
func NewScheduler(interval time.Duration) *Scheduler {
	return &Scheduler{Interval: interval}
}

// Start begins a new poll run, superseding any previous handle.
func (s *Scheduler) Start() Handle {
	s.gen++
	s.active = true
	return Handle{gen: s.gen}
}

// Cancel stops the run h belongs to. Cancelling a stale handle is a no-op.
func (s *Scheduler) Cancel(h Handle) {
	if h.gen == s.gen {
		s.active = false
		s.gen++
	}
}

// Live reports whether t belongs to the current run.
func (s *Scheduler) Live(t Tick) bool {
	return s.active && t.Handle.gen == s.gen
}

// Running reports whether a poll run is active.
func (s *Scheduler) Running() bool {
	return s.active
}

// NextSeq returns the sequence number for a new fetch.
func (s *Scheduler) NextSeq() uint64 {
	s.seq++
	return s.seq
}

// Applied records that the response to fetch seq was reconciled and reports
// whether a later-issued fetch had already been applied. Stale responses are
// still applied by the caller; this only makes the reordering visible.
func (s *Scheduler) Applied(seq uint64) (stale bool) {
	if seq < s.applied {
		return true
	}
	s.applied = seq
	return false
}
