package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerLifecycle(t *testing.T) {
	s := NewScheduler(5 * time.Second)
	assert.False(t, s.Running())

	h := s.Start()
	assert.True(t, s.Running())
	assert.True(t, s.Live(Tick{Handle: h}))

	s.Cancel(h)
	assert.False(t, s.Running())
	assert.False(t, s.Live(Tick{Handle: h}), "ticks after teardown are inert")
}

func TestSchedulerRestartSupersedes(t *testing.T) {
	s := NewScheduler(time.Second)
	old := s.Start()
	cur := s.Start()

	assert.False(t, s.Live(Tick{Handle: old}))
	assert.True(t, s.Live(Tick{Handle: cur}))

	s.Cancel(old)
	assert.True(t, s.Live(Tick{Handle: cur}), "cancelling a stale handle is a no-op")
}

func TestSchedulerApplied(t *testing.T) {
	s := NewScheduler(time.Second)
	first := s.NextSeq()
	second := s.NextSeq()
	assert.Less(t, first, second)

	assert.False(t, s.Applied(second))
	assert.True(t, s.Applied(first), "an earlier fetch resolving last is stale")
	assert.False(t, s.Applied(s.NextSeq()))
}
