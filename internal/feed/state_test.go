package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func msgs(contents ...string) []Message {
	out := make([]Message, len(contents))
	for i, c := range contents {
		out[i] = Message{Sender: "maria", Content: c}
	}
	return out
}

func TestReconcileFirstLoad(t *testing.T) {
	var s State

	r := Reconcile(&s, msgs())
	assert.True(t, r.Adopted, "first load adopts even an empty feed")
	assert.True(t, r.FirstLoad)
	assert.True(t, r.ForceScroll)
	assert.True(t, s.InitialLoadDone)
	assert.Empty(t, s.Messages)

	r = Reconcile(&s, msgs("a"))
	assert.True(t, r.Adopted)
	assert.False(t, r.FirstLoad, "initial load completes exactly once")
	assert.False(t, r.ForceScroll)
}

func TestReconcileIgnoresSameLength(t *testing.T) {
	var s State
	Reconcile(&s, msgs("a", "b"))

	r := Reconcile(&s, msgs("x", "y"))
	assert.False(t, r.Adopted)
	assert.Equal(t, "a", s.Messages[0].Content)
	assert.Equal(t, "b", s.Messages[1].Content)
}

func TestReconcileAdoptsLengthChange(t *testing.T) {
	var s State
	Reconcile(&s, msgs("a", "b"))

	r := Reconcile(&s, msgs("a"))
	assert.True(t, r.Adopted, "shrinking counts as a change")
	require.Len(t, s.Messages, 1)

	r = Reconcile(&s, msgs("a", "b", "c"))
	assert.True(t, r.Adopted)
	require.Len(t, s.Messages, 3)
}

func TestReconcileKeepsOrder(t *testing.T) {
	var s State
	in := msgs("3", "1", "2")
	Reconcile(&s, in)

	got := make([]string, len(s.Messages))
	for i, m := range s.Messages {
		got[i] = m.Content
	}
	assert.Equal(t, []string{"3", "1", "2"}, got)
}

func TestFailLeavesMessages(t *testing.T) {
	var s State
	Reconcile(&s, msgs("a"))

	s.Fail("boom")
	assert.Equal(t, "boom", s.LastError)
	require.Len(t, s.Messages, 1)
	assert.True(t, s.InitialLoadDone)

	Reconcile(&s, msgs("a"))
	assert.Empty(t, s.LastError, "a successful poll clears the banner")
}

func TestFailBeforeFirstLoad(t *testing.T) {
	var s State
	s.Fail("down")
	assert.False(t, s.InitialLoadDone)

	r := Reconcile(&s, msgs("a"))
	assert.True(t, r.FirstLoad)
}
