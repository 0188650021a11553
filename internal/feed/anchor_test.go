package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnchorDecide(t *testing.T) {
	a := Anchor{Threshold: 150}

	tests := []struct {
		name   string
		vp     Viewport
		forced bool
		want   ScrollAction
	}{
		{"at_bottom", Viewport{ScrollHeight: 1000, ScrollTop: 700, ClientHeight: 300}, false, ScrollToBottom},
		{"reading_history", Viewport{ScrollHeight: 1000, ScrollTop: 200, ClientHeight: 300}, false, ScrollKeep},
		{"at_threshold", Viewport{ScrollHeight: 1000, ScrollTop: 550, ClientHeight: 300}, false, ScrollToBottom},
		{"past_threshold", Viewport{ScrollHeight: 1000, ScrollTop: 549, ClientHeight: 300}, false, ScrollKeep},
		{"content_shorter_than_view", Viewport{ScrollHeight: 100, ScrollTop: 0, ClientHeight: 300}, false, ScrollToBottom},
		{"forced_while_reading", Viewport{ScrollHeight: 1000, ScrollTop: 0, ClientHeight: 300}, true, ScrollToBottomDeferred},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Decide(tt.vp, tt.forced))
		})
	}
}

func TestViewportDistance(t *testing.T) {
	assert.Equal(t, 0, Viewport{ScrollHeight: 1000, ScrollTop: 700, ClientHeight: 300}.DistanceToBottom())
	assert.Equal(t, 500, Viewport{ScrollHeight: 1000, ScrollTop: 200, ClientHeight: 300}.DistanceToBottom())
}

func TestScrollActionString(t *testing.T) {
	assert.Equal(t, "keep", ScrollKeep.String())
	assert.Equal(t, "bottom", ScrollToBottom.String())
	assert.Equal(t, "bottom-deferred", ScrollToBottomDeferred.String())
}
