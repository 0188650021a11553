package feed

// Viewport is the scroll geometry of the message list, in display units.
type Viewport struct {
	ScrollHeight int
	ScrollTop    int
	ClientHeight int
}

// DistanceToBottom is how far the visible window sits above the end of the content.
func (v Viewport) DistanceToBottom() int {
	return v.ScrollHeight - v.ScrollTop - v.ClientHeight
}

// ScrollAction is what the view should do with its offset after an update.
type ScrollAction int

const (
	// ScrollKeep leaves the offset where the reader put it.
	ScrollKeep ScrollAction = iota
	// ScrollToBottom follows the new content immediately.
	ScrollToBottom
	// ScrollToBottomDeferred snaps after the new content has been laid out.
	ScrollToBottomDeferred
)

func (a ScrollAction) String() string {
	switch a {
	case ScrollToBottom:
		return "bottom"
	case ScrollToBottomDeferred:
		return "bottom-deferred"
	default:
		return "keep"
	}
}

// Anchor decides whether an update should move the viewport.
type Anchor struct {
	// Threshold is the largest distance to bottom still counted as "at the bottom".
	Threshold int
}

// Decide is evaluated against the geometry from before the update is applied.
// Forced requests always snap, after a settle delay.
func (a Anchor) Decide(before Viewport, forced bool) ScrollAction {
	if forced {
		return ScrollToBottomDeferred
	}
	if before.DistanceToBottom() <= a.Threshold {
		return ScrollToBottom
	}
	return ScrollKeep
}
