package constants

import "time"

// DefaultPollInterval is how often the feed is re-read while the chat view is open.
const DefaultPollInterval = 5 * time.Second

// MinPollInterval is the smallest poll interval config accepts.
const MinPollInterval = time.Second

// DefaultBottomThreshold is the distance to bottom, in display units, under which the
// reader counts as "at the bottom" and follows new content.
const DefaultBottomThreshold = 150

// DefaultCellHeight converts one terminal row into display units.
const DefaultCellHeight = 16

// DefaultSettleDelay defers a forced scroll so freshly rendered content has settled.
const DefaultSettleDelay = 60 * time.Millisecond

// DefaultRequestTimeout caps a single remote API request.
const DefaultRequestTimeout = 10 * time.Second

// DefaultDateLayout is the absolute date format used for messages older than yesterday.
const DefaultDateLayout = "02/01/2006 15:04"

// MaxDraftLength limits the draft input.
const MaxDraftLength = 1000

// MaxHistorySize limits how many sent drafts are kept for up/down browsing.
const MaxHistorySize = 100

// SelfSenderLabel replaces the sender header on the current user's bubbles when one is shown.
const SelfSenderLabel = "you"

// User-facing failure texts surfaced through feed.State.LastError.
const (
	FeedStatusErrorFormat  = "Error %d loading messages from the feed. Check the backend."
	FeedNetworkError       = "Network error connecting to the message feed."
	FeedDecodeError        = "The message feed returned data that could not be read."
	SendAuthError          = "Error 401: the bearer token was rejected by the message service."
	SendStatusErrorFormat  = "Error %d sending message. Check the payload."
	SendNetworkError       = "Network error while sending the message."
	SendInvalidError       = "Message not sent: it must be non-empty and at most 1000 characters."
	LoginNetworkError      = "Could not reach the authentication service. Check the URL."
	LoginRejectedError     = "Invalid credentials or server error."
	LoginMissingTokenError = "Authentication succeeded but no token was found in the response."
	SessionExpiredWarning  = "Your session token has expired; sending will likely fail until you log in again."
)
