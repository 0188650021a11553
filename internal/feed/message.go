// Package feed holds the client-side view of the remote message feed: the
// polled message list, how fresh polls are adopted, when the view follows new
// content, and the lifecycle of an outgoing message.
package feed

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

// ErrMalformedFeed is wrapped around payloads that are not a JSON array of messages.
var ErrMalformedFeed = errors.New("malformed feed payload")

// Message is one chat entry as returned by the feed. It is never modified after decoding.
type Message struct {
	Sender  string    `json:"sender"`
	Content string    `json:"content"`
	SentAt  time.Time `json:"sentAt"`
	// RawSentAt keeps the timestamp text as received, for logging unparseable values.
	RawSentAt string `json:"-"`
}

// wireMessage accepts both the current field names and the older Spanish ones.
type wireMessage struct {
	Sender    wireText `json:"sender"`
	Content   wireText `json:"content"`
	SentAt    wireText `json:"sentAt"`
	Emisor    wireText `json:"emisor"`
	Contenido wireText `json:"contenido"`
	Fecha     wireText `json:"fecha"`
}

// wireText is a string field that decodes any non-string JSON value, such as
// the {} the backend writes for a null column, as empty.
type wireText string

func (t *wireText) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*t = ""
		return nil
	}
	*t = wireText(s)
	return nil
}

// zone-less layouts are read in local time, the way the backend writes them.
var localLayouts = []string{
	"2006-01-02T15:04:05.9999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// UnmarshalJSON decodes a feed entry. An unparseable timestamp leaves SentAt zero.
func (m *Message) UnmarshalJSON(data []byte) error {
	var w wireMessage
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	m.Sender = firstNonEmpty(w.Sender, w.Emisor)
	m.Content = firstNonEmpty(w.Content, w.Contenido)
	m.RawSentAt = firstNonEmpty(w.SentAt, w.Fecha)
	m.SentAt = ParseSentAt(m.RawSentAt)
	return nil
}

// ParseSentAt parses an RFC 3339 timestamp, falling back to zone-less layouts
// in local time. It returns the zero time when nothing matches.
func ParseSentAt(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t
		}
	}
	return time.Time{}
}

// DecodeMessages reads a JSON array of messages, keeping the order as given.
func DecodeMessages(r io.Reader) ([]Message, error) {
	var msgs []Message
	if err := json.NewDecoder(r).Decode(&msgs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFeed, err)
	}
	if msgs == nil {
		msgs = []Message{}
	}
	return msgs, nil
}

func firstNonEmpty(vals ...wireText) string {
	for _, v := range vals {
		if v != "" {
			return string(v)
		}
	}
	return ""
}
