package feed

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeMessages(t *testing.T) {
	payload := `[
		{"sender":"maria","content":"hola","sentAt":"2024-03-10T12:00:05Z"},
		{"emisor":"juan","contenido":"🎉","fecha":"2024-03-10T12:01:00"},
		{"sender":"ana","content":"x","sentAt":"yesterday-ish"}
	]`

	got, err := DecodeMessages(strings.NewReader(payload))
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "maria", got[0].Sender)
	assert.Equal(t, time.Date(2024, 3, 10, 12, 0, 5, 0, time.UTC), got[0].SentAt.UTC())

	assert.Equal(t, "juan", got[1].Sender)
	assert.Equal(t, "🎉", got[1].Content)
	assert.Equal(t, time.Local, got[1].SentAt.Location())
	assert.Equal(t, 12, got[1].SentAt.Hour())

	assert.True(t, got[2].SentAt.IsZero())
	assert.Equal(t, "yesterday-ish", got[2].RawSentAt)
}

func TestDecodeMessagesEmpty(t *testing.T) {
	got, err := DecodeMessages(strings.NewReader("[]"))
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got, err = DecodeMessages(strings.NewReader("null"))
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestDecodeMessagesNonStringFields(t *testing.T) {
	payload := `[
		{"sender":"maria","content":"hola","sentAt":"2024-03-10T12:00:05Z"},
		{"emisor":{},"contenido":"sin emisor","fecha":{}},
		{"sender":"ana","content":42,"sentAt":null}
	]`

	got, err := DecodeMessages(strings.NewReader(payload))
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "maria", got[0].Sender)

	assert.Empty(t, got[1].Sender)
	assert.Equal(t, "sin emisor", got[1].Content)
	assert.True(t, got[1].SentAt.IsZero())

	assert.Equal(t, "ana", got[2].Sender)
	assert.Empty(t, got[2].Content)
	assert.True(t, got[2].SentAt.IsZero())
}

func TestDecodeMessagesMalformed(t *testing.T) {
	_, err := DecodeMessages(strings.NewReader(`{"sender":"x"}`))
	assert.ErrorIs(t, err, ErrMalformedFeed)

	_, err = DecodeMessages(strings.NewReader(`<html>`))
	assert.ErrorIs(t, err, ErrMalformedFeed)
}

func TestParseSentAtFractional(t *testing.T) {
	ts := ParseSentAt("2024-03-10T08:15:30.1234567")
	assert.Equal(t, 8, ts.Hour())
	assert.Equal(t, 30, ts.Second())
	assert.True(t, ParseSentAt("  ").IsZero())
}
