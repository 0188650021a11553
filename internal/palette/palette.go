// Package palette assigns stable display colors to message senders.
package palette

import (
	"unicode/utf16"

	"github.com/xonecas/chatbridge/internal/session"
)

// Token names a color slot; the TUI maps tokens to concrete colors.
type Token string

const (
	Self      Token = "primary"
	Success   Token = "success"
	Info      Token = "info"
	Warning   Token = "warning"
	Danger    Token = "danger"
	Secondary Token = "secondary"
	Dark      Token = "dark"
)

// Default is the palette senders other than the current user draw from.
var Default = []Token{Success, Info, Warning, Danger, Secondary, Dark}

// Assigner memoizes sender → token for the life of a session.
// Entries are never revised once assigned.
type Assigner struct {
	self     string
	tokens   []Token
	assigned map[string]Token
}

// New creates an assigner. self is the current user's name; tokens defaults to Default.
func New(self string, tokens []Token) *Assigner {
	if len(tokens) == 0 {
		tokens = Default
	}
	return &Assigner{
		self:     session.Normalize(self),
		tokens:   tokens,
		assigned: make(map[string]Token),
	}
}

// ColorFor returns the sender's token. Raw strings that differ only in case
// are distinct senders here; only the self check normalizes.
func (a *Assigner) ColorFor(sender string) Token {
	if a.self != "" && session.Normalize(sender) == a.self {
		return Self
	}
	if tok, ok := a.assigned[sender]; ok {
		return tok
	}

	h := int64(Hash(sender))
	if h < 0 {
		h = -h
	}
	tok := a.tokens[h%int64(len(a.tokens))]
	a.assigned[sender] = tok
	return tok
}

// Len returns how many senders have been assigned a token.
func (a *Assigner) Len() int {
	return len(a.assigned)
}

// Hash folds the UTF-16 code units of s with h = c + ((h << 5) - h), wrapping at 32 bits.
func Hash(s string) int32 {
	var h int32
	for _, c := range utf16.Encode([]rune(s)) {
		h = int32(c) + ((h << 5) - h)
	}
	return h
}
