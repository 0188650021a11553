// Package session holds the read-only identity and credential of the logged-in user.
package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/xonecas/chatbridge/internal/store"
)

// ErrNoSession is returned when no credential or username has been persisted.
var ErrNoSession = errors.New("no stored session")

// Reader is the durable key/value store the login flow writes to.
type Reader interface {
	Get(key string) (string, error)
}

// Context is the session handed to the chat core at construction.
// It is never mutated after creation.
type Context struct {
	identity   string
	credential string
}

// New builds a session context from a raw username and bearer credential.
func New(username, credential string) Context {
	return Context{
		identity:   Normalize(username),
		credential: credential,
	}
}

// Load reads the persisted credential and username.
func Load(r Reader) (Context, error) {
	credential, err := r.Get(store.KeyCredential)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Context{}, ErrNoSession
		}
		return Context{}, fmt.Errorf("read credential: %w", err)
	}

	username, err := r.Get(store.KeyUsername)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Context{}, ErrNoSession
		}
		return Context{}, fmt.Errorf("read username: %w", err)
	}

	if strings.TrimSpace(credential) == "" || Normalize(username) == "" {
		return Context{}, ErrNoSession
	}

	return New(username, credential), nil
}

// Normalize lower-cases and trims a sender name for identity comparisons.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// LoginName returns the part of an institutional e-mail before the first '@'.
func LoginName(input string) string {
	name, _, _ := strings.Cut(strings.TrimSpace(input), "@")
	return name
}

// Identity returns the normalized current-user name.
func (c Context) Identity() string { return c.identity }

// Credential returns the bearer credential.
func (c Context) Credential() string { return c.credential }

// Valid reports whether both identity and credential are present.
func (c Context) Valid() bool {
	return c.identity != "" && c.credential != ""
}

// IsSelf reports whether sender normalizes to the current user.
func (c Context) IsSelf(sender string) bool {
	return c.identity != "" && Normalize(sender) == c.identity
}

// ExpiresAt peeks at the credential's exp claim without verifying the signature.
// ok is false when the credential is not a JWT or carries no expiry.
func (c Context) ExpiresAt() (exp time.Time, ok bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(c.credential, claims); err != nil {
		return time.Time{}, false
	}
	t, err := claims.GetExpirationTime()
	if err != nil || t == nil {
		return time.Time{}, false
	}
	return t.Time, true
}

// Expired reports whether the credential carries an exp claim in the past.
func (c Context) Expired(now time.Time) bool {
	exp, ok := c.ExpiresAt()
	return ok && !now.Before(exp)
}
