package api

import (
	"context"
	"sync"

	"github.com/xonecas/chatbridge/internal/feed"
)

// MockService is a test Service that returns predefined responses.
type MockService struct {
	mu       sync.Mutex
	messages []feed.Message
	token    string
	fetchErr error
	sendErr  error
	authErr  error
	sent     []Outgoing
	fetches  int
}

// NewMock creates a mock serving messages and accepting any login with token.
func NewMock(messages []feed.Message, token string) *MockService {
	return &MockService{messages: messages, token: token}
}

// WithFetchError sets an error to return from FetchMessages.
func (m *MockService) WithFetchError(err error) *MockService {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fetchErr = err
	return m
}

// WithSendError sets an error to return from SendMessage.
func (m *MockService) WithSendError(err error) *MockService {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sendErr = err
	return m
}

// WithAuthError sets an error to return from Authenticate.
func (m *MockService) WithAuthError(err error) *MockService {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.authErr = err
	return m
}

// SetMessages replaces the served feed.
func (m *MockService) SetMessages(messages []feed.Message) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = messages
}

// Sent returns every message accepted by SendMessage.
func (m *MockService) Sent() []Outgoing {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Outgoing(nil), m.sent...)
}

// Fetches returns how many times FetchMessages was called.
func (m *MockService) Fetches() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fetches
}

func (m *MockService) FetchMessages(ctx context.Context) ([]feed.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fetches++
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	return append([]feed.Message(nil), m.messages...), nil
}

func (m *MockService) SendMessage(ctx context.Context, credential string, msg Outgoing) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, msg)
	return nil
}

func (m *MockService) Authenticate(ctx context.Context, username, password string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.authErr != nil {
		return "", m.authErr
	}
	return m.token, nil
}

var _ Service = (*MockService)(nil)
