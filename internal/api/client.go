// Package api talks to the remote chat services: the message feed, the send
// endpoint and the login endpoint.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/time/rate"

	"github.com/xonecas/chatbridge/internal/config"
	"github.com/xonecas/chatbridge/internal/feed"
)

var validate = validator.New()

// Service is the remote surface the UI depends on.
type Service interface {
	FetchMessages(ctx context.Context) ([]feed.Message, error)
	SendMessage(ctx context.Context, credential string, msg Outgoing) error
	Authenticate(ctx context.Context, username, password string) (string, error)
}

// Outgoing is the body posted to the send endpoint.
type Outgoing struct {
	RoomCode int    `json:"roomCode" validate:"gte=0"`
	Sender   string `json:"sender" validate:"required"`
	Content  string `json:"content" validate:"required,max=1000"`
}

// Client implements Service over HTTP.
type Client struct {
	feedURL    string
	sendURL    string
	authURL    string
	roomCode   int
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a client from the API section of the config.
func NewClient(cfg config.APIConfig) *Client {
	return &Client{
		feedURL:    cfg.FeedURL,
		sendURL:    cfg.SendURL,
		authURL:    cfg.AuthURL,
		roomCode:   cfg.RoomCode,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
	}
}

// FetchMessages reads the whole feed, in the order the server returns it.
func (c *Client) FetchMessages(ctx context.Context) ([]feed.Message, error) {
	resp, err := c.do(ctx, "fetch messages", http.MethodGet, c.feedURL, nil, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	msgs, err := feed.DecodeMessages(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch messages: %w", err)
	}
	log.Debug().Int("count", len(msgs)).Msg("Fetched feed")
	return msgs, nil
}

// SendMessage posts msg with the bearer credential. The configured room code
// replaces msg.RoomCode.
func (c *Client) SendMessage(ctx context.Context, credential string, msg Outgoing) error {
	msg.RoomCode = c.roomCode
	if err := validate.Struct(msg); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	headers := map[string]string{"Authorization": "Bearer " + credential}
	resp, err := c.do(ctx, "send message", http.MethodPost, c.sendURL, body, headers)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	log.Debug().Str("sender", msg.Sender).Msg("Message sent")
	return nil
}

type authRequest struct {
	Username string `json:"Username"`
	Password string `json:"Password"`
}

type authResponse struct {
	Token      string `json:"token"`
	TokenUpper string `json:"Token"`
	Result     string `json:"result"`
}

// Authenticate exchanges credentials for a bearer token.
func (c *Client) Authenticate(ctx context.Context, username, password string) (string, error) {
	body, err := json.Marshal(authRequest{Username: username, Password: password})
	if err != nil {
		return "", err
	}

	resp, err := c.do(ctx, "authenticate", http.MethodPost, c.authURL, body, nil)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("authenticate: %w: %v", ErrConnectivity, err)
	}

	// Some deployments answer with the bare token as a JSON string.
	var bare string
	if err := json.Unmarshal(payload, &bare); err == nil && bare != "" {
		return bare, nil
	}

	var decoded authResponse
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return "", fmt.Errorf("authenticate: %w", ErrNoToken)
	}
	token := lo.FirstOrEmpty(lo.Compact([]string{decoded.Token, decoded.TokenUpper, decoded.Result}))
	if token == "" {
		return "", fmt.Errorf("authenticate: %w", ErrNoToken)
	}
	return token, nil
}

// do performs one rate-limited request. Non-2xx responses are returned as
// *StatusError with the body already drained.
func (c *Client) do(ctx context.Context, op, method, url string, body []byte, headers map[string]string) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrConnectivity, err)
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("request_id", requestID).Str("op", op).Msg("Request failed")
		return nil, fmt.Errorf("%s: %w: %w", op, ErrConnectivity, err)
	}

	log.Debug().
		Str("request_id", requestID).
		Str("op", op).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("Request complete")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &StatusError{Op: op, Code: resp.StatusCode, Body: serverMessage(payload)}
	}
	return resp, nil
}

// serverMessage pulls a human-readable message out of an error body.
func serverMessage(payload []byte) string {
	var decoded struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(payload, &decoded); err == nil && decoded.Message != "" {
		return decoded.Message
	}
	text := strings.TrimSpace(string(payload))
	if strings.HasPrefix(text, "<") || len(text) > 200 {
		return ""
	}
	return text
}

var _ Service = (*Client)(nil)
