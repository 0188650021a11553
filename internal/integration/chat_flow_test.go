package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xonecas/chatbridge/internal/api"
	"github.com/xonecas/chatbridge/internal/config"
	"github.com/xonecas/chatbridge/internal/session"
	"github.com/xonecas/chatbridge/internal/store"
	"github.com/xonecas/chatbridge/internal/tui"
)

const testToken = "integration-token"

// backend is an in-memory stand-in for the three chat endpoints.
type backend struct {
	mu       sync.Mutex
	messages []map[string]any
	auths    []map[string]string
	bearers  []string
}

func (b *backend) handler() http.Handler {
	mux := http.NewServeMux()
	routes := map[string]map[string]http.HandlerFunc{}
	handle := func(method, path string, h http.HandlerFunc) {
		if routes[path] == nil {
			routes[path] = map[string]http.HandlerFunc{}
			mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
				if h, ok := routes[path][r.Method]; ok {
					h(w, r)
					return
				}
				w.WriteHeader(http.StatusMethodNotAllowed)
			})
		}
		routes[path][method] = h
	}
	handle("GET", "/api/Mensajes", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(b.messages)
	})
	handle("POST", "/api/Mensajes", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.bearers = append(b.bearers, r.Header.Get("Authorization"))
		if r.Header.Get("Authorization") != "Bearer "+testToken {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		var out struct {
			Sender  string `json:"sender"`
			Content string `json:"content"`
		}
		if err := json.NewDecoder(r.Body).Decode(&out); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		b.messages = append(b.messages, map[string]any{
			"sender":  out.Sender,
			"content": out.Content,
			"sentAt":  time.Now().Format(time.RFC3339),
		})
		w.WriteHeader(http.StatusCreated)
	})
	handle("POST", "/api/login/authenticate", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		var req map[string]string
		json.NewDecoder(r.Body).Decode(&req)
		b.auths = append(b.auths, req)
		json.NewEncoder(w).Encode(map[string]string{"token": testToken})
	})
	return mux
}

func (b *backend) snapshot() (auths []map[string]string, bearers []string, count int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]map[string]string(nil), b.auths...), append([]string(nil), b.bearers...), len(b.messages)
}

func apiConfig(baseURL string) config.APIConfig {
	cfg := config.DefaultConfig().API
	cfg.FeedURL = baseURL + "/api/Mensajes"
	cfg.SendURL = baseURL + "/api/Mensajes"
	cfg.AuthURL = baseURL + "/api/login/authenticate"
	cfg.Timeout = 2 * time.Second
	cfg.RateLimit = 1000
	cfg.RateBurst = 1000
	return cfg
}

func waitFor(t *testing.T, tm *teatest.TestModel, want string) {
	t.Helper()
	teatest.WaitFor(
		t,
		tm.Output(),
		func(bts []byte) bool {
			return bytes.Contains(bts, []byte(want))
		},
		teatest.WithCheckInterval(50*time.Millisecond),
		teatest.WithDuration(5*time.Second),
	)
}

// TestChatFlowIntegration drives login, the first poll and a send over real HTTP.
func TestChatFlowIntegration(t *testing.T) {
	be := &backend{messages: []map[string]any{
		{"emisor": "ana", "contenido": "mensaje heredado", "fecha": "2024-05-14T10:00:00"},
	}}
	server := httptest.NewServer(be.handler())
	defer server.Close()

	s, err := store.OpenMemory()
	require.NoError(t, err)
	defer s.Close()

	cfg := config.DefaultConfig()
	cfg.API = apiConfig(server.URL)
	cfg.Feed.PollInterval = time.Hour

	m := tui.New(tui.Options{Config: cfg, Service: api.NewClient(cfg.API), Store: s})
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(100, 30))

	// Login: the e-mail domain is dropped before authenticating.
	waitFor(t, tm, "Username")
	tm.Type("Ctezop@example.edu")
	tm.Send(tea.KeyMsg{Type: tea.KeyTab})
	tm.Type("hunter2")
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
	waitFor(t, tm, "mensaje heredado")

	// Send and wait for the refreshed feed.
	tm.Type("hola a todos")
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
	waitFor(t, tm, "2 msgs")

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	tm.WaitFinished(t, teatest.WithFinalTimeout(3*time.Second))

	auths, bearers, count := be.snapshot()
	require.Len(t, auths, 1)
	assert.Equal(t, "Ctezop", auths[0]["Username"])
	assert.Equal(t, "hunter2", auths[0]["Password"])
	assert.Equal(t, []string{"Bearer " + testToken}, bearers)
	assert.Equal(t, 2, count)

	restored, err := session.Load(s)
	require.NoError(t, err)
	assert.Equal(t, "ctezop", restored.Identity())
	assert.Equal(t, testToken, restored.Credential())
}

// TestRejectedTokenKeepsDraft verifies a 401 from the send endpoint is surfaced
// without losing the typed message.
func TestRejectedTokenKeepsDraft(t *testing.T) {
	be := &backend{}
	server := httptest.NewServer(be.handler())
	defer server.Close()

	cfg := config.DefaultConfig()
	cfg.API = apiConfig(server.URL)
	cfg.Feed.PollInterval = time.Hour

	m := tui.New(tui.Options{
		Config:  cfg,
		Service: api.NewClient(cfg.API),
		Session: session.New("ctezop", "stale-token"),
	})
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(100, 30))
	waitFor(t, tm, "No messages yet.")

	tm.Type("hello")
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
	waitFor(t, tm, "Error 401")

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	tm.WaitFinished(t, teatest.WithFinalTimeout(3*time.Second))

	_, bearers, count := be.snapshot()
	assert.Equal(t, []string{"Bearer stale-token"}, bearers)
	assert.Zero(t, count)
}
