package telemetry

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObservePoll(t *testing.T) {
	before := testutil.ToFloat64(Polls.WithLabelValues("ok"))
	ObservePoll("ok", 10*time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(Polls.WithLabelValues("ok")))
}

func TestObserveSend(t *testing.T) {
	before := testutil.ToFloat64(Sends.WithLabelValues("auth"))
	ObserveSend("auth", time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(Sends.WithLabelValues("auth")))
}

func TestSetFeedSize(t *testing.T) {
	SetFeedSize(42)
	assert.Equal(t, 42.0, testutil.ToFloat64(FeedMessages))
}

func TestHandlerExposesMetrics(t *testing.T) {
	SetFeedSize(3)
	server := httptest.NewServer(Handler())
	defer server.Close()

	resp, err := http.Get(server.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "chatbridge_feed_messages 3")
}
