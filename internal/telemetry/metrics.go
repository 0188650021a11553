// Package telemetry exposes Prometheus metrics for polling and sending.
package telemetry

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

var (
	// Polls counts feed polls by outcome (ok, connectivity, status, decode).
	Polls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chatbridge_polls_total",
		Help: "Feed polls by result",
	}, []string{"result"})

	// Sends counts outgoing messages by outcome.
	Sends = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chatbridge_sends_total",
		Help: "Message sends by result",
	}, []string{"result"})

	// StaleResponses counts poll responses that resolved after a later-issued poll.
	StaleResponses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chatbridge_stale_responses_total",
		Help: "Poll responses applied out of issue order",
	})

	// FeedMessages is the number of messages currently displayed.
	FeedMessages = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "chatbridge_feed_messages",
		Help: "Messages in the displayed feed",
	})

	// RequestDuration observes remote call latency by operation.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "chatbridge_request_duration_seconds",
		Help:    "Remote request duration",
		Buckets: prometheus.DefBuckets,
	}, []string{"op"})
)

// ObservePoll records one poll result.
func ObservePoll(result string, elapsed time.Duration) {
	Polls.WithLabelValues(result).Inc()
	RequestDuration.WithLabelValues("poll").Observe(elapsed.Seconds())
}

// ObserveSend records one send result.
func ObserveSend(result string, elapsed time.Duration) {
	Sends.WithLabelValues(result).Inc()
	RequestDuration.WithLabelValues("send").Observe(elapsed.Seconds())
}

// SetFeedSize records how many messages are displayed.
func SetFeedSize(n int) {
	FeedMessages.Set(float64(n))
}

// Handler serves the default registry.
func Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

// Serve runs a metrics listener on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Info().Str("addr", addr).Msg("Metrics listener started")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
