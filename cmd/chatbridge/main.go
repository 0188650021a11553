package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/xonecas/chatbridge/internal/api"
	"github.com/xonecas/chatbridge/internal/config"
	"github.com/xonecas/chatbridge/internal/session"
	"github.com/xonecas/chatbridge/internal/store"
	"github.com/xonecas/chatbridge/internal/telemetry"
	"github.com/xonecas/chatbridge/internal/tui"
	"github.com/xonecas/chatbridge/internal/video"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Parse flags
	var (
		showVersion = flag.Bool("version", false, "Show version and exit")
		configPath  = flag.String("config", "config.toml", "Path to config file")
		debug       = flag.Bool("debug", false, "Enable debug logging")
		check       = flag.Bool("check", false, "Fetch the feed once, report the result, then exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("Chatbridge %s\n", Version)
		os.Exit(0)
	}

	if *check {
		os.Exit(runFeedCheck(*configPath))
	}

	// Initialize logging
	if err := initLogging(*debug); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	log.Info().Str("version", Version).Msg("Starting Chatbridge")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	log.Debug().Interface("config", cfg).Msg("Configuration loaded")

	// Initialize store
	s, err := store.New()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize store")
	}
	defer s.Close()

	// Restore the previous login, if any
	sess, err := session.Load(s)
	switch {
	case errors.Is(err, session.ErrNoSession):
		log.Debug().Msg("No stored session")
	case err != nil:
		log.Warn().Err(err).Msg("Failed to load session")
	default:
		log.Info().Str("user", sess.Identity()).Msg("Session restored")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Optional metrics listener
	if cfg.Metrics.Addr != "" {
		go func() {
			if err := telemetry.Serve(ctx, cfg.Metrics.Addr); err != nil {
				log.Error().Err(err).Str("addr", cfg.Metrics.Addr).Msg("Metrics listener stopped")
			}
		}()
		log.Info().Str("addr", cfg.Metrics.Addr).Msg("Metrics enabled")
	}

	client := api.NewClient(cfg.API)
	resolver := video.NewResolver(ctx, cfg.Video.APIKey)

	// Set up signal handling for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	model := tui.New(tui.Options{
		Config:   cfg,
		Service:  client,
		Store:    s,
		Resolver: resolver,
		Session:  sess,
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	go func() {
		<-sigCh
		log.Info().Msg("Received shutdown signal")
		program.Quit()
	}()

	if _, err := program.Run(); err != nil {
		log.Fatal().Err(err).Msg("TUI error")
	}

	log.Info().Msg("Chatbridge shutdown complete")
}

func initLogging(debug bool) error {
	dataDir, err := config.EnsureDataDir()
	if err != nil {
		return fmt.Errorf("ensure data dir: %w", err)
	}

	// Truncated on startup
	logPath := filepath.Join(dataDir, "chatbridge.log")
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	// Log to file only (TUI owns stdout/stderr)
	log.Logger = zerolog.New(logFile).With().Timestamp().Logger()

	return nil
}

// runFeedCheck fetches the feed once and prints what came back.
func runFeedCheck(configPath string) int {
	fmt.Println("=== Feed Check ===")

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("ERROR: Failed to load config: %v\n", err)
		return 1
	}
	fmt.Printf("Feed: %s\n", cfg.API.FeedURL)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout)
	defer cancel()

	start := time.Now()
	msgs, err := api.NewClient(cfg.API).FetchMessages(ctx)
	elapsed := time.Since(start).Round(time.Millisecond)
	if err != nil {
		fmt.Printf("ERROR (%s) after %s: %v\n", api.Classify(err), elapsed, err)
		return 1
	}

	fmt.Printf("OK: %d messages in %s\n", len(msgs), elapsed)
	if n := len(msgs); n > 0 {
		last := msgs[n-1]
		fmt.Printf("Latest: %s at %s\n", last.Sender, last.SentAt.Format(time.RFC3339))
	}
	return 0
}
