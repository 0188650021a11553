// Package video describes videos linked from chat messages and resolves their
// titles for the playback overlay.
package video

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"
)

// ErrNotFound is returned when the platform has no video for an identifier.
var ErrNotFound = errors.New("video not found")

// Info is what the overlay shows for a video. Title and Channel are empty
// when no lookup was possible.
type Info struct {
	ID      string
	Title   string
	Channel string
}

// WatchURL is the canonical page for the video.
func (i Info) WatchURL() string {
	return "https://www.youtube.com/watch?v=" + i.ID
}

// EmbedURL is the player-only page for the video.
func (i Info) EmbedURL() string {
	return "https://www.youtube-nocookie.com/embed/" + i.ID
}

// Resolver looks up video metadata.
type Resolver interface {
	Lookup(ctx context.Context, id string) (Info, error)
}

// Static resolves every identifier to an Info without metadata.
type Static struct{}

func (Static) Lookup(ctx context.Context, id string) (Info, error) {
	return Info{ID: id}, nil
}

// YouTube resolves identifiers through the YouTube Data API.
type YouTube struct {
	svc *yt.Service
}

// NewYouTube creates a resolver authenticated with an API key.
func NewYouTube(ctx context.Context, apiKey string, opts ...option.ClientOption) (*YouTube, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	svc, err := yt.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("youtube service: %w", err)
	}
	return &YouTube{svc: svc}, nil
}

func (y *YouTube) Lookup(ctx context.Context, id string) (Info, error) {
	resp, err := y.svc.Videos.List([]string{"snippet"}).Id(id).Context(ctx).Do()
	if err != nil {
		return Info{ID: id}, fmt.Errorf("lookup %s: %w", id, err)
	}
	if len(resp.Items) == 0 || resp.Items[0].Snippet == nil {
		return Info{ID: id}, fmt.Errorf("lookup %s: %w", id, ErrNotFound)
	}

	snippet := resp.Items[0].Snippet
	return Info{ID: id, Title: snippet.Title, Channel: snippet.ChannelTitle}, nil
}

// NewResolver returns a YouTube resolver when apiKey is set, otherwise Static.
func NewResolver(ctx context.Context, apiKey string) Resolver {
	if apiKey == "" {
		return Static{}
	}
	r, err := NewYouTube(ctx, apiKey)
	if err != nil {
		log.Warn().Err(err).Msg("Video lookups disabled")
		return Static{}
	}
	return r
}
