package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/xonecas/chatbridge/internal/video"
)

// videoOverlay is the playback surface for a video link.
type videoOverlay struct {
	info    video.Info
	source  string // URL as written in the message
	loading bool
	err     string
}

func newVideoOverlay(id, source string) *videoOverlay {
	return &videoOverlay{info: video.Info{ID: id}, source: source, loading: true}
}

// resolved applies a lookup result. Lookup errors keep the bare identifier.
func (o *videoOverlay) resolved(info video.Info, err error) {
	o.loading = false
	if err != nil {
		o.err = "No details available for this video."
		return
	}
	o.info = info
}

func (o *videoOverlay) View(width, height int, spin string) string {
	var lines []string
	lines = append(lines, titleStyle.Render("▶ Video"), "")

	title := o.info.Title
	switch {
	case o.loading:
		title = spin + " " + dimmedStyle.Render("looking up...")
	case title == "":
		title = dimmedStyle.Render("(untitled)")
	default:
		title = valueStyle.Render(truncateWithEllipsis(title, width-12))
	}
	lines = append(lines, title)
	if o.info.Channel != "" {
		lines = append(lines, labelStyle.Render("by ")+o.info.Channel)
	}
	if o.err != "" {
		lines = append(lines, warningStyle.Render(o.err))
	}

	lines = append(lines, "",
		labelStyle.Render("id     ")+o.info.ID,
		labelStyle.Render("watch  ")+linkStyle.Render(o.info.WatchURL()),
		labelStyle.Render("embed  ")+linkStyle.Render(o.info.EmbedURL()),
		"",
		helpKeyStyle.Render("o")+helpDescStyle.Render(" open  ")+
			helpKeyStyle.Render("y")+helpDescStyle.Render(" copy link  ")+
			helpKeyStyle.Render("esc")+helpDescStyle.Render(" close"),
	)

	box := overlayStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	return placeCenter(box, width, height)
}
