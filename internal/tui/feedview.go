package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"github.com/xonecas/chatbridge/internal/content"
	"github.com/xonecas/chatbridge/internal/feed"
	"github.com/xonecas/chatbridge/internal/palette"
	"github.com/xonecas/chatbridge/internal/session"
	"github.com/xonecas/chatbridge/internal/timefmt"
)

// linkRef locates an activatable link in the rendered feed.
type linkRef struct {
	Segment content.Segment
	// Line is the first content line of the bubble holding the link.
	Line int
}

// feedRenderer turns the message list into viewport content.
type feedRenderer struct {
	self   session.Context
	colors *palette.Assigner
	times  timefmt.Formatter
	now    time.Time
	width  int
	// selected is the index into the returned links, -1 for none.
	selected int
}

// render draws every message in feed order and collects its links.
func (r feedRenderer) render(msgs []feed.Message) (string, []linkRef) {
	if len(msgs) == 0 {
		return dimmedStyle.Render("No messages yet."), nil
	}

	var (
		blocks []string
		links  []linkRef
		line   int
	)
	for _, m := range msgs {
		block, segs := r.renderMessage(m, len(links))
		for _, seg := range segs {
			links = append(links, linkRef{Segment: seg, Line: line})
		}
		blocks = append(blocks, block)
		line += lipgloss.Height(block)
	}
	return strings.Join(blocks, "\n"), links
}

// bubbleWidth is the widest a bubble may grow, borders included.
func (r feedRenderer) bubbleWidth() int {
	w := r.width * 3 / 4
	if w < 20 {
		w = r.width
	}
	return w
}

// renderMessage draws one bubble. firstLink is the global index of the
// message's first link, used to highlight the selection.
func (r feedRenderer) renderMessage(m feed.Message, firstLink int) (string, []content.Segment) {
	isSelf := r.self.IsSelf(m.Sender)
	color := TokenColor(r.colors.ColorFor(m.Sender))

	align := lipgloss.Left
	if isSelf {
		align = lipgloss.Right
	}

	if content.IsEmojiOnly(m.Content) {
		body := strings.Join(strings.Fields(m.Content), "  ")
		return lipgloss.PlaceHorizontal(r.width, align, emojiBubbleStyle.Render(body)), nil
	}

	inner := r.bubbleWidth() - 4
	body, links := r.renderBody(m.Content, firstLink)
	body = wrap.String(wordwrap.String(body, inner), inner)

	var parts []string
	if !isSelf {
		parts = append(parts, senderStyle.Foreground(color).Render(truncateWithEllipsis(m.Sender, inner)))
	}
	parts = append(parts, body)
	parts = append(parts, timestampStyle.Render(r.times.Label(m.SentAt, r.now)))

	bubble := bubbleStyle.BorderForeground(color).Render(strings.Join(parts, "\n"))
	return lipgloss.PlaceHorizontal(r.width, align, bubble), links
}

// renderBody styles text, links and video triggers. Only non-text segments are returned.
func (r feedRenderer) renderBody(body string, firstLink int) (string, []content.Segment) {
	var (
		b     strings.Builder
		links []content.Segment
	)
	for _, seg := range content.Split(body) {
		if seg.Kind == content.KindText {
			b.WriteString(seg.Text)
			continue
		}

		style := linkStyle
		label := seg.Text
		if seg.Kind == content.KindVideo {
			style = videoStyle
			label = "▶ " + seg.Text
		}
		if firstLink+len(links) == r.selected {
			style = selectedLinkStyle
		}
		b.WriteString(style.Render(label))
		links = append(links, seg)
	}
	return b.String(), links
}
