// Package content classifies and splits chat message bodies for rendering.
package content

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind identifies a segment of message content.
type Kind int

const (
	KindText Kind = iota
	KindLink
	KindVideo
)

func (k Kind) String() string {
	switch k {
	case KindLink:
		return "link"
	case KindVideo:
		return "video"
	default:
		return "text"
	}
}

// Segment is one piece of a message body.
// For links and videos Text is the URL exactly as written and URL is the
// navigable form (scheme added when the author omitted it).
type Segment struct {
	Kind    Kind
	Text    string
	URL     string
	VideoID string
}

var linkPrefixes = []string{"https://", "http://", "www."}

// Split splits s into literal text, plain links and recognized video links.
// Concatenating every segment's Text reproduces s.
func Split(s string) []Segment {
	var out []Segment
	textStart := 0

	for i := 0; i < len(s); {
		if !atWordStart(s, i) || !hasLinkPrefix(s[i:]) {
			_, size := utf8.DecodeRuneInString(s[i:])
			i += size
			continue
		}

		end := scanURL(s, i)
		raw := s[i:end]
		if !isLinkBody(raw) {
			i = end
			continue
		}

		if textStart < i {
			out = append(out, Segment{Kind: KindText, Text: s[textStart:i]})
		}
		out = append(out, classifyLink(raw))
		i = end
		textStart = end
	}

	if textStart < len(s) {
		out = append(out, Segment{Kind: KindText, Text: s[textStart:]})
	}
	return out
}

// Links returns only the link and video segments of s.
func Links(s string) []Segment {
	var out []Segment
	for _, seg := range Split(s) {
		if seg.Kind != KindText {
			out = append(out, seg)
		}
	}
	return out
}

func classifyLink(raw string) Segment {
	href := raw
	if !strings.Contains(strings.ToLower(raw[:min(len(raw), 8)]), "://") {
		href = "https://" + raw
	}
	if id, ok := VideoID(href); ok {
		return Segment{Kind: KindVideo, Text: raw, URL: href, VideoID: id}
	}
	return Segment{Kind: KindLink, Text: raw, URL: href}
}

func atWordStart(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '/' && r != '.'
}

func hasLinkPrefix(s string) bool {
	for _, p := range linkPrefixes {
		if len(s) >= len(p) && strings.EqualFold(s[:len(p)], p) {
			return true
		}
	}
	return false
}

// scanURL returns the end offset of the URL starting at i: up to the next
// whitespace, minus trailing punctuation that belongs to the sentence.
func scanURL(s string, i int) int {
	end := i
	for end < len(s) {
		r, size := utf8.DecodeRuneInString(s[end:])
		if unicode.IsSpace(r) || r == '<' || r == '>' || r == '"' {
			break
		}
		end += size
	}

	for end > i {
		last := s[end-1]
		switch {
		case strings.IndexByte(".,;:!?'", last) >= 0:
			end--
			continue
		case last == ')' && strings.Count(s[i:end], "(") < strings.Count(s[i:end], ")"):
			end--
			continue
		case last == ']' && strings.Count(s[i:end], "[") < strings.Count(s[i:end], "]"):
			end--
			continue
		}
		break
	}
	return end
}

// isLinkBody rejects a bare prefix with nothing after it ("https://", "www.").
func isLinkBody(raw string) bool {
	for _, p := range linkPrefixes {
		if len(raw) >= len(p) && strings.EqualFold(raw[:len(p)], p) {
			return len(raw) > len(p)
		}
	}
	return false
}
