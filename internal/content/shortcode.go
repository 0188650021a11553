package content

import (
	"sort"
	"strings"
)

// Shortcode pairs a :name: with the emoji it expands to.
type Shortcode struct {
	Name  string
	Emoji string
}

var shortcodes = map[string]string{
	"smile":      "😄",
	"grin":       "😁",
	"joy":        "😂",
	"wink":       "😉",
	"blush":      "😊",
	"heart_eyes": "😍",
	"thinking":   "🤔",
	"sob":        "😭",
	"sweat":      "😅",
	"cool":       "😎",
	"scream":     "😱",
	"angry":      "😠",
	"thumbsup":   "👍",
	"+1":         "👍",
	"thumbsdown": "👎",
	"-1":         "👎",
	"clap":       "👏",
	"wave":       "👋",
	"pray":       "🙏",
	"muscle":     "💪",
	"ok_hand":    "👌",
	"eyes":       "👀",
	"heart":      "❤️",
	"fire":       "🔥",
	"tada":       "🎉",
	"sparkles":   "✨",
	"star":       "⭐",
	"rocket":     "🚀",
	"100":        "💯",
	"coffee":     "☕",
	"pizza":      "🍕",
	"beer":       "🍺",
	"check":      "✅",
	"x":          "❌",
	"warning":    "⚠️",
	"bulb":       "💡",
	"books":      "📚",
	"computer":   "💻",
	"sun":        "☀️",
	"moon":       "🌙",
}

// ExpandShortcodes replaces every known :name: in s with its emoji. Unknown
// names and unterminated colons are left as typed.
func ExpandShortcodes(s string) string {
	if !strings.Contains(s, ":") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for {
		start := strings.IndexByte(s, ':')
		if start < 0 {
			break
		}
		end := strings.IndexByte(s[start+1:], ':')
		if end < 0 {
			break
		}
		end += start + 1

		name := s[start+1 : end]
		if emoji, ok := shortcodes[name]; ok {
			b.WriteString(s[:start])
			b.WriteString(emoji)
			s = s[end+1:]
			continue
		}
		// Not a shortcode; the closing colon may open the next one.
		b.WriteString(s[:end])
		s = s[end:]
	}
	b.WriteString(s)
	return b.String()
}

// Shortcodes lists the known shortcodes sorted by name, one per emoji.
func Shortcodes() []Shortcode {
	seen := make(map[string]bool, len(shortcodes))
	names := make([]string, 0, len(shortcodes))
	for name := range shortcodes {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Shortcode, 0, len(names))
	for _, name := range names {
		emoji := shortcodes[name]
		if seen[emoji] {
			continue
		}
		seen[emoji] = true
		out = append(out, Shortcode{Name: name, Emoji: emoji})
	}
	return out
}
