package content

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

//go:generate go run gen_emoji.go

const keycapMark = '\u20e3'

// IsEmojiOnly reports whether s, once trimmed, consists only of emoji and whitespace.
// A bare digit, '#' or '*' only counts when it forms a keycap sequence.
func IsEmojiOnly(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}

	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cluster := g.Runes()
		if isSpaceCluster(cluster) {
			continue
		}
		if !isEmojiCluster(cluster) {
			return false
		}
	}
	return true
}

func isSpaceCluster(cluster []rune) bool {
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

func isEmojiCluster(cluster []rune) bool {
	first := cluster[0]
	if unicode.Is(emojiTable, first) {
		return true
	}
	if (first >= '0' && first <= '9') || first == '#' || first == '*' {
		for _, r := range cluster[1:] {
			if r == keycapMark {
				return true
			}
		}
	}
	return false
}
