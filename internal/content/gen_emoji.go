//go:build ignore

// This program generates emoji_table.go from the Unicode emoji data file.
// Invoke it via go generate in the content package.
package main

import (
	"bufio"
	"bytes"
	"fmt"
	"go/format"
	"log"
	"net/http"
	"os"
	"sort"
	"strconv"
	"strings"
)

const emojiDataURL = "https://unicode.org/Public/15.0.0/ucd/emoji/emoji-data.txt"

type span struct{ lo, hi rune }

func main() {
	resp, err := http.Get(emojiDataURL)
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("fetch %s: %s", emojiDataURL, resp.Status)
	}

	var spans []span
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line, _, _ := strings.Cut(scanner.Text(), "#")
		fields := strings.Split(line, ";")
		if len(fields) != 2 || strings.TrimSpace(fields[1]) != "Emoji" {
			continue
		}
		s, err := parseSpan(strings.TrimSpace(fields[0]))
		if err != nil {
			log.Fatal(err)
		}
		// '#', '*' and digits only count inside keycap sequences.
		if s.hi < 0x80 {
			continue
		}
		spans = append(spans, s)
	}
	if err := scanner.Err(); err != nil {
		log.Fatal(err)
	}

	src, err := format.Source(render(merge(spans)))
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile("emoji_table.go", src, 0o644); err != nil {
		log.Fatal(err)
	}
}

func parseSpan(field string) (span, error) {
	loText, hiText, found := strings.Cut(field, "..")
	if !found {
		hiText = loText
	}
	lo, err := strconv.ParseUint(loText, 16, 32)
	if err != nil {
		return span{}, err
	}
	hi, err := strconv.ParseUint(hiText, 16, 32)
	if err != nil {
		return span{}, err
	}
	return span{rune(lo), rune(hi)}, nil
}

func merge(spans []span) []span {
	sort.Slice(spans, func(i, j int) bool { return spans[i].lo < spans[j].lo })
	var out []span
	for _, s := range spans {
		if n := len(out); n > 0 && s.lo <= out[n-1].hi+1 {
			out[n-1].hi = max(out[n-1].hi, s.hi)
			continue
		}
		out = append(out, s)
	}
	return out
}

func render(spans []span) []byte {
	var buf bytes.Buffer
	latin := 0
	fmt.Fprintln(&buf, "// Code generated by gen_emoji.go from Unicode 15.0 emoji-data.txt. DO NOT EDIT.")
	fmt.Fprintln(&buf, "\npackage content\n\nimport \"unicode\"")
	fmt.Fprintln(&buf, "\n// emojiTable holds the Emoji property, minus the ASCII keycap bases '#', '*' and digits.")
	fmt.Fprintln(&buf, "var emojiTable = &unicode.RangeTable{\n\tR16: []unicode.Range16{")
	for _, s := range spans {
		if s.hi > 0xffff {
			continue
		}
		if s.hi <= 0xff {
			latin++
		}
		fmt.Fprintf(&buf, "\t\t{Lo: 0x%04x, Hi: 0x%04x, Stride: 1},\n", s.lo, s.hi)
	}
	fmt.Fprintln(&buf, "\t},\n\tR32: []unicode.Range32{")
	for _, s := range spans {
		if s.lo > 0xffff {
			fmt.Fprintf(&buf, "\t\t{Lo: 0x%05x, Hi: 0x%05x, Stride: 1},\n", s.lo, s.hi)
		}
	}
	fmt.Fprintf(&buf, "\t},\n\tLatinOffset: %d,\n}\n", latin)
	return buf.Bytes()
}
