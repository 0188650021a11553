package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitVideoLink(t *testing.T) {
	segs := Split("check https://youtu.be/dQw4w9WgXcQ now")
	require.Len(t, segs, 3)

	assert.Equal(t, Segment{Kind: KindText, Text: "check "}, segs[0])
	assert.Equal(t, KindVideo, segs[1].Kind)
	assert.Equal(t, "dQw4w9WgXcQ", segs[1].VideoID)
	assert.Equal(t, "https://youtu.be/dQw4w9WgXcQ", segs[1].Text)
	assert.Equal(t, Segment{Kind: KindText, Text: " now"}, segs[2])
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		kinds []Kind
		texts []string
	}{
		{
			name:  "plain_text",
			in:    "hola a todos",
			kinds: []Kind{KindText},
			texts: []string{"hola a todos"},
		},
		{
			name:  "empty",
			in:    "",
			kinds: nil,
			texts: nil,
		},
		{
			name:  "plain_link",
			in:    "docs at https://go.dev/doc/ ok",
			kinds: []Kind{KindText, KindLink, KindText},
			texts: []string{"docs at ", "https://go.dev/doc/", " ok"},
		},
		{
			name:  "link_only",
			in:    "https://example.com",
			kinds: []Kind{KindLink},
			texts: []string{"https://example.com"},
		},
		{
			name:  "trailing_period",
			in:    "see https://example.com/a.",
			kinds: []Kind{KindText, KindLink, KindText},
			texts: []string{"see ", "https://example.com/a", "."},
		},
		{
			name:  "parenthesized",
			in:    "(https://example.com/x)",
			kinds: []Kind{KindText, KindLink, KindText},
			texts: []string{"(", "https://example.com/x", ")"},
		},
		{
			name:  "balanced_parens_kept",
			in:    "https://en.wikipedia.org/wiki/Go_(lenguaje)",
			kinds: []Kind{KindLink},
			texts: []string{"https://en.wikipedia.org/wiki/Go_(lenguaje)"},
		},
		{
			name:  "www_without_scheme",
			in:    "www.youtube.com/watch?v=dQw4w9WgXcQ",
			kinds: []Kind{KindVideo},
			texts: []string{"www.youtube.com/watch?v=dQw4w9WgXcQ"},
		},
		{
			name:  "two_links",
			in:    "a http://x.org b https://youtu.be/aaaaaaaaaaa",
			kinds: []Kind{KindText, KindLink, KindText, KindVideo},
			texts: []string{"a ", "http://x.org", " b ", "https://youtu.be/aaaaaaaaaaa"},
		},
		{
			name:  "bare_prefix_is_text",
			in:    "type https:// here",
			kinds: []Kind{KindText},
			texts: []string{"type https:// here"},
		},
		{
			name:  "prefix_inside_word_is_text",
			in:    "xhttp://foo",
			kinds: []Kind{KindText},
			texts: []string{"xhttp://foo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segs := Split(tt.in)
			require.Len(t, segs, len(tt.kinds))

			var joined strings.Builder
			for i, seg := range segs {
				assert.Equal(t, tt.kinds[i], seg.Kind, "segment %d kind", i)
				assert.Equal(t, tt.texts[i], seg.Text, "segment %d text", i)
				joined.WriteString(seg.Text)
			}
			assert.Equal(t, tt.in, joined.String(), "segments must reassemble the input")
		})
	}
}

func TestSplitAddsSchemeToHref(t *testing.T) {
	segs := Split("www.example.com")
	require.Len(t, segs, 1)
	assert.Equal(t, "www.example.com", segs[0].Text)
	assert.Equal(t, "https://www.example.com", segs[0].URL)
}

func TestLinks(t *testing.T) {
	links := Links("a https://x.org b https://youtu.be/dQw4w9WgXcQ c")
	require.Len(t, links, 2)
	assert.Equal(t, KindLink, links[0].Kind)
	assert.Equal(t, KindVideo, links[1].Kind)

	assert.Empty(t, Links("no links here"))
}
