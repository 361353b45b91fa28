package frontmatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		fm     string
		body   string
		had    bool
		errIs  error
		crlf   bool
	}{
		{name: "no front matter", input: "# Title\n\nHello\n", body: "# Title\n\nHello\n"},
		{name: "yaml", input: "---\nkey: value\n---\n# Title\n", fm: "key: value\n", body: "# Title\n", had: true},
		{name: "empty block", input: "---\n---\n# Title\n", body: "# Title\n", had: true},
		{name: "crlf", input: "---\r\nkey: value\r\n---\r\n# Title\r\n", fm: "key: value\r\n", body: "# Title\r\n", had: true, crlf: true},
		{name: "closing at eof", input: "---\nkey: value\n---", fm: "key: value\n", had: true},
		{name: "bom", input: "\ufeff---\na: b\n---\nx", fm: "a: b\n", body: "x", had: true},
		{name: "dashes inside value", input: "---\na: |\n  x\n----\n---\nbody", fm: "a: |\n  x\n----\n", body: "body", had: true},
		{name: "unclosed", input: "---\nkey: value\n# Title\n", errIs: ErrMissingClosingDelimiter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm, body, had, style, err := Split([]byte(tt.input))
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.had, had)
			assert.Equal(t, tt.fm, string(fm))
			assert.Equal(t, tt.body, string(body))
			if tt.crlf {
				assert.Equal(t, "\r\n", style.Newline)
			}
		})
	}
}

func TestJoin_RoundTrip(t *testing.T) {
	cases := []string{
		"# Title\n\nHello\n",
		"---\nkey: value\n---\n# Title\n",
		"---\n---\n# Title\n",
		"---\r\nkey: value\r\n---\r\n# Title\r\n",
	}
	for _, input := range cases {
		fm, body, had, style, err := Split([]byte(input))
		require.NoError(t, err)
		assert.Equal(t, input, string(Join(fm, body, had, style)))
	}
}

func TestParse(t *testing.T) {
	doc, err := Parse([]byte("---\ntitle: Hello\ndate: 2024-01-15\ntags:\n  - one\n---\nBody\n"))
	require.NoError(t, err)
	assert.True(t, doc.HasFrontMatter)
	assert.Equal(t, "Hello", doc.Fields["title"])
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), doc.Fields["date"])
	assert.Equal(t, []any{"one"}, doc.Fields["tags"])
	assert.Equal(t, "Body\n", string(doc.Body))

	doc, err = Parse([]byte("plain"))
	require.NoError(t, err)
	assert.False(t, doc.HasFrontMatter)
	assert.Empty(t, doc.Fields)
}

func TestParseYAML_Invalid(t *testing.T) {
	_, err := ParseYAML([]byte(": not yaml"))
	require.Error(t, err)

	fields, err := ParseYAML([]byte("  \n"))
	require.NoError(t, err)
	assert.Empty(t, fields)
}
