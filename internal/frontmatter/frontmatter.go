// Package frontmatter splits Markdown documents into YAML front matter and body,
// and writes front matter back with a fixed key order.
package frontmatter

import (
	"bytes"
	"errors"

	"gopkg.in/yaml.v3"
)

// ErrMissingClosingDelimiter indicates the document started with a front
// matter delimiter but never closed it.
var ErrMissingClosingDelimiter = errors.New("front matter start delimiter found but closing delimiter is missing")

var bom = []byte{0xEF, 0xBB, 0xBF}

// Style records the newline convention of a document.
type Style struct {
	Newline            string
	HasTrailingNewline bool
}

// Document is a parsed Markdown file.
type Document struct {
	Fields         map[string]any
	Body           []byte
	HasFrontMatter bool
	Style          Style
}

// Parse splits content and decodes its front matter.
// Documents without front matter yield empty Fields and the whole input as Body.
func Parse(content []byte) (Document, error) {
	raw, body, had, style, err := Split(content)
	if err != nil {
		return Document{}, err
	}
	fields, err := ParseYAML(raw)
	if err != nil {
		return Document{}, err
	}
	return Document{Fields: fields, Body: body, HasFrontMatter: had, Style: style}, nil
}

// Split separates `---` delimited front matter from the body.
// A leading UTF-8 byte order mark is ignored.
func Split(content []byte) (frontmatter []byte, body []byte, had bool, style Style, err error) {
	content = bytes.TrimPrefix(content, bom)
	style = detectStyle(content)

	nl := style.Newline
	open := []byte("---" + nl)
	if !bytes.HasPrefix(content, open) {
		return nil, content, false, style, nil
	}

	start := len(open)
	if bytes.HasPrefix(content[start:], open) {
		return []byte{}, content[start+len(open):], true, style, nil
	}

	closeSeq := []byte(nl + "---")
	idx := bytes.Index(content[start:], closeSeq)
	for idx >= 0 {
		end := start + idx + len(closeSeq)
		// The closing line may be followed by a newline or end the file.
		if end == len(content) {
			return content[start : start+idx+len(nl)], []byte{}, true, style, nil
		}
		if bytes.HasPrefix(content[end:], []byte(nl)) {
			return content[start : start+idx+len(nl)], content[end+len(nl):], true, style, nil
		}
		next := bytes.Index(content[end:], closeSeq)
		if next < 0 {
			break
		}
		idx = end - start + next
	}
	return nil, nil, false, style, ErrMissingClosingDelimiter
}

// Join reassembles a document from raw front matter and body.
// If had is false, Join returns body unchanged.
func Join(frontmatter []byte, body []byte, had bool, style Style) []byte {
	if !had {
		return body
	}
	nl := style.Newline
	if nl == "" {
		nl = "\n"
	}
	delim := []byte("---" + nl)

	out := make([]byte, 0, 2*len(delim)+len(frontmatter)+len(body))
	out = append(out, delim...)
	out = append(out, frontmatter...)
	out = append(out, delim...)
	out = append(out, body...)
	return out
}

// ParseYAML decodes raw front matter (without delimiters) into a map.
func ParseYAML(frontmatter []byte) (map[string]any, error) {
	fields := map[string]any{}
	if len(bytes.TrimSpace(frontmatter)) == 0 {
		return fields, nil
	}
	if err := yaml.Unmarshal(frontmatter, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return fields, nil
}

func detectStyle(content []byte) Style {
	newline := "\n"
	if i := bytes.IndexByte(content, '\n'); i > 0 && content[i-1] == '\r' {
		newline = "\r\n"
	}
	return Style{
		Newline:            newline,
		HasTrailingNewline: len(content) > 0 && content[len(content)-1] == '\n',
	}
}
