package markdown

import (
	"bytes"
	"strings"
)

// ImageRef is an inline image found in Markdown source.
type ImageRef struct {
	Alt         string
	Destination string
	// Start and End delimit Destination in the source.
	Start, End int
}

// FindImages returns inline images `![alt](dest "title")` outside code.
// Fenced blocks, indented code and inline code spans are skipped.
func FindImages(body []byte) []ImageRef {
	var out []ImageRef
	inFence := false
	fence := ""
	offset := 0

	for _, line := range bytes.SplitAfter(body, []byte("\n")) {
		lineStart := offset
		offset += len(line)

		s := string(line)
		trimmed := strings.TrimSpace(s)
		if marker := fenceMarker(trimmed); marker != "" {
			switch {
			case !inFence:
				inFence, fence = true, marker
			case marker == fence:
				inFence, fence = false, ""
			}
			continue
		}
		if inFence || strings.HasPrefix(s, "    ") || strings.HasPrefix(s, "\t") {
			continue
		}

		masked := maskInlineCode(s)
		for _, ref := range scanImages(masked) {
			ref.Alt = s[ref.altStart:ref.altEnd]
			out = append(out, ImageRef{
				Alt:         ref.Alt,
				Destination: s[ref.Start:ref.End],
				Start:       lineStart + ref.Start,
				End:         lineStart + ref.End,
			})
		}
	}
	return out
}

// RewriteImages replaces image destinations for which rewrite returns true.
func RewriteImages(body []byte, rewrite func(dest string) (string, bool)) ([]byte, error) {
	var edits []Edit
	for _, img := range FindImages(body) {
		if next, ok := rewrite(img.Destination); ok {
			edits = append(edits, Edit{Start: img.Start, End: img.End, Replacement: []byte(next)})
		}
	}
	return ApplyEdits(body, edits)
}

type lineImage struct {
	ImageRef
	altStart, altEnd int
}

func scanImages(line string) []lineImage {
	var out []lineImage
	for i := 0; i < len(line); {
		open := strings.Index(line[i:], "![")
		if open < 0 {
			break
		}
		altStart := i + open + 2
		closeAlt := strings.Index(line[altStart:], "](")
		if closeAlt < 0 {
			break
		}
		altEnd := altStart + closeAlt
		destStart := altEnd + 2
		closeParen := strings.IndexByte(line[destStart:], ')')
		if closeParen < 0 {
			break
		}
		inner := line[destStart : destStart+closeParen]
		lead := len(inner) - len(strings.TrimLeft(inner, " "))
		dest := strings.TrimSpace(inner)
		if sp := strings.IndexAny(dest, " \t"); sp >= 0 {
			dest = dest[:sp]
		}
		if dest != "" {
			start := destStart + lead
			out = append(out, lineImage{
				ImageRef: ImageRef{Start: start, End: start + len(dest)},
				altStart: altStart,
				altEnd:   altEnd,
			})
		}
		i = destStart + closeParen + 1
	}
	return out
}

func fenceMarker(trimmed string) string {
	for _, m := range []string{"```", "~~~"} {
		if strings.HasPrefix(trimmed, m) {
			return m
		}
	}
	return ""
}

// maskInlineCode blanks code spans so their contents are never matched.
// The result has the same length as s.
func maskInlineCode(s string) string {
	if !strings.Contains(s, "`") {
		return s
	}
	b := []byte(s)
	for i := 0; i < len(b); {
		if b[i] != '`' {
			i++
			continue
		}
		run := 1
		for i+run < len(b) && b[i+run] == '`' {
			run++
		}
		marker := strings.Repeat("`", run)
		closeRel := strings.Index(string(b[i+run:]), marker)
		if closeRel < 0 {
			i += run
			continue
		}
		end := i + run + closeRel + run
		for j := i; j < end; j++ {
			b[j] = ' '
		}
		i = end
	}
	return string(b)
}
