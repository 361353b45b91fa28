package frontmatter

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Field is one front matter entry. Order of a []Field is preserved on output.
type Field struct {
	Key   string
	Value any
}

// Options controls how values are written.
type Options struct {
	// Newline defaults to "\n".
	Newline string
	// QuoteStrings writes every string scalar single-quoted.
	QuoteStrings bool
	// FlowSequences writes lists inline as [a, b].
	FlowSequences bool
}

// SerializeOrdered encodes fields as YAML (without delimiters) in the given order.
// Fields with a nil value are skipped.
func SerializeOrdered(fields []Field, opts Options) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range fields {
		if f.Value == nil {
			continue
		}
		val, err := nodeFromAny(f.Value, opts)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Key, err)
		}
		root.Content = append(root.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Key}, val)
	}
	if len(root.Content) == 0 {
		return []byte{}, nil
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		_ = enc.Close()
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}

	out := buf.Bytes()
	if opts.Newline != "" && opts.Newline != "\n" {
		out = bytes.ReplaceAll(out, []byte("\n"), []byte(opts.Newline))
	}
	return out, nil
}

func nodeFromAny(v any, opts Options) (*yaml.Node, error) {
	switch vv := v.(type) {
	case string:
		n := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: vv}
		if opts.QuoteStrings {
			n.Style = yaml.SingleQuotedStyle
		}
		return n, nil
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(vv)}, nil
	case int:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(vv)}, nil
	case int64:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(vv, 10)}, nil
	case float64:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: strconv.FormatFloat(vv, 'g', -1, 64)}, nil
	case time.Time:
		return nodeFromAny(vv.Format(time.DateOnly), opts)
	case []string:
		items := make([]any, len(vv))
		for i, s := range vv {
			items[i] = s
		}
		return nodeFromAny(items, opts)
	case []any:
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		if opts.FlowSequences {
			seq.Style = yaml.FlowStyle
		}
		for _, item := range vv {
			n, err := nodeFromAny(item, opts)
			if err != nil {
				return nil, err
			}
			seq.Content = append(seq.Content, n)
		}
		return seq, nil
	default:
		var n yaml.Node
		if err := n.Encode(v); err != nil {
			return nil, err
		}
		return &n, nil
	}
}
