// Package yamldoc normalizes parsed YAML trees into a small typed view so that
// callers never branch on the underlying yaml.v3 node representation. Every
// parse result is one of four shapes: mapping, sequence, scalar, or absent.
package yamldoc

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind classifies a normalized value.
type Kind int

const (
	Absent Kind = iota
	Scalar
	Mapping
	Sequence
)

func (k Kind) String() string {
	switch k {
	case Absent:
		return "absent"
	case Scalar:
		return "scalar"
	case Mapping:
		return "mapping"
	case Sequence:
		return "sequence"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is one normalized node of a parsed document. The zero Value is Absent.
type Value struct {
	kind Kind
	node *yaml.Node
}

// Entry is one key/value pair of a mapping, in document order.
type Entry struct {
	Key    string
	Value  Value
	Line   int // line of the key, 1-based
	Column int // column of the key, 1-based
}

// Document is a parsed YAML document plus the raw source it came from.
type Document struct {
	Root   Value
	Source []byte

	doc *yaml.Node
}

// ParseError reports malformed YAML input.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return fmt.Sprintf("malformed YAML: %v", e.Err) }

func (e *ParseError) Unwrap() error { return e.Err }

// Parse decodes src into a normalized document. Mapping order is preserved and
// every value carries its source position.
func Parse(src []byte) (*Document, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return nil, &ParseError{Err: err}
	}
	root := Value{}
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		root = wrap(doc.Content[0])
	}
	return &Document{Root: root, Source: src, doc: &doc}, nil
}

// Serialize re-emits the document with the given indent width. Comments and
// mapping order survive the round trip. A width <= 0 leaves line folding to
// the emitter.
func (d *Document) Serialize(indent int) ([]byte, error) {
	if d.doc == nil || d.doc.Kind != yaml.DocumentNode || len(d.doc.Content) == 0 {
		return nil, nil
	}
	if indent <= 0 {
		indent = 2
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(indent)
	if err := enc.Encode(d.doc.Content[0]); err != nil {
		return nil, fmt.Errorf("yaml serialize failed: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("yaml serialize failed: %w", err)
	}
	return buf.Bytes(), nil
}

// Line returns the raw source line (1-based) the document was parsed from, or
// "" when out of range.
func (d *Document) Line(n int) string {
	if n < 1 {
		return ""
	}
	lines := strings.Split(string(d.Source), "\n")
	if n > len(lines) {
		return ""
	}
	return lines[n-1]
}

func wrap(n *yaml.Node) Value {
	if n == nil {
		return Value{}
	}
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	switch n.Kind {
	case yaml.MappingNode:
		return Value{kind: Mapping, node: n}
	case yaml.SequenceNode:
		return Value{kind: Sequence, node: n}
	case yaml.ScalarNode:
		return Value{kind: Scalar, node: n}
	case yaml.DocumentNode:
		if len(n.Content) > 0 {
			return wrap(n.Content[0])
		}
	}
	return Value{}
}

// Kind reports the shape of the value.
func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether the value is missing entirely.
func (v Value) IsAbsent() bool { return v.kind == Absent }

// IsMapping reports whether the value is a mapping.
func (v Value) IsMapping() bool { return v.kind == Mapping }

// IsNull reports whether the value is an explicit YAML null.
func (v Value) IsNull() bool {
	return v.kind == Scalar && v.node.Tag == "!!null"
}

// Get looks up key in a mapping. Missing keys and non-mapping receivers both
// return an Absent value; absence is a normal outcome, not an error.
func (v Value) Get(key string) Value {
	if v.kind != Mapping {
		return Value{}
	}
	for i := 0; i+1 < len(v.node.Content); i += 2 {
		if v.node.Content[i].Value == key {
			return wrap(v.node.Content[i+1])
		}
	}
	return Value{}
}

// Entries returns the mapping's key/value pairs in document order, or nil for
// non-mappings.
func (v Value) Entries() []Entry {
	if v.kind != Mapping {
		return nil
	}
	entries := make([]Entry, 0, len(v.node.Content)/2)
	for i := 0; i+1 < len(v.node.Content); i += 2 {
		key := v.node.Content[i]
		entries = append(entries, Entry{
			Key:    key.Value,
			Value:  wrap(v.node.Content[i+1]),
			Line:   key.Line,
			Column: key.Column,
		})
	}
	return entries
}

// Sequence returns the ordered items of a sequence, or nil for non-sequences.
func (v Value) Sequence() []Value {
	if v.kind != Sequence {
		return nil
	}
	items := make([]Value, 0, len(v.node.Content))
	for _, item := range v.node.Content {
		items = append(items, wrap(item))
	}
	return items
}

// Text returns the scalar's string form; non-scalars return "".
func (v Value) Text() string {
	if v.kind != Scalar || v.node.Tag == "!!null" {
		return ""
	}
	return v.node.Value
}

// IsBlank reports whether the value reads as empty: absent, null, or a scalar
// that is empty or whitespace-only. Mappings and sequences are never blank,
// even when they have no members.
func (v Value) IsBlank() bool {
	switch v.kind {
	case Absent:
		return true
	case Scalar:
		return v.node.Tag == "!!null" || strings.TrimSpace(v.node.Value) == ""
	default:
		return false
	}
}

// Line returns the value's 1-based source line, or 0 when absent.
func (v Value) Line() int {
	if v.node == nil {
		return 0
	}
	return v.node.Line
}

// Column returns the value's 1-based source column, or 0 when absent.
func (v Value) Column() int {
	if v.node == nil {
		return 0
	}
	return v.node.Column
}
