package yamldoc

import (
	"errors"
	"strings"
	"testing"
)

func TestParseNormalizesKinds(t *testing.T) {
	doc := mustParse(t, `
name: demo
items:
  - one
  - two
meta:
  count: 3
`)
	root := doc.Root
	if !root.IsMapping() {
		t.Fatalf("expected mapping root, got %s", root.Kind())
	}
	if got := root.Get("name").Kind(); got != Scalar {
		t.Fatalf("expected scalar, got %s", got)
	}
	if got := root.Get("items").Kind(); got != Sequence {
		t.Fatalf("expected sequence, got %s", got)
	}
	if got := root.Get("meta").Kind(); got != Mapping {
		t.Fatalf("expected mapping, got %s", got)
	}
	if got := root.Get("nope").Kind(); got != Absent {
		t.Fatalf("expected absent for missing key, got %s", got)
	}
}

func TestParseRejectsMalformedInput(t *testing.T) {
	_, err := Parse([]byte("a: [1, 2"))
	if err == nil {
		t.Fatalf("expected parse error")
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
}

func TestGetOnNonMappingIsAbsent(t *testing.T) {
	doc := mustParse(t, "just a scalar")
	if got := doc.Root.Get("anything").Kind(); got != Absent {
		t.Fatalf("expected absent, got %s", got)
	}
}

func TestEntriesPreserveDocumentOrder(t *testing.T) {
	doc := mustParse(t, "z: 1\na: 2\nm: 3\n")
	entries := doc.Root.Entries()
	want := []string{"z", "a", "m"}
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(entries))
	}
	for i, entry := range entries {
		if entry.Key != want[i] {
			t.Fatalf("entry %d: expected key %q, got %q", i, want[i], entry.Key)
		}
	}
	if entries[1].Line != 2 {
		t.Fatalf("expected key 'a' on line 2, got %d", entries[1].Line)
	}
}

func TestIsBlank(t *testing.T) {
	doc := mustParse(t, `
absent_not_here: x
null_value: null
empty: ""
spaces: "   "
filled: text
empty_map: {}
empty_seq: []
`)
	root := doc.Root
	cases := []struct {
		key   string
		blank bool
	}{
		{key: "missing", blank: true},
		{key: "null_value", blank: true},
		{key: "empty", blank: true},
		{key: "spaces", blank: true},
		{key: "filled", blank: false},
		{key: "empty_map", blank: false},
		{key: "empty_seq", blank: false},
	}
	for _, tc := range cases {
		if got := root.Get(tc.key).IsBlank(); got != tc.blank {
			t.Fatalf("key %s: expected blank=%v, got %v", tc.key, tc.blank, got)
		}
	}
}

func TestAliasNodesResolveTransparently(t *testing.T) {
	doc := mustParse(t, `
base: &shared
  kind: common
copy: *shared
`)
	copied := doc.Root.Get("copy")
	if !copied.IsMapping() {
		t.Fatalf("expected alias to resolve to a mapping, got %s", copied.Kind())
	}
	if got := copied.Get("kind").Text(); got != "common" {
		t.Fatalf("expected resolved alias content, got %q", got)
	}
}

func TestSerializeHonorsIndent(t *testing.T) {
	doc := mustParse(t, "outer:\n  inner: value\n")
	out, err := doc.Serialize(4)
	if err != nil {
		t.Fatalf("serialize failed: %v", err)
	}
	if !strings.Contains(string(out), "    inner: value") {
		t.Fatalf("expected 4-space indent, got:\n%s", out)
	}
}

func TestSerializeEmptyDocument(t *testing.T) {
	doc := mustParse(t, "")
	out, err := doc.Serialize(2)
	if err != nil {
		t.Fatalf("serialize failed: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty output, got %q", out)
	}
}

func TestLineReturnsRawSource(t *testing.T) {
	doc := mustParse(t, "a: 1\nb: 2\n")
	if got := doc.Line(2); got != "b: 2" {
		t.Fatalf("expected raw line, got %q", got)
	}
	if got := doc.Line(99); got != "" {
		t.Fatalf("expected empty string out of range, got %q", got)
	}
}

func mustParse(t *testing.T, src string) *Document {
	t.Helper()
	doc, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return doc
}
