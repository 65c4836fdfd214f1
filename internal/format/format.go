// Package format reflows workflow YAML documents through a parse/re-serialize
// round trip while keeping multi-line prompt blocks byte-identical.
package format

import (
	"github.com/wflint-dev/wflint/internal/yamldoc"
)

// Options controls formatting output.
type Options struct {
	// Indent is the indentation width in spaces. Values <= 0 fall back to 2.
	Indent int
	// Width is the maximum line width, -1 for unlimited. The yaml.v3 emitter
	// manages its own folding, so Width is recorded for CLI compatibility but
	// does not alter emission.
	Width int
}

// DefaultOptions matches the editor defaults: two-space indent, no wrapping.
func DefaultOptions() Options {
	return Options{Indent: 2, Width: -1}
}

// Format re-serializes src with opts. Prompt blocks are extracted before the
// round trip and restored verbatim afterwards; everything else is subject to
// the emitter's normalization. Formatting already-formatted input produces
// identical output.
func Format(src []byte, opts Options) ([]byte, error) {
	guarded, blocks := extractPromptBlocks(string(src))

	doc, err := yamldoc.Parse([]byte(guarded))
	if err != nil {
		return nil, err
	}
	out, err := doc.Serialize(opts.Indent)
	if err != nil {
		return nil, err
	}
	return []byte(restorePromptBlocks(string(out), blocks)), nil
}
