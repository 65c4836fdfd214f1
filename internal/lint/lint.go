// Package lint validates workflow-graph YAML documents: a top-level nodes
// mapping of typed nodes, per-type required-field contracts, field shapes,
// and cross-reference integrity for next edges, including nested subgraphs.
package lint

import (
	"github.com/wflint-dev/wflint/internal/yamldoc"
)

// Lint validates one document and returns its complete diagnostic list. It is
// a pure function of the source text: callers own diagnostic lifecycle and
// replace any previous list wholesale.
//
// Malformed YAML yields exactly one Error at the document start and no
// further checks run. A missing or non-mapping nodes section likewise yields
// a single document-level Error.
func Lint(src []byte) []Diagnostic {
	doc, err := yamldoc.Parse(src)
	if err != nil {
		return []Diagnostic{{
			Message:  err.Error(),
			Severity: Error,
			Line:     1,
			Column:   1,
		}}
	}

	nodes := doc.Root.Get("nodes")
	if !nodes.IsMapping() {
		return []Diagnostic{{
			Message:  "Missing or invalid 'nodes' section",
			Severity: Error,
			Line:     1,
			Column:   1,
		}}
	}

	l := &linter{doc: doc, defined: make(map[string]bool)}
	l.walkNodes(nodes, "", []string{""})
	l.resolveReferences()
	return l.diags
}
