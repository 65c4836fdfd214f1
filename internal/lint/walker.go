package lint

import (
	"strings"

	"github.com/wflint-dev/wflint/internal/yamldoc"
)

// reference is one control-flow edge collected from a next field, together
// with the scope chain it was found in. Scope "" is the top-level nodes
// mapping; nested scopes are qualified container names ("loop", "loop.inner").
type reference struct {
	name   string
	scopes []string
	line   int
	column int
}

type linter struct {
	doc     *yamldoc.Document
	diags   []Diagnostic
	defined map[string]bool
	refs    []reference
}

// walkNodes traverses one nodes mapping in document order, validating each
// node and descending into iterator/while subgraphs. Nested defined-names are
// qualified by the owning container's name so identical leaf names in sibling
// subgraphs do not collide.
func (l *linter) walkNodes(nodes yamldoc.Value, prefix string, scopes []string) {
	for _, entry := range nodes.Entries() {
		name := entry.Key
		qualified := qualify(prefix, name)
		// A structurally broken node still claims its name, so reference
		// resolution is not polluted by an unrelated defect.
		l.defined[qualified] = true

		if !entry.Value.IsMapping() {
			l.errorAt(entry.Line, entry.Column, "Node %q: invalid structure", name)
			continue
		}

		l.validateNode(name, entry.Value, entry.Line, entry.Column)
		l.collectReferences(entry.Value, scopes)

		typ := strings.ToLower(strings.TrimSpace(entry.Value.Get("type").Text()))
		if !containerTypes[typ] {
			continue
		}
		subNodes := entry.Value.Get("inputs").Get("subgraph").Get("nodes")
		switch {
		case subNodes.IsMapping():
			childScopes := append(append([]string(nil), scopes...), qualified)
			l.walkNodes(subNodes, qualified, childScopes)
		case !subNodes.IsAbsent():
			// Absent subgraph pieces are reported by the node validator with
			// their dotted path; only a present-but-malformed shape lands here.
			l.errorAt(entry.Line, entry.Column,
				"Node %q: invalid or missing subgraph.nodes structure", name)
		}
	}
}

// collectReferences records every node name the next field points at. A
// reference remembers its enclosing scope chain so resolution can search the
// subgraph it occurred in and every enclosing graph.
func (l *linter) collectReferences(node yamldoc.Value, scopes []string) {
	next := node.Get("next")
	switch next.Kind() {
	case yamldoc.Scalar:
		if !next.IsBlank() {
			l.addReference(next, scopes)
		}
	case yamldoc.Sequence:
		for _, item := range next.Sequence() {
			if item.Kind() == yamldoc.Scalar && !item.IsBlank() {
				l.addReference(item, scopes)
			}
		}
	}
}

func (l *linter) addReference(v yamldoc.Value, scopes []string) {
	l.refs = append(l.refs, reference{
		name:   strings.TrimSpace(v.Text()),
		scopes: scopes,
		line:   v.Line(),
		column: v.Column(),
	})
}

// resolveReferences reports every collected reference that no defined name
// satisfies. Resolution walks the reference's scope chain from innermost to
// top level. Duplicate references to the same missing name each get their own
// diagnostic.
func (l *linter) resolveReferences() {
	for _, ref := range l.refs {
		if !l.resolved(ref) {
			l.errorAt(ref.line, ref.column, "Unresolved node reference: %s", ref.name)
		}
	}
}

func (l *linter) resolved(ref reference) bool {
	for i := len(ref.scopes) - 1; i >= 0; i-- {
		if l.defined[qualify(ref.scopes[i], ref.name)] {
			return true
		}
	}
	return false
}

func qualify(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
