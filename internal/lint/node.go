package lint

import (
	"fmt"
	"strings"

	"github.com/wflint-dev/wflint/internal/yamldoc"
)

// validateNode applies every per-node check in declared order, accumulating
// diagnostics without short-circuiting. keyLine/keyCol locate the node's map
// key in the source.
func (l *linter) validateNode(name string, node yamldoc.Value, keyLine, keyCol int) {
	typ := strings.ToLower(strings.TrimSpace(node.Get("type").Text()))

	contract, known := requiredFields[typ]
	if !known {
		l.warnAt(keyLine, keyCol, "Node %q has unknown type %q", name, typ)
	} else {
		for _, field := range contract {
			if node.Get(field).IsBlank() {
				l.errorAt(keyLine, keyCol,
					"Node %q of type %q is missing required field: %s", name, typ, field)
			}
		}
		l.validateTypeSpecific(name, typ, node, keyLine, keyCol)
	}

	l.checkOutputsField(name, node)
	l.checkNextField(name, node)
	l.sweepEmptyValues(name, node)
	l.checkIndentation(keyLine, keyCol)
}

func (l *linter) validateTypeSpecific(name, typ string, node yamldoc.Value, keyLine, keyCol int) {
	switch typ {
	case "agent":
		inputs := node.Get("inputs")
		if inputs.IsBlank() {
			return // already reported as a missing required field
		}
		agentPath := inputs.Get("agent_path")
		if agentPath.IsBlank() {
			l.errorAt(keyLine, keyCol,
				"Node %q of type %q is missing required field: inputs.agent_path", name, typ)
		} else if !initKwargsExempt[agentPath.Text()] && inputs.Get("init_kwargs").IsBlank() {
			l.errorAt(keyLine, keyCol,
				"Node %q of type %q is missing required field: inputs.init_kwargs", name, typ)
		}
		if inputs.Get("call_kwargs").IsBlank() && inputs.Get("call_args").IsBlank() {
			l.errorAt(keyLine, keyCol,
				"Node %q of type %q must define inputs.call_kwargs or inputs.call_args", name, typ)
		}

	case "iterator", "while":
		inputs := node.Get("inputs")
		if inputs.IsBlank() {
			return
		}
		if typ == "iterator" && inputs.Get("iterable").IsBlank() {
			l.errorAt(keyLine, keyCol,
				"Node %q of type %q is missing required field: inputs.iterable", name, typ)
		}
		subgraph := inputs.Get("subgraph")
		if subgraph.IsAbsent() {
			l.errorAt(keyLine, keyCol,
				"Node %q of type %q is missing required field: inputs.subgraph", name, typ)
		} else if subgraph.Get("nodes").IsAbsent() {
			l.errorAt(keyLine, keyCol,
				"Node %q of type %q is missing required field: inputs.subgraph.nodes", name, typ)
		}

	case "ifelse":
		conditions := node.Get("conditions")
		if conditions.IsBlank() {
			return
		}
		if conditions.Kind() != yamldoc.Sequence {
			l.errorAt(conditions.Line(), conditions.Column(),
				"Node %q: conditions must be a sequence", name)
			return
		}
		hasIf := false
		for _, branch := range conditions.Sequence() {
			if !branch.Get("if").IsAbsent() {
				hasIf = true
				break
			}
		}
		if !hasIf {
			l.errorAt(conditions.Line(), conditions.Column(),
				"Node %q: conditions has no \"if\" branch", name)
		}
	}
}

// checkOutputsField validates the shape of outputs: a sequence or a mapping,
// never null, never empty, never padded with blank items.
func (l *linter) checkOutputsField(name string, node yamldoc.Value) {
	v := node.Get("outputs")
	switch v.Kind() {
	case yamldoc.Absent:
	case yamldoc.Sequence:
		l.checkSequenceItems(name, "outputs", v)
	case yamldoc.Mapping:
	case yamldoc.Scalar:
		if v.IsNull() {
			l.errorAt(v.Line(), v.Column(), "Node %q: outputs field is empty", name)
		} else {
			l.errorAt(v.Line(), v.Column(), "Node %q: outputs must be a sequence or mapping", name)
		}
	}
}

// checkNextField validates the shape of next: a sequence of names or a single
// name string.
func (l *linter) checkNextField(name string, node yamldoc.Value) {
	v := node.Get("next")
	switch v.Kind() {
	case yamldoc.Absent:
	case yamldoc.Sequence:
		l.checkSequenceItems(name, "next", v)
	case yamldoc.Scalar:
		if v.IsBlank() {
			l.errorAt(v.Line(), v.Column(), "Node %q: next field is empty", name)
		}
	case yamldoc.Mapping:
		l.errorAt(v.Line(), v.Column(), "Node %q: next must be a sequence or a string", name)
	}
}

func (l *linter) checkSequenceItems(name, field string, v yamldoc.Value) {
	items := v.Sequence()
	if len(items) == 0 {
		l.errorAt(v.Line(), v.Column(), "Node %q: %s field is empty", name, field)
		return
	}
	for _, item := range items {
		if item.Kind() == yamldoc.Mapping || item.Kind() == yamldoc.Sequence {
			l.errorAt(v.Line(), v.Column(), "Node %q: %s must be a sequence of names", name, field)
			return
		}
		if item.IsBlank() || item.Text() == "-" {
			l.errorAt(v.Line(), v.Column(), "Node %q: %s field contains empty items", name, field)
			return
		}
	}
}

// sweepEmptyValues flags every direct key whose value is null or an empty
// string. This is a hygiene net for author typos, independent of the
// required-field contract.
func (l *linter) sweepEmptyValues(name string, node yamldoc.Value) {
	for _, entry := range node.Entries() {
		if entry.Value.IsBlank() {
			l.warnAt(entry.Line, entry.Column, "Node %q: value for %q is empty", name, entry.Key)
		}
	}
}

// checkIndentation inspects the raw source line holding the node's key and
// warns when its leading whitespace mixes tabs and spaces.
func (l *linter) checkIndentation(keyLine, keyCol int) {
	line := l.doc.Line(keyLine)
	indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
	if strings.ContainsRune(indent, '\t') && strings.ContainsRune(indent, ' ') {
		l.warnAt(keyLine, keyCol, "Mixed tab and space indentation")
	}
}

func (l *linter) errorAt(line, col int, format string, args ...any) {
	l.diags = append(l.diags, Diagnostic{
		Message:  fmt.Sprintf(format, args...),
		Severity: Error,
		Line:     line,
		Column:   col,
	})
}

func (l *linter) warnAt(line, col int, format string, args ...any) {
	l.diags = append(l.diags, Diagnostic{
		Message:  fmt.Sprintf(format, args...),
		Severity: Warning,
		Line:     line,
		Column:   col,
	})
}
