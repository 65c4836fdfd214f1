package lint

import "fmt"

// Severity is the level of a diagnostic.
type Severity int

const (
	// Error means the document violates the workflow-graph contract.
	Error Severity = iota
	// Warning is a hygiene finding; the document is still usable.
	Warning
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Diagnostic is a single lint finding. Line and Column are 1-based source
// positions; 0 means the position is unknown.
type Diagnostic struct {
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
	Line     int      `json:"line"`
	Column   int      `json:"column"`
}

// MarshalText renders Severity as its name in JSON output.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%d:%d: %s: %s", d.Line, d.Column, d.Severity, d.Message)
}

// HasErrors reports whether any diagnostic in diags is Error severity.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == Error {
			return true
		}
	}
	return false
}
