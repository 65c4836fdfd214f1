package nav

import "fmt"

// Location points at a node name occurrence in a workspace file. Line and
// Column are 1-based.
type Location struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// Index maps node names to everywhere they are defined (as a key in a nodes
// mapping) and referenced (in a next field) across the workspace. Names are
// indexed unqualified, the way authors write them in next fields.
type Index struct {
	Definitions map[string][]Location
	References  map[string][]Location
	// Skipped lists files that could not be read or parsed; they are left out
	// of the index rather than failing the whole search.
	Skipped []string
}
