package nav

import (
	"context"
	"os"
	"path/filepath"

	"github.com/wflint-dev/wflint/internal/workspace"
	"github.com/wflint-dev/wflint/internal/yamldoc"
)

// BuildIndex scans the listed workspace files for node definitions and
// references. Files are parsed independently; unreadable or malformed ones
// are recorded in Skipped and the scan continues. Cancellation is honored
// between files.
func BuildIndex(ctx context.Context, root string, files []string, progress workspace.Progress) (*Index, error) {
	idx := &Index{
		Definitions: make(map[string][]Location),
		References:  make(map[string][]Location),
	}
	for i, rel := range files {
		select {
		case <-ctx.Done():
			return idx, ctx.Err()
		default:
		}

		data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
		if err != nil {
			idx.Skipped = append(idx.Skipped, rel)
		} else if doc, err := yamldoc.Parse(data); err != nil {
			idx.Skipped = append(idx.Skipped, rel)
		} else {
			idx.scanNodes(doc.Root.Get("nodes"), rel)
		}
		if progress != nil {
			progress(rel, i+1, len(files))
		}
	}
	return idx, nil
}

// scanNodes collects definitions and references from one nodes mapping,
// descending into nested subgraphs.
func (idx *Index) scanNodes(nodes yamldoc.Value, file string) {
	for _, entry := range nodes.Entries() {
		idx.Definitions[entry.Key] = append(idx.Definitions[entry.Key], Location{
			File:   file,
			Line:   entry.Line,
			Column: entry.Column,
		})
		if !entry.Value.IsMapping() {
			continue
		}
		idx.scanNext(entry.Value.Get("next"), file)

		subNodes := entry.Value.Get("inputs").Get("subgraph").Get("nodes")
		if subNodes.IsMapping() {
			idx.scanNodes(subNodes, file)
		}
	}
}

func (idx *Index) scanNext(next yamldoc.Value, file string) {
	record := func(v yamldoc.Value) {
		if v.Kind() == yamldoc.Scalar && !v.IsBlank() {
			idx.References[v.Text()] = append(idx.References[v.Text()], Location{
				File:   file,
				Line:   v.Line(),
				Column: v.Column(),
			})
		}
	}
	switch next.Kind() {
	case yamldoc.Scalar:
		record(next)
	case yamldoc.Sequence:
		for _, item := range next.Sequence() {
			record(item)
		}
	}
}
