// Package workspace enumerates and lints workflow YAML files under a root
// directory. Every file is read and linted in isolation; cancellation is
// checked between files, never mid-file.
package workspace

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/wflint-dev/wflint/internal/ignore"
	"github.com/wflint-dev/wflint/internal/lint"
)

// IgnoreFile is the per-workspace exclusion rule file.
const IgnoreFile = ".wflintignore"

// Progress is invoked once per processed file.
type Progress func(path string, done, total int)

// FileResult is the outcome of linting one workspace file. Err is set when
// the file could not be read; such files are skipped, not fatal.
type FileResult struct {
	Path        string
	Diagnostics []lint.Diagnostic
	Err         error
}

// LoadIgnoreRules reads .wflintignore at root. A missing file means no user
// rules.
func LoadIgnoreRules(root string) []string {
	data, err := os.ReadFile(filepath.Join(root, IgnoreFile))
	if err != nil {
		return nil
	}
	return strings.Split(string(data), "\n")
}

// FindFiles walks root and returns the relative paths of every YAML file not
// excluded by the matcher, in lexical walk order. An unreadable root is an
// error; unreadable entries below it are logged to stderr and skipped so one
// bad directory cannot abort a workspace scan.
func FindFiles(root string, m *ignore.Matcher) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			fmt.Fprintf(os.Stderr, "skipping %s: %v\n", path, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			if rel != "." && m.Skip(rel, true) {
				return filepath.SkipDir
			}
			return nil
		}
		if !isYAMLFile(d.Name()) || m.Skip(rel, false) {
			return nil
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// LintFiles lints every listed file, reporting progress proportional to files
// processed. A context cancellation stops the pass between files and returns
// the results gathered so far along with ctx.Err().
func LintFiles(ctx context.Context, root string, files []string, progress Progress) ([]FileResult, error) {
	results := make([]FileResult, 0, len(files))
	for i, rel := range files {
		select {
		case <-ctx.Done():
			return results, ctx.Err()
		default:
		}

		data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
		if err != nil {
			results = append(results, FileResult{Path: rel, Err: err})
		} else {
			results = append(results, FileResult{Path: rel, Diagnostics: lint.Lint(data)})
		}
		if progress != nil {
			progress(rel, i+1, len(files))
		}
	}
	return results, nil
}

func isYAMLFile(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml")
}
