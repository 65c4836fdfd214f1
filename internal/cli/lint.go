package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wflint-dev/wflint/internal/fileutil"
	"github.com/wflint-dev/wflint/internal/lint"
)

// FileReport pairs a document path with its complete diagnostic list.
type FileReport struct {
	Path        string            `json:"path"`
	Diagnostics []lint.Diagnostic `json:"diagnostics"`
}

func RunLint(cmd *cobra.Command, args []string) error {
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return fmt.Errorf("failed to read --json flag: %w", err)
	}

	reports := make([]FileReport, 0, len(args))
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		reports = append(reports, FileReport{Path: path, Diagnostics: lint.Lint(data)})
	}

	if asJSON {
		if err := fileutil.PrintJSON(map[string]any{"files": reports}); err != nil {
			return err
		}
		return lintExitError(reports)
	}

	errors, warnings := 0, 0
	for _, report := range reports {
		for _, d := range report.Diagnostics {
			fmt.Printf("%s:%s\n", report.Path, d)
			if d.Severity == lint.Error {
				errors++
			} else {
				warnings++
			}
		}
	}
	if errors == 0 && warnings == 0 {
		fmt.Printf("no problems found in %d file(s)\n", len(reports))
	} else {
		fmt.Printf("%d error(s), %d warning(s) in %d file(s)\n", errors, warnings, len(reports))
	}
	return lintExitError(reports)
}

// diagnosticsError marks a command failure caused by Error-severity findings
// in the checked documents, as opposed to an operational failure. ExitCode
// maps the two to distinct exit statuses.
type diagnosticsError struct {
	count int
}

func (e *diagnosticsError) Error() string {
	return fmt.Sprintf("found %d error(s)", e.count)
}

// lintExitError converts Error-severity findings into a non-zero exit.
func lintExitError(reports []FileReport) error {
	count := 0
	for _, report := range reports {
		for _, d := range report.Diagnostics {
			if d.Severity == lint.Error {
				count++
			}
		}
	}
	if count > 0 {
		return &diagnosticsError{count: count}
	}
	return nil
}

// ExitCode maps a command error to the process exit status: 0 for success,
// 1 when documents carry Error-severity diagnostics, 2 for operational
// failures such as bad flags or unreadable arguments.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var de *diagnosticsError
	if errors.As(err, &de) {
		return 1
	}
	return 2
}
