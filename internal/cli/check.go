package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wflint-dev/wflint/internal/config"
	"github.com/wflint-dev/wflint/internal/fileutil"
	"github.com/wflint-dev/wflint/internal/ignore"
	"github.com/wflint-dev/wflint/internal/lint"
	"github.com/wflint-dev/wflint/internal/workspace"
)

func RunCheck(cmd *cobra.Command, args []string) error {
	rootPath := "."
	if len(args) == 1 {
		rootPath = args[0]
	}
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return fmt.Errorf("failed to read --json flag: %w", err)
	}
	excludes, err := cmd.Flags().GetStringSlice("exclude")
	if err != nil {
		return fmt.Errorf("failed to read --exclude flag: %w", err)
	}

	cfg, err := config.Load(rootPath)
	if err != nil {
		return err
	}
	matcher := ignore.NewMatcher(workspace.LoadIgnoreRules(rootPath), append(cfg.Exclude, excludes...)...)
	files, err := workspace.FindFiles(rootPath, matcher)
	if err != nil {
		return fmt.Errorf("failed to enumerate workspace files: %w", err)
	}

	reporter := workspace.NewReporter("linting", asJSON)
	results, err := workspace.LintFiles(cmd.Context(), rootPath, files, reporter.Update)
	reporter.Done(len(results))
	if err != nil {
		return err
	}

	reports := make([]FileReport, 0, len(results))
	var skipped []string
	for _, result := range results {
		if result.Err != nil {
			fmt.Fprintf(os.Stderr, "skipping %s: %v\n", result.Path, result.Err)
			skipped = append(skipped, result.Path)
			continue
		}
		reports = append(reports, FileReport{Path: result.Path, Diagnostics: result.Diagnostics})
	}

	if asJSON {
		if err := fileutil.PrintJSON(map[string]any{
			"root":    rootPath,
			"files":   reports,
			"skipped": skipped,
		}); err != nil {
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
	fmt.Printf("checked %d file(s): %d error(s), %d warning(s)", len(reports), errors, warnings)
	if len(skipped) > 0 {
		fmt.Printf(", %d skipped", len(skipped))
	}
	fmt.Println()
	return lintExitError(reports)
}
