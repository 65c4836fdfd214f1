package nav

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wflint-dev/wflint/internal/config"
	"github.com/wflint-dev/wflint/internal/fileutil"
	"github.com/wflint-dev/wflint/internal/ignore"
	"github.com/wflint-dev/wflint/internal/tui"
	"github.com/wflint-dev/wflint/internal/workspace"
)

// RunDefinition answers "where is node <name> defined" across the workspace.
func RunDefinition(cmd *cobra.Command, args []string) error {
	return runLocationQuery(cmd, args[0], "definition", func(idx *Index, name string) []Location {
		return idx.Definitions[name]
	})
}

// RunReferences answers "where is node <name> referenced from a next field".
func RunReferences(cmd *cobra.Command, args []string) error {
	return runLocationQuery(cmd, args[0], "references", func(idx *Index, name string) []Location {
		return idx.References[name]
	})
}

func runLocationQuery(cmd *cobra.Command, name, kind string, lookup func(*Index, string) []Location) error {
	rootPath, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return fmt.Errorf("failed to read --json flag: %w", err)
	}
	pick, err := cmd.Flags().GetBool("pick")
	if err != nil {
		return fmt.Errorf("failed to read --pick flag: %w", err)
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

	reporter := workspace.NewReporter("scanning", asJSON)
	idx, err := BuildIndex(cmd.Context(), rootPath, files, reporter.Update)
	reporter.Done(len(files))
	if err != nil {
		return err
	}
	for _, skipped := range idx.Skipped {
		fmt.Fprintf(os.Stderr, "skipping %s: unreadable or malformed\n", skipped)
	}

	name = strings.TrimSpace(name)
	locations := lookup(idx, name)
	if len(locations) == 0 {
		return fmt.Errorf("no %s found for node %q", kind, name)
	}

	if asJSON {
		return fileutil.PrintJSON(map[string]any{
			"query":     name,
			"kind":      kind,
			"locations": locations,
		})
	}

	if len(locations) == 1 {
		fmt.Println(locations[0])
		return nil
	}

	if pick {
		items := make([]tui.Item, 0, len(locations))
		for _, loc := range locations {
			items = append(items, tui.Item{Label: loc.String(), Detail: loc.File})
		}
		chosen, ok, err := tui.Pick(fmt.Sprintf("%s for %q", kind, name), items)
		if err != nil {
			return err
		}
		if ok {
			fmt.Println(chosen.Label)
		}
		return nil
	}

	fmt.Printf("%s for %q (%d)\n", kind, name, len(locations))
	for _, loc := range locations {
		fmt.Printf("- %s\n", loc)
	}
	return nil
}
