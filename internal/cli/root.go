package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wflint-dev/wflint/internal/nav"
)

func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wflint",
		Short: "Lint, format, and navigate workflow-graph YAML",
		Long: `wflint validates workflow-graph YAML documents: per-type required
fields, field shapes, and cross-references between named nodes, including
nested iterator/while subgraphs. It also reformats documents while keeping
multi-line prompt blocks byte-identical, and resolves node definitions and
references across a workspace.`,
		SilenceUsage: true,
	}

	lintCmd := &cobra.Command{
		Use:   "lint <file>...",
		Short: "Validate workflow documents and print diagnostics",
		Args:  cobra.MinimumNArgs(1),
		RunE:  RunLint,
	}
	lintCmd.Flags().Bool("json", false, "Print machine-readable diagnostics")

	fmtCmd := &cobra.Command{
		Use:   "fmt <file>...",
		Short: "Reformat workflow documents, preserving prompt blocks",
		Args:  cobra.MinimumNArgs(1),
		RunE:  RunFmt,
	}
	fmtCmd.Flags().BoolP("write", "w", false, "Write result back to the file instead of stdout")
	fmtCmd.Flags().Int("indent", 0, "Indentation width (default from .wflint.yaml, else 2)")
	fmtCmd.Flags().Int("width", 0, "Maximum line width, -1 for unlimited")

	checkCmd := &cobra.Command{
		Use:   "check [path]",
		Short: "Lint every workflow YAML file under a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE:  RunCheck,
	}
	checkCmd.Flags().Bool("json", false, "Print machine-readable results")
	checkCmd.Flags().StringSlice("exclude", nil, "Extra exclusion globs")

	definitionCmd := &cobra.Command{
		Use:   "definition <name>",
		Short: "Find where a node name is defined across the workspace",
		Args:  cobra.ExactArgs(1),
		RunE:  nav.RunDefinition,
	}
	definitionCmd.Flags().Bool("json", false, "Print machine-readable locations")
	definitionCmd.Flags().Bool("pick", false, "Choose interactively when multiple locations match")
	definitionCmd.Flags().StringSlice("exclude", nil, "Extra exclusion globs")

	referencesCmd := &cobra.Command{
		Use:   "references <name>",
		Short: "Find every next-field reference to a node name",
		Args:  cobra.ExactArgs(1),
		RunE:  nav.RunReferences,
	}
	referencesCmd.Flags().Bool("json", false, "Print machine-readable locations")
	referencesCmd.Flags().Bool("pick", false, "Choose interactively when multiple locations match")
	referencesCmd.Flags().StringSlice("exclude", nil, "Extra exclusion globs")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("wflint %s\n", version)
		},
	}

	rootCmd.AddCommand(
		lintCmd,
		fmtCmd,
		checkCmd,
		definitionCmd,
		referencesCmd,
		versionCmd,
	)

	return rootCmd
}
