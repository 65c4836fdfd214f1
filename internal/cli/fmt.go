package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wflint-dev/wflint/internal/config"
	"github.com/wflint-dev/wflint/internal/fileutil"
	"github.com/wflint-dev/wflint/internal/format"
)

func RunFmt(cmd *cobra.Command, args []string) error {
	write, err := cmd.Flags().GetBool("write")
	if err != nil {
		return fmt.Errorf("failed to read --write flag: %w", err)
	}

	rootPath, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}
	cfg, err := config.Load(rootPath)
	if err != nil {
		return err
	}
	opts := format.Options{Indent: cfg.Indent, Width: cfg.Width}
	if cmd.Flags().Changed("indent") {
		if opts.Indent, err = cmd.Flags().GetInt("indent"); err != nil {
			return fmt.Errorf("failed to read --indent flag: %w", err)
		}
	}
	if cmd.Flags().Changed("width") {
		if opts.Width, err = cmd.Flags().GetInt("width"); err != nil {
			return fmt.Errorf("failed to read --width flag: %w", err)
		}
	}
	if opts.Indent <= 0 {
		return fmt.Errorf("--indent must be a positive number of spaces")
	}

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		out, err := format.Format(data, opts)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if !write {
			os.Stdout.Write(out)
			continue
		}
		changed, err := fileutil.WriteIfChanged(path, out)
		if err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		if changed {
			fmt.Printf("formatted %s\n", path)
		}
	}
	return nil
}
