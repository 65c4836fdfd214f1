package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/wflint-dev/wflint/internal/cli"
)

var version = "0.1.0-dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.NewRootCommand(version).ExecuteContext(ctx); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
