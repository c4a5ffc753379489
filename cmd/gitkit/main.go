package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"stackit.dev/gitkit/internal/cli"
	"stackit.dev/gitkit/internal/output"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rootCmd := cli.NewRootCmd(version, commit, date)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		output.NewSplog().Error("%v", err)
		cancel()
		os.Exit(1)
	}
}
