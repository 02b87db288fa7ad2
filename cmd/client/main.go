package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/khutwa/internal/client/cli"
	"github.com/iudanet/khutwa/internal/client/iocli"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Ctrl+C останавливает dashboard и прерывает текущий запрос
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cli.New(iocli.NewStdio(), cli.Options{
		Build: cli.BuildInfo{
			Version:   Version,
			BuildDate: BuildDate,
			GitCommit: GitCommit,
		},
	})

	if err := app.Execute(ctx, os.Args[1:]); err != nil {
		stop()
		os.Exit(1)
	}
}
