package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/iudanet/khutwa/internal/logging"
	"github.com/iudanet/khutwa/internal/server"
	"github.com/iudanet/khutwa/internal/server/config"
	"github.com/iudanet/khutwa/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	args := os.Args[1:]

	// Show version and exit if requested
	if slices.Contains(args, "-version") || slices.Contains(args, "--version") {
		printVersion()
		return
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "khutwa-server: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load(args, ".env", os.LookupEnv)
	if err != nil {
		return err
	}

	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	logger.Info("khutwa server",
		"version", Version,
		"db", cfg.DBPath,
		"upload_dir", cfg.UploadDir,
	)

	return server.New(cfg, store, logger, Version).Run(ctx)
}

func printVersion() {
	fmt.Printf("Khutwa Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
