package main

import (
	"context"
	"echosphere/cmd/echosphere/cmd"
	"echosphere/internal"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mama165/sdk-go/logs"
	"github.com/spf13/afero"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	// 1. Display preferences
	display, err := cmd.LoadDisplay()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		return err
	}

	// 2. Configuration & Logger
	config, err := internal.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, display.Failure(err))
		return err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 3. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Commands open the application lazily, so --help never touches the store
	fs := afero.NewOsFs()
	cli := cmd.New(func(ctx context.Context) (*internal.App, error) {
		return internal.Open(ctx, config, fs, log)
	}, fs, os.Stdout, display)

	if err = cli.Execute(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, display.Failure(err))
		return err
	}
	return nil
}
