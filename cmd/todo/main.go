// Package main is the entry point for the todo CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"todo/internal/backend"
	"todo/internal/cli"
	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/service"
	"todo/internal/store"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Open the configured backend and load the task store from it
	factory := func(ctx context.Context, cfg *config.Config, log *logrus.Logger) (service.Service, error) {
		if cfg.Env.Backend == config.BackendFile || cfg.Env.Backend == config.BackendSQLite {
			if err := cfg.EnsureDir(); err != nil {
				return nil, err
			}
		}
		kvStore, err := backend.Open(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		st, err := store.Open(ctx, kvStore, store.WithLogger(log))
		if err != nil {
			if c, ok := kvStore.(io.Closer); ok {
				_ = c.Close()
			}
			return nil, fmt.Errorf("load tasks: %w", err)
		}
		return st, nil
	}

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory).WithInput(os.Stdin)

	// Run and exit with code
	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
