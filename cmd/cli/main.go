package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/amirasaad/pinbank/infra/initializer"
	"github.com/amirasaad/pinbank/pkg/app"
	"github.com/amirasaad/pinbank/pkg/config"
	"github.com/fatih/color"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		printUsage(os.Stdout)
		return nil
	}
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}
	if err := requirePersistentStore(cfg); err != nil {
		return err
	}
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	application := app.New(deps, cfg)
	defer func() { _ = application.Close() }()

	c := &cli{
		svc:     application.AccountService,
		out:     os.Stdout,
		readPin: terminalPinReader(os.Stdin, os.Stderr),
	}
	return c.run(context.Background(), args)
}

var errMemoryStore = errors.New("the CLI needs STORE_DRIVER=postgres; the memory store is empty on every run")

func requirePersistentStore(cfg *config.App) error {
	if cfg.Store.Driver == config.StoreMemory {
		return errMemoryStore
	}
	return nil
}
