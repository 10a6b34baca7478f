package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/benaskins/passman/internal/config"
	"github.com/benaskins/passman/internal/console"
	"github.com/benaskins/passman/internal/genpass"
	"github.com/benaskins/passman/internal/manager"
	"github.com/benaskins/passman/internal/vault"
	"github.com/spf13/cobra"
)

// configPath is a variable so tests can point it at a temp dir.
var configPath = config.DefaultPath()

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()})))
	return cfg, nil
}

// newManager wires a Manager for cmd, creating the vault file if needed.
func newManager(cmd *cobra.Command) (*manager.Manager, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	store := vault.NewFileStore(cfg.Database())
	if err := store.EnsureInitialized(); err != nil {
		return nil, err
	}
	slog.Debug("running command", "command", cmd.Name(), "vault", store.Path())

	return manager.New(manager.Options{
		Store:     store,
		Prompter:  console.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout()),
		Clipboard: console.SystemClipboard{},
		Generator: genpass.New(nil),
		Out:       cmd.OutOrStdout(),
	}), nil
}
