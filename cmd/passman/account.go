package main

import (
	"github.com/benaskins/passman/internal/manager"
	"github.com/spf13/cobra"
)

// withManager adapts a Manager method into a cobra RunE.
func withManager(run func(*manager.Manager) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		m, err := newManager(cmd)
		if err != nil {
			return err
		}
		return run(m)
	}
}

var addCmd = &cobra.Command{
	Use:                "add",
	Short:              "Add a new account",
	DisableFlagParsing: true,
	RunE:               withManager((*manager.Manager).Add),
}

var listCmd = &cobra.Command{
	Use:                "list",
	Short:              "Show all saved accounts",
	DisableFlagParsing: true,
	RunE:               withManager((*manager.Manager).List),
}

var getCmd = &cobra.Command{
	Use:                "get",
	Short:              "Show or copy the password for an account",
	DisableFlagParsing: true,
	RunE:               withManager((*manager.Manager).Get),
}

var deleteCmd = &cobra.Command{
	Use:                "delete",
	Short:              "Remove an account",
	DisableFlagParsing: true,
	RunE:               withManager((*manager.Manager).Delete),
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(deleteCmd)
}
