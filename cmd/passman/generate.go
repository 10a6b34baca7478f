package main

import (
	"github.com/benaskins/passman/internal/genpass"
	"github.com/benaskins/passman/internal/manager"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:                "generate",
	Short:              "Print a random password",
	DisableFlagParsing: true,
	Aliases:            []string{"gen"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := loadConfig(); err != nil {
			return err
		}
		m := manager.New(manager.Options{
			Generator: genpass.New(nil),
			Out:       cmd.OutOrStdout(),
		})
		return m.Generate()
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
