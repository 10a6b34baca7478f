package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

const usage = `Password Manager CLI
Usage:
	passman <command>
Commands:
	add         Add a new account (prompts for details and password)
	list        Show all saved accounts
	get         Show or copy the password for an account
	delete      Remove an account
	generate    Print a random password
	help        Show this help message
`

var helpCmd = &cobra.Command{
	Use:                "help",
	Short:              "Show usage",
	DisableFlagParsing: true,
	Run: func(cmd *cobra.Command, args []string) {
		printUsage(cmd.OutOrStdout())
	},
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, usage)
}

func init() {
	rootCmd.SetHelpCommand(helpCmd)
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		printUsage(cmd.OutOrStdout())
	})
}
