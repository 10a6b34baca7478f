package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// errNoCommand is returned after the missing-command message has already
// been printed; main only needs to exit non-zero.
var errNoCommand = errors.New("no command given")

var rootCmd = &cobra.Command{
	Use:                "passman",
	Short:              "Local command-line password manager",
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE:               runRoot,
}

func init() {
	cobra.EnableCaseInsensitive = true
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// runRoot only runs when no subcommand matched the first token. Flag
// parsing is off, so tokens like "-v" arrive here verbatim.
func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "Please provide a valid command.")
		return errNoCommand
	}
	switch args[0] {
	case "-h", "--help":
		printUsage(cmd.OutOrStdout())
		return nil
	}
	printUnknown(cmd.ErrOrStderr(), args[0])
	return nil
}

func printUnknown(w io.Writer, token string) {
	fmt.Fprintf(w, "Unknown command: %s. Use 'help' to see available commands.\n", token)
}

// execute runs rootCmd with args. Cobra's hidden shell-completion commands
// are treated like any other unknown token.
func execute(args []string) error {
	if len(args) > 0 && (strings.EqualFold(args[0], cobra.ShellCompRequestCmd) ||
		strings.EqualFold(args[0], cobra.ShellCompNoDescRequestCmd)) {
		printUnknown(rootCmd.ErrOrStderr(), args[0])
		return nil
	}
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func main() {
	if err := execute(os.Args[1:]); err != nil {
		if !errors.Is(err, errNoCommand) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
