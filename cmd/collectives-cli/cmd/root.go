package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "collectives-cli",
		Short: "Collectives CLI tool",
		Long: `collectives-cli is a companion tool for the collectives web app.

Available commands:
  version      Print the CLI version
  locales      List the messages of the embedded catalog
  can-create   Check whether a membership list allows creating events
  schema       Print or apply the database schema

Use "collectives-cli [command] --help" for more information about a specific command.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newVersionCmd(),
		newLocalesCmd(),
		newCanCreateCmd(),
		newSchemaCmd(),
	)
	return root
}

// Execute executes the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
