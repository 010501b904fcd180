// Package service wires the estatehub command line: the HTTP server and
// the maintenance commands around its data store.
package service

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the estatehub command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "estatehub",
		Short: "Real estate listings API",
		Long: `estatehub serves the property listings API and manages its data store.

Configuration is read from ESTATE_* environment variables (and a .env file
when present); JWT_SECRET_KEY must be set.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newServeCommand(),
		newVersionCommand(),
		newDBCommand(),
		newUserCommand(),
	)
	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "estatehub version %s\n", Version)
		},
	}
}
