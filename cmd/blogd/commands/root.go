package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the blogd root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "blogd",
		Short:        "Blogging platform API server",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newServeCommand(),
		newSeedCommand(),
	)

	return rootCmd
}
