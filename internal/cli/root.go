package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrlokans/bookgoblin/internal/config"
	"github.com/mrlokans/bookgoblin/internal/entrypoint"
)

// NewRootCmd builds the command tree. Running the binary without a
// subcommand starts the HTTP server.
func NewRootCmd(version string) *cobra.Command {
	root := &cobra.Command{
		Use:           "bookgoblin",
		Short:         "bookgoblin - track the books you own and read",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return entrypoint.Run(config.NewConfig(), version)
		},
	}

	root.AddCommand(
		newServeCmd(version),
		newUserCmd(),
		newCatalogCmd(),
	)
	return root
}

func newServeCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return entrypoint.Run(config.NewConfig(), version)
		},
	}
}
