// Package cli wires the services together behind the memegrip commands.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand builds the memegrip command tree. Without a subcommand it
// runs the interactive browser.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "memegrip",
		Short: "Search meme templates from the terminal",
		Long: `memegrip fetches the Imgflip template list once, then filters it as you
type. Favorites are kept locally between runs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}
	opts.register(root)

	root.AddCommand(
		newSearchCommand(opts),
		newSuggestCommand(opts),
		newFavCommand(opts),
		newConfigCommand(opts),
	)
	return root
}
