// Package cli wires the cobra command tree: find, gen, create_cache,
// fetch_problems (spec.md §6), mirroring the teacher's root-command +
// subcommand-package layout.
package cli

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the root command with every subcommand registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "nclcl",
		Short: "nclcl",
		Long:  "Search for non-constant LOCAL-model lower bounds on LCL problems over biregular multigraphs.",

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				log.SetLevel(log.DebugLevel)
			}
			return nil
		},
	}

	root.PersistentFlags().Bool("debug", false, "enable debug logging")

	root.AddCommand(newFindCmd())
	root.AddCommand(newGenCmd())
	root.AddCommand(newCreateCacheCmd())
	root.AddCommand(newFetchProblemsCmd())

	return root
}
