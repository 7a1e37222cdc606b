package cli

import (
	"github.com/spf13/cobra"

	"github.com/nclcl/classifier/pkg/cache"
)

func newCreateCacheCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create_cache path",
		Short: "initialize an empty on-disk SQLite cache",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cache.Create(args[0])
		},
	}
}
