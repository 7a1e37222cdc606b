package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nclcl/classifier/pkg/graph"
)

func newGenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "emit enumerated problems or graph counts",
	}
	cmd.AddCommand(newGenProblemsCmd())
	cmd.AddCommand(newGenGraphsCmd())
	return cmd
}

func newGenProblemsCmd() *cobra.Command {
	var cachePath string

	cmd := &cobra.Command{
		Use:   "problems dA dP k",
		Short: "emit the normalized (dA,dP,k) problem class to stdout",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			dA, dP, k, err := parseDegreeTriple(args)
			if err != nil {
				return err
			}
			problemSource, closeProblems, err := problemSourceFor(cachePath)
			if err != nil {
				return err
			}
			defer closeProblems()
			for _, p := range problemSource(dA, dP, k) {
				fmt.Println(p.String())
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&cachePath, "cache", "c", "", "path to a SQLite problem cache")
	return cmd
}

func newGenGraphsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "graphs n_lo n_hi dA dP",
		Short: "emit the count of non-isomorphic biregular multigraphs per size",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals := make([]int, 4)
			for i, a := range args {
				v, err := parseInt(a)
				if err != nil {
					return err
				}
				vals[i] = v
			}
			nLo, nHi, dA, dP := vals[0], vals[1], vals[2], vals[3]
			for n := nLo; n <= nHi; n++ {
				count := len(graph.Enumerate(n, dA, dP))
				fmt.Printf("%d: %d\n", n, count)
			}
			return nil
		},
	}
}
