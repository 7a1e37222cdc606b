package cli

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nclcl/classifier/pkg/corpus"
)

func newFetchProblemsCmd() *cobra.Command {
	var modR, modM int
	var doPurge, doNormalize bool

	cmd := &cobra.Command{
		Use:   "fetch_problems dA dP k db_url",
		Short: "import a problem class from the external PostgreSQL corpus",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			dA, dP, k, err := parseDegreeTriple(args[:3])
			if err != nil {
				return err
			}
			dbURL := args[3]

			db, err := corpus.Open(dbURL)
			if err != nil {
				return err
			}
			defer db.Close()

			rows, err := corpus.Fetch(db, corpus.Filter{
				DegreeActive:  dA,
				DegreePassive: dP,
				LabelCount:    k,
				Modulus:       modM,
				Shard:         modR,
			})
			if err != nil {
				return err
			}
			log.WithField("count", len(rows)).Info("fetch_problems: imported rows from corpus")

			problems := make([]string, 0, len(rows))
			if doNormalize {
				for _, p := range corpus.Normalize(rows) {
					if doPurge {
						p = p.Purge()
					}
					problems = append(problems, p.String())
				}
			} else {
				for _, r := range rows {
					p := r.Problem
					if doPurge {
						p = p.Purge()
					}
					problems = append(problems, p.String())
				}
			}

			for _, text := range problems {
				fmt.Println(text)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&modR, "mod-r", 0, "import only rows with id %% m == r")
	cmd.Flags().IntVar(&modM, "mod-m", 0, "modulus for --mod-r sharding; 0 disables sharding")
	cmd.Flags().BoolVar(&doPurge, "purge", false, "purge each imported problem before emitting it")
	cmd.Flags().BoolVar(&doNormalize, "normalize", false, "normalize each imported problem (and round-trip its label alphabet) before emitting it")

	return cmd
}
