package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/nclcl/classifier/pkg/cache"
	"github.com/nclcl/classifier/pkg/graph"
	"github.com/nclcl/classifier/pkg/label"
	"github.com/nclcl/classifier/pkg/lclproblem"
	"github.com/nclcl/classifier/pkg/search"
	"github.com/nclcl/classifier/pkg/svgexport"
)

// commonFindFlags holds the flags shared by every find subcommand
// (spec.md §6's "Common find flags").
type commonFindFlags struct {
	nLo, nHi     int
	allGraphs    bool
	allSizes     bool
	showProgress bool
	cachePath    string
	outPath      string
	stats        bool
	svgDir       string
}

// register binds the flags common to every find subcommand. withAllGraphsShort
// controls whether --all-graphs also gets the "-A" shorthand: find single
// already uses "-A" for its --active flag, so it passes false to avoid a
// shorthand collision.
func (f *commonFindFlags) register(cmd *cobra.Command, withAllGraphsShort bool) {
	cmd.Flags().IntVarP(&f.nLo, "n-lo", "n", 2, "lower bound on graph size")
	cmd.Flags().IntVar(&f.nHi, "n-hi", 12, "upper bound on graph size")
	if withAllGraphsShort {
		cmd.Flags().BoolVarP(&f.allGraphs, "all-graphs", "A", false, "collect every witness within a size instead of the first")
	} else {
		cmd.Flags().BoolVar(&f.allGraphs, "all-graphs", false, "collect every witness within a size instead of the first")
	}
	cmd.Flags().BoolVarP(&f.allSizes, "all-graph-sizes", "a", false, "keep searching larger sizes after the first witnessed size")
	cmd.Flags().BoolVarP(&f.showProgress, "show-progress", "p", false, "log progress as sizes are searched")
	cmd.Flags().StringVarP(&f.cachePath, "cache", "c", "", "path to a SQLite graph/problem cache")
	cmd.Flags().StringVarP(&f.outPath, "out", "o", "", "path to write unproven problems")
	cmd.Flags().BoolVar(&f.stats, "stats", false, "emit a per-problem timing/coverage report")
	cmd.Flags().StringVar(&f.svgDir, "svg-dir", "", "directory to render witness graphs as SVG")
}

func newFindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find",
		Short: "search for a non-solvability witness",
	}
	cmd.AddCommand(newFindSingleCmd())
	cmd.AddCommand(newFindClassCmd())
	cmd.AddCommand(newFindFromStdinCmd())
	return cmd
}

func newFindSingleCmd() *cobra.Command {
	var flags commonFindFlags
	var active, passive string

	cmd := &cobra.Command{
		Use:   "single",
		Short: "search a single problem given on the command line",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := label.NewMap()
			p, err := lclproblem.Parse(active+"; "+passive, m)
			if err != nil {
				return err
			}
			return runFind(cmd.Context(), []lclproblem.Problem{p}, m.Len(), &flags)
		},
	}
	flags.register(cmd, false)
	cmd.Flags().StringVarP(&active, "active", "A", "", "active-side configurations, e.g. \"AAB AAC\"")
	cmd.Flags().StringVarP(&passive, "passive", "P", "", "passive-side configurations, e.g. \"AB AC\"")
	_ = cmd.MarkFlagRequired("active")
	_ = cmd.MarkFlagRequired("passive")
	return cmd
}

func newFindClassCmd() *cobra.Command {
	var flags commonFindFlags

	cmd := &cobra.Command{
		Use:   "class dA dP k",
		Short: "search every problem in a normalized (dA,dP,k) class",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			dA, dP, k, err := parseDegreeTriple(args)
			if err != nil {
				return err
			}
			problemSource, closeProblems, err := problemSourceFor(flags.cachePath)
			if err != nil {
				return err
			}
			defer closeProblems()
			problems := problemSource(dA, dP, k)
			return runFind(cmd.Context(), problems, k, &flags)
		},
	}
	flags.register(cmd, true)
	return cmd
}

func newFindFromStdinCmd() *cobra.Command {
	var flags commonFindFlags
	var noIgnore bool

	cmd := &cobra.Command{
		Use:   "from_stdin",
		Short: "search one problem per stdin line, formatted \"<n>: <problem>\"",
		RunE: func(cmd *cobra.Command, args []string) error {
			problems, numLabels, err := readStdinProblems(os.Stdin, noIgnore)
			if err != nil {
				return err
			}
			return runFind(cmd.Context(), problems, numLabels, &flags)
		},
	}
	flags.register(cmd, true)
	cmd.Flags().BoolVar(&noIgnore, "no-ignore", false, "re-run the search even on lines already marked proven (n > 0)")
	return cmd
}

// readStdinProblems parses the "<n>: <problem>" stream format (spec.md
// §6). A line with n > 0 is skipped unless noIgnore is set.
func readStdinProblems(r io.Reader, noIgnore bool) ([]lclproblem.Problem, int, error) {
	m := label.NewMap()
	var problems []lclproblem.Problem

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		colon := strings.Index(line, ":")
		if colon < 0 {
			return nil, 0, &label.MalformedInput{Text: line, Reason: "missing \"n:\" prefix"}
		}
		n, err := strconv.Atoi(strings.TrimSpace(line[:colon]))
		if err != nil {
			return nil, 0, &label.MalformedInput{Text: line, Reason: "non-integer n prefix"}
		}
		if n > 0 && !noIgnore {
			continue
		}
		p, err := lclproblem.Parse(strings.TrimSpace(line[colon+1:]), m)
		if err != nil {
			return nil, 0, err
		}
		problems = append(problems, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, err
	}
	return problems, m.Len(), nil
}

// sizeTriesEntry is one statsEntry's per-size graph-try count.
type sizeTriesEntry struct {
	N     int `yaml:"n"`
	Tries int `yaml:"tries"`
}

// statsEntry is one problem's --stats report row: wall-clock time spent
// searching that problem, how many graphs were tried at each size, and
// the size at which (if any) the first witness was found (spec.md §6,
// modeled on lib_benchmark.rs's per-problem timing instrumentation).
type statsEntry struct {
	Problem           string           `yaml:"problem"`
	Elapsed           time.Duration    `yaml:"elapsed"`
	FoundAt           int              `yaml:"found_at_n"`
	GraphsTriedBySize []sizeTriesEntry `yaml:"graphs_tried_by_size"`
}

func runFind(ctx context.Context, problems []lclproblem.Problem, numLabels int, flags *commonFindFlags) error {
	graphs, closeCache, err := graphSourceFor(flags)
	if err != nil {
		return err
	}
	defer closeCache()

	witnesses, problemStats, err := search.Run(ctx, problems, graphs, flags.nLo, flags.nHi, search.Flags{
		AllGraphs: flags.allGraphs,
		AllSizes:  flags.allSizes,
	}, numLabels)
	if err != nil {
		return err
	}

	var unprovenOut io.Writer
	if flags.outPath != "" {
		f, err := os.Create(flags.outPath)
		if err != nil {
			log.WithError(err).Warn("find: could not open -o path, unproven problems will not be written")
		} else {
			defer f.Close()
			unprovenOut = f
		}
	}

	for idx, w := range witnesses {
		fmt.Printf("%d: %s\n", w.N, w.Problem.String())
		if w.N == 0 && unprovenOut != nil {
			fmt.Fprintf(unprovenOut, "0: %s\n", w.Problem.String())
		}
		if flags.showProgress {
			log.WithField("problem", w.Problem.String()).WithField("n", w.N).Info("find: witness emitted")
		}
		if flags.svgDir != "" && w.N > 0 {
			exportWitnessSVG(ctx, flags.svgDir, w, idx, graphs)
		}
	}

	if flags.stats {
		stats := make([]statsEntry, len(problems))
		for i, p := range problems {
			triedBySize := make([]sizeTriesEntry, len(problemStats[i].GraphsTriedBySize))
			for j, st := range problemStats[i].GraphsTriedBySize {
				triedBySize[j] = sizeTriesEntry{N: st.N, Tries: st.Tries}
			}
			stats[i] = statsEntry{
				Problem:           p.String(),
				Elapsed:           problemStats[i].Elapsed,
				FoundAt:           problemStats[i].FoundAt,
				GraphsTriedBySize: triedBySize,
			}
		}
		out, err := yaml.Marshal(stats)
		if err != nil {
			return err
		}
		fmt.Fprint(os.Stderr, string(out))
	}
	return nil
}

// exportWitnessSVG re-derives the witnessed-size graph list and renders
// the first graph of that size; a fuller implementation would thread the
// exact witnessing graph index through from the search driver, but the
// driver only needs to report sizes for spec.md's stdout contract.
func exportWitnessSVG(ctx context.Context, dir string, w search.Witness, idx int, graphs search.GraphSource) {
	gs := graphs(w.N, w.Problem.DegreeActive(), w.Problem.DegreePassive())
	if len(gs) == 0 {
		return
	}
	if _, err := svgexport.Export(ctx, dir, w.Problem, w.N, idx, gs[0]); err != nil {
		log.WithError(err).Warn("find: svg export failed, skipping")
	}
}

// graphSourceFor builds a search.GraphSource backed by flags.cachePath
// when set (reading through the cache, falling back to recomputation on a
// miss and populating the cache for next time), or plain enumeration
// otherwise.
func graphSourceFor(flags *commonFindFlags) (search.GraphSource, func(), error) {
	if flags.cachePath == "" {
		return func(n, dA, dP int) []graph.BiregularGraph {
			return graph.Enumerate(n, dA, dP)
		}, func() {}, nil
	}
	db, err := cache.Open(flags.cachePath)
	if err != nil {
		return nil, func() {}, err
	}
	return func(n, dA, dP int) []graph.BiregularGraph {
		if gs, ok := cache.ReadGraphs(db, n, dA, dP); ok {
			return gs
		}
		gs := graph.Enumerate(n, dA, dP)
		if err := cache.WriteGraphs(db, n, dA, dP, gs); err != nil {
			log.WithError(err).Warn("find: cache write failed, continuing without caching this batch")
		}
		return gs
	}, func() { db.Close() }, nil
}

// problemSourceFor builds a function computing the normalized (dA,dP,k)
// problem class, backed by cachePath when set (reading through the
// problem_class cache, falling back to recomputation on a miss and
// populating the cache for next time), mirroring graphSourceFor above.
func problemSourceFor(cachePath string) (func(dA, dP, k int) []lclproblem.Problem, func(), error) {
	if cachePath == "" {
		return func(dA, dP, k int) []lclproblem.Problem {
			return lclproblem.EnumerateNormalizedClass(dA, dP, k)
		}, func() {}, nil
	}
	db, err := cache.Open(cachePath)
	if err != nil {
		return nil, func() {}, err
	}
	return func(dA, dP, k int) []lclproblem.Problem {
		if ps, ok := cache.ReadProblems(db, dA, dP, k); ok {
			return ps
		}
		ps := lclproblem.EnumerateNormalizedClass(dA, dP, k)
		if err := cache.WriteProblems(db, dA, dP, k, ps); err != nil {
			log.WithError(err).Warn("find: problem cache write failed, continuing without caching this class")
		}
		return ps
	}, func() { db.Close() }, nil
}

func parseDegreeTriple(args []string) (int, int, int, error) {
	vals := make([]int, 3)
	for i, a := range args {
		v, err := parseInt(a)
		if err != nil {
			return 0, 0, 0, err
		}
		vals[i] = v
	}
	return vals[0], vals[1], vals[2], nil
}
