// Package search runs the per-problem, per-graph-size witness hunt:
// encode each (problem, graph) pair, ask the oracle, and honor the two
// orthogonal find-all flags from spec.md §4.6.
package search

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/nclcl/classifier/pkg/graph"
	"github.com/nclcl/classifier/pkg/lclproblem"
	"github.com/nclcl/classifier/pkg/satenc"
	"github.com/nclcl/classifier/pkg/satoracle"
)

// Witness is one emitted result: a proof that problem is unsolvable on a
// graph of N vertices, or N == 0 meaning no witness was found across the
// whole size range searched for that problem.
type Witness struct {
	Problem lclproblem.Problem
	N       int
}

// Flags are the two orthogonal continuation controls from spec.md §4.6.
type Flags struct {
	// AllGraphs: within one size, keep going after the first UNSAT to
	// collect every witness graph instead of stopping at the first.
	AllGraphs bool
	// AllSizes: after a size with at least one witness, keep searching
	// larger sizes instead of stopping at the first successful size.
	AllSizes bool
}

// GraphSource supplies the non-isomorphic (dA,dP)-biregular graphs of a
// given size n; callers typically back this with
// graph.Enumerate/EnumerateSharded or a cache keyed on (n, dA, dP).
type GraphSource func(n, dA, dP int) []graph.BiregularGraph

// SizeTries records how many graphs of size N were handed to the oracle
// while searching one problem.
type SizeTries struct {
	N     int
	Tries int
}

// ProblemStats is one problem's own timing/coverage report, independent of
// any other problem in the same Run call (each problem times itself, so a
// later problem in a multi-problem run does not inherit an earlier
// problem's search time).
type ProblemStats struct {
	Elapsed           time.Duration
	FoundAt           int
	GraphsTriedBySize []SizeTries
}

// Run searches every problem in problems over graph sizes nLo..nHi
// inclusive, in parallel across problems (sequential within a single
// problem, per spec.md §4.6's final paragraph), and returns every
// witness emitted plus one ProblemStats per input problem, in the same
// order as problems. With both flags false, Witnesses has at most one
// entry per problem; with AllGraphs/AllSizes set it may be several. A
// problem with no witness anywhere in the range contributes a single
// {Problem, N: 0} entry (spec.md §4.6's "non-proven" case). numLabels is
// the shared label-map size used to size each encoding.
func Run(ctx context.Context, problems []lclproblem.Problem, graphs GraphSource, nLo, nHi int, flags Flags, numLabels int) ([]Witness, []ProblemStats, error) {
	perProblem := make([][]Witness, len(problems))
	perStats := make([]ProblemStats, len(problems))

	g, ctx := errgroup.WithContext(ctx)
	for idx, p := range problems {
		idx, p := idx, p
		g.Go(func() error {
			ws, stats := collectForProblem(ctx, p, graphs, nLo, nHi, flags, numLabels)
			perProblem[idx] = ws
			perStats[idx] = stats
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var out []Witness
	for _, ws := range perProblem {
		out = append(out, ws...)
	}
	return out, perStats, nil
}

// collectForProblem implements the size/graph double loop from spec.md
// §4.6's pseudocode, honoring AllGraphs and AllSizes, logging (rather
// than failing on) SolverUnknown, and tallying its own elapsed time and
// per-size graph-try counts for the --stats report.
func collectForProblem(ctx context.Context, p lclproblem.Problem, graphs GraphSource, nLo, nHi int, flags Flags, numLabels int) ([]Witness, ProblemStats) {
	start := time.Now()
	dA, dP := p.DegreeActive(), p.DegreePassive()
	var found []Witness
	var triedBySize []SizeTries
	firstWitnessN := 0
	for n := nLo; n <= nHi; n++ {
		foundThisSize := 0
		tries := 0
	perGraph:
		for _, g := range graphs(n, dA, dP) {
			tries++
			enc := satenc.Encode(p, g, numLabels)
			res, err := satoracle.Solve(ctx, enc)
			if err != nil {
				logrus.WithError(err).WithField("n", n).Warn("search: oracle solve failed, treating as no witness")
				continue
			}
			switch res.Status {
			case satoracle.Unsat:
				found = append(found, Witness{Problem: p, N: g.Size()})
				foundThisSize++
				if firstWitnessN == 0 {
					firstWitnessN = g.Size()
				}
				if !flags.AllGraphs {
					break perGraph
				}
			case satoracle.Unknown:
				logrus.WithField("n", n).Debug("search: solver returned unknown, no witness for this graph")
			}
		}
		triedBySize = append(triedBySize, SizeTries{N: n, Tries: tries})
		if foundThisSize > 0 && !flags.AllSizes {
			break
		}
	}
	stats := ProblemStats{Elapsed: time.Since(start), FoundAt: firstWitnessN, GraphsTriedBySize: triedBySize}
	if len(found) == 0 {
		return []Witness{{Problem: p, N: 0}}, stats
	}
	return found, stats
}
