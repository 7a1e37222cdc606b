package graph

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// maxMultiplicity returns the shared cap spec.md §4.3 places on both
// maximum degree and maximum edge multiplicity during multigraph
// extension: max(dA, dP). Since every graph this package emits is already
// exactly dA/dP-regular, the degree cap is automatically respected; the
// multiplicity cap still needs enforcing while generating matrix rows.
func maxMultiplicity(dA, dP int) int {
	if dA > dP {
		return dA
	}
	return dP
}

// Enumerate returns every non-isomorphic connected (dA,dP)-biregular
// multigraph with exactly n = |A|+|P| vertices, single-threaded.
func Enumerate(n, dA, dP int) []BiregularGraph {
	return EnumerateSharded(context.Background(), n, dA, dP, 1)
}

// EnumerateSharded is the parallel form of Enumerate: the partition's
// top-level row choice for A-vertex 0 is split into workers disjoint
// (remainder r, modulus workers) slices, per spec.md §4.3/§5; results are
// merged by a single collector with no other cross-worker synchronization.
func EnumerateSharded(ctx context.Context, n, dA, dP, workers int) []BiregularGraph {
	if workers < 1 {
		workers = 1
	}

	var all []BiregularGraph
	seen := make(map[string]struct{})

	for _, size := range partitionSizes(n, dA, dP) {
		maxMult := maxMultiplicity(dA, dP)
		options := rowOptions(size.NP, dA, maxMult)
		if len(options) == 0 {
			continue
		}

		results := make([][][][]int, workers)
		g, _ := errgroup.WithContext(ctx)
		for w := 0; w < workers; w++ {
			w := w
			g.Go(func() error {
				results[w] = generateMatricesShard(size.NA, size.NP, dA, dP, maxMult, options, w, workers)
				return nil
			})
		}
		// errgroup.Group.Go never returns an error in this package
		// (workers only compute, they don't fail), so Wait cannot
		// return non-nil here.
		_ = g.Wait()

		for _, shard := range results {
			for _, m := range shard {
				if !connected(m) {
					continue
				}
				key := canonicalKey(m)
				if _, ok := seen[key]; ok {
					continue
				}
				seen[key] = struct{}{}
				all = append(all, fromMatrix(m, dA, dP))
			}
		}
	}
	return all
}

// DefaultWorkers returns a worker count sized to the number of logical
// cores, per spec.md §5's "CPU-bound worker pool sized to the number of
// logical cores".
func DefaultWorkers() int {
	n := runtime.NumCPU()
	if n < 1 {
		return 1
	}
	return n
}

// generateMatricesShard is generateMatrices restricted to the slice of the
// top-level search space where the index of A-vertex 0's row choice,
// modulo workers, equals shard.
func generateMatricesShard(na, np, dA, dP, maxMult int, options [][]int, shard, workers int) [][][]int {
	var out [][][]int
	rows := make([][]int, na)
	remaining := make([]int, np)
	for j := range remaining {
		remaining[j] = dP
	}

	var assign func(a int)
	assign = func(a int) {
		if a == na {
			for _, r := range remaining {
				if r != 0 {
					return
				}
			}
			m := make([][]int, na)
			for i, r := range rows {
				m[i] = append([]int(nil), r...)
			}
			out = append(out, m)
			return
		}
		for i, opt := range options {
			if a == 0 && i%workers != shard {
				continue
			}
			ok := true
			for j, v := range opt {
				if remaining[j]-v < 0 {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
			for j, v := range opt {
				remaining[j] -= v
			}
			rows[a] = opt
			assign(a + 1)
			for j, v := range opt {
				remaining[j] += v
			}
		}
	}
	assign(0)
	return out
}
