package graph

// A multiplicity matrix m has shape na x np; m[a][p] counts the parallel
// edges between A-vertex a and P-vertex p. Row a sums to dA (A-vertex a's
// degree); column p sums to dP (P-vertex p's degree). Enumerating every
// such matrix, filtering to connected ones, and deduplicating up to row-
// and column-permutation is this package's from-scratch replacement for
// shelling out to genbg/multig (spec.md §4.3, §9 "pure in-process
// implementation is acceptable").

// rowOptions returns every length-np vector of non-negative integers that
// sums to dA with every entry <= maxMult.
func rowOptions(np, dA, maxMult int) [][]int {
	var out [][]int
	cur := make([]int, np)
	var gen func(pos, remaining int)
	gen = func(pos, remaining int) {
		if pos == np {
			if remaining == 0 {
				cp := make([]int, np)
				copy(cp, cur)
				out = append(out, cp)
			}
			return
		}
		max := remaining
		if max > maxMult {
			max = maxMult
		}
		for v := 0; v <= max; v++ {
			cur[pos] = v
			gen(pos+1, remaining-v)
			cur[pos] = 0
		}
	}
	gen(0, dA)
	return out
}

// generateMatrices enumerates every na x np multiplicity matrix with every
// row summing to dA, every column summing to dP, and every entry bounded
// by maxMult. rows are assigned one A-vertex at a time, tracking the
// remaining column budget to prune infeasible partial assignments early.
func generateMatrices(na, np, dA, dP, maxMult int) [][][]int {
	options := rowOptions(np, dA, maxMult)

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
		for _, opt := range options {
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

// connected reports whether the bipartite graph implied by m (an edge
// exists between a and p iff m[a][p] > 0) is connected, treating every
// A-vertex and P-vertex as a node. A single-vertex side with no opposite
// side is trivially considered connected only when both sides are
// non-empty, matching the biregular graph's invariant that both sides are
// always populated.
func connected(m [][]int) bool {
	na := len(m)
	if na == 0 {
		return false
	}
	np := len(m[0])
	if np == 0 {
		return false
	}

	visitedA := make([]bool, na)
	visitedP := make([]bool, np)
	queueA := []int{0}
	visitedA[0] = true
	total := 1
	for len(queueA) > 0 {
		var nextA []int
		for _, a := range queueA {
			for p := 0; p < np; p++ {
				if m[a][p] > 0 && !visitedP[p] {
					visitedP[p] = true
					total++
					for a2 := 0; a2 < na; a2++ {
						if m[a2][p] > 0 && !visitedA[a2] {
							visitedA[a2] = true
							total++
							nextA = append(nextA, a2)
						}
					}
				}
			}
		}
		queueA = nextA
	}
	return total == na+np
}

// canonicalKey computes a stable string representation of the
// lexicographically smallest image of m under independent row and column
// permutations. This is the isomorphism-class representative: two
// multiplicity matrices describe isomorphic biregular multigraphs (with
// A/P sides distinguished) exactly when their canonicalKey matches.
func canonicalKey(m [][]int) string {
	na := len(m)
	np := 0
	if na > 0 {
		np = len(m[0])
	}

	rowPerms := permutations(na)
	colPerms := permutations(np)

	var best []byte
	for _, rp := range rowPerms {
		for _, cp := range colPerms {
			buf := make([]byte, 0, na*np*3)
			for _, a := range rp {
				for _, p := range cp {
					buf = appendInt(buf, m[a][p])
					buf = append(buf, ',')
				}
			}
			if best == nil || string(buf) < string(best) {
				best = buf
			}
		}
	}
	return string(best)
}

func appendInt(buf []byte, v int) []byte {
	if v == 0 {
		return append(buf, '0')
	}
	start := len(buf)
	for v > 0 {
		buf = append(buf, byte('0'+v%10))
		v /= 10
	}
	// reverse the digits just appended
	for i, j := start, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf
}

func permutations(n int) [][]int {
	if n == 0 {
		return [][]int{{}}
	}
	base := make([]int, n)
	for i := range base {
		base[i] = i
	}
	var out [][]int
	var permute func(k int)
	permute = func(k int) {
		if k == len(base) {
			cp := make([]int, len(base))
			copy(cp, base)
			out = append(out, cp)
			return
		}
		for i := k; i < len(base); i++ {
			base[k], base[i] = base[i], base[k]
			permute(k + 1)
			base[k], base[i] = base[i], base[k]
		}
	}
	permute(0)
	return out
}
