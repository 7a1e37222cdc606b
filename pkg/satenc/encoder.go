// Package satenc deterministically encodes an (LCL problem, biregular
// graph) pair into a CNF clause set over the layered variable schema from
// spec.md §4.4: perm_A, perm_P, lab_AP, lab_PA.
package satenc

import (
	"github.com/nclcl/classifier/pkg/graph"
	"github.com/nclcl/classifier/pkg/label"
	"github.com/nclcl/classifier/pkg/lclproblem"
)

// Clause is a disjunction of signed DIMACS literals (positive selects the
// variable, negative its negation); variable 0 never appears.
type Clause []int

// Encoding is the output of Encode: an upper bound on the number of
// variables used, and the full clause list, suitable for DIMACS CNF
// emission or for directly asserting into a SAT solver.
type Encoding struct {
	NumVars int
	Clauses []Clause

	// Layout records the variable ranges so that a satisfying model can
	// be decoded back into a labeling; see Decode.
	Layout Layout
}

// Layout records where each variable block starts, in the fixed
// allocation order spec.md §4.4 requires: perm_A, then perm_P, then
// lab_AP, then lab_PA.
type Layout struct {
	NA, NP, M, NumLabels int
	NumActivePerms       int // p_A
	NumPassivePerms      int // p_P

	ActivePerms  []label.Configuration // index i -> (l_0,...,l_{dA-1})
	PassivePerms []label.Configuration

	PermABase int // perm_A[a][i] = PermABase + a*NumActivePerms + i + 1
	PermPBase int
	LabAPBase int
	LabPABase int
}

// PermA returns the 1-indexed DIMACS variable for "A-node a uses active
// permutation i".
func (l Layout) PermA(a, i int) int {
	return l.PermABase + a*l.NumActivePerms + i + 1
}

// PermP returns the 1-indexed DIMACS variable for "P-node p uses passive
// permutation j".
func (l Layout) PermP(p, j int) int {
	return l.PermPBase + p*l.NumPassivePerms + j + 1
}

// LabAP returns the 1-indexed DIMACS variable for "edge e has label lab
// viewed from the A side".
func (l Layout) LabAP(e int, lab label.Label) int {
	return l.LabAPBase + e*l.NumLabels + int(lab) + 1
}

// LabPA returns the 1-indexed DIMACS variable for "edge e has label lab
// viewed from the P side".
func (l Layout) LabPA(e int, lab label.Label) int {
	return l.LabPABase + e*l.NumLabels + int(lab) + 1
}

// Encode builds the CNF encoding of p on g. numLabels is the total number
// of distinct labels across both sides of p (the caller's label.Map's
// Len()); it determines the width of the lab_AP/lab_PA blocks.
func Encode(p lclproblem.Problem, g graph.BiregularGraph, numLabels int) Encoding {
	activePerms := distinctPermutations(p.Active)
	passivePerms := distinctPermutations(p.Passive)

	nA, nP, m := g.NA, g.NP, len(g.Edges)
	pA, pP := len(activePerms), len(passivePerms)

	layout := Layout{
		NA: nA, NP: nP, M: m, NumLabels: numLabels,
		NumActivePerms:  pA,
		NumPassivePerms: pP,
		ActivePerms:     activePerms,
		PassivePerms:    passivePerms,
	}
	layout.PermABase = 0
	layout.PermPBase = layout.PermABase + nA*pA
	layout.LabAPBase = layout.PermPBase + nP*pP
	layout.LabPABase = layout.LabAPBase + m*numLabels
	numVars := layout.LabPABase + m*numLabels

	enc := Encoding{NumVars: numVars, Layout: layout}

	enc.addEdgeAgreement(g, numLabels)
	enc.addExactlyOnePermutation(nA, pA, layout.PermA)
	enc.addExactlyOnePermutation(nP, pP, layout.PermP)
	enc.addPermutationImpliesLabels(nA, activePerms, layout.PermA, layout.LabAP, g.NeighborEdgesA)
	enc.addPermutationImpliesLabels(nP, passivePerms, layout.PermP, layout.LabPA, g.NeighborEdgesP)

	return enc
}

// distinctPermutations flattens every configuration's label permutations
// across cs into one deduplicated list, in config order and then
// lexicographic permutation order.
func distinctPermutations(cs label.ConfigurationSet) []label.Configuration {
	seen := make(map[string]struct{})
	var out []label.Configuration
	for _, group := range cs.Permutations() {
		for _, perm := range group {
			key := perm.String()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, perm)
		}
	}
	return out
}

// addEdgeAgreement adds, for every edge and every pair of distinct labels,
// the binary clause forbidding the two endpoints from disagreeing.
func (enc *Encoding) addEdgeAgreement(g graph.BiregularGraph, numLabels int) {
	for e := range g.Edges {
		for l1 := 0; l1 < numLabels; l1++ {
			for l2 := 0; l2 < numLabels; l2++ {
				if l1 == l2 {
					continue
				}
				enc.Clauses = append(enc.Clauses, Clause{
					-enc.Layout.LabAP(e, label.Label(l1)),
					-enc.Layout.LabPA(e, label.Label(l2)),
				})
			}
		}
	}
}

// addExactlyOnePermutation adds, for every node of one side, an
// at-least-one clause over its permutation variables and pairwise
// at-most-one clauses.
func (enc *Encoding) addExactlyOnePermutation(n, perms int, varOf func(node, i int) int) {
	for node := 0; node < n; node++ {
		if perms == 0 {
			continue
		}
		atLeastOne := make(Clause, perms)
		for i := 0; i < perms; i++ {
			atLeastOne[i] = varOf(node, i)
		}
		enc.Clauses = append(enc.Clauses, atLeastOne)

		for i := 0; i < perms; i++ {
			for j := i + 1; j < perms; j++ {
				enc.Clauses = append(enc.Clauses, Clause{-varOf(node, i), -varOf(node, j)})
			}
		}
	}
}

// addPermutationImpliesLabels adds, for every node, every permutation of
// that side, and every incident edge (in the node's fixed edge-iteration
// order), the implication clause forcing the matching port label: if node
// uses permutation i = (l_0,...,l_{d-1}), its k-th incident edge (per
// neighbors' fixed order) must carry label l_k on this side.
func (enc *Encoding) addPermutationImpliesLabels(
	n int,
	perms []label.Configuration,
	varOf func(node, i int) int,
	labVarOf func(edge int, lab label.Label) int,
	neighbors func(node int) []int,
) {
	for node := 0; node < n; node++ {
		edges := neighbors(node)
		for i, perm := range perms {
			for k, lab := range perm {
				if k >= len(edges) {
					break
				}
				enc.Clauses = append(enc.Clauses, Clause{
					-varOf(node, i),
					labVarOf(edges[k], lab),
				})
			}
		}
	}
}
