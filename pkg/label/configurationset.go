package label

import (
	"sort"
	"strings"
	"sync"
)

// ConfigurationSet is an ordered list of Configurations that together make
// up one side (active or passive) of an LCL problem.
type ConfigurationSet []Configuration

// Parse reads a whitespace-separated list of configuration tokens, each a
// sequence of single-character labels, assigning identifiers in m as new
// characters are encountered. All tokens must have equal width, matching
// the degree of this side; Parse returns *MalformedInput otherwise.
func Parse(text string, m *Map) (ConfigurationSet, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil, &MalformedInput{Text: text, Reason: "no configuration tokens"}
	}
	out := make(ConfigurationSet, 0, len(fields))
	width := -1
	for _, tok := range fields {
		runes := []rune(tok)
		if width == -1 {
			width = len(runes)
		} else if len(runes) != width {
			return nil, &MalformedInput{Text: text, Reason: "configuration tokens have unequal width"}
		}
		cfg := make(Configuration, len(runes))
		for i, r := range runes {
			cfg[i] = m.Lookup(r)
		}
		out = append(out, cfg)
	}
	return out, nil
}

// Clone returns a deep copy of cs.
func (cs ConfigurationSet) Clone() ConfigurationSet {
	out := make(ConfigurationSet, len(cs))
	for i, c := range cs {
		out[i] = c.Clone()
	}
	return out
}

// Sort sorts each configuration's labels ascending, then sorts the list of
// configurations lexicographically. Idempotent.
func (cs ConfigurationSet) Sort() ConfigurationSet {
	out := make(ConfigurationSet, len(cs))
	for i, c := range cs {
		out[i] = c.Sort()
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Compare(out[j]) < 0 })
	return out
}

// Compare returns -1, 0, or 1 comparing cs and other lexicographically,
// configuration by configuration and then by length.
func (cs ConfigurationSet) Compare(other ConfigurationSet) int {
	n := len(cs)
	if len(other) < n {
		n = len(other)
	}
	for i := 0; i < n; i++ {
		if c := cs[i].Compare(other[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(cs) < len(other):
		return -1
	case len(cs) > len(other):
		return 1
	default:
		return 0
	}
}

// Equal reports whether cs and other hold identical configurations in the
// same order.
func (cs ConfigurationSet) Equal(other ConfigurationSet) bool {
	return cs.Compare(other) == 0
}

// MapLabels returns a new set with every label replaced by perm[label].
// perm must be a permutation of [0, max_label].
func (cs ConfigurationSet) MapLabels(perm []Label) ConfigurationSet {
	out := make(ConfigurationSet, len(cs))
	for i, c := range cs {
		out[i] = c.MapLabels(perm)
	}
	return out
}

// LabelSet returns the set of labels appearing in at least one
// configuration.
func (cs ConfigurationSet) LabelSet() map[Label]struct{} {
	out := make(map[Label]struct{})
	for _, c := range cs {
		for _, l := range c {
			out[l] = struct{}{}
		}
	}
	return out
}

// RemoveContaining drops every configuration that contains any label in
// labels, returning the filtered set.
func (cs ConfigurationSet) RemoveContaining(labels map[Label]struct{}) ConfigurationSet {
	out := make(ConfigurationSet, 0, len(cs))
	for _, c := range cs {
		if !c.Contains(labels) {
			out = append(out, c)
		}
	}
	return out
}

// Permutations produces, for each configuration in cs, the set of its
// distinct label orderings. The outer slice follows cs's order; each inner
// slice is sorted lexicographically.
func (cs ConfigurationSet) Permutations() [][]Configuration {
	out := make([][]Configuration, len(cs))
	for i, c := range cs {
		out[i] = c.permutations()
	}
	return out
}

// String renders cs as whitespace-separated tokens, e.g. "AAB AAC".
func (cs ConfigurationSet) String() string {
	tokens := make([]string, len(cs))
	for i, c := range cs {
		tokens[i] = c.String()
	}
	return strings.Join(tokens, " ")
}

// powersetCache memoizes Powerset(d,k) by (d,k): EnumerateClass calls it
// once per side per (dA,dP,k) triple, and repeated class/corpus runs over
// shared degree/label counts would otherwise redo the same subset
// enumeration every time.
var powersetCache sync.Map // map[[2]int][]ConfigurationSet

// Powerset returns all non-empty subsets of Multisets_d([0,k)) as
// ConfigurationSets, one configuration set entry per non-empty subset of
// the sorted-ascending d-multisets over k labels. Used to enumerate one
// side of a problem class. Results are memoized by (d,k); callers must
// not mutate the returned sets in place (the standard Clone-before-mutate
// pattern that EnumerateClass already follows is safe).
func Powerset(d, k int) []ConfigurationSet {
	key := [2]int{d, k}
	if cached, ok := powersetCache.Load(key); ok {
		return cached.([]ConfigurationSet)
	}
	out := computePowerset(d, k)
	powersetCache.Store(key, out)
	return out
}

func computePowerset(d, k int) []ConfigurationSet {
	multisets := multisetsOfSize(d, k)
	n := len(multisets)
	if n == 0 || n > 20 {
		// n>20 would mean more than two million subsets (1<<21)
		// and is far beyond any (d,k) this tool is run with; callers
		// enumerating problem classes keep d,k small by construction.
		if n > 20 {
			panic("label: Powerset: too many base multisets to enumerate subsets of")
		}
	}
	var out []ConfigurationSet
	for mask := 1; mask < (1 << uint(n)); mask++ {
		var set ConfigurationSet
		for i, m := range multisets {
			if mask&(1<<uint(i)) != 0 {
				set = append(set, m)
			}
		}
		out = append(out, set)
	}
	return out
}

// multisetsOfSize returns every non-decreasing sequence of length d over
// [0,k), i.e. every multiset of size d drawn from k labels, in
// lexicographic order.
func multisetsOfSize(d, k int) []Configuration {
	if d == 0 || k == 0 {
		return nil
	}
	var out []Configuration
	cur := make(Configuration, d)
	var gen func(pos int, min Label)
	gen = func(pos int, min Label) {
		if pos == d {
			out = append(out, cur.Clone())
			return
		}
		for l := min; int(l) < k; l++ {
			cur[pos] = l
			gen(pos+1, l)
		}
	}
	gen(0, 0)
	return out
}
