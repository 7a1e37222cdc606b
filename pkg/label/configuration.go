package label

import "sort"

// Configuration is a fixed-width vector of labels naming the degree-many
// ports of one node. Order is significant for the SAT encoder's
// port-permutation view but not for problem equality — see Sort.
type Configuration []Label

// Clone returns a copy of c that shares no backing array with it.
func (c Configuration) Clone() Configuration {
	out := make(Configuration, len(c))
	copy(out, c)
	return out
}

// Sort returns a copy of c with its labels sorted ascending.
func (c Configuration) Sort() Configuration {
	out := c.Clone()
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Compare returns -1, 0, or 1 according to the lexicographic order of c and
// other, comparing element-by-element and then by length.
func (c Configuration) Compare(other Configuration) int {
	n := len(c)
	if len(other) < n {
		n = len(other)
	}
	for i := 0; i < n; i++ {
		if c[i] != other[i] {
			if c[i] < other[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(c) < len(other):
		return -1
	case len(c) > len(other):
		return 1
	default:
		return 0
	}
}

// Equal reports whether c and other carry identical labels in the same
// order.
func (c Configuration) Equal(other Configuration) bool {
	return c.Compare(other) == 0
}

// MapLabels returns a copy of c with every label replaced by perm[label].
func (c Configuration) MapLabels(perm []Label) Configuration {
	out := make(Configuration, len(c))
	for i, l := range c {
		out[i] = perm[l]
	}
	return out
}

// Contains reports whether c uses any label present in labels.
func (c Configuration) Contains(labels map[Label]struct{}) bool {
	for _, l := range c {
		if _, ok := labels[l]; ok {
			return true
		}
	}
	return false
}

// String renders c as a sequence of single-character labels, e.g. "AAB".
func (c Configuration) String() string {
	b := make([]byte, 0, len(c))
	for _, l := range c {
		b = append(b, []byte(l.String())...)
	}
	return string(b)
}

// permutations returns every distinct ordering of c's labels, sorted
// lexicographically.
func (c Configuration) permutations() []Configuration {
	if len(c) == 0 {
		return []Configuration{{}}
	}
	seen := make(map[string]struct{})
	var out []Configuration
	buf := c.Clone()
	var permute func(k int)
	permute = func(k int) {
		if k == len(buf) {
			cand := buf.Clone()
			key := cand.String()
			if _, ok := seen[key]; !ok {
				seen[key] = struct{}{}
				out = append(out, cand)
			}
			return
		}
		for i := k; i < len(buf); i++ {
			buf[k], buf[i] = buf[i], buf[k]
			permute(k + 1)
			buf[k], buf[i] = buf[i], buf[k]
		}
	}
	permute(0)
	sort.Slice(out, func(i, j int) bool { return out[i].Compare(out[j]) < 0 })
	return out
}
