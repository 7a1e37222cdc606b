package label

// Map assigns small integer identifiers to characters in first-seen order,
// starting from 0. Callers reuse one Map across both sides of a problem so
// that tokens on the active and passive side are encoded consistently.
type Map struct {
	byChar  map[rune]Label
	byLabel []rune
}

// NewMap returns an empty, ready to use Map.
func NewMap() *Map {
	return &Map{byChar: make(map[rune]Label)}
}

// Lookup returns the Label assigned to c, assigning the next free Label if c
// has not been seen before.
func (m *Map) Lookup(c rune) Label {
	if l, ok := m.byChar[c]; ok {
		return l
	}
	l := Label(len(m.byLabel))
	m.byChar[c] = l
	m.byLabel = append(m.byLabel, c)
	return l
}

// Char returns the character originally assigned to l, and whether l is
// known to the map.
func (m *Map) Char(l Label) (rune, bool) {
	if int(l) < 0 || int(l) >= len(m.byLabel) {
		return 0, false
	}
	return m.byLabel[l], true
}

// Len returns the number of distinct labels assigned so far.
func (m *Map) Len() int {
	return len(m.byLabel)
}
