// Package lclproblem builds, purges, and normalizes LCL problems, and
// enumerates all representatives of a (dA, dP, k) problem class.
package lclproblem

import (
	"fmt"
	"strings"

	"github.com/nclcl/classifier/pkg/label"
)

// Problem is a pair of configuration sets constraining allowed label
// multisets at active and passive nodes respectively.
type Problem struct {
	Active  label.ConfigurationSet
	Passive label.ConfigurationSet
}

// Parse reads the "active_configs; passive_configs" text format (spec §6)
// into a Problem, assigning label identifiers in first-seen order via m.
func Parse(text string, m *label.Map) (Problem, error) {
	parts := strings.SplitN(text, ";", 2)
	if len(parts) != 2 {
		return Problem{}, &label.MalformedInput{Text: text, Reason: "expected \"active; passive\""}
	}
	active, err := label.Parse(strings.TrimSpace(parts[0]), m)
	if err != nil {
		return Problem{}, err
	}
	passive, err := label.Parse(strings.TrimSpace(parts[1]), m)
	if err != nil {
		return Problem{}, err
	}
	return Problem{Active: active, Passive: passive}, nil
}

// DegreeActive returns the configuration width of the active side, or 0 if
// the active side is empty.
func (p Problem) DegreeActive() int {
	if len(p.Active) == 0 {
		return 0
	}
	return len(p.Active[0])
}

// DegreePassive returns the configuration width of the passive side, or 0
// if the passive side is empty.
func (p Problem) DegreePassive() int {
	if len(p.Passive) == 0 {
		return 0
	}
	return len(p.Passive[0])
}

// Clone returns a deep copy of p.
func (p Problem) Clone() Problem {
	return Problem{Active: p.Active.Clone(), Passive: p.Passive.Clone()}
}

// Compare orders problems by comparing Active first, then Passive as
// tiebreak, per spec's canonical comparison rule.
func (p Problem) Compare(other Problem) int {
	if c := p.Active.Compare(other.Active); c != 0 {
		return c
	}
	return p.Passive.Compare(other.Passive)
}

// Equal reports whether p and other hold identical Active and Passive sets.
func (p Problem) Equal(other Problem) bool {
	return p.Compare(other) == 0
}

// Empty reports whether either side of p has no configurations.
func (p Problem) Empty() bool {
	return len(p.Active) == 0 || len(p.Passive) == 0
}

// String renders p in the "active; passive" text format.
func (p Problem) String() string {
	return fmt.Sprintf("%s; %s", p.Active, p.Passive)
}
