package cli

import (
	"strconv"

	"github.com/nclcl/classifier/pkg/label"
)

// parseInt parses a CLI positional argument as an integer, returning a
// *label.MalformedInput on failure so callers get the same error kind as
// other text-parsing failures (spec.md §7).
func parseInt(a string) (int, error) {
	v, err := strconv.Atoi(a)
	if err != nil {
		return 0, &label.MalformedInput{Text: a, Reason: "expected an integer"}
	}
	return v, nil
}
