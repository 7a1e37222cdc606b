package satenc

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteDIMACS writes enc as a DIMACS CNF file: a header line "p cnf
// <vars> <clauses>" followed by one line per clause, each literal
// space-separated and terminated with " 0".
func (enc Encoding) WriteDIMACS(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "p cnf %d %d\n", enc.NumVars, len(enc.Clauses)); err != nil {
		return err
	}
	var sb strings.Builder
	for _, c := range enc.Clauses {
		sb.Reset()
		for _, lit := range c {
			sb.WriteString(strconv.Itoa(lit))
			sb.WriteByte(' ')
		}
		sb.WriteString("0\n")
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}
