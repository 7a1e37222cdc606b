// Package svgexport renders witness graphs to SVG by shelling out to an
// external `dot` binary (spec.md §6's "external dot→SVG pipeline").
package svgexport

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"github.com/nclcl/classifier/pkg/graph"
	"github.com/nclcl/classifier/pkg/lclproblem"
)

// DefaultTimeout bounds a single dot invocation; a hung or missing dot
// binary must not stall the whole search.
const DefaultTimeout = 10 * time.Second

// Export renders g as a dot graph and pipes it through `dot -Tsvg` into
// dir/<problem>; n=<n>; G=<idx>.svg, per spec.md §6's naming scheme.
// Failures are returned to the caller, who per spec.md §7 logs and skips
// rather than aborting the run.
func Export(ctx context.Context, dir string, p lclproblem.Problem, n, idx int, g graph.BiregularGraph) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	name := fmt.Sprintf("%s; n=%d; G=%d.svg", p.String(), n, idx)
	path := filepath.Join(dir, name)

	cmd := exec.CommandContext(ctx, "dot", "-Tsvg")
	cmd.Stdin = bytes.NewReader([]byte(toDot(g)))
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", errors.Wrapf(err, "svgexport: dot failed: %s", stderr.String())
	}
	if err := os.WriteFile(path, out.Bytes(), 0o644); err != nil {
		return "", errors.Wrap(err, "svgexport: write svg")
	}
	return path, nil
}

// toDot renders g as a Graphviz bipartite graph description: A-vertices
// prefixed "a", P-vertices prefixed "p", one edge statement per entry in
// g.Edges (parallel edges render as repeated edge statements, which dot
// draws as distinct curves).
func toDot(g graph.BiregularGraph) string {
	var b bytes.Buffer
	b.WriteString("graph G {\n")
	for _, a := range g.A() {
		fmt.Fprintf(&b, "  a%d [shape=circle];\n", a)
	}
	for _, p := range g.P() {
		fmt.Fprintf(&b, "  p%d [shape=square];\n", p)
	}
	for _, e := range g.Edges {
		fmt.Fprintf(&b, "  a%d -- p%d;\n", e.A, e.P)
	}
	b.WriteString("}\n")
	return b.String()
}
