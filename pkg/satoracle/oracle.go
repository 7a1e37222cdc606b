// Package satoracle adapts satenc's clause lists to an in-process CDCL
// solver (github.com/go-air/gini), returning a tri-state result so the
// search driver can distinguish a genuine UNSAT proof from an
// inconclusive run.
package satoracle

import (
	"context"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
	"github.com/pkg/errors"

	"github.com/nclcl/classifier/pkg/satenc"
)

// Status is the outcome of one solve.
type Status int

const (
	// Unknown means the solver could not decide within the deadline; the
	// caller must treat this as "no witness here", not as UNSAT.
	Unknown Status = iota
	Sat
	Unsat
)

func (s Status) String() string {
	switch s {
	case Sat:
		return "SAT"
	case Unsat:
		return "UNSAT"
	default:
		return "UNKNOWN"
	}
}

// Result is the oracle's answer for one encoding: Status, and, when
// Status is Sat, a Model usable with satenc.Decode.
type Result struct {
	Status Status
	Model  func(v int) bool
}

// Solve asserts enc's clauses into a fresh solver instance and solves,
// honoring ctx's deadline if one is set. A context that is never
// cancelled and carries no deadline runs the solver to completion.
func Solve(ctx context.Context, enc satenc.Encoding) (Result, error) {
	g := gini.New()
	for _, c := range enc.Clauses {
		for _, lit := range c {
			g.Add(z.Dimacs2Lit(lit))
		}
		g.Add(z.LitNull)
	}

	outcome, err := solveWithContext(ctx, g)
	if err != nil {
		return Result{}, errors.Wrap(err, "satoracle: solve")
	}

	switch outcome {
	case 1:
		return Result{Status: Sat, Model: func(v int) bool {
			return g.Value(z.Dimacs2Lit(v))
		}}, nil
	case -1:
		return Result{Status: Unsat}, nil
	default:
		return Result{Status: Unknown}, nil
	}
}

// solveWithContext runs g.Solve() (or g.Try(d) when ctx has a deadline),
// returning gini's raw outcome code: 1 sat, -1 unsat, 0 unknown/timeout.
// gini has no native context support: ctx is checked once before
// solving, a ctx with a deadline bounds the solve with Try(remaining
// time), and a ctx without a deadline calls Solve() directly, so a
// cancellation that arrives after solving starts is not observed.
func solveWithContext(ctx context.Context, g *gini.Gini) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	deadline, ok := ctx.Deadline()
	if !ok {
		return g.Solve(), nil
	}

	budget := time.Until(deadline)
	if budget <= 0 {
		return 0, context.DeadlineExceeded
	}
	return g.Try(budget), nil
}
