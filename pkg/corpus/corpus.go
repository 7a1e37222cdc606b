// Package corpus is a read-only adapter onto an external PostgreSQL
// table of previously-classified LCL problems (spec.md §6), used by the
// fetch_problems subcommand to seed local searches from published
// results instead of re-deriving a problem class from scratch.
package corpus

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/nclcl/classifier/pkg/label"
	"github.com/nclcl/classifier/pkg/lclproblem"
)

// Filter selects which rows of the problems table to import.
type Filter struct {
	DegreeActive  int
	DegreePassive int
	LabelCount    int

	// Shard, if Modulus > 0, restricts the import to rows where
	// id % Modulus == Shard.
	Modulus int
	Shard   int
}

// Row is one imported problem before the from_lcl_classifier round-trip
// normalizes it.
type Row struct {
	ID      int64
	Problem lclproblem.Problem
}

// Open connects to the PostgreSQL corpus at dbURL.
func Open(dbURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		return nil, errors.Wrap(err, "corpus: open")
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "corpus: ping")
	}
	return db, nil
}

// Fetch queries the problems table per spec.md §6's fixed filters
// (is_tree, is_directed_or_rooted, det_lower_bound) plus f's degree,
// label, and optional sharding filters, and parses each row's
// constraints text into a Problem. Every row is parsed against its own
// fresh label.Map, so callers wanting a consistent alphabet across rows
// should normalize (see Normalize) rather than rely on raw label
// identity.
func Fetch(db *sql.DB, f Filter) ([]Row, error) {
	query, args := buildQuery(f)

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "corpus: query")
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var id int64
		var active, passive []string
		if err := rows.Scan(&id, pq.Array(&active), pq.Array(&passive)); err != nil {
			return nil, errors.Wrap(err, "corpus: scan row")
		}
		m := label.NewMap()
		text := strings.Join(active, " ") + "; " + strings.Join(passive, " ")
		p, err := lclproblem.Parse(text, m)
		if err != nil {
			return nil, errors.Wrapf(err, "corpus: parse problem id=%d", id)
		}
		out = append(out, Row{ID: id, Problem: p})
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "corpus: iterate rows")
	}
	return out, nil
}

// buildQuery renders f into the problems query and its positional
// arguments. Pulled out of Fetch so the filter logic is testable without
// a live database connection.
func buildQuery(f Filter) (string, []interface{}) {
	query := `
SELECT id, active_constraints, passive_constraints
FROM problems
WHERE is_tree = true
  AND is_directed_or_rooted = false
  AND det_lower_bound = '(1)'
  AND active_degree = $1
  AND passive_degree = $2
  AND label_count = $3`
	args := []interface{}{f.DegreeActive, f.DegreePassive, f.LabelCount}
	if f.Modulus > 0 {
		query += fmt.Sprintf(" AND id %% %d = %d", f.Modulus, f.Shard)
	}
	return query, args
}

// Normalize purges and then normalizes every imported row's problem, so
// corpus text using a different label alphabet than a locally authored
// problem normalizes to the same representative (the
// "from_lcl_classifier round-trip" behavior).
func Normalize(rows []Row) []lclproblem.Problem {
	out := make([]lclproblem.Problem, len(rows))
	for i, r := range rows {
		out[i] = r.Problem.Purge().Normalize()
	}
	return out
}
