package cache

import (
	"database/sql"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/nclcl/classifier/pkg/graph"
)

// ReadGraphs returns the cached batch of graphs for (nodes, dA, dP), and
// false if no such entry exists. A stored-but-unreadable blob is logged
// as CacheCorrupt and treated the same as a miss, per spec.md §7.
func ReadGraphs(db *sql.DB, nodes, dA, dP int) ([]graph.BiregularGraph, bool) {
	var data []byte
	err := db.QueryRow(
		`SELECT data FROM multigraph_class WHERE nodes = ? AND degree_a = ? AND degree_p = ?`,
		nodes, dA, dP,
	).Scan(&data)
	switch {
	case err == sql.ErrNoRows:
		return nil, false
	case err != nil:
		logrus.WithError(err).WithFields(logrus.Fields{"nodes": nodes, "degree_a": dA, "degree_p": dP}).
			Warn("cache: graph batch read failed, falling back to recomputation")
		return nil, false
	}

	graphs, err := decodeGraphBatch(data)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{"nodes": nodes, "degree_a": dA, "degree_p": dP}).
			Warn("cache: graph batch corrupt, falling back to recomputation")
		return nil, false
	}
	return graphs, true
}

// WriteGraphs stores the full batch of graphs for (nodes, dA, dP),
// replacing any prior entry at that key. Callers are responsible for
// serializing concurrent writers of the same key (spec.md §5).
func WriteGraphs(db *sql.DB, nodes, dA, dP int, graphs []graph.BiregularGraph) error {
	data, err := encodeGraphBatch(dA, dP, graphs)
	if err != nil {
		return errors.Wrap(err, "cache: encode graph batch")
	}
	_, err = db.Exec(
		`INSERT INTO multigraph_class (nodes, degree_a, degree_p, data) VALUES (?, ?, ?, ?)
		 ON CONFLICT (nodes, degree_a, degree_p) DO UPDATE SET data = excluded.data`,
		nodes, dA, dP, data,
	)
	if err != nil {
		return errors.Wrap(err, "cache: write graph batch")
	}
	return nil
}
