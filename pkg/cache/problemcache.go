package cache

import (
	"database/sql"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/nclcl/classifier/pkg/lclproblem"
)

// ReadProblems returns the cached normalized problem class for (dA, dP,
// labelCount), and false if no such entry exists or the stored blob is
// unreadable.
func ReadProblems(db *sql.DB, dA, dP, labelCount int) ([]lclproblem.Problem, bool) {
	var data []byte
	err := db.QueryRow(
		`SELECT data FROM problem_class WHERE degree_a = ? AND degree_p = ? AND label_count = ?`,
		dA, dP, labelCount,
	).Scan(&data)
	switch {
	case err == sql.ErrNoRows:
		return nil, false
	case err != nil:
		logrus.WithError(err).WithFields(logrus.Fields{"degree_a": dA, "degree_p": dP, "label_count": labelCount}).
			Warn("cache: problem batch read failed, falling back to recomputation")
		return nil, false
	}

	problems, err := decodeProblemBatch(data)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{"degree_a": dA, "degree_p": dP, "label_count": labelCount}).
			Warn("cache: problem batch corrupt, falling back to recomputation")
		return nil, false
	}
	return problems, true
}

// WriteProblems stores the full normalized problem class for (dA, dP,
// labelCount), replacing any prior entry at that key.
func WriteProblems(db *sql.DB, dA, dP, labelCount int, problems []lclproblem.Problem) error {
	data, err := encodeProblemBatch(problems)
	if err != nil {
		return errors.Wrap(err, "cache: encode problem batch")
	}
	_, err = db.Exec(
		`INSERT INTO problem_class (degree_a, degree_p, label_count, data) VALUES (?, ?, ?, ?)
		 ON CONFLICT (degree_a, degree_p, label_count) DO UPDATE SET data = excluded.data`,
		dA, dP, labelCount, data,
	)
	if err != nil {
		return errors.Wrap(err, "cache: write problem batch")
	}
	return nil
}
