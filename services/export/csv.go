package export

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/pkg/errors"

	"github.com/vamsidulam/exameval/core/evaluation"
)

// EvaluationSummary renders evaluation results as a CSV download.
func EvaluationSummary(results []evaluation.EvaluationResult) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"student_id", "score", "max_score", "grade", "status", "feedback"}
	if err := w.Write(header); err != nil {
		return nil, errors.Wrap(err, "writing csv header")
	}
	for _, r := range results {
		rec := []string{
			r.StudentID,
			strconv.FormatFloat(r.Score, 'f', -1, 64),
			strconv.FormatFloat(r.MaxScore, 'f', -1, 64),
			r.Grade,
			r.Status,
			r.Feedback,
		}
		if err := w.Write(rec); err != nil {
			return nil, errors.Wrap(err, "writing csv record")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
