// Package evaluation turns parsed classification records into a
// confusion-matrix-based performance summary.
package evaluation

import (
	"github.com/nplvision/loanlens/internal/models"
	"github.com/nplvision/loanlens/internal/oracle"
)

// Evaluator accumulates classification records against ground truth.
// Accumulate keeps no state between calls, so a single Evaluator is safe
// for concurrent callers.
type Evaluator struct {
	oracle *oracle.Oracle
}

// New returns an Evaluator that derives ground truth from the given oracle.
func New(o *oracle.Oracle) *Evaluator {
	return &Evaluator{oracle: o}
}

// Accumulate runs one sequential pass over the records and produces the
// evaluation summary. It never fails: degraded records (empty prediction,
// unparseable fields) simply degrade the metrics.
//
// Bookkeeping per record: the true class always gains a Total; a correct
// prediction is a TP for that class, anything else is a FN. A wrong
// prediction additionally counts as a FP against the predicted class —
// but only when the predicted label names a recognized class. Unrecognized
// labels (including the empty string) count against recall only. That
// asymmetry is a compatibility choice with the system this evaluator is
// calibrated against, not a correctness guarantee.
func (e *Evaluator) Accumulate(records []models.ClassificationRecord) *models.EvaluationSummary {
	counters := make(map[models.ClassLabel]*models.ClassCounters, len(models.AllLabels()))
	for _, label := range models.AllLabels() {
		counters[label] = &models.ClassCounters{}
	}

	detail := make([]models.DocumentOutcome, 0, len(records))

	for _, rec := range records {
		trueLabel := e.oracle.TrueLabel(rec.FileName)
		counters[trueLabel].Total++

		correct := rec.PredictedType == string(trueLabel)
		if correct {
			counters[trueLabel].TruePositive++
		} else {
			counters[trueLabel].FalseNegative++
			if predicted, ok := models.ParseLabel(rec.PredictedType); ok {
				counters[predicted].FalsePositive++
			}
		}

		detail = append(detail, models.DocumentOutcome{
			FileName:      rec.FileName,
			TrueType:      trueLabel,
			PredictedType: rec.PredictedType,
			Confidence:    rec.Confidence,
			Correct:       correct,
		})
	}

	// Metrics are derived only after the full pass so that rounding never
	// depends on record order.
	byType := make(map[models.ClassLabel]models.ClassMetrics, len(counters))
	totalCorrect := 0
	for label, c := range counters {
		totalCorrect += c.TruePositive
		byType[label] = models.ClassMetrics{
			Total:     c.Total,
			Correct:   c.TruePositive,
			Precision: models.RoundPercent(c.Precision()),
			Recall:    models.RoundPercent(c.Recall()),
			F1Score:   models.RoundPercent(c.F1()),
		}
	}

	accuracy := 0.0
	if len(records) > 0 {
		accuracy = models.RoundPercent(float64(totalCorrect) / float64(len(records)))
	}

	return &models.EvaluationSummary{
		TotalFiles:      len(records),
		OverallAccuracy: accuracy,
		ByDocumentType:  byType,
		DetailedResults: detail,
	}
}
