package reporting

import (
	"fmt"
	"strings"

	"github.com/nplvision/loanlens/internal/models"
)

// InterpretAccuracy returns a plain-language label for an accuracy
// percentage (0–100).
func InterpretAccuracy(pct float64) string {
	switch {
	case pct > 90:
		return "Excellent (>90%)"
	case pct >= 70:
		return "Good (70-90%)"
	case pct >= 50:
		return "Needs Work (50-70%)"
	default:
		return "Poor (<50%)"
	}
}

// InterpretClass explains a single class's precision/recall balance.
func InterpretClass(label models.ClassLabel, m models.ClassMetrics) string {
	switch {
	case m.Total == 0:
		return fmt.Sprintf("%s: no documents of this type in the run.", label)
	case m.Precision >= 90 && m.Recall >= 90:
		return fmt.Sprintf("%s: reliable — the classifier both finds and correctly labels these documents.", label)
	case m.Precision < m.Recall:
		return fmt.Sprintf("%s: over-predicted — other document types are being mislabeled as %s (precision %.2f%%).", label, label, m.Precision)
	case m.Recall < m.Precision:
		return fmt.Sprintf("%s: under-predicted — real %s documents are being missed (recall %.2f%%).", label, label, m.Recall)
	default:
		return fmt.Sprintf("%s: precision and recall are balanced at %.2f%%.", label, m.Precision)
	}
}

// FormatInterpretation produces a full plain-language reading of an
// evaluation summary, class by class in declaration order.
func FormatInterpretation(summary *models.EvaluationSummary) string {
	var b strings.Builder

	b.WriteString("=== Interpretation ===\n\n")
	b.WriteString(fmt.Sprintf("Overall Accuracy: %.2f%% — %s\n", summary.OverallAccuracy, InterpretAccuracy(summary.OverallAccuracy)))
	b.WriteString(fmt.Sprintf("Documents:        %d evaluated\n", summary.TotalFiles))

	b.WriteString("\nPer-Class Interpretation:\n")
	for _, label := range models.AllLabels() {
		m, ok := summary.ByDocumentType[label]
		if !ok {
			continue
		}
		b.WriteString(fmt.Sprintf("  %s\n", InterpretClass(label, m)))
	}

	misses := 0
	for _, d := range summary.DetailedResults {
		if !d.Correct {
			misses++
		}
	}
	if misses > 0 {
		b.WriteString(fmt.Sprintf("\n%d document(s) were misclassified; see detailedResults in the report file.\n", misses))
	}

	return b.String()
}
