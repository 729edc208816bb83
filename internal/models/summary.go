package models

// ClassMetrics is the reported slice of one class in the evaluation
// summary. Precision, recall, and F1 are percentages rounded to 2
// decimal places.
type ClassMetrics struct {
	Total     int     `json:"total"`
	Correct   int     `json:"correct"`
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1Score   float64 `json:"f1Score"`
}

// DocumentOutcome is the per-document detail row retained in the report.
type DocumentOutcome struct {
	FileName      string     `json:"fileName"`
	TrueType      ClassLabel `json:"trueType"`
	PredictedType string     `json:"predictedType"`
	Confidence    float64    `json:"confidence"`
	Correct       bool       `json:"correct"`
}

// EvaluationSummary is the complete result of one evaluation run.
// It is produced once, written to durable storage, printed, and never
// mutated afterward. ByDocumentType carries every class, even those with
// zero occurrences, so downstream tooling sees a stable shape; the
// console renderer is the one that skips empty classes.
type EvaluationSummary struct {
	TotalFiles int `json:"totalFiles"`
	// OverallAccuracy is a percentage rounded to 2 decimal places.
	OverallAccuracy float64                     `json:"overallAccuracy"`
	ByDocumentType  map[ClassLabel]ClassMetrics `json:"byDocumentType"`
	DetailedResults []DocumentOutcome           `json:"detailedResults"`
}
