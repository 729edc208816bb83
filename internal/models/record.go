package models

// ClassificationRecord is one document's worth of classifier output,
// reconstructed from a run log. Records are immutable once the parser
// finalizes them.
type ClassificationRecord struct {
	FileName      string `json:"file_name"`
	PredictedType string `json:"predicted_type"`
	// Confidence is a fraction in [0,1] (the log carries a percentage).
	Confidence float64            `json:"confidence"`
	Scores     map[string]float64 `json:"scores,omitempty"`
}
