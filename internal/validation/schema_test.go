package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validReport = `{
  "totalFiles": 2,
  "overallAccuracy": 50.0,
  "byDocumentType": {
    "Note": {"total": 1, "correct": 1, "precision": 100.0, "recall": 100.0, "f1Score": 100.0},
    "Other": {"total": 1, "correct": 0, "precision": 0, "recall": 0, "f1Score": 0}
  },
  "detailedResults": [
    {"fileName": "note_1.pdf", "trueType": "Note", "predictedType": "Note", "confidence": 0.9, "correct": true},
    {"fileName": "misc.pdf", "trueType": "Other", "predictedType": "Note", "confidence": 0.4, "correct": false}
  ]
}`

func TestValidateReportBytes_Valid(t *testing.T) {
	errs := ValidateReportBytes([]byte(validReport))
	assert.Empty(t, errs)
}

func TestValidateReportBytes_NotJSON(t *testing.T) {
	errs := ValidateReportBytes([]byte("not json at all"))
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "JSON parse error")
}

func TestValidateReportBytes_MissingRequired(t *testing.T) {
	errs := ValidateReportBytes([]byte(`{"totalFiles": 1}`))
	assert.NotEmpty(t, errs)
}

func TestValidateReportBytes_OutOfRangeAccuracy(t *testing.T) {
	errs := ValidateReportBytes([]byte(`{
	  "totalFiles": 0,
	  "overallAccuracy": 123.4,
	  "byDocumentType": {},
	  "detailedResults": []
	}`))
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0], "/overallAccuracy")
}

func TestValidateReportBytes_BadDetailRow(t *testing.T) {
	errs := ValidateReportBytes([]byte(`{
	  "totalFiles": 1,
	  "overallAccuracy": 0,
	  "byDocumentType": {},
	  "detailedResults": [
	    {"fileName": "x.pdf", "trueType": "Other", "predictedType": "", "confidence": 2.5, "correct": false}
	  ]
	}`))
	assert.NotEmpty(t, errs)
}
