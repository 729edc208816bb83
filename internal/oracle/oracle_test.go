package oracle

import (
	"testing"

	"github.com/nplvision/loanlens/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestTrueLabel(t *testing.T) {
	o := New()

	tests := []struct {
		name     string
		fileName string
		expect   models.ClassLabel
	}{
		{"plain_note", "note_12345.pdf", models.LabelNote},
		{"note_uppercase", "NOTE_98765.PDF", models.LabelNote},
		{"notebook_exclusion", "the_notebook_scan.pdf", models.LabelOther},
		{"mortgage", "mortgage_55521.pdf", models.LabelSecurityInstrument},
		{"deed_of_trust_underscore", "deed_of_trust_1001.pdf", models.LabelSecurityInstrument},
		{"deed_of_trust_spaces", "deed of trust 1001.pdf", models.LabelSecurityInstrument},
		{"allonge", "allonge_777.pdf", models.LabelAllonge},
		{"assignment", "assignment_31.pdf", models.LabelAssignment},
		{"aom_token", "aom_2231.pdf", models.LabelAssignment},
		// precedence: "mortgage" + "assignment" resolves to Assignment
		// because the mortgage rule excludes assignment filenames
		{"mortgage_assignment", "mortgage_assignment_99.pdf", models.LabelAssignment},
		// "note" outranks "allonge" when both appear
		{"note_and_allonge", "note_allonge_4.pdf", models.LabelNote},
		{"unmatched", "bailee_letter_17.pdf", models.LabelOther},
		{"empty", "", models.LabelOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, o.TrueLabel(tt.fileName))
		})
	}
}

func TestTrueLabel_AlwaysResolves(t *testing.T) {
	o := New()
	// catch-all: any filename yields exactly one label
	for _, name := range []string{"x", "1234.tif", "loan_file.csv", "deed.pdf"} {
		label := o.TrueLabel(name)
		_, ok := models.ParseLabel(string(label))
		assert.True(t, ok, "label %q for %q should be a known class", label, name)
	}
}
