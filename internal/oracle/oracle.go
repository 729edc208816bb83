// Package oracle derives ground-truth labels from filename conventions.
// It is a deliberately simple, auditable stand-in for manual labeling:
// downstream reports are calibrated against this exact precedence order,
// so the rules must not be "improved" without re-baselining.
package oracle

import (
	"strings"

	"github.com/nplvision/loanlens/internal/models"
)

// rule maps a filename (already lowercased) to a label. Rules run
// top-to-bottom; the first match wins.
type rule struct {
	matches func(name string) bool
	label   models.ClassLabel
}

// Oracle resolves a document's true class from its filename.
type Oracle struct {
	rules []rule
}

// New returns the oracle with the standard loan-document rules.
//
// Precedence is what resolves co-occurring tokens: a mortgage assignment
// filename contains both "mortgage" and "assignment", and the explicit
// exclusion on the mortgage rule is what routes it to Assignment.
func New() *Oracle {
	return &Oracle{rules: []rule{
		// "notebook" is the known literary false positive for "note"
		{
			matches: func(n string) bool {
				return strings.Contains(n, "note") && !strings.Contains(n, "notebook")
			},
			label: models.LabelNote,
		},
		{
			matches: func(n string) bool {
				return strings.Contains(n, "mortgage") && !strings.Contains(n, "assignment")
			},
			label: models.LabelSecurityInstrument,
		},
		{
			matches: func(n string) bool {
				return strings.Contains(n, "deed_of_trust") || strings.Contains(n, "deed of trust")
			},
			label: models.LabelSecurityInstrument,
		},
		{
			matches: func(n string) bool { return strings.Contains(n, "allonge") },
			label:   models.LabelAllonge,
		},
		{
			matches: func(n string) bool {
				return strings.Contains(n, "assignment") || strings.Contains(n, "aom")
			},
			label: models.LabelAssignment,
		},
	}}
}

// TrueLabel returns the ground-truth class for a filename. The catch-all
// is LabelOther, so every filename resolves to exactly one label.
func (o *Oracle) TrueLabel(fileName string) models.ClassLabel {
	name := strings.ToLower(fileName)
	for _, r := range o.rules {
		if r.matches(name) {
			return r.label
		}
	}
	return models.LabelOther
}
