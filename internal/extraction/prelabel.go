package extraction

import "strings"

// Pre-label values. These are the text-derived training labels, a wider
// vocabulary than the evaluation classes: pre-labeling feeds dataset
// preparation, not the confusion matrix.
const (
	PreLabelNote         = "Note"
	PreLabelAllonge      = "Allonge"
	PreLabelAssignment   = "Assignment"
	PreLabelMortgage     = "Mortgage"
	PreLabelDeedOfTrust  = "Deed of Trust"
	PreLabelRider        = "Rider"
	PreLabelBaileeLetter = "Bailee Letter"
	PreLabelUnlabeled    = "UNLABELED"
)

// PreLabel assigns a document label from page text using priority-ordered
// phrase checks. Higher-priority rules run first to prevent the common
// misclassifications: a note references its mortgage, an assignment
// references both instruments.
func PreLabel(text string) string {
	upper := strings.ToUpper(text)

	if strings.Contains(upper, "NOTE") && strings.Contains(upper, "PROMISE TO PAY") {
		return PreLabelNote
	}
	if strings.Contains(upper, "ALLONGE") {
		return PreLabelAllonge
	}
	if strings.Contains(upper, "ASSIGNMENT OF MORTGAGE") || strings.Contains(upper, "ASSIGNMENT OF DEED OF TRUST") {
		return PreLabelAssignment
	}
	if strings.Contains(upper, "MORTGAGE") && strings.Contains(upper, "THIS MORTGAGE") {
		return PreLabelMortgage
	}
	if strings.Contains(upper, "DEED OF TRUST") {
		return PreLabelDeedOfTrust
	}

	// lower-priority document types last
	if strings.Contains(upper, "RIDER") {
		return PreLabelRider
	}
	if strings.Contains(upper, "BAILEE LETTER") {
		return PreLabelBaileeLetter
	}

	return PreLabelUnlabeled
}
