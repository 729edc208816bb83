package models

// ClassLabel identifies a loan document class.
type ClassLabel string

const (
	LabelNote               ClassLabel = "Note"
	LabelSecurityInstrument ClassLabel = "SecurityInstrument"
	LabelAllonge            ClassLabel = "Allonge"
	LabelAssignment         ClassLabel = "Assignment"
	LabelOther              ClassLabel = "Other"
)

// AllLabels returns every class label in declaration order. Reports and
// console output iterate classes in this order.
func AllLabels() []ClassLabel {
	return []ClassLabel{
		LabelNote,
		LabelSecurityInstrument,
		LabelAllonge,
		LabelAssignment,
		LabelOther,
	}
}

// ParseLabel maps a predicted-type string onto a known class label.
// The second return is false when the string names no known class
// (including the empty string): such predictions count against recall
// only and never inflate another class's false-positive count.
func ParseLabel(s string) (ClassLabel, bool) {
	switch ClassLabel(s) {
	case LabelNote, LabelSecurityInstrument, LabelAllonge, LabelAssignment, LabelOther:
		return ClassLabel(s), true
	default:
		return "", false
	}
}
