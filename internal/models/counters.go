package models

import "math"

// ClassCounters holds the per-class confusion counts gathered during a
// single evaluation pass. Counters only ever increment.
type ClassCounters struct {
	TruePositive  int `json:"true_positives"`
	FalsePositive int `json:"false_positives"`
	FalseNegative int `json:"false_negatives"`
	Total         int `json:"total"`
}

// Precision returns TP / (TP + FP) as a fraction in [0,1].
// Returns 0 when the denominator is 0.
func (c ClassCounters) Precision() float64 {
	return safeDivide(float64(c.TruePositive), float64(c.TruePositive+c.FalsePositive))
}

// Recall returns TP / (TP + FN) as a fraction in [0,1].
// Returns 0 when the denominator is 0.
func (c ClassCounters) Recall() float64 {
	return safeDivide(float64(c.TruePositive), float64(c.TruePositive+c.FalseNegative))
}

// F1 returns the harmonic mean of precision and recall as a fraction
// in [0,1]. Returns 0 when precision + recall is 0.
func (c ClassCounters) F1() float64 {
	p := c.Precision()
	r := c.Recall()
	if p+r == 0 {
		return 0
	}
	return 2 * p * r / (p + r)
}

// RoundPercent converts a fraction in [0,1] to a percentage rounded to
// 2 decimal places. All reported metrics go through this so that a given
// input always produces identical report bytes.
func RoundPercent(frac float64) float64 {
	return math.Round(frac*10000) / 100
}

func safeDivide(num, den float64) float64 {
	if den == 0 {
		return 0.0
	}
	return num / den
}
