package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/nplvision/loanlens/internal/models"
	"github.com/nplvision/loanlens/internal/reporting"
)

const (
	minSummaryWidth = 56
	maxSummaryWidth = 80
)

type writer = interface{ Write([]byte) (int, error) }

// summaryWidth sizes the horizontal rules to the terminal, within bounds.
// Non-TTY output (pipes, tests) gets the minimum width.
func summaryWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w < minSummaryWidth {
		return minSummaryWidth
	}
	if w > maxSummaryWidth {
		return maxSummaryWidth
	}
	return w
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}

// printSummary renders an evaluation summary for the console. Classes
// that never occurred in the run are omitted here; the serialized report
// retains every class.
//
//nolint:errcheck // display function — fmt.Fprintf errors to stdout are not actionable
func printSummary(w writer, summary *models.EvaluationSummary, interpret bool) {
	width := summaryWidth()

	fmt.Fprintf(w, "\n%s\n", strings.Repeat("═", width))
	fmt.Fprintf(w, " EVALUATION SUMMARY\n")
	fmt.Fprintf(w, "%s\n\n", strings.Repeat("═", width))

	fmt.Fprintf(w, "Total Files:      %d\n", summary.TotalFiles)
	fmt.Fprintf(w, "Overall Accuracy: %.2f%%\n\n", summary.OverallAccuracy)

	const nameWidth = 20
	fmt.Fprintf(w, "%s  %7s  %7s  %10s  %8s  %8s\n",
		padRight("Class", nameWidth), "Total", "Correct", "Precision", "Recall", "F1")
	fmt.Fprintf(w, "%s\n", strings.Repeat("─", width))

	for _, label := range models.AllLabels() {
		m, ok := summary.ByDocumentType[label]
		if !ok || m.Total == 0 {
			continue
		}
		fmt.Fprintf(w, "%s  %7d  %7d  %9.2f%%  %7.2f%%  %7.2f%%\n",
			padRight(string(label), nameWidth),
			m.Total, m.Correct, m.Precision, m.Recall, m.F1Score)
	}
	fmt.Fprintf(w, "\n")

	if interpret {
		fmt.Fprintf(w, "%s\n", reporting.FormatInterpretation(summary))
	}
}
