// Package runlog reconstructs structured classification records from the
// free-form console output of a document-classification run.
//
// The log format carries no contract, so this is a tolerant line scanner
// rather than a strict parser: lines that match nothing are skipped, and
// a document block with missing fields still yields a record so that the
// evaluation can surface "no prediction" as its own failure mode. Keep
// callers on ClassificationRecord only; a future structured log format
// should be able to replace this package without touching the evaluator.
package runlog

import (
	"bufio"
	"regexp"
	"strconv"
	"strings"

	"github.com/nplvision/loanlens/internal/models"
)

// scanner states
type state int

const (
	stateAwaitingMarker state = iota
	stateAccumulating
)

var (
	// 📄 note_12345.pdf
	documentMarkerRe = regexp.MustCompile(`📄\s*(\S.*)`)
	// → Predicted Type: Note
	predictedTypeRe = regexp.MustCompile(`→\s*Predicted Type:\s*(.+)`)
	// → Confidence: 92.50%
	confidenceRe = regexp.MustCompile(`→\s*Confidence:\s*([0-9]+(?:\.[0-9]+)?)%`)
	// - Note: 12.5
	labelScoreRe = regexp.MustCompile(`^\s*-\s*(.+?):\s*(-?[0-9]+(?:\.[0-9]+)?)\s*$`)
)

// Parse scans the classifier run log and returns one record per document
// block, in encounter order. Parse never fails: malformed lines are
// skipped and partial blocks are kept as-is.
func Parse(logText string) []models.ClassificationRecord {
	var (
		records []models.ClassificationRecord
		current models.ClassificationRecord
		st      = stateAwaitingMarker
	)

	finalize := func() {
		if st == stateAccumulating {
			records = append(records, current)
		}
	}

	sc := bufio.NewScanner(strings.NewReader(logText))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()

		if m := documentMarkerRe.FindStringSubmatch(line); m != nil {
			finalize()
			current = models.ClassificationRecord{FileName: strings.TrimSpace(m[1])}
			st = stateAccumulating
			continue
		}

		if st != stateAccumulating {
			continue
		}

		switch {
		case predictedTypeRe.MatchString(line):
			m := predictedTypeRe.FindStringSubmatch(line)
			current.PredictedType = strings.TrimSpace(m[1])
		case confidenceRe.MatchString(line):
			m := confidenceRe.FindStringSubmatch(line)
			if pct, err := strconv.ParseFloat(m[1], 64); err == nil {
				current.Confidence = pct / 100
			}
		case labelScoreRe.MatchString(line):
			m := labelScoreRe.FindStringSubmatch(line)
			score, err := strconv.ParseFloat(m[2], 64)
			if err != nil {
				break
			}
			if current.Scores == nil {
				current.Scores = make(map[string]float64)
			}
			current.Scores[strings.TrimSpace(m[1])] = score
		}
	}

	// end of input finalizes the in-progress record
	finalize()
	return records
}
