package schema

import "strings"

// UnknownType is the file type reported when no signature reaches the
// coverage threshold. It is a valid outcome, not an error.
const UnknownType = "unknown"

// MatchResult describes how a header row scored against the registry.
// For a winning signature, MatchedHeaders and MissingHeaders partition
// its canonical headers; for UnknownType both are empty and Confidence
// still carries the best coverage observed, so callers can see how close
// the nearest candidate came.
type MatchResult struct {
	FileType string `json:"file_type"`
	// Confidence is the winning schema's coverage percentage in [0,100].
	Confidence     float64  `json:"confidence"`
	MatchedHeaders []string `json:"matched_headers,omitempty"`
	MissingHeaders []string `json:"missing_headers,omitempty"`
}

// Match scores the header row against every registered signature and
// returns the best match, or UnknownType when nothing reaches the
// threshold. Pure function of the inputs and the registry; safe for
// concurrent callers.
func (r *Registry) Match(headers []string) MatchResult {
	normalized := make([]string, 0, len(headers))
	for _, h := range headers {
		normalized = append(normalized, normalizeHeader(h))
	}

	best := MatchResult{FileType: UnknownType}
	maxCoverage := 0.0

	for _, sig := range r.signatures {
		matched, missing := coverHeaders(sig.CanonicalHeaders, normalized)
		coverage := float64(len(matched)) / float64(len(sig.CanonicalHeaders)) * 100

		if coverage > maxCoverage {
			maxCoverage = coverage
		}

		// Strictly-greater keeps the earlier (more specific) signature on
		// ties; registry order is the documented priority.
		if coverage >= r.threshold && coverage > best.Confidence {
			best = MatchResult{
				FileType:       sig.TypeTag,
				Confidence:     coverage,
				MatchedHeaders: matched,
				MissingHeaders: missing,
			}
		}
	}

	if best.FileType == UnknownType {
		best.Confidence = maxCoverage
	}
	return best
}

// coverHeaders partitions canonical headers into matched and missing.
// A canonical header counts as matched when any input header equals it
// or contains it as a substring; the asymmetric containment absorbs
// variants like "Loan ID #" matching "loan id".
func coverHeaders(canonical, inputs []string) (matched, missing []string) {
	for _, want := range canonical {
		if anyHeaderMatches(inputs, want) {
			matched = append(matched, want)
		} else {
			missing = append(missing, want)
		}
	}
	return matched, missing
}

func anyHeaderMatches(inputs []string, canonical string) bool {
	for _, in := range inputs {
		if in == canonical || strings.Contains(in, canonical) {
			return true
		}
	}
	return false
}
