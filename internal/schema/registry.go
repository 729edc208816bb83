// Package schema identifies which known tabular schema a file's header
// row conforms to, by scoring header-name overlap against a registry of
// signatures.
package schema

import (
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// DefaultCoverageThreshold is the minimum coverage percentage a signature
// must reach before it can win a match.
const DefaultCoverageThreshold = 60.0

// Signature defines one known tabular schema: a type tag plus the ordered
// canonical header names that identify it.
type Signature struct {
	TypeTag          string   `mapstructure:"type_tag"`
	CanonicalHeaders []string `mapstructure:"headers"`
}

// Registry is an immutable, priority-ordered catalog of signatures.
// Declaration order is the tie-break: when two signatures reach equal
// coverage, the one registered first (most specific) wins.
type Registry struct {
	signatures []Signature
	threshold  float64
}

// NewRegistry builds a registry from the given signatures, in priority
// order. Every signature needs a unique type tag and at least one
// canonical header. Canonical headers are normalized once, up front.
func NewRegistry(signatures []Signature, threshold float64) (*Registry, error) {
	if threshold <= 0 {
		threshold = DefaultCoverageThreshold
	}

	seen := make(map[string]bool, len(signatures))
	normalized := make([]Signature, 0, len(signatures))
	for _, sig := range signatures {
		if sig.TypeTag == "" {
			return nil, fmt.Errorf("schema registry: signature with empty type tag")
		}
		if seen[sig.TypeTag] {
			return nil, fmt.Errorf("schema registry: duplicate type tag %q", sig.TypeTag)
		}
		seen[sig.TypeTag] = true

		if len(sig.CanonicalHeaders) == 0 {
			return nil, fmt.Errorf("schema registry: signature %q has no canonical headers", sig.TypeTag)
		}

		headers := make([]string, len(sig.CanonicalHeaders))
		for i, h := range sig.CanonicalHeaders {
			headers[i] = normalizeHeader(h)
		}
		normalized = append(normalized, Signature{TypeTag: sig.TypeTag, CanonicalHeaders: headers})
	}

	return &Registry{signatures: normalized, threshold: threshold}, nil
}

// DefaultRegistry returns the built-in signature catalog for loan tape
// files, most specific schema first.
func DefaultRegistry() *Registry {
	reg, err := NewRegistry(builtinSignatures(), DefaultCoverageThreshold)
	if err != nil {
		// builtins are static; a failure here is a programming error
		panic(fmt.Sprintf("schema: invalid builtin signatures: %v", err))
	}
	return reg
}

// builtinSignatures lists the known loan-servicing tape schemas.
func builtinSignatures() []Signature {
	return []Signature{
		{
			TypeTag: "foreclosure_data",
			CanonicalHeaders: []string{
				"loan id",
				"investor id",
				"fc status",
				"fc jurisdiction",
				"active fc days",
				"total fc days",
				"fc atty poc",
				"file date",
			},
		},
		{
			TypeTag: "bankruptcy_data",
			CanonicalHeaders: []string{
				"loan id",
				"investor id",
				"bk status",
				"bk chapter",
				"case number",
				"filing date",
				"poc deadline",
			},
		},
		{
			TypeTag: "servicing_data",
			CanonicalHeaders: []string{
				"loan id",
				"borrower name",
				"current upb",
				"interest rate",
				"next due date",
				"last paid date",
				"legal status",
			},
		},
	}
}

// Signatures returns the registry contents in priority order.
func (r *Registry) Signatures() []Signature {
	out := make([]Signature, len(r.signatures))
	copy(out, r.signatures)
	return out
}

// Threshold returns the minimum coverage percentage for a match.
func (r *Registry) Threshold() float64 {
	return r.threshold
}

// DecodeSignatures converts loosely-typed signature definitions (e.g.
// from a .loanlens.yaml `signatures:` list) into Signature values.
func DecodeSignatures(raw []map[string]any) ([]Signature, error) {
	signatures := make([]Signature, 0, len(raw))
	for i, params := range raw {
		var sig Signature
		if err := mapstructure.Decode(params, &sig); err != nil {
			return nil, fmt.Errorf("decoding signature %d: %w", i, err)
		}
		signatures = append(signatures, sig)
	}
	return signatures, nil
}

// normalizeHeader trims whitespace and lowercases for case-insensitive
// comparison.
func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}
