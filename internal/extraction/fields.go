package extraction

import (
	"regexp"
	"strings"
)

// Fields holds the loan identifiers extracted from a document's first
// page. Empty fields mean no pattern matched.
type Fields struct {
	BorrowerName    string `json:"borrower_name,omitempty"`
	PropertyAddress string `json:"property_address,omitempty"`
}

var borrowerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?im)(?:Borrower|Mortgagor|Maker|Obligor)[:\s]+([A-Z][A-Za-z]+(?:\s+[A-Z][A-Za-z]+){0,3})`),
	regexp.MustCompile(`(?im)(?:Name of Borrower|Borrower Name)[:\s]+([A-Z][A-Za-z]+(?:\s+[A-Z][A-Za-z]+){0,3})`),
	regexp.MustCompile(`(?im)(?:I/We|The undersigned),?\s+([A-Z][A-Za-z]+(?:\s+[A-Z][A-Za-z]+){0,3}),?\s+(?:promise|acknowledge|agree)`),
	regexp.MustCompile(`(?im)THIS (?:NOTE|MORTGAGE|DEED OF TRUST) is given by\s+([A-Z][A-Za-z]+(?:\s+[A-Z][A-Za-z]+){0,3})`),
}

var addressPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?im)(?:Property Address|Property Located at|Property Description)[:\s]+([0-9]+[^,\n]+(?:,\s*[^,\n]+){1,3})`),
	regexp.MustCompile(`(?im)(?:The property|Said property|Subject property) (?:is )?located at[:\s]+([0-9]+[^,\n]+(?:,\s*[^,\n]+){1,3})`),
	regexp.MustCompile(`(?im)(?:Street Address|Address)[:\s]+([0-9]+[^,\n]+(?:,\s*[^,\n]+){1,3})`),
	regexp.MustCompile(`(?im)([0-9]+\s+[A-Za-z]+\s+(?:Street|St|Avenue|Ave|Road|Rd|Drive|Dr|Lane|Ln|Court|Ct|Boulevard|Blvd)[^,\n]*(?:,\s*[^,\n]+){1,2})`),
}

var (
	whitespaceRun   = regexp.MustCompile(`\s+`)
	trailingParen   = regexp.MustCompile(`\s*\(.*\)$`)
	trailingLegalese = regexp.MustCompile(`(?i)\s*hereinafter.*$`)
)

// ExtractFields pulls the borrower name and property address out of
// first-page text.
func ExtractFields(text string) Fields {
	return Fields{
		BorrowerName:    BorrowerName(text),
		PropertyAddress: PropertyAddress(text),
	}
}

// BorrowerName extracts the borrower's name, or "" when no pattern
// matches.
func BorrowerName(text string) string {
	for _, p := range borrowerPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			// collapse OCR-induced whitespace runs
			return whitespaceRun.ReplaceAllString(trimField(m[1]), " ")
		}
	}
	return ""
}

// PropertyAddress extracts the property address, or "" when no pattern
// matches.
func PropertyAddress(text string) string {
	for _, p := range addressPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			addr := whitespaceRun.ReplaceAllString(trimField(m[1]), " ")
			addr = trailingParen.ReplaceAllString(addr, "")
			addr = trailingLegalese.ReplaceAllString(addr, "")
			return addr
		}
	}
	return ""
}

func trimField(s string) string {
	return strings.TrimSpace(s)
}
