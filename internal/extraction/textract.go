// Package extraction turns raw OCR output into classifier-ready text and
// pulls key loan identifiers out of it. The OCR call itself happens
// elsewhere; this package only consumes its saved JSON responses.
package extraction

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Block is one Textract block; only LINE blocks carry text we keep.
type Block struct {
	BlockType string `json:"BlockType"`
	Text      string `json:"Text"`
}

// Page is one paginated Textract response.
type Page struct {
	Blocks []Block `json:"Blocks"`
}

// ParseResponse decodes a saved Textract result. Batch jobs are stored as
// an array of paginated responses; small synchronous results as a single
// object. Both shapes are accepted.
func ParseResponse(data []byte) ([]Page, error) {
	var pages []Page
	if err := json.Unmarshal(data, &pages); err == nil {
		return pages, nil
	}

	var single Page
	if err := json.Unmarshal(data, &single); err != nil {
		return nil, fmt.Errorf("textract: unrecognized response shape: %w", err)
	}
	return []Page{single}, nil
}

// LoadResponse reads and decodes a Textract result file.
func LoadResponse(path string) ([]Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("textract: read %s: %w", path, err)
	}
	return ParseResponse(data)
}

// Text joins the detected LINE text across all pages, one line per LINE
// block, in document order.
func Text(pages []Page) string {
	var lines []string
	for _, page := range pages {
		for _, block := range page.Blocks {
			if block.BlockType == "LINE" {
				lines = append(lines, block.Text)
			}
		}
	}
	return strings.Join(lines, "\n")
}
