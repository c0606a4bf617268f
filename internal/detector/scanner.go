package detector

import (
	"promptwatch-backend/internal/database/models"
)

// Finding is one detected occurrence of a sensitive-data category within a
// scanned text. Value holds the raw matched text; it must be masked before
// leaving the capture pipeline.
type Finding struct {
	Category    string
	Severity    models.Severity
	Label       string
	Value       string
	MaskedValue string
	Start       int
	End         int
}

// Scanner applies a registry to raw text. It holds no mutable state and is
// safe for concurrent use across unrelated requests.
type Scanner struct {
	registry *Registry
}

// NewScanner creates a scanner over the given registry
func NewScanner(registry *Registry) *Scanner {
	return &Scanner{registry: registry}
}

// Scan returns every match across all categories, traversing categories in
// registry order and matches left-to-right within a category. Overlapping
// matches from different categories are all reported; there is no
// deduplication. Empty or non-matching text yields an empty slice.
//
// Scan is pure: identical input always produces an identical, order-stable
// finding sequence.
func (s *Scanner) Scan(text string) []Finding {
	findings := []Finding{}
	if text == "" {
		return findings
	}

	for _, desc := range s.registry.Descriptors() {
		locs := desc.Pattern.FindAllStringIndex(text, -1)
		for _, loc := range locs {
			value := text[loc[0]:loc[1]]
			findings = append(findings, Finding{
				Category:    desc.Category,
				Severity:    desc.Severity,
				Label:       desc.Label,
				Value:       value,
				MaskedValue: Mask(desc.Category, value),
				Start:       loc[0],
				End:         loc[1],
			})
		}
	}

	return findings
}
