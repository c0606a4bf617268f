package models

// Severity defines the risk rank of a finding, ordered critical > high > medium > low.
// SeverityNone is only ever an overall result for a prompt with zero findings;
// it is never stored on a Finding row.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
	SeverityNone     Severity = "none"
)

var severityRank = map[Severity]int{
	SeverityNone:     0,
	SeverityLow:      1,
	SeverityMedium:   2,
	SeverityHigh:     3,
	SeverityCritical: 4,
}

// Rank returns the position of the severity in the total order.
// Unknown values rank below "none" so they never win a comparison.
func (s Severity) Rank() int {
	return severityRank[s]
}

// IsValid checks if the Severity is a storable finding severity
func (s Severity) IsValid() bool {
	switch s {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow:
		return true
	}
	return false
}
