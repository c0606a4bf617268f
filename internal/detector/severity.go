package detector

import (
	"promptwatch-backend/internal/database/models"
)

// ResolveSeverity reduces a finding list to the highest severity present, or
// SeverityNone for an empty list. The result depends only on the severity
// values present, never on finding order.
func ResolveSeverity(findings []Finding) models.Severity {
	overall := models.SeverityNone
	for _, f := range findings {
		if f.Severity.Rank() > overall.Rank() {
			overall = f.Severity
		}
	}
	return overall
}
