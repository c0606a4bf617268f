package detector

import (
	"fmt"
	"os"
	"regexp"

	"promptwatch-backend/internal/database/models"

	"gopkg.in/yaml.v3"
)

// Category identifiers for the built-in detectors.
const (
	CategoryIdentityNumber  = "identity-number"
	CategoryPaymentCard     = "payment-card"
	CategoryEmailAddress    = "email-address"
	CategoryPhoneNumber     = "phone-number"
	CategoryMedicalRecord   = "medical-record-number"
	CategoryBankAccount     = "bank-account-number"
	CategorySourceCode      = "source-code-fragment"
	CategoryCredentialToken = "credential-token"
	CategoryTitledName      = "titled-person-name"
)

// Descriptor defines a single detection category: the pattern to match,
// the severity assigned to every match, and a human-readable label.
type Descriptor struct {
	Category string
	Pattern  *regexp.Regexp
	Severity models.Severity
	Label    string
}

// Registry is an immutable ordered list of category descriptors. It is built
// once at process start and passed to the scanner; iteration order determines
// finding order, so it must never be backed by a map.
type Registry struct {
	descriptors []Descriptor
}

// ruleSpec is the raw form of a descriptor before the pattern is compiled,
// used for the built-in table and the optional YAML overlay.
type ruleSpec struct {
	Category string `yaml:"category"`
	Pattern  string `yaml:"pattern"`
	Severity string `yaml:"severity"`
	Label    string `yaml:"label"`
}

// builtinRules is the fixed, ordered default rule set. The order here is the
// order findings are emitted in.
var builtinRules = []ruleSpec{
	{
		Category: CategoryIdentityNumber,
		Pattern:  `\b\d{3}-\d{2}-\d{4}\b`,
		Severity: "critical",
		Label:    "Government identity number",
	},
	{
		Category: CategoryPaymentCard,
		Pattern:  `\b\d{4}[- ]?\d{4}[- ]?\d{4}[- ]?\d{4}\b`,
		Severity: "critical",
		Label:    "Payment card number",
	},
	{
		Category: CategoryEmailAddress,
		Pattern:  `[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`,
		Severity: "medium",
		Label:    "Email address",
	},
	{
		Category: CategoryPhoneNumber,
		Pattern:  `\(\d{3}\)\s?\d{3}[-.]\d{4}|\b\d{3}[-.]\d{3}[-.]\d{4}\b`,
		Severity: "medium",
		Label:    "Phone number",
	},
	{
		Category: CategoryMedicalRecord,
		Pattern:  `(?i)\b(?:mrn|medical record(?: number)?|patient id)\s*[:#]?\s*\d{6,10}\b`,
		Severity: "high",
		Label:    "Medical record number",
	},
	{
		Category: CategoryBankAccount,
		Pattern:  `(?i)\b(?:account|acct|iban|routing)\s*(?:number|no\.?|#)?\s*[:#]?\s*\d{8,17}\b`,
		Severity: "high",
		Label:    "Bank account number",
	},
	{
		Category: CategorySourceCode,
		Pattern:  `(?m)(?:func\s+\w+\s*\(|def\s+\w+\s*\(|class\s+\w+\s*[:{(]|#include\s*<\w|import\s+[a-zA-Z_][\w.]*\s*;)`,
		Severity: "medium",
		Label:    "Source code fragment",
	},
	{
		Category: CategoryCredentialToken,
		Pattern:  `(?i)\b(?:api[_-]?key|secret|token|password|passwd|pwd)\s*[:=]\s*\S{6,}|\bsk-[A-Za-z0-9]{20,}\b|\bghp_[A-Za-z0-9]{36}\b`,
		Severity: "critical",
		Label:    "Credential or secret token",
	},
	{
		Category: CategoryTitledName,
		Pattern:  `\b(?:Mr|Mrs|Ms|Dr|Prof)\.\s+[A-Z][a-z]+(?:\s+[A-Z][a-z]+)?`,
		Severity: "low",
		Label:    "Titled person name",
	},
}

// NewRegistry compiles the built-in rule set. A compile failure here is a
// defect in the table itself and must abort startup, so callers are expected
// to treat the error as fatal.
func NewRegistry() (*Registry, error) {
	return newRegistry(builtinRules)
}

// NewRegistryWithOverlay compiles the built-in rules plus custom categories
// appended from a YAML file. Extending the rule set requires no scanner
// change. A missing file is not an error; a malformed one is.
func NewRegistryWithOverlay(path string) (*Registry, error) {
	rules := make([]ruleSpec, len(builtinRules))
	copy(rules, builtinRules)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return newRegistry(rules)
		}
		return nil, fmt.Errorf("read detector overlay: %w", err)
	}

	var overlay struct {
		Detectors []ruleSpec `yaml:"detectors"`
	}
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("parse detector overlay: %w", err)
	}
	rules = append(rules, overlay.Detectors...)

	return newRegistry(rules)
}

func newRegistry(rules []ruleSpec) (*Registry, error) {
	descriptors := make([]Descriptor, 0, len(rules))
	for _, rule := range rules {
		if rule.Category == "" {
			return nil, fmt.Errorf("detector rule with empty category")
		}
		severity := models.Severity(rule.Severity)
		if !severity.IsValid() {
			return nil, fmt.Errorf("detector %q: invalid severity %q", rule.Category, rule.Severity)
		}
		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return nil, fmt.Errorf("detector %q: invalid pattern: %w", rule.Category, err)
		}
		descriptors = append(descriptors, Descriptor{
			Category: rule.Category,
			Pattern:  re,
			Severity: severity,
			Label:    rule.Label,
		})
	}
	return &Registry{descriptors: descriptors}, nil
}

// Descriptors returns the ordered descriptor list. The returned slice must
// not be mutated.
func (r *Registry) Descriptors() []Descriptor {
	return r.descriptors
}

// Len returns the number of registered categories
func (r *Registry) Len() int {
	return len(r.descriptors)
}
