package testutils

import (
	"time"

	"promptwatch-backend/internal/database/models"

	"github.com/google/uuid"
)

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "test-org",
		DisplayName: "Test Organization",
		Domain:      "test.com",
		Description: "A test organization",
	}
}

// WithName sets a custom name for the organization
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	org := f.Create()
	org.Name = name
	org.DisplayName = name + " Display Name"
	return org
}

// WithDomain sets a custom domain for the organization
func (f *OrganizationFactory) WithDomain(domain string) *models.Organization {
	org := f.Create()
	org.Domain = domain
	return org
}

// SubjectFactory provides methods to create test Subject data
type SubjectFactory struct{}

// NewSubjectFactory creates a new SubjectFactory
func NewSubjectFactory() *SubjectFactory {
	return &SubjectFactory{}
}

// Create creates a test Subject with default values
func (f *SubjectFactory) Create() *models.Subject {
	id := uuid.New()
	// Derive a unique email from the UUID to avoid unique-index conflicts
	email := "subject-" + id.String()[:8] + "@test.com"

	return &models.Subject{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: uuid.New(),
		Email:          email,
		LastActiveAt:   time.Now().UTC(),
	}
}

// WithOrganization sets the organization ID for the subject
func (f *SubjectFactory) WithOrganization(orgID uuid.UUID) *models.Subject {
	subject := f.Create()
	subject.OrganizationID = orgID
	return subject
}

// PromptFactory provides methods to create test Prompt data
type PromptFactory struct{}

// NewPromptFactory creates a new PromptFactory
func NewPromptFactory() *PromptFactory {
	return &PromptFactory{}
}

// Create creates a test Prompt with default values
func (f *PromptFactory) Create() *models.Prompt {
	text := "Summarize the quarterly report for me"
	return &models.Prompt{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: uuid.New(),
		SubjectID:      uuid.New(),
		AITool:         "chatgpt",
		PromptText:     text,
		Preview:        text,
		Length:         len([]rune(text)),
		URL:            "https://chat.openai.com/",
		SessionID:      "session-1",
		CapturedAt:     time.Now().UTC(),
	}
}

// WithOrganization sets the organization ID for the prompt
func (f *PromptFactory) WithOrganization(orgID uuid.UUID) *models.Prompt {
	prompt := f.Create()
	prompt.OrganizationID = orgID
	return prompt
}

// FindingFactory provides methods to create test Finding data
type FindingFactory struct{}

// NewFindingFactory creates a new FindingFactory
func NewFindingFactory() *FindingFactory {
	return &FindingFactory{}
}

// Create creates a test Finding with default values
func (f *FindingFactory) Create() *models.Finding {
	return &models.Finding{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		PromptID:    uuid.New(),
		Category:    "email-address",
		Severity:    models.SeverityMedium,
		Label:       "Email Address",
		MaskedValue: "j***@example.com",
	}
}

// WithPrompt sets the prompt ID for the finding
func (f *FindingFactory) WithPrompt(promptID uuid.UUID) *models.Finding {
	finding := f.Create()
	finding.PromptID = promptID
	return finding
}

// WithSeverity sets the category and severity together for the finding
func (f *FindingFactory) WithSeverity(category string, severity models.Severity) *models.Finding {
	finding := f.Create()
	finding.Category = category
	finding.Severity = severity
	return finding
}

// FactorySet provides access to all factories
type FactorySet struct {
	Organization *OrganizationFactory
	Subject      *SubjectFactory
	Prompt       *PromptFactory
	Finding      *FindingFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization: NewOrganizationFactory(),
		Subject:      NewSubjectFactory(),
		Prompt:       NewPromptFactory(),
		Finding:      NewFindingFactory(),
	}
}
