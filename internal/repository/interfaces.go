package repository

import (
	"context"
	"time"

	"promptwatch-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(ctx context.Context, org *models.Organization) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Organization, error)
	GetByName(ctx context.Context, name string) (*models.Organization, error)
	GetByDomain(ctx context.Context, domain string) (*models.Organization, error)
}

// SubjectRepositoryInterface defines the interface for subject repository operations
type SubjectRepositoryInterface interface {
	GetByOrgAndEmail(ctx context.Context, orgID uuid.UUID, email string) (*models.Subject, error)
	Create(ctx context.Context, subject *models.Subject) error
	TouchLastActive(ctx context.Context, id uuid.UUID, at time.Time) error
}

// PromptRepositoryInterface defines the interface for prompt repository operations,
// including the windowed aggregate queries backing the analytics service
type PromptRepositoryInterface interface {
	Create(ctx context.Context, prompt *models.Prompt) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Prompt, error)
	CountByOrganization(ctx context.Context, orgID uuid.UUID, since time.Time) (int64, error)
	CountDistinctWithSeverity(ctx context.Context, orgID uuid.UUID, since time.Time, severity models.Severity) (int64, error)
	CountByTool(ctx context.Context, orgID uuid.UUID, since time.Time) ([]ToolCount, error)
	CountActiveSubjects(ctx context.Context, orgID uuid.UUID, since time.Time) (int64, error)
	DailyTrend(ctx context.Context, orgID uuid.UUID, since time.Time) ([]DailyActivity, error)
	FlaggedFindings(ctx context.Context, orgID uuid.UUID, since time.Time, severity *models.Severity, limit, offset int) ([]FlaggedFinding, int64, error)
	SubjectActivity(ctx context.Context, orgID uuid.UUID, since time.Time) ([]SubjectActivityRow, error)
}

// FindingRepositoryInterface defines the interface for finding repository operations
type FindingRepositoryInterface interface {
	CreateBatch(ctx context.Context, findings []models.Finding) error
	GetByPromptID(ctx context.Context, promptID uuid.UUID) ([]models.Finding, error)
}
