package service

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// CaptureServiceInterface defines the interface for the capture pipeline
type CaptureServiceInterface interface {
	Capture(ctx context.Context, req *CaptureRequest) (*CaptureResponse, error)
}

// AnalyticsServiceInterface defines the interface for the read-only
// aggregation queries backing the dashboards
type AnalyticsServiceInterface interface {
	Summary(ctx context.Context, orgID uuid.UUID, days int) (*SummaryResponse, error)
	Trend(ctx context.Context, orgID uuid.UUID, days int) (*TrendResponse, error)
	Flagged(ctx context.Context, orgID uuid.UUID, days int, severity string, page, pageSize int) (*FlaggedListResponse, error)
	SubjectActivity(ctx context.Context, orgID uuid.UUID, days int) (*SubjectActivityResponse, error)
}

// OrganizationServiceInterface defines the interface for organization service
type OrganizationServiceInterface interface {
	Create(ctx context.Context, req *CreateOrganizationRequest) (*OrganizationResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*OrganizationResponse, error)
}
