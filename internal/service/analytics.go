package service

import (
	"context"
	"fmt"
	"time"

	"promptwatch-backend/internal/database/models"
	apperrors "promptwatch-backend/internal/errors"
	"promptwatch-backend/internal/repository"

	"github.com/google/uuid"
)

// defaultLookbackDays is the aggregation window used when the caller does not supply one
const defaultLookbackDays = 30

// AnalyticsService handles the read-only aggregation queries for dashboards.
// All operations are scoped to one organization and a lookback window; they
// never touch the scanner and are safe to run concurrently with captures.
type AnalyticsService struct {
	promptRepo repository.PromptRepositoryInterface
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(promptRepo repository.PromptRepositoryInterface) *AnalyticsService {
	return &AnalyticsService{promptRepo: promptRepo}
}

// SummaryResponse is the organization-wide capture summary.
// SeverityBreakdown counts distinct prompts per level independently: a prompt
// with both a critical and a low finding is counted once under each, so the
// level counts do not partition TotalPrompts.
type SummaryResponse struct {
	TotalPrompts      int64                     `json:"total_prompts"`
	SeverityBreakdown map[models.Severity]int64 `json:"severity_breakdown"`
	PromptsByTool     []repository.ToolCount    `json:"prompts_by_tool"`
	ActiveSubjects    int64                     `json:"active_subjects"`
	WindowDays        int                       `json:"window_days"`
}

// TrendResponse is the per-day capture trend
type TrendResponse struct {
	Days       []repository.DailyActivity `json:"days"`
	WindowDays int                        `json:"window_days"`
}

// FlaggedListResponse is a paginated list of (prompt, finding) pairs
type FlaggedListResponse struct {
	Findings []repository.FlaggedFinding `json:"findings"`
	Total    int64                       `json:"total"`
	Page     int                         `json:"page"`
	PageSize int                         `json:"page_size"`
}

// SubjectActivityResponse is the per-subject activity report
type SubjectActivityResponse struct {
	Subjects   []repository.SubjectActivityRow `json:"subjects"`
	WindowDays int                             `json:"window_days"`
}

// Summary returns the capture summary for the organization within the window
func (s *AnalyticsService) Summary(ctx context.Context, orgID uuid.UUID, days int) (*SummaryResponse, error) {
	days = normalizeDays(days)
	since := windowStart(days)

	total, err := s.promptRepo.CountByOrganization(ctx, orgID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to count prompts: %w", err)
	}

	breakdown := make(map[models.Severity]int64, 4)
	for _, severity := range []models.Severity{
		models.SeverityCritical,
		models.SeverityHigh,
		models.SeverityMedium,
		models.SeverityLow,
	} {
		count, err := s.promptRepo.CountDistinctWithSeverity(ctx, orgID, since, severity)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s prompts: %w", severity, err)
		}
		breakdown[severity] = count
	}

	byTool, err := s.promptRepo.CountByTool(ctx, orgID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to count prompts by tool: %w", err)
	}

	activeSubjects, err := s.promptRepo.CountActiveSubjects(ctx, orgID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to count active subjects: %w", err)
	}

	return &SummaryResponse{
		TotalPrompts:      total,
		SeverityBreakdown: breakdown,
		PromptsByTool:     byTool,
		ActiveSubjects:    activeSubjects,
		WindowDays:        days,
	}, nil
}

// Trend returns the per-day prompt counts and high-risk prompt counts
func (s *AnalyticsService) Trend(ctx context.Context, orgID uuid.UUID, days int) (*TrendResponse, error) {
	days = normalizeDays(days)

	rows, err := s.promptRepo.DailyTrend(ctx, orgID, windowStart(days))
	if err != nil {
		return nil, fmt.Errorf("failed to get capture trend: %w", err)
	}

	return &TrendResponse{Days: rows, WindowDays: days}, nil
}

// Flagged returns paginated (prompt, finding) pairs ordered by capture time
// descending, optionally filtered to one severity
func (s *AnalyticsService) Flagged(ctx context.Context, orgID uuid.UUID, days int, severity string, page, pageSize int) (*FlaggedListResponse, error) {
	days = normalizeDays(days)
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	var filter *models.Severity
	if severity != "" {
		sev := models.Severity(severity)
		if !sev.IsValid() {
			return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidSeverity, severity)
		}
		filter = &sev
	}

	offset := (page - 1) * pageSize
	rows, total, err := s.promptRepo.FlaggedFindings(ctx, orgID, windowStart(days), filter, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list flagged findings: %w", err)
	}

	return &FlaggedListResponse{
		Findings: rows,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// SubjectActivity returns per-subject prompt totals within the window,
// highest total first
func (s *AnalyticsService) SubjectActivity(ctx context.Context, orgID uuid.UUID, days int) (*SubjectActivityResponse, error) {
	days = normalizeDays(days)

	rows, err := s.promptRepo.SubjectActivity(ctx, orgID, windowStart(days))
	if err != nil {
		return nil, fmt.Errorf("failed to get subject activity: %w", err)
	}

	return &SubjectActivityResponse{Subjects: rows, WindowDays: days}, nil
}

func normalizeDays(days int) int {
	if days <= 0 {
		return defaultLookbackDays
	}
	return days
}

func windowStart(days int) time.Time {
	return time.Now().UTC().AddDate(0, 0, -days)
}
