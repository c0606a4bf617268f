package repository

import (
	"context"
	"time"

	"promptwatch-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ToolCount is one row of the per-tool prompt breakdown
type ToolCount struct {
	AITool string `json:"ai_tool"`
	Count  int64  `json:"count"`
}

// DailyActivity is one row of the per-day capture trend. HighRiskCount is the
// number of prompts that day with at least one critical or high finding.
type DailyActivity struct {
	Day           time.Time `json:"day"`
	PromptCount   int64     `json:"prompt_count"`
	HighRiskCount int64     `json:"high_risk_count"`
}

// FlaggedFinding is one (prompt, finding) pair of the flagged listing
type FlaggedFinding struct {
	FindingID    uuid.UUID       `json:"finding_id"`
	PromptID     uuid.UUID       `json:"prompt_id"`
	SubjectEmail string          `json:"subject_email"`
	AITool       string          `json:"ai_tool"`
	Preview      string          `json:"preview"`
	CapturedAt   time.Time       `json:"captured_at"`
	Category     string          `json:"category"`
	Severity     models.Severity `json:"severity"`
	Label        string          `json:"label"`
	MaskedValue  string          `json:"masked_value"`
}

// SubjectActivityRow is one row of the per-subject activity report
type SubjectActivityRow struct {
	SubjectID     uuid.UUID `json:"subject_id"`
	Email         string    `json:"email"`
	PromptCount   int64     `json:"prompt_count"`
	HighRiskCount int64     `json:"high_risk_count"`
}

// PromptRepository handles database operations for prompts, including the
// windowed aggregate queries behind the analytics endpoints
type PromptRepository struct {
	db *gorm.DB
}

// NewPromptRepository creates a new prompt repository
func NewPromptRepository(db *gorm.DB) *PromptRepository {
	return &PromptRepository{db: db}
}

// Create creates a new prompt
func (r *PromptRepository) Create(ctx context.Context, prompt *models.Prompt) error {
	return r.db.WithContext(ctx).Create(prompt).Error
}

// GetByID retrieves a prompt with its findings
func (r *PromptRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Prompt, error) {
	var prompt models.Prompt
	err := r.db.WithContext(ctx).Preload("Findings").First(&prompt, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &prompt, nil
}

// CountByOrganization counts all prompts captured for the organization since the window start
func (r *PromptRepository) CountByOrganization(ctx context.Context, orgID uuid.UUID, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Prompt{}).
		Where("organization_id = ? AND captured_at >= ?", orgID, since).
		Count(&count).Error
	return count, err
}

// CountDistinctWithSeverity counts distinct prompts having at least one
// finding of exactly the given severity. Levels are counted independently:
// a prompt with both a critical and a low finding contributes to both
// levels' counts.
func (r *PromptRepository) CountDistinctWithSeverity(ctx context.Context, orgID uuid.UUID, since time.Time, severity models.Severity) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Prompt{}).
		Distinct("prompts.id").
		Joins("JOIN findings ON findings.prompt_id = prompts.id").
		Where("prompts.organization_id = ? AND prompts.captured_at >= ? AND findings.severity = ?", orgID, since, severity).
		Count(&count).Error
	return count, err
}

// CountByTool counts prompts per tool identifier within the window
func (r *PromptRepository) CountByTool(ctx context.Context, orgID uuid.UUID, since time.Time) ([]ToolCount, error) {
	var rows []ToolCount
	err := r.db.WithContext(ctx).
		Model(&models.Prompt{}).
		Select("ai_tool, COUNT(*) AS count").
		Where("organization_id = ? AND captured_at >= ?", orgID, since).
		Group("ai_tool").
		Order("count DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CountActiveSubjects counts distinct subjects that submitted at least one prompt within the window
func (r *PromptRepository) CountActiveSubjects(ctx context.Context, orgID uuid.UUID, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Prompt{}).
		Distinct("subject_id").
		Where("organization_id = ? AND captured_at >= ?", orgID, since).
		Count(&count).Error
	return count, err
}

// DailyTrend returns the per-day prompt count and per-day count of prompts
// with at least one critical or high finding, oldest day first
func (r *PromptRepository) DailyTrend(ctx context.Context, orgID uuid.UUID, since time.Time) ([]DailyActivity, error) {
	var rows []DailyActivity
	err := r.db.WithContext(ctx).Raw(`
		SELECT DATE(p.captured_at) AS day,
		       COUNT(*) AS prompt_count,
		       COUNT(*) FILTER (
		           WHERE EXISTS (
		               SELECT 1 FROM findings f
		               WHERE f.prompt_id = p.id AND f.severity IN ('critical', 'high')
		           )
		       ) AS high_risk_count
		FROM prompts p
		WHERE p.organization_id = ? AND p.captured_at >= ?
		GROUP BY DATE(p.captured_at)
		ORDER BY day`, orgID, since).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FlaggedFindings returns paginated (prompt, finding) pairs ordered by capture
// time descending, optionally filtered to one severity
func (r *PromptRepository) FlaggedFindings(ctx context.Context, orgID uuid.UUID, since time.Time, severity *models.Severity, limit, offset int) ([]FlaggedFinding, int64, error) {
	base := r.db.WithContext(ctx).
		Table("findings").
		Joins("JOIN prompts ON prompts.id = findings.prompt_id").
		Joins("JOIN subjects ON subjects.id = prompts.subject_id").
		Where("prompts.organization_id = ? AND prompts.captured_at >= ?", orgID, since)
	if severity != nil {
		base = base.Where("findings.severity = ?", *severity)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []FlaggedFinding
	err := base.
		Select(`findings.id AS finding_id, prompts.id AS prompt_id,
			subjects.email AS subject_email, prompts.ai_tool, prompts.preview,
			prompts.captured_at, findings.category, findings.severity,
			findings.label, findings.masked_value`).
		Order("prompts.captured_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// SubjectActivity returns per-subject prompt totals and high-risk prompt
// counts within the window, highest total first
func (r *PromptRepository) SubjectActivity(ctx context.Context, orgID uuid.UUID, since time.Time) ([]SubjectActivityRow, error) {
	var rows []SubjectActivityRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT s.id AS subject_id,
		       s.email,
		       COUNT(p.id) AS prompt_count,
		       COUNT(p.id) FILTER (
		           WHERE EXISTS (
		               SELECT 1 FROM findings f
		               WHERE f.prompt_id = p.id AND f.severity IN ('critical', 'high')
		           )
		       ) AS high_risk_count
		FROM subjects s
		JOIN prompts p ON p.subject_id = s.id
		WHERE s.organization_id = ? AND p.captured_at >= ?
		GROUP BY s.id, s.email
		ORDER BY prompt_count DESC`, orgID, since).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
