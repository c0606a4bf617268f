package repository

import (
	"context"

	"promptwatch-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FindingRepository handles database operations for findings
type FindingRepository struct {
	db *gorm.DB
}

// NewFindingRepository creates a new finding repository
func NewFindingRepository(db *gorm.DB) *FindingRepository {
	return &FindingRepository{db: db}
}

// CreateBatch inserts all findings of one scan in a single statement.
// Callers must only invoke this after the owning prompt row exists.
func (r *FindingRepository) CreateBatch(ctx context.Context, findings []models.Finding) error {
	if len(findings) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&findings).Error
}

// GetByPromptID retrieves all findings for a prompt
func (r *FindingRepository) GetByPromptID(ctx context.Context, promptID uuid.UUID) ([]models.Finding, error) {
	var findings []models.Finding
	err := r.db.WithContext(ctx).
		Where("prompt_id = ?", promptID).
		Order("created_at").
		Find(&findings).Error
	if err != nil {
		return nil, err
	}
	return findings, nil
}
