package repository

import (
	"context"
	"errors"
	"time"

	"promptwatch-backend/internal/database/models"
	apperrors "promptwatch-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SubjectRepository handles database operations for subjects
type SubjectRepository struct {
	db *gorm.DB
}

// NewSubjectRepository creates a new subject repository
func NewSubjectRepository(db *gorm.DB) *SubjectRepository {
	return &SubjectRepository{db: db}
}

// GetByOrgAndEmail retrieves a subject by its unique (organization, email) pair
func (r *SubjectRepository) GetByOrgAndEmail(ctx context.Context, orgID uuid.UUID, email string) (*models.Subject, error) {
	var subject models.Subject
	err := r.db.WithContext(ctx).
		First(&subject, "organization_id = ? AND email = ?", orgID, email).Error
	if err != nil {
		return nil, err
	}
	return &subject, nil
}

// Create creates a new subject. A concurrent insert for the same
// (organization, email) pair hits the composite unique index; that conflict
// is translated to ErrSubjectExists so the caller can fall back to a lookup.
func (r *SubjectRepository) Create(ctx context.Context, subject *models.Subject) error {
	err := r.db.WithContext(ctx).Create(subject).Error
	if err != nil && isUniqueViolation(err) {
		return apperrors.ErrSubjectExists
	}
	return err
}

// TouchLastActive refreshes the subject's last-active marker
func (r *SubjectRepository) TouchLastActive(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.Subject{}).
		Where("id = ?", id).
		Update("last_active_at", at).Error
}

// isUniqueViolation reports whether err is a Postgres unique-index conflict
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
