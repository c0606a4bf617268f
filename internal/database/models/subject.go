package models

import (
	"time"

	"github.com/google/uuid"
)

// Subject represents a monitored individual within an organization.
// Subjects are created lazily on first capture and are unique per
// (organization_id, email); the composite unique index is what backs the
// conflict-as-exists recovery in the capture pipeline.
type Subject struct {
	BaseModel
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex:idx_subjects_org_email"`
	Email          string    `json:"email" gorm:"not null;size:255;uniqueIndex:idx_subjects_org_email" validate:"required,email,max=255"`
	LastActiveAt   time.Time `json:"last_active_at"`

	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID"`
	Prompts      []Prompt      `json:"prompts,omitempty" gorm:"foreignKey:SubjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Subject
func (Subject) TableName() string {
	return "subjects"
}
