package models

import (
	"time"

	"github.com/google/uuid"
)

// Prompt represents one captured text submission from a monitored tool
// session. Rows are immutable once created.
type Prompt struct {
	BaseModel
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index:idx_prompts_org_captured"`
	SubjectID      uuid.UUID `json:"subject_id" gorm:"type:uuid;not null;index"`
	AITool         string    `json:"ai_tool" gorm:"not null;size:100" validate:"required,max=100"`
	PromptText     string    `json:"prompt_text" gorm:"type:text;not null" validate:"required"`
	Preview        string    `json:"preview" gorm:"size:200"`
	Length         int       `json:"length"`
	URL            string    `json:"url,omitempty" gorm:"size:2048"`
	SessionID      string    `json:"session_id,omitempty" gorm:"size:100"`
	CapturedAt     time.Time `json:"captured_at" gorm:"not null;index:idx_prompts_org_captured"`

	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID"`
	Subject      *Subject      `json:"subject,omitempty" gorm:"foreignKey:SubjectID"`
	Findings     []Finding     `json:"findings,omitempty" gorm:"foreignKey:PromptID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Prompt
func (Prompt) TableName() string {
	return "prompts"
}
