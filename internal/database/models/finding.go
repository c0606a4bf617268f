package models

import (
	"github.com/google/uuid"
)

// Finding represents one detected occurrence of a sensitive-data category
// within a prompt. Findings are created atomically with the prompt's scan
// result and never mutated. A prompt may have zero or many findings,
// including several of the same category.
type Finding struct {
	BaseModel
	PromptID    uuid.UUID `json:"prompt_id" gorm:"type:uuid;not null;index"`
	Category    string    `json:"category" gorm:"not null;size:50;index" validate:"required,max=50"`
	Severity    Severity  `json:"severity" gorm:"type:varchar(20);not null;index" validate:"required"`
	Label       string    `json:"label" gorm:"not null;size:100"`
	MaskedValue string    `json:"masked_value" gorm:"size:255"`

	Prompt *Prompt `json:"prompt,omitempty" gorm:"foreignKey:PromptID"`
}

// TableName returns the table name for Finding
func (Finding) TableName() string {
	return "findings"
}
