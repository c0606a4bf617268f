package models

// Organization represents the root entity for multi-tenancy.
// Every subject, prompt and finding belongs to exactly one organization.
type Organization struct {
	BaseModel
	Name        string `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	DisplayName string `json:"display_name" gorm:"not null;size:200" validate:"required,max=200"`
	Domain      string `json:"domain" gorm:"uniqueIndex;not null;size:100" validate:"required,max=100"`
	Description string `json:"description" gorm:"type:text"`

	// Relationships
	Subjects []Subject `json:"subjects,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Prompts  []Prompt  `json:"prompts,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
