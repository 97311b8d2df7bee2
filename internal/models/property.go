package model

import "time"

type Property struct {
	ID                string          `gorm:"primaryKey;size:36" json:"id"`
	CompanyID         string          `gorm:"size:36;not null;index" json:"company_id"`
	Name              string          `gorm:"not null" json:"name"`
	Address           string          `json:"address"`
	SkillRequirements []PropertySkill `gorm:"foreignKey:PropertyID" json:"skill_requirements,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}

type PropertySkill struct {
	PropertyID string `gorm:"primaryKey;size:36" json:"property_id"`
	SkillID    string `gorm:"primaryKey;size:36" json:"skill_id"`
	IsRequired bool   `gorm:"not null" json:"is_required"`
	Skill      Skill  `gorm:"foreignKey:SkillID" json:"skill"`
}
