package model

type Skill struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	CompanyID string `gorm:"size:36;not null;index" json:"company_id"`
	Name      string `gorm:"not null" json:"name"`
	Category  string `json:"category"`
}
