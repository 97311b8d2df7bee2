package model

import (
	"time"

	"github.com/salmanakber/mayaopps-sub001/internal/constants"
)

// User is any account in a company. Only CLEANER users are assignable workers.
type User struct {
	ID              string         `gorm:"primaryKey;size:36" json:"id"`
	CompanyID       string         `gorm:"size:36;not null;index" json:"company_id"`
	Name            string         `gorm:"not null" json:"name"`
	Email           string         `gorm:"index" json:"email"`
	Role            constants.Role `gorm:"type:varchar(20);not null" json:"role"`
	MaxHoursPerWeek *float64       `json:"max_hours_per_week,omitempty"`
	Skills          []WorkerSkill  `gorm:"foreignKey:UserID" json:"skills,omitempty"`
	Availability    []Availability `gorm:"foreignKey:UserID" json:"availability,omitempty"`
	Leave           []LeaveRequest `gorm:"foreignKey:UserID" json:"leave,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
}

type WorkerSkill struct {
	UserID      string `gorm:"primaryKey;size:36" json:"user_id"`
	SkillID     string `gorm:"primaryKey;size:36" json:"skill_id"`
	Proficiency int    `gorm:"not null;default:1" json:"proficiency"`
	Skill       Skill  `gorm:"foreignKey:SkillID" json:"skill"`
}

// Availability is a recurring weekly window. DayOfWeek follows time.Weekday
// (0 = Sunday); StartTime and EndTime are "15:04" strings.
type Availability struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	UserID      string `gorm:"size:36;not null;index" json:"user_id"`
	DayOfWeek   int    `gorm:"not null" json:"day_of_week"`
	StartTime   string `gorm:"size:5;not null" json:"start_time"`
	EndTime     string `gorm:"size:5;not null" json:"end_time"`
	IsAvailable bool   `gorm:"not null" json:"is_available"`
}

type LeaveStatus string

const (
	LeavePending  LeaveStatus = "PENDING"
	LeaveApproved LeaveStatus = "APPROVED"
	LeaveRejected LeaveStatus = "REJECTED"
)

type LeaveRequest struct {
	ID        string      `gorm:"primaryKey;size:36" json:"id"`
	UserID    string      `gorm:"size:36;not null;index" json:"user_id"`
	StartDate time.Time   `gorm:"not null" json:"start_date"`
	EndDate   time.Time   `gorm:"not null" json:"end_date"`
	Status    LeaveStatus `gorm:"type:varchar(20);not null" json:"status"`
}
