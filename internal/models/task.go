package model

import (
	"time"

	"github.com/salmanakber/mayaopps-sub001/internal/constants"
)

// DefaultTaskMinutes is used when a task carries no duration estimate.
const DefaultTaskMinutes = 120

type Task struct {
	ID                       string               `gorm:"primaryKey;size:36" json:"id"`
	CompanyID                string               `gorm:"size:36;not null;index" json:"company_id"`
	PropertyID               string               `gorm:"size:36;not null;index" json:"property_id"`
	Title                    string               `gorm:"not null" json:"title"`
	Description              string               `json:"description"`
	ScheduledDate            *time.Time           `gorm:"index" json:"scheduled_date,omitempty"`
	EstimatedDurationMinutes *int                 `json:"estimated_duration_minutes,omitempty"`
	Status                   constants.TaskStatus `gorm:"type:varchar(20);not null" json:"status"`
	WorkerID                 *string              `gorm:"size:36;index" json:"worker_id,omitempty"`
	Assignees                []TaskAssignment     `gorm:"foreignKey:TaskID" json:"assignees"`
	Version                  uint                 `gorm:"not null;default:1" json:"version"`
	CreatedAt                time.Time            `json:"created_at"`
	UpdatedAt                time.Time            `json:"updated_at"`
}

// TaskAssignment is the canonical task-to-worker relation.
type TaskAssignment struct {
	TaskID    string    `gorm:"primaryKey;size:36" json:"task_id"`
	WorkerID  string    `gorm:"primaryKey;size:36;index" json:"worker_id"`
	CreatedAt time.Time `json:"created_at"`
}

// WorkerIDs returns the assigned worker set. The primary WorkerID is folded in
// for rows written before the assignment table existed.
func (t *Task) WorkerIDs() []string {
	seen := make(map[string]struct{}, len(t.Assignees)+1)
	ids := make([]string, 0, len(t.Assignees)+1)
	for _, a := range t.Assignees {
		if a.WorkerID == "" {
			continue
		}
		if _, ok := seen[a.WorkerID]; ok {
			continue
		}
		seen[a.WorkerID] = struct{}{}
		ids = append(ids, a.WorkerID)
	}
	if t.WorkerID != nil && *t.WorkerID != "" {
		if _, ok := seen[*t.WorkerID]; !ok {
			ids = append(ids, *t.WorkerID)
		}
	}
	return ids
}

func (t *Task) HasWorker(workerID string) bool {
	for _, id := range t.WorkerIDs() {
		if id == workerID {
			return true
		}
	}
	return false
}

// DurationMinutes applies DefaultTaskMinutes when no estimate is set.
func (t *Task) DurationMinutes() int {
	if t.EstimatedDurationMinutes == nil {
		return DefaultTaskMinutes
	}
	return *t.EstimatedDurationMinutes
}

type ChecklistItem struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	TaskID    string    `gorm:"size:36;not null;index" json:"task_id"`
	Title     string    `gorm:"not null" json:"title"`
	SortOrder int       `gorm:"not null" json:"order"`
	Completed bool      `gorm:"not null;default:false" json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}
