package dto

import model "github.com/salmanakber/mayaopps-sub001/internal/models"

// ValidateAssignmentRequest proposes assigning WorkerID to TaskID. Optional
// fields fall back to the task's stored values and the week containing the
// scheduled date.
type ValidateAssignmentRequest struct {
	WorkerID                 string `json:"worker_id" validate:"required"`
	TaskID                   string `json:"task_id" validate:"required"`
	ScheduledDate            string `json:"scheduled_date,omitempty"`
	PropertyID               string `json:"property_id,omitempty"`
	EstimatedDurationMinutes *int   `json:"estimated_duration_minutes,omitempty" validate:"omitempty,gt=0"`
	WeekStart                string `json:"week_start,omitempty"`
	WeekEnd                  string `json:"week_end,omitempty"`
}

type AssignTaskRequest struct {
	ValidateAssignmentRequest
	IgnoreWarnings bool `json:"ignore_warnings"`
	Additional     bool `json:"additional"`
}

type ValidateBatchRequest struct {
	Assignments []ValidateAssignmentRequest `json:"assignments" validate:"required,min=1,max=500,dive"`
}

type ValidationResponse struct {
	Warnings []string `json:"warnings"`
}

type BatchValidationResult struct {
	TaskID   string   `json:"task_id"`
	WorkerID string   `json:"worker_id"`
	Warnings []string `json:"warnings"`
	Error    string   `json:"error,omitempty"`
	Status   int      `json:"status,omitempty"`
}

type BatchValidationResponse struct {
	Results []BatchValidationResult `json:"results"`
}

type AssignTaskResponse struct {
	Task       *model.Task `json:"task"`
	Warnings   []string    `json:"warnings"`
	Overridden bool        `json:"overridden"`
}
