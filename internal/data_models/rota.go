package dto

import (
	model "github.com/salmanakber/mayaopps-sub001/internal/models"
	"github.com/salmanakber/mayaopps-sub001/internal/rota"
)

type WindowQuery struct {
	From string `query:"from"`
	To   string `query:"to"`
}

type WorkloadResponse struct {
	PerWorker []rota.WorkerLoad `json:"per_worker"`
	Stats     rota.TeamStats    `json:"stats"`
}

type ConflictsResponse struct {
	Count     int             `json:"count"`
	Conflicts []rota.Conflict `json:"conflicts"`
}

type CloneWeekRequest struct {
	WeekStart string `json:"week_start" validate:"required"`
	WeekEnd   string `json:"week_end" validate:"required"`
}

type CloneWeekResponse struct {
	ClonedCount int          `json:"cloned_count"`
	Tasks       []model.Task `json:"tasks"`
}

type TaskResponse struct {
	Task      *model.Task           `json:"task"`
	Checklist []model.ChecklistItem `json:"checklist"`
}
