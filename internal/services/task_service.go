package services

import (
	"context"

	dto "github.com/salmanakber/mayaopps-sub001/internal/data_models"
	apperrors "github.com/salmanakber/mayaopps-sub001/internal/errors"
	model "github.com/salmanakber/mayaopps-sub001/internal/models"
	repository "github.com/salmanakber/mayaopps-sub001/internal/repositories"
)

type TaskService struct {
	repos *repository.Repositories
}

func NewTaskService(repos *repository.Repositories) *TaskService {
	return &TaskService{repos: repos}
}

// GetTask returns the task with its assignees and checklist.
func (s *TaskService) GetTask(ctx context.Context, id string) (*dto.TaskResponse, error) {
	if id == "" {
		return nil, apperrors.ErrTaskIDRequired
	}

	task, err := s.repos.Tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	items, err := s.repos.Checklists.ListByTask(ctx, id)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.ChecklistItem{}
	}

	return &dto.TaskResponse{Task: task, Checklist: items}, nil
}
