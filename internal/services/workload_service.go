package services

import (
	"context"
	"time"

	"github.com/salmanakber/mayaopps-sub001/internal/constants"
	dto "github.com/salmanakber/mayaopps-sub001/internal/data_models"
	apperrors "github.com/salmanakber/mayaopps-sub001/internal/errors"
	repository "github.com/salmanakber/mayaopps-sub001/internal/repositories"
	"github.com/salmanakber/mayaopps-sub001/internal/rota"
)

type WorkloadService struct {
	repos *repository.Repositories
}

func NewWorkloadService(repos *repository.Repositories) *WorkloadService {
	return &WorkloadService{repos: repos}
}

// ComputeWorkload reports per-worker load and team statistics. A nil bound
// leaves that side of the window open.
func (s *WorkloadService) ComputeWorkload(ctx context.Context, companyID string, from, to *time.Time) (*dto.WorkloadResponse, error) {
	if companyID == "" {
		return nil, apperrors.ErrCompanyIDRequired
	}
	if from != nil && to != nil && to.Before(*from) {
		return nil, apperrors.ErrInvalidWindow
	}
	if _, err := s.repos.Companies.FindByID(ctx, companyID); err != nil {
		return nil, err
	}

	workers, err := s.repos.Workers.ListWorkers(ctx, companyID)
	if err != nil {
		return nil, err
	}

	tasks, err := s.repos.Tasks.FindByCompanyAndWindow(ctx, companyID, from, to, constants.ActiveStatuses)
	if err != nil {
		return nil, err
	}

	loads := rota.ComputeWorkload(workers, tasks)
	return &dto.WorkloadResponse{
		PerWorker: loads,
		Stats:     rota.ComputeTeamStats(loads),
	}, nil
}
