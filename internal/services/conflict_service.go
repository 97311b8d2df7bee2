package services

import (
	"context"
	"time"

	"github.com/salmanakber/mayaopps-sub001/internal/constants"
	apperrors "github.com/salmanakber/mayaopps-sub001/internal/errors"
	repository "github.com/salmanakber/mayaopps-sub001/internal/repositories"
	"github.com/salmanakber/mayaopps-sub001/internal/rota"
)

type ConflictService struct {
	repos *repository.Repositories
}

func NewConflictService(repos *repository.Repositories) *ConflictService {
	return &ConflictService{repos: repos}
}

func (s *ConflictService) DetectConflicts(ctx context.Context, companyID string, from, to time.Time) ([]rota.Conflict, error) {
	if companyID == "" {
		return nil, apperrors.ErrCompanyIDRequired
	}
	if from.IsZero() || to.IsZero() || to.Before(from) {
		return nil, apperrors.ErrInvalidWindow
	}
	if _, err := s.repos.Companies.FindByID(ctx, companyID); err != nil {
		return nil, err
	}

	tasks, err := s.repos.Tasks.FindByCompanyAndWindow(ctx, companyID, &from, &to, constants.ActiveStatuses)
	if err != nil {
		return nil, err
	}
	return rota.DetectConflicts(tasks), nil
}
