package services

import (
	"context"
	"log"
	"time"

	"github.com/salmanakber/mayaopps-sub001/internal/calendar"
	"github.com/salmanakber/mayaopps-sub001/internal/constants"
	dto "github.com/salmanakber/mayaopps-sub001/internal/data_models"
	apperrors "github.com/salmanakber/mayaopps-sub001/internal/errors"
	model "github.com/salmanakber/mayaopps-sub001/internal/models"
	repository "github.com/salmanakber/mayaopps-sub001/internal/repositories"
)

type CloneService struct {
	repos *repository.Repositories
}

func NewCloneService(repos *repository.Repositories) *CloneService {
	return &CloneService{repos: repos}
}

// CloneWeek copies every task of the week before target into target, with
// checklists, reset to PLANNED. It does not look for earlier clones, so
// running it twice for one week duplicates the tasks again. All writes share
// one transaction.
func (s *CloneService) CloneWeek(ctx context.Context, companyID string, targetStart, targetEnd time.Time) (*dto.CloneWeekResponse, error) {
	if companyID == "" {
		return nil, apperrors.ErrCompanyIDRequired
	}
	if targetStart.IsZero() || targetEnd.IsZero() || targetEnd.Before(targetStart) {
		return nil, apperrors.ErrInvalidWindow
	}
	if _, err := s.repos.Companies.FindByID(ctx, companyID); err != nil {
		return nil, err
	}

	target := calendar.Window{Start: targetStart.UTC(), End: targetEnd.UTC()}
	previous := target.Shift(-7)
	offset := calendar.DaysBetween(previous.Start, target.Start)

	cloned := []model.Task{}
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		originals, err := tx.Tasks.Find(ctx, repository.TaskCriteria{
			CompanyID: companyID,
			From:      &previous.Start,
			To:        &previous.End,
		})
		if err != nil {
			return err
		}

		for _, original := range originals {
			task, err := cloneTask(ctx, tx, original, offset)
			if err != nil {
				return err
			}
			cloned = append(cloned, *task)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("clone: company %s week %s received %d task(s)", companyID, calendar.DayKey(target.Start), len(cloned))
	return &dto.CloneWeekResponse{
		ClonedCount: len(cloned),
		Tasks:       cloned,
	}, nil
}

// CloneNextWeek seeds the week after the one containing now.
func (s *CloneService) CloneNextWeek(ctx context.Context, companyID string, now time.Time) (*dto.CloneWeekResponse, error) {
	next := calendar.WeekOf(now).Shift(7)
	return s.CloneWeek(ctx, companyID, next.Start, next.End)
}

func cloneTask(ctx context.Context, tx *repository.Repositories, original model.Task, offset int) (*model.Task, error) {
	shifted := calendar.AddDays(*original.ScheduledDate, offset)

	task := &model.Task{
		CompanyID:                original.CompanyID,
		PropertyID:               original.PropertyID,
		Title:                    original.Title,
		Description:              original.Description,
		ScheduledDate:            &shifted,
		EstimatedDurationMinutes: original.EstimatedDurationMinutes,
		Status:                   constants.StatusPlanned,
		WorkerID:                 original.WorkerID,
	}
	for _, a := range original.Assignees {
		task.Assignees = append(task.Assignees, model.TaskAssignment{WorkerID: a.WorkerID})
	}

	if err := tx.Tasks.Create(ctx, task); err != nil {
		return nil, err
	}

	items, err := tx.Checklists.ListByTask(ctx, original.ID)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if _, err := tx.Checklists.Create(ctx, task.ID, item.Title, item.SortOrder); err != nil {
			return nil, err
		}
	}
	return task, nil
}
