package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/salmanakber/mayaopps-sub001/internal/calendar"
	"github.com/salmanakber/mayaopps-sub001/internal/constants"
	apperrors "github.com/salmanakber/mayaopps-sub001/internal/errors"
	"github.com/salmanakber/mayaopps-sub001/internal/locks"
	model "github.com/salmanakber/mayaopps-sub001/internal/models"
	repository "github.com/salmanakber/mayaopps-sub001/internal/repositories"
	"github.com/salmanakber/mayaopps-sub001/internal/rota"
)

// AssignmentInput is a proposed assignment. Nil or empty optional fields fall
// back to the task's own values and the week containing the scheduled date.
// An explicit week window must contain the scheduled date.
type AssignmentInput struct {
	WorkerID                 string
	TaskID                   string
	ScheduledDate            *time.Time
	PropertyID               string
	EstimatedDurationMinutes *int
	WeekStart                *time.Time
	WeekEnd                  *time.Time
}

type AssignInput struct {
	AssignmentInput
	IgnoreWarnings bool
	Additional     bool
}

type AssignResult struct {
	Task       *model.Task
	Warnings   []string
	Overridden bool
}

type AssignmentService struct {
	repos  *repository.Repositories
	locker locks.Locker
}

func NewAssignmentService(repos *repository.Repositories, locker locks.Locker) *AssignmentService {
	return &AssignmentService{
		repos:  repos,
		locker: locker,
	}
}

// ValidateAssignment returns the advisory warnings for a proposal. Hard errors
// are reserved for unknown ids, cross-tenant pairs and malformed input.
func (s *AssignmentService) ValidateAssignment(ctx context.Context, in AssignmentInput) ([]string, error) {
	assessment, _, err := s.assess(ctx, s.repos, in)
	if err != nil {
		return nil, err
	}
	return assessment.Warnings(), nil
}

// AssignTask validates and writes an assignment under the (worker, day) lock
// and inside one transaction. Warnings never prevent the write.
func (s *AssignmentService) AssignTask(ctx context.Context, in AssignInput) (*AssignResult, error) {
	if err := checkIDs(in.AssignmentInput); err != nil {
		return nil, err
	}

	date, err := s.targetDate(ctx, in.AssignmentInput)
	if err != nil {
		return nil, err
	}
	in.ScheduledDate = &date

	release, err := s.locker.Acquire(ctx, locks.AssignmentKey(in.WorkerID, date))
	if err != nil {
		if errors.Is(err, locks.ErrLockBusy) {
			return nil, apperrors.ErrAssignmentLocked
		}
		return nil, err
	}
	defer func() {
		if err := release(context.Background()); err != nil {
			log.Printf("assign: failed to release lock for worker %s: %v", in.WorkerID, err)
		}
	}()

	var result AssignResult
	err = s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		assessment, task, err := s.assess(ctx, tx, in.AssignmentInput)
		if err != nil {
			return err
		}
		result.Warnings = assessment.Warnings()

		next, regressed, ok := constants.AssignTransition(task.Status)
		if !ok {
			return apperrors.ErrTaskArchived
		}
		if regressed {
			log.Printf("assign: task %s moved back from %s to %s", task.ID, task.Status, next)
		}

		workerIDs := []string{in.WorkerID}
		if in.Additional {
			workerIDs = appendWorker(task.WorkerIDs(), in.WorkerID)
		}
		if !in.Additional || task.WorkerID == nil {
			task.WorkerID = &in.WorkerID
		}
		task.Status = next
		task.ScheduledDate = &date

		if err := tx.Tasks.UpdateAssignment(ctx, task, workerIDs); err != nil {
			return err
		}
		result.Task = task
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.Overridden = in.IgnoreWarnings && len(result.Warnings) > 0
	if result.Overridden {
		log.Printf("assign: task %s assigned to %s past %d warning(s)", in.TaskID, in.WorkerID, len(result.Warnings))
	}
	return &result, nil
}

func (s *AssignmentService) targetDate(ctx context.Context, in AssignmentInput) (time.Time, error) {
	if in.ScheduledDate != nil {
		return in.ScheduledDate.UTC(), nil
	}
	task, err := s.repos.Tasks.FindByID(ctx, in.TaskID)
	if err != nil {
		return time.Time{}, err
	}
	if task.ScheduledDate == nil {
		return time.Time{}, apperrors.ErrScheduledDateRequired
	}
	return task.ScheduledDate.UTC(), nil
}

// assess gathers everything the engine needs through repos, which may be
// bound to a transaction.
func (s *AssignmentService) assess(ctx context.Context, repos *repository.Repositories, in AssignmentInput) (*rota.Assessment, *model.Task, error) {
	if err := checkIDs(in); err != nil {
		return nil, nil, err
	}

	task, err := repos.Tasks.FindByID(ctx, in.TaskID)
	if err != nil {
		return nil, nil, err
	}
	if task.Status == constants.StatusArchived {
		return nil, nil, apperrors.ErrTaskArchived
	}

	worker, err := repos.Workers.FindByID(ctx, in.WorkerID)
	if err != nil {
		return nil, nil, err
	}
	if constants.CompareRoles(worker.Role, constants.RoleCleaner) != 0 {
		return nil, nil, apperrors.ErrNotAWorker
	}
	if worker.CompanyID != task.CompanyID {
		return nil, nil, apperrors.ErrCrossTenant
	}

	date := task.ScheduledDate
	if in.ScheduledDate != nil {
		date = in.ScheduledDate
	}
	if date == nil {
		return nil, nil, apperrors.ErrScheduledDateRequired
	}
	scheduled := date.UTC()

	propertyID := task.PropertyID
	if in.PropertyID != "" {
		propertyID = in.PropertyID
	}
	property, err := repos.Properties.FindByID(ctx, propertyID)
	if err != nil {
		return nil, nil, err
	}
	if property.CompanyID != task.CompanyID {
		return nil, nil, apperrors.ErrCrossTenant
	}

	duration := task.DurationMinutes()
	if in.EstimatedDurationMinutes != nil {
		duration = *in.EstimatedDurationMinutes
	}
	if duration <= 0 {
		return nil, nil, apperrors.Invalid("estimated duration must be positive")
	}

	week := calendar.WeekOf(scheduled)
	if in.WeekStart != nil {
		week.Start = in.WeekStart.UTC()
	}
	if in.WeekEnd != nil {
		week.End = in.WeekEnd.UTC()
	}
	if week.End.Before(week.Start) || !week.Contains(scheduled) {
		return nil, nil, apperrors.ErrInvalidWindow
	}

	weekTasks, err := repos.Tasks.Find(ctx, repository.TaskCriteria{
		CompanyID: task.CompanyID,
		WorkerID:  worker.ID,
		From:      &week.Start,
		To:        &week.End,
		Statuses:  constants.ActiveStatuses,
	})
	if err != nil {
		return nil, nil, err
	}

	availability, err := repos.Workers.Availability(ctx, worker.ID)
	if err != nil {
		return nil, nil, err
	}

	day := calendar.TruncateDay(scheduled)
	leave, err := repos.Workers.ApprovedLeave(ctx, worker.ID, day, day.Add(calendar.EndOfDay))
	if err != nil {
		return nil, nil, err
	}

	required, err := repos.Properties.RequiredSkills(ctx, property.ID)
	if err != nil {
		return nil, nil, err
	}

	skills, err := repos.Workers.Skills(ctx, worker.ID)
	if err != nil {
		return nil, nil, err
	}

	return &rota.Assessment{
		Worker:          *worker,
		Task:            *task,
		ScheduledDate:   scheduled,
		DurationMinutes: duration,
		WeekTasks:       weekTasks,
		Availability:    availability,
		Leave:           leave,
		Required:        required,
		WorkerSkills:    skills,
	}, task, nil
}

func checkIDs(in AssignmentInput) error {
	if in.TaskID == "" {
		return apperrors.ErrTaskIDRequired
	}
	if in.WorkerID == "" {
		return apperrors.ErrWorkerIDRequired
	}
	return nil
}

func appendWorker(ids []string, id string) []string {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}
