package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/salmanakber/mayaopps-sub001/internal/constants"
	apperrors "github.com/salmanakber/mayaopps-sub001/internal/errors"
	model "github.com/salmanakber/mayaopps-sub001/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

// TaskCriteria narrows a task query. Zero-valued fields are not applied.
type TaskCriteria struct {
	CompanyID string
	WorkerID  string
	From      *time.Time
	To        *time.Time
	Statuses  []constants.TaskStatus
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	if task.Status == "" {
		task.Status = constants.StatusDraft
	}
	if task.ScheduledDate != nil {
		utc := task.ScheduledDate.UTC()
		task.ScheduledDate = &utc
	}
	now := time.Now().UTC()
	task.Version = 1
	task.CreatedAt = now
	task.UpdatedAt = now
	for i := range task.Assignees {
		task.Assignees[i].TaskID = task.ID
		task.Assignees[i].CreatedAt = now
	}

	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).Preload("Assignees").First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) Find(ctx context.Context, criteria TaskCriteria) ([]model.Task, error) {
	query := r.db.WithContext(ctx).Model(&model.Task{}).Preload("Assignees")

	if criteria.CompanyID != "" {
		query = query.Where("company_id = ?", criteria.CompanyID)
	}
	if criteria.WorkerID != "" {
		assigned := r.db.Model(&model.TaskAssignment{}).
			Select("task_id").
			Where("worker_id = ?", criteria.WorkerID)
		query = query.Where("(worker_id = ? OR id IN (?))", criteria.WorkerID, assigned)
	}
	if criteria.From != nil {
		query = query.Where("scheduled_date >= ?", criteria.From.UTC())
	}
	if criteria.To != nil {
		query = query.Where("scheduled_date <= ?", criteria.To.UTC())
	}
	if len(criteria.Statuses) > 0 {
		query = query.Where("status IN ?", criteria.Statuses)
	}

	var tasks []model.Task
	if err := query.Order("scheduled_date asc, id asc").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) FindByCompanyAndWindow(
	ctx context.Context,
	companyID string,
	from, to *time.Time,
	statuses []constants.TaskStatus,
) ([]model.Task, error) {
	return r.Find(ctx, TaskCriteria{
		CompanyID: companyID,
		From:      from,
		To:        to,
		Statuses:  statuses,
	})
}

// UpdateAssignment persists the task's worker, status and date and replaces
// its assignee set with workerIDs, guarded by the optimistic version column.
// Callers run it inside a transaction so both writes land together.
func (r *TaskRepository) UpdateAssignment(ctx context.Context, task *model.Task, workerIDs []string) error {
	now := time.Now().UTC()
	if task.ScheduledDate != nil {
		utc := task.ScheduledDate.UTC()
		task.ScheduledDate = &utc
	}

	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ? AND version = ?", task.ID, task.Version).
		Updates(map[string]interface{}{
			"worker_id":      task.WorkerID,
			"status":         task.Status,
			"scheduled_date": task.ScheduledDate,
			"updated_at":     now,
			"version":        gorm.Expr("version + 1"),
		})

	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return apperrors.ErrOptimisticLock
	}

	if err := r.db.WithContext(ctx).
		Where("task_id = ?", task.ID).
		Delete(&model.TaskAssignment{}).Error; err != nil {
		return err
	}

	assignees := make([]model.TaskAssignment, 0, len(workerIDs))
	for _, id := range workerIDs {
		assignees = append(assignees, model.TaskAssignment{TaskID: task.ID, WorkerID: id, CreatedAt: now})
	}
	if len(assignees) > 0 {
		if err := r.db.WithContext(ctx).Create(&assignees).Error; err != nil {
			return err
		}
	}

	task.Assignees = assignees
	task.UpdatedAt = now
	task.Version++
	return nil
}
