package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "github.com/salmanakber/mayaopps-sub001/internal/models"
)

type ChecklistRepository struct {
	db *gorm.DB
}

func NewChecklistRepository(db *gorm.DB) *ChecklistRepository {
	return &ChecklistRepository{db: db}
}

func (r *ChecklistRepository) ListByTask(ctx context.Context, taskID string) ([]model.ChecklistItem, error) {
	var items []model.ChecklistItem
	err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("sort_order asc, id asc").
		Find(&items).Error
	return items, err
}

func (r *ChecklistRepository) Create(ctx context.Context, taskID, title string, order int) (*model.ChecklistItem, error) {
	item := &model.ChecklistItem{
		ID:        uuid.NewString(),
		TaskID:    taskID,
		Title:     title,
		SortOrder: order,
		CreatedAt: time.Now().UTC(),
	}
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}
