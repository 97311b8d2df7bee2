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

type WorkerRepository struct {
	db *gorm.DB
}

func NewWorkerRepository(db *gorm.DB) *WorkerRepository {
	return &WorkerRepository{db: db}
}

// Create stores a user together with any nested skills, availability and leave.
func (r *WorkerRepository) Create(ctx context.Context, user *model.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = time.Now().UTC()
	for i := range user.Skills {
		user.Skills[i].UserID = user.ID
	}
	for i := range user.Availability {
		if user.Availability[i].ID == "" {
			user.Availability[i].ID = uuid.NewString()
		}
		user.Availability[i].UserID = user.ID
	}
	for i := range user.Leave {
		if user.Leave[i].ID == "" {
			user.Leave[i].ID = uuid.NewString()
		}
		user.Leave[i].UserID = user.ID
		user.Leave[i].StartDate = user.Leave[i].StartDate.UTC()
		user.Leave[i].EndDate = user.Leave[i].EndDate.UTC()
	}

	return r.db.WithContext(ctx).Create(user).Error
}

func (r *WorkerRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkerNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ListWorkers returns the company's assignable workers ordered by name.
func (r *WorkerRepository) ListWorkers(ctx context.Context, companyID string) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND role = ?", companyID, constants.RoleCleaner).
		Order("name asc, id asc").
		Find(&users).Error
	return users, err
}

func (r *WorkerRepository) Skills(ctx context.Context, userID string) ([]model.Skill, error) {
	var skills []model.Skill
	err := r.db.WithContext(ctx).
		Joins("JOIN worker_skills ON worker_skills.skill_id = skills.id").
		Where("worker_skills.user_id = ?", userID).
		Order("skills.name asc").
		Find(&skills).Error
	return skills, err
}

func (r *WorkerRepository) Availability(ctx context.Context, userID string) ([]model.Availability, error) {
	var windows []model.Availability
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("day_of_week asc, start_time asc").
		Find(&windows).Error
	return windows, err
}

// ApprovedLeave returns approved leave overlapping [from, to].
func (r *WorkerRepository) ApprovedLeave(ctx context.Context, userID string, from, to time.Time) ([]model.LeaveRequest, error) {
	var leave []model.LeaveRequest
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, model.LeaveApproved).
		Where("start_date <= ? AND end_date >= ?", to.UTC(), from.UTC()).
		Order("start_date asc").
		Find(&leave).Error
	return leave, err
}
