package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "github.com/salmanakber/mayaopps-sub001/internal/models"
)

type SkillRepository struct {
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) *SkillRepository {
	return &SkillRepository{db: db}
}

func (r *SkillRepository) Create(ctx context.Context, skill *model.Skill) error {
	if skill.ID == "" {
		skill.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(skill).Error
}

func (r *SkillRepository) ListByCompany(ctx context.Context, companyID string) ([]model.Skill, error) {
	var skills []model.Skill
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("category asc, name asc").
		Find(&skills).Error
	return skills, err
}
