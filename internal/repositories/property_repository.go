package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "github.com/salmanakber/mayaopps-sub001/internal/errors"
	model "github.com/salmanakber/mayaopps-sub001/internal/models"
)

type PropertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

func (r *PropertyRepository) Create(ctx context.Context, property *model.Property) error {
	if property.ID == "" {
		property.ID = uuid.NewString()
	}
	property.CreatedAt = time.Now().UTC()
	for i := range property.SkillRequirements {
		property.SkillRequirements[i].PropertyID = property.ID
	}
	return r.db.WithContext(ctx).Create(property).Error
}

func (r *PropertyRepository) FindByID(ctx context.Context, id string) (*model.Property, error) {
	var property model.Property
	err := r.db.WithContext(ctx).First(&property, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPropertyNotFound
		}
		return nil, err
	}
	return &property, nil
}

// RequiredSkills returns only the IsRequired requirements, with skill names.
func (r *PropertyRepository) RequiredSkills(ctx context.Context, propertyID string) ([]model.PropertySkill, error) {
	var requirements []model.PropertySkill
	err := r.db.WithContext(ctx).
		Preload("Skill").
		Where("property_id = ? AND is_required = ?", propertyID, true).
		Find(&requirements).Error
	return requirements, err
}
