package repository

import (
	"context"
	"errors"

	"github.com/bobkin2-dev/projectbeheer/internal/entity"
	"gorm.io/gorm"
)

type TemplateRepository struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

func (r *TemplateRepository) FindAll(ctx context.Context) ([]entity.Template, error) {
	var templates []entity.Template
	err := r.db.WithContext(ctx).
		Preload("Items").Preload("Items.Bibliotheek").
		Order("naam ASC").
		Find(&templates).Error
	return templates, err
}

func (r *TemplateRepository) FindByID(ctx context.Context, id string) (*entity.Template, error) {
	var template entity.Template
	err := r.db.WithContext(ctx).
		Preload("Items").Preload("Items.Bibliotheek").
		Where("id = ?", id).
		First(&template).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &template, nil
}

// Create stores the template header and its items together.
func (r *TemplateRepository) Create(ctx context.Context, template *entity.Template) error {
	return r.db.WithContext(ctx).Create(template).Error
}

func (r *TemplateRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("sjabloon_id = ?", id).Delete(&entity.TemplateItem{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entity.Template{}).Error
	})
}
