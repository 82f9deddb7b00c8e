package repository

import (
	"context"
	"errors"

	"github.com/bobkin2-dev/projectbeheer/internal/entity"
	"gorm.io/gorm"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// FindAll lists projects, newest first; search matches number, name and client.
func (r *ProjectRepository) FindAll(ctx context.Context, search string) ([]entity.Project, error) {
	var projects []entity.Project
	query := r.db.WithContext(ctx).Model(&entity.Project{})
	if search != "" {
		kw := "%" + search + "%"
		query = query.Where("project_nummer ILIKE ? OR naam ILIKE ? OR klant ILIKE ?", kw, kw, kw)
	}
	err := query.Order("created_at DESC").Find(&projects).Error
	return projects, err
}

func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*entity.Project, error) {
	var project entity.Project
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepository) Create(ctx context.Context, project *entity.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

func (r *ProjectRepository) Update(ctx context.Context, project *entity.Project) error {
	return r.db.WithContext(ctx).Save(project).Error
}

// Delete removes the project together with its orders, order items and
// hour registrations.
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var orderIDs []string
		if err := tx.Model(&entity.Order{}).Where("project_id = ?", id).Pluck("id", &orderIDs).Error; err != nil {
			return err
		}
		if len(orderIDs) > 0 {
			if err := tx.Where("order_id IN ?", orderIDs).Delete(&entity.OrderItem{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("project_id = ?", id).Delete(&entity.HourEntry{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&entity.Order{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entity.Project{}).Error
	})
}
