package repository

import (
	"context"
	"errors"

	"github.com/bobkin2-dev/projectbeheer/internal/entity"
	"gorm.io/gorm"
)

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) FindAll(ctx context.Context, activeOnly bool) ([]entity.Employee, error) {
	var employees []entity.Employee
	query := r.db.WithContext(ctx).Model(&entity.Employee{})
	if activeOnly {
		query = query.Where("actief = ?", true)
	}
	err := query.Order("naam ASC").Find(&employees).Error
	return employees, err
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id string) (*entity.Employee, error) {
	var employee entity.Employee
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&employee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &employee, nil
}

func (r *EmployeeRepository) Create(ctx context.Context, employee *entity.Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

func (r *EmployeeRepository) Update(ctx context.Context, employee *entity.Employee) error {
	return r.db.WithContext(ctx).Save(employee).Error
}
