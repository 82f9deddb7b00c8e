package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a row does not exist.
var ErrNotFound = errors.New("record not found")

// Repositories bundles all data access.
type Repositories struct {
	Project  *ProjectRepository
	Order    *OrderRepository
	Library  *LibraryRepository
	Template *TemplateRepository
	Hours    *HoursRepository
	Employee *EmployeeRepository
	Supplier *SupplierRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Project:  NewProjectRepository(db),
		Order:    NewOrderRepository(db),
		Library:  NewLibraryRepository(db),
		Template: NewTemplateRepository(db),
		Hours:    NewHoursRepository(db),
		Employee: NewEmployeeRepository(db),
		Supplier: NewSupplierRepository(db),
	}
}
