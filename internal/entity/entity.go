package entity

import "gorm.io/gorm"

// AutoMigrate migrates all tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Project{},
		&Order{},
		&OrderItem{},
		&LibraryItem{},
		&Template{},
		&TemplateItem{},
		&Supplier{},
		&Employee{},
		&HourEntry{},
	)
}
