package repository

import (
	"context"
	"time"

	"github.com/bobkin2-dev/projectbeheer/internal/entity"
	"gorm.io/gorm"
)

type HoursRepository struct {
	db *gorm.DB
}

func NewHoursRepository(db *gorm.DB) *HoursRepository {
	return &HoursRepository{db: db}
}

// HourFilters narrows the hour listing; zero values mean no filter.
type HourFilters struct {
	ProjectID    string
	OrderID      string
	MedewerkerID string
	From         *time.Time
	To           *time.Time
}

func (r *HoursRepository) FindAll(ctx context.Context, f HourFilters) ([]entity.HourEntry, error) {
	var entries []entity.HourEntry
	query := r.db.WithContext(ctx).Model(&entity.HourEntry{}).Preload("Medewerker")

	if f.ProjectID != "" {
		query = query.Where("project_id = ?", f.ProjectID)
	}
	if f.OrderID != "" {
		query = query.Where("order_id = ?", f.OrderID)
	}
	if f.MedewerkerID != "" {
		query = query.Where("medewerker_id = ?", f.MedewerkerID)
	}
	if f.From != nil {
		query = query.Where("datum >= ?", *f.From)
	}
	if f.To != nil {
		query = query.Where("datum <= ?", *f.To)
	}

	err := query.Order("datum DESC, created_at DESC").Find(&entries).Error
	return entries, err
}

func (r *HoursRepository) Create(ctx context.Context, entry *entity.HourEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *HoursRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.HourEntry{}).Error
}

// SumByOrder returns the total registered hours for one order.
func (r *HoursRepository) SumByOrder(ctx context.Context, orderID string) (float64, error) {
	var result struct{ Total float64 }
	err := r.db.WithContext(ctx).Model(&entity.HourEntry{}).
		Select("COALESCE(SUM(uren), 0) as total").
		Where("order_id = ?", orderID).
		Scan(&result).Error
	return result.Total, err
}

// SumByProject returns the total registered hours per order of a project.
func (r *HoursRepository) SumByProject(ctx context.Context, projectID string) (map[string]float64, error) {
	var rows []struct {
		OrderID string
		Total   float64
	}
	err := r.db.WithContext(ctx).Model(&entity.HourEntry{}).
		Select("order_id, COALESCE(SUM(uren), 0) as total").
		Where("project_id = ?", projectID).
		Group("order_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	totals := make(map[string]float64, len(rows))
	for _, row := range rows {
		totals[row.OrderID] = row.Total
	}
	return totals, nil
}
