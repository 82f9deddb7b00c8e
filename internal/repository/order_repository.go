package repository

import (
	"context"
	"errors"

	"github.com/bobkin2-dev/projectbeheer/internal/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).Preload("Items").Where("id = ?", id).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindByProject lists the orders of one project, oldest first.
func (r *OrderRepository) FindByProject(ctx context.Context, projectID string) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.db.WithContext(ctx).Preload("Items").
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&orders).Error
	return orders, err
}

// FindAll lists every order, optionally filtered by status; used by the
// kanban board which derives column membership itself.
func (r *OrderRepository) FindAll(ctx context.Context, statuses []string) ([]entity.Order, error) {
	var orders []entity.Order
	query := r.db.WithContext(ctx).Model(&entity.Order{})
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}
	err := query.Order("created_at ASC").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) Create(ctx context.Context, order *entity.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *OrderRepository) Update(ctx context.Context, order *entity.Order) error {
	return r.db.WithContext(ctx).Save(order).Error
}

// UpdateFields writes a partial column set on one order row.
func (r *OrderRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&entity.Order{}).Where("id = ?", id).Updates(fields).Error
}

// BulkUpdateFields sets a column set on many orders in a single call.
func (r *OrderRepository) BulkUpdateFields(ctx context.Context, ids []string, fields map[string]interface{}) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&entity.Order{}).
		Where("id IN ?", ids).
		Updates(fields).Error
}

func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&entity.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entity.Order{}).Error
	})
}

// --- order items ---

func (r *OrderRepository) FindItems(ctx context.Context, orderID string) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).
		Order("created_at ASC").Find(&items).Error
	return items, err
}

func (r *OrderRepository) FindItemByLibraryRef(ctx context.Context, orderID, bibliotheekID string) (*entity.OrderItem, error) {
	var item entity.OrderItem
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND bibliotheek_id = ?", orderID, bibliotheekID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *OrderRepository) CreateItem(ctx context.Context, item *entity.OrderItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *OrderRepository) UpdateItem(ctx context.Context, item *entity.OrderItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *OrderRepository) DeleteItem(ctx context.Context, itemID string) error {
	return r.db.WithContext(ctx).Where("id = ?", itemID).Delete(&entity.OrderItem{}).Error
}
