package repository

import (
	"context"
	"errors"

	"github.com/bobkin2-dev/projectbeheer/internal/entity"
	"gorm.io/gorm"
)

type LibraryRepository struct {
	db *gorm.DB
}

func NewLibraryRepository(db *gorm.DB) *LibraryRepository {
	return &LibraryRepository{db: db}
}

// FindAll lists library items with optional category, supplier and
// search filters.
func (r *LibraryRepository) FindAll(ctx context.Context, filters map[string]string) ([]entity.LibraryItem, error) {
	var items []entity.LibraryItem
	query := r.db.WithContext(ctx).Model(&entity.LibraryItem{})

	if categorie := filters["categorie"]; categorie != "" {
		query = query.Where("categorie = ?", categorie)
	}
	if leverancier := filters["leverancier"]; leverancier != "" {
		query = query.Where("leverancier = ?", leverancier)
	}
	if search := filters["search"]; search != "" {
		kw := "%" + search + "%"
		query = query.Where("naam ILIKE ? OR artikelnummer ILIKE ? OR omschrijving ILIKE ?", kw, kw, kw)
	}

	err := query.Order("naam ASC").Find(&items).Error
	return items, err
}

func (r *LibraryRepository) FindByID(ctx context.Context, id string) (*entity.LibraryItem, error) {
	var item entity.LibraryItem
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *LibraryRepository) Create(ctx context.Context, item *entity.LibraryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// BatchCreate inserts a set of items in one call; the whole batch
// succeeds or fails together.
func (r *LibraryRepository) BatchCreate(ctx context.Context, items []entity.LibraryItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *LibraryRepository) Update(ctx context.Context, item *entity.LibraryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *LibraryRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.LibraryItem{}).Error
}
