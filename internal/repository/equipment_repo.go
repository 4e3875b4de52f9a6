package repository

import (
	"context"

	"bikerental/internal/domain"

	"gorm.io/gorm"
)

type EquipmentFilters struct {
	Status string
	Type   string
}

type EquipmentRepository struct {
	db *gorm.DB
}

func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

func (r *EquipmentRepository) Create(ctx context.Context, e *domain.Equipment) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *EquipmentRepository) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	var e domain.Equipment
	tx := r.db.WithContext(ctx).First(&e, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &e, nil
}

func (r *EquipmentRepository) List(ctx context.Context, f EquipmentFilters) ([]domain.Equipment, error) {
	q := r.db.WithContext(ctx).Model(&domain.Equipment{})

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}

	var items []domain.Equipment
	if err := q.Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateFields applies a partial update. Callers decide which columns change;
// an empty map is a no-op.
func (r *EquipmentRepository) UpdateFields(ctx context.Context, id int64, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	tx := r.db.WithContext(ctx).
		Model(&domain.Equipment{}).
		Where("id = ?", id).
		Updates(fields)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
