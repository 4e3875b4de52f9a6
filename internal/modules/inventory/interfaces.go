package inventory

import (
	"context"

	"bikerental/internal/domain"
	"bikerental/internal/repository"
)

type EquipmentRepositoryInterface interface {
	Create(ctx context.Context, e *domain.Equipment) error
	GetByID(ctx context.Context, id int64) (*domain.Equipment, error)
	List(ctx context.Context, f repository.EquipmentFilters) ([]domain.Equipment, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]any) error
}
