package repository

import (
	"context"
	"time"

	"bikerental/internal/domain"

	"gorm.io/gorm"
)

type RentalRepository struct {
	db *gorm.DB
}

func NewRentalRepository(db *gorm.DB) *RentalRepository {
	return &RentalRepository{db: db}
}

func (r *RentalRepository) Create(ctx context.Context, rental *domain.Rental) error {
	return r.db.WithContext(ctx).Create(rental).Error
}

func (r *RentalRepository) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	var rental domain.Rental
	tx := r.db.WithContext(ctx).First(&rental, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &rental, nil
}

// Complete commits the return in a single guarded UPDATE. The status
// predicate is the compare-and-swap that stops two concurrent returns from
// both completing the same rental; the caller checks the returned row count.
func (r *RentalRepository) Complete(ctx context.Context, id int64, endTime time.Time, totalMinutes int, totalPrice float64) (int64, error) {
	tx := r.db.WithContext(ctx).
		Model(&domain.Rental{}).
		Where("id = ? AND status = ?", id, domain.RentalActive).
		Updates(map[string]any{
			"end_time":      endTime,
			"total_minutes": totalMinutes,
			"total_price":   totalPrice,
			"status":        string(domain.RentalCompleted),
		})
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}

func (r *RentalRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Rental, error) {
	var rentals []domain.Rental
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_time DESC").
		Find(&rentals).Error
	if err != nil {
		return nil, err
	}
	return rentals, nil
}

func (r *RentalRepository) ListAll(ctx context.Context) ([]domain.Rental, error) {
	var rentals []domain.Rental
	err := r.db.WithContext(ctx).
		Order("start_time DESC").
		Find(&rentals).Error
	if err != nil {
		return nil, err
	}
	return rentals, nil
}
