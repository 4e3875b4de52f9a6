package rental

import (
	"context"
	"time"

	"bikerental/internal/domain"
)

// RentalRepositoryInterface lists only the methods the rental service uses.
type RentalRepositoryInterface interface {
	Create(ctx context.Context, r *domain.Rental) error
	GetByID(ctx context.Context, id int64) (*domain.Rental, error)
	Complete(ctx context.Context, id int64, endTime time.Time, totalMinutes int, totalPrice float64) (int64, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Rental, error)
	ListAll(ctx context.Context) ([]domain.Rental, error)
}

// SyncTaskRepositoryInterface is the queue of equipment flips to retry.
type SyncTaskRepositoryInterface interface {
	Enqueue(ctx context.Context, t *domain.StatusSyncTask) error
	ListPending(ctx context.Context, limit int) ([]domain.StatusSyncTask, error)
	MarkDone(ctx context.Context, id int64) error
	MarkFailed(ctx context.Context, id int64, lastError string) error
}

// InventoryClient is the synchronous boundary to the inventory service. The
// caller's bearer token travels as an explicit parameter (token relay).
type InventoryClient interface {
	GetEquipment(ctx context.Context, id int64, token string) (*EquipmentInfo, error)
	SetStatus(ctx context.Context, id int64, status string, token string) error
}

// InternalStatusSetter is the reconciler's path: no user token survives to
// retry time, so it goes through the registry's internal endpoint instead.
type InternalStatusSetter interface {
	SetStatusInternal(ctx context.Context, id int64, status string) error
}
