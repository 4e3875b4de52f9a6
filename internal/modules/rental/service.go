package rental

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"bikerental/internal/domain"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Service owns the rental lifecycle: active → completed, nothing else. The
// local rental row is always the commit point; equipment status flips in the
// inventory service follow it and are repaired by the reconciler when they
// fail.
type Service struct {
	rentals   RentalRepositoryInterface
	inventory InventoryClient
	syncTasks SyncTaskRepositoryInterface // optional; nil disables reconciliation
}

func NewService(rentals RentalRepositoryInterface, inventory InventoryClient, syncTasks SyncTaskRepositoryInterface) *Service {
	return &Service{
		rentals:   rentals,
		inventory: inventory,
		syncTasks: syncTasks,
	}
}

// Start begins a rental for the caller. The equipment must exist and be
// available; the check and the subsequent flip both relay the caller's token.
func (s *Service) Start(ctx context.Context, userID, equipmentID int64, token string) (*domain.Rental, error) {
	eq, err := s.inventory.GetEquipment(ctx, equipmentID, token)
	if err != nil {
		return nil, err
	}
	if eq.Status != string(domain.EquipmentAvailable) {
		return nil, ErrEquipmentUnavailable
	}

	rental := &domain.Rental{
		UserID:      userID,
		EquipmentID: equipmentID,
		StartTime:   time.Now().UTC(),
		Status:      domain.RentalActive,
	}
	if err := s.rentals.Create(ctx, rental); err != nil {
		return nil, err
	}

	if err := s.inventory.SetStatus(ctx, equipmentID, string(domain.EquipmentRented), token); err != nil {
		s.deferFlip(ctx, equipmentID, domain.EquipmentRented, err)
	}

	return rental, nil
}

// Return completes a rental and prices it. The rate fetch is the only remote
// call that can fail the request; after the guarded local update commits, the
// release flip never blocks or reverts it.
func (s *Service) Return(ctx context.Context, rentalID, actorID int64, actorRole, token string) (*domain.Rental, error) {
	rental, err := s.rentals.GetByID(ctx, rentalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if rental.UserID != actorID && actorRole != string(domain.RoleAdmin) {
		return nil, ErrForbidden
	}
	if rental.Status != domain.RentalActive {
		return nil, ErrAlreadyCompleted
	}

	eq, err := s.inventory.GetEquipment(ctx, rental.EquipmentID, token)
	if err != nil {
		// Any registry failure here is a gateway error: without the rate the
		// return cannot be priced, and nothing has been committed yet.
		if !errors.Is(err, ErrInventoryUnavailable) {
			err = fmt.Errorf("%w: %v", ErrInventoryUnavailable, err)
		}
		return nil, err
	}

	end := time.Now().UTC()
	minutes, price := computePrice(rental.StartTime, end, eq.HourlyRate)

	rows, err := s.rentals.Complete(ctx, rentalID, end, minutes, price)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		// Lost the race against a concurrent return.
		return nil, ErrAlreadyCompleted
	}

	if err := s.inventory.SetStatus(ctx, rental.EquipmentID, string(domain.EquipmentAvailable), token); err != nil {
		s.deferFlip(ctx, rental.EquipmentID, domain.EquipmentAvailable, err)
	}

	rental.EndTime = &end
	rental.TotalMinutes = &minutes
	rental.TotalPrice = &price
	rental.Status = domain.RentalCompleted
	return rental, nil
}

func (s *Service) Get(ctx context.Context, rentalID, actorID int64, actorRole string) (*domain.Rental, error) {
	rental, err := s.rentals.GetByID(ctx, rentalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if rental.UserID != actorID && actorRole != string(domain.RoleAdmin) {
		return nil, ErrForbidden
	}
	return rental, nil
}

func (s *Service) GetMyRentals(ctx context.Context, userID int64) ([]domain.Rental, error) {
	return s.rentals.ListByUser(ctx, userID)
}

func (s *Service) GetAllRentals(ctx context.Context) ([]domain.Rental, error) {
	return s.rentals.ListAll(ctx)
}

// deferFlip records an undeliverable status flip for the reconciler and
// keeps serving; the local write already committed.
func (s *Service) deferFlip(ctx context.Context, equipmentID int64, target domain.EquipmentStatus, cause error) {
	log.Warn().
		Err(cause).
		Int64("equipment_id", equipmentID).
		Str("target_status", string(target)).
		Msg("equipment status flip failed, deferring to reconciler")

	if s.syncTasks == nil {
		return
	}
	task := &domain.StatusSyncTask{
		EquipmentID:  equipmentID,
		TargetStatus: target,
		LastError:    cause.Error(),
	}
	if err := s.syncTasks.Enqueue(ctx, task); err != nil {
		log.Error().Err(err).Int64("equipment_id", equipmentID).Msg("failed to enqueue status sync task")
	}
}

// computePrice bills usage by the minute but charges whole hours: elapsed
// time rounds up to minutes (at least one), minutes round up to hours (at
// least one), and the price is hours times the hourly rate.
func computePrice(start, end time.Time, rate float64) (minutes int, price float64) {
	minutes = int(math.Ceil(end.Sub(start).Seconds() / 60))
	if minutes < 1 {
		minutes = 1
	}

	hours := int(math.Ceil(float64(minutes) / 60))
	if hours < 1 {
		hours = 1
	}

	price = math.Round(float64(hours)*rate*100) / 100
	return minutes, price
}
