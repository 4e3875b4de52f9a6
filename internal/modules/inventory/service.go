package inventory

import (
	"context"
	"errors"

	"bikerental/internal/domain"
	"bikerental/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	equipment EquipmentRepositoryInterface
}

func NewService(equipment EquipmentRepositoryInterface) *Service {
	return &Service{equipment: equipment}
}

func (s *Service) List(ctx context.Context, f repository.EquipmentFilters) ([]domain.Equipment, error) {
	if f.Status != "" && !domain.EquipmentStatus(f.Status).Valid() {
		return nil, ErrInvalidStatus
	}
	return s.equipment.List(ctx, f)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	e, err := s.equipment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *Service) Create(ctx context.Context, req CreateEquipmentRequest) (*domain.Equipment, error) {
	status := domain.EquipmentStatus(req.Status)
	if req.Status == "" {
		status = domain.EquipmentAvailable
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	if req.HourlyRate < 0 {
		return nil, ErrInvalidRate
	}

	e := &domain.Equipment{
		Type:       req.Type,
		Status:     status,
		Location:   req.Location,
		ImageURL:   req.ImageURL,
		HourlyRate: req.HourlyRate,
	}
	if err := s.equipment.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Update applies a partial update. Any authenticated caller may flip the
// status (the rental service relays the renter's own token for that); every
// other field stays admin-only.
func (s *Service) Update(ctx context.Context, req UpdateEquipmentRequest, actorRole string) (*domain.Equipment, error) {
	if actorRole != string(domain.RoleAdmin) &&
		(req.Location != nil || req.ImageURL != nil || req.HourlyRate != nil) {
		return nil, ErrForbidden
	}

	fields := map[string]any{}
	if req.Status != nil {
		if !domain.EquipmentStatus(*req.Status).Valid() {
			return nil, ErrInvalidStatus
		}
		fields["status"] = *req.Status
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.ImageURL != nil {
		fields["image_url"] = *req.ImageURL
	}
	if req.HourlyRate != nil {
		if *req.HourlyRate < 0 {
			return nil, ErrInvalidRate
		}
		fields["hourly_rate"] = *req.HourlyRate
	}

	if _, err := s.GetByID(ctx, req.ID); err != nil {
		return nil, err
	}

	if err := s.equipment.UpdateFields(ctx, req.ID, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return s.GetByID(ctx, req.ID)
}

// SetStatus is the idempotent flip used by the rental reconciler.
func (s *Service) SetStatus(ctx context.Context, id int64, status string) (*domain.Equipment, error) {
	req := UpdateEquipmentRequest{ID: id, Status: &status}
	return s.Update(ctx, req, string(domain.RoleAdmin))
}
