package rental

import "errors"

var (
	ErrNotFound             = errors.New("rental not found")
	ErrForbidden            = errors.New("not the rental owner")
	ErrAlreadyCompleted     = errors.New("rental is not active")
	ErrEquipmentNotFound    = errors.New("equipment not found")
	ErrEquipmentUnavailable = errors.New("equipment is not available")
	ErrInventoryUnavailable = errors.New("inventory service unavailable")
)
