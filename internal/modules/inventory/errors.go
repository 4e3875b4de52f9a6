package inventory

import "errors"

var (
	ErrNotFound      = errors.New("equipment not found")
	ErrInvalidStatus = errors.New("invalid equipment status")
	ErrInvalidRate   = errors.New("hourly rate must be non-negative")
	ErrForbidden     = errors.New("admin role required for this change")
)
