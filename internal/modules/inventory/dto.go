package inventory

type CreateEquipmentRequest struct {
	Type       string  `json:"type" binding:"required"`
	Status     string  `json:"status"`
	Location   string  `json:"location" binding:"required"`
	ImageURL   string  `json:"image_url"`
	HourlyRate float64 `json:"hourly_rate"`
}

// UpdateEquipmentRequest is a partial update; nil fields are left untouched.
type UpdateEquipmentRequest struct {
	ID         int64    `json:"id" binding:"required"`
	Status     *string  `json:"status"`
	Location   *string  `json:"location"`
	ImageURL   *string  `json:"image_url"`
	HourlyRate *float64 `json:"hourly_rate"`
}

type SetStatusRequest struct {
	ID     int64  `json:"id" binding:"required"`
	Status string `json:"status" binding:"required"`
}
