package domain

import "time"

type RentalStatus string

const (
	RentalActive    RentalStatus = "active"
	RentalCompleted RentalStatus = "completed"
)

type Rental struct {
	ID           int64        `json:"id" gorm:"primaryKey"`
	UserID       int64        `json:"user_id" gorm:"index"`
	EquipmentID  int64        `json:"equipment_id" gorm:"index"`
	StartTime    time.Time    `json:"start_time"`
	EndTime      *time.Time   `json:"end_time,omitempty"`
	Status       RentalStatus `json:"status"`
	TotalMinutes *int         `json:"total_minutes,omitempty"`
	TotalPrice   *float64     `json:"total_price,omitempty"`
	PenaltyEUR   float64      `json:"penalty_eur"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}
