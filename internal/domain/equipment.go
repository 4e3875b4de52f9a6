package domain

import "time"

type EquipmentStatus string

const (
	EquipmentAvailable EquipmentStatus = "available"
	EquipmentRented    EquipmentStatus = "rented"
)

func (s EquipmentStatus) Valid() bool {
	return s == EquipmentAvailable || s == EquipmentRented
}

type Equipment struct {
	ID         int64           `json:"id" gorm:"primaryKey"`
	Type       string          `json:"type"`     // bike, scooter, ski
	Status     EquipmentStatus `json:"status"`   // available, rented
	Location   string          `json:"location"` // campus, dorm
	ImageURL   string          `json:"image_url,omitempty"`
	HourlyRate float64         `json:"hourly_rate"`
	CreatedAt  time.Time       `json:"created_at"`
}

func (Equipment) TableName() string { return "equipment" }
