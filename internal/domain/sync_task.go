package domain

import "time"

// StatusSyncTask records an equipment status flip that could not be
// delivered to the inventory service in-request. The rental service's
// reconciler retries pending tasks until they succeed.
type StatusSyncTask struct {
	ID           int64           `json:"id" gorm:"primaryKey"`
	EquipmentID  int64           `json:"equipment_id" gorm:"index"`
	TargetStatus EquipmentStatus `json:"target_status"`
	Attempts     int             `json:"attempts"`
	LastError    string          `json:"last_error,omitempty" gorm:"type:text"`
	DoneAt       *time.Time      `json:"done_at,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func (StatusSyncTask) TableName() string { return "status_sync_tasks" }
