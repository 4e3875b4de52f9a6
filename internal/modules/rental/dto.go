package rental

type StartRentalRequest struct {
	EquipmentID int64 `json:"equipment_id" binding:"required"`
}

// EquipmentInfo is the slice of the registry's equipment record the ledger
// cares about.
type EquipmentInfo struct {
	ID         int64   `json:"id"`
	Status     string  `json:"status"`
	HourlyRate float64 `json:"hourly_rate"`
}
