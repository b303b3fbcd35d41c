package dto

import "time"

// PickListResponse lista de picking.
type PickListResponse struct {
	ID         string    `json:"id"`
	OrderID    string    `json:"order_id"`
	Status     string    `json:"status"`
	AssignedTo string    `json:"assigned_to,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// PickListItemResponse línea de una lista de picking.
type PickListItemResponse struct {
	ID               string `json:"id"`
	ItemID           string `json:"item_id"`
	QuantityRequired int    `json:"quantity_required"`
	QuantityPicked   int    `json:"quantity_picked"`
}

// PickListDetailResponse lista con sus líneas.
type PickListDetailResponse struct {
	PickListResponse
	Items []PickListItemResponse `json:"items"`
}

// PackageResponse paquete en empaque.
type PackageResponse struct {
	ID          string    `json:"id"`
	OrderID     string    `json:"order_id"`
	PickListID  string    `json:"pick_list_id"`
	PackageType string    `json:"package_type"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
