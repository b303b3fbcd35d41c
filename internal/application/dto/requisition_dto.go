package dto

import "time"

// CreateRequisitionRequest body para POST /api/requisitions.
type CreateRequisitionRequest struct {
	ItemID        string `json:"item_id"`
	Quantity      int    `json:"quantity"`
	Justification string `json:"justification"`
	CreatedBy     string `json:"created_by"`
}

// RequisitionResponse representación HTTP de una requisición.
type RequisitionResponse struct {
	ID            string    `json:"id"`
	ItemID        string    `json:"item_id"`
	ItemName      string    `json:"item_name"`
	Quantity      int       `json:"quantity"`
	Status        string    `json:"status"`
	CreatedBy     string    `json:"created_by"`
	Justification string    `json:"justification"`
	CreatedAt     time.Time `json:"created_at"`
}

// RequisitionListResponse listado paginado.
type RequisitionListResponse struct {
	Items []RequisitionResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
