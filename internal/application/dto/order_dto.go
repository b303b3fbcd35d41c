package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest body para POST /api/orders. WarehouseID es opcional:
// vacío conserva la semántica histórica (primer registro de inventario
// que coincida por ítem).
type CreateOrderRequest struct {
	ItemID      string          `json:"item_id"`
	ItemName    string          `json:"item_name"`
	Quantity    int             `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	WarehouseID string          `json:"warehouse_id,omitempty"`
}

// OrderResponse representación HTTP de una orden.
type OrderResponse struct {
	ID           string          `json:"id"`
	ItemID       string          `json:"item_id"`
	ItemName     string          `json:"item_name"`
	Quantity     int             `json:"quantity"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	TotalCost    decimal.Decimal `json:"total_cost"`
	Status       string          `json:"status"`
	OrderedDate  time.Time       `json:"ordered_date"`
	DeliveryDate time.Time       `json:"delivery_date"`
}

// OrderListResponse listado paginado.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
