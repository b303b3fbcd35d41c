package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemResponse ítem del catálogo.
type ItemResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	SKU             string          `json:"sku"`
	Category        string          `json:"category"`
	UnitCost        decimal.Decimal `json:"unit_cost"`
	ReorderPoint    int             `json:"reorder_point"`
	ReorderQuantity int             `json:"reorder_quantity"`
	CreatedAt       time.Time       `json:"created_at"`
}

// WarehouseResponse bodega con capacidad.
type WarehouseResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Address       string `json:"address"`
	TotalCapacity int    `json:"total_capacity"`
	UsedCapacity  int    `json:"used_capacity"`
}
