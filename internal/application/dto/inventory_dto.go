package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryRowResponse fila del listado de inventario (registro + ítem).
type InventoryRowResponse struct {
	ID             string          `json:"id"`
	ItemID         string          `json:"item_id"`
	ItemName       string          `json:"item_name"`
	SKU            string          `json:"sku"`
	UnitCost       decimal.Decimal `json:"unit_cost"`
	ReorderPoint   int             `json:"reorder_point"`
	WarehouseID    string          `json:"warehouse_id"`
	LocationID     string          `json:"location_id"`
	QuantityOnHand int             `json:"quantity_on_hand"`
	LastUpdated    time.Time       `json:"last_updated"`
}

// InventoryDetailResponse detalle de un registro (ítem + bodega + ubicación).
type InventoryDetailResponse struct {
	InventoryRowResponse
	Category          string `json:"category"`
	ReorderQuantity   int    `json:"reorder_quantity"`
	WarehouseName     string `json:"warehouse_name"`
	WarehouseAddress  string `json:"warehouse_address"`
	LocationCapacity  int    `json:"location_capacity"`
	LocationUsedSpace int    `json:"location_used_space"`
}
