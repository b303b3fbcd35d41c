package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryRecord es la cantidad disponible de un ítem en una ubicación
// concreta (ítem + bodega + ubicación). QuantityOnHand nunca baja de cero;
// la base de datos lo refuerza con un CHECK.
type InventoryRecord struct {
	ID             string
	ItemID         string
	WarehouseID    string
	LocationID     string
	QuantityOnHand int
	LastUpdated    time.Time
}

// InventoryRow es la vista de listado: registro + datos del ítem (JOIN items).
type InventoryRow struct {
	InventoryRecord
	ItemName     string
	SKU          string
	UnitCost     decimal.Decimal
	ReorderPoint int
}

// InventoryDetail es la vista de detalle: registro + ítem + bodega + ubicación.
type InventoryDetail struct {
	InventoryRow
	Category          string
	ReorderQuantity   int
	WarehouseName     string
	WarehouseAddress  string
	LocationCapacity  int
	LocationUsedSpace int
}
