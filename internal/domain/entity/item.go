package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa un artículo del catálogo del almacén. El costo unitario
// se congela en requisiciones y órdenes al momento de crearlas (snapshot).
type Item struct {
	ID              string
	Name            string
	SKU             string
	Category        string
	UnitCost        decimal.Decimal
	ReorderPoint    int
	ReorderQuantity int
	CreatedAt       time.Time
}
