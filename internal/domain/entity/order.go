package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus es el conjunto cerrado de estados de una orden de compra.
type OrderStatus string

const (
	OrderOrdered   OrderStatus = "ORDERED"
	OrderInTransit OrderStatus = "IN_TRANSIT"
	OrderDelivered OrderStatus = "DELIVERED"
	OrderCancelled OrderStatus = "CANCELLED"
)

// Grafo de avance estrictamente hacia adelante:
// ORDERED -> IN_TRANSIT -> DELIVERED, con cancelación desde los dos primeros.
var orderNext = map[OrderStatus]map[OrderStatus]bool{
	OrderOrdered:   {OrderInTransit: true, OrderCancelled: true},
	OrderInTransit: {OrderDelivered: true, OrderCancelled: true},
	OrderDelivered: {},
	OrderCancelled: {},
}

// ParseOrderStatus valida que s pertenezca al conjunto permitido.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	st := OrderStatus(s)
	_, ok := orderNext[st]
	return st, ok
}

// CanTransition indica si el grafo de estados permite pasar de from a to.
func (from OrderStatus) CanTransition(to OrderStatus) bool {
	return orderNext[from][to]
}

// IsTerminal indica si el estado no admite más transiciones.
func (s OrderStatus) IsTerminal() bool {
	return len(orderNext[s]) == 0
}

// Order es una compra de reposición de un ítem. TotalCost = Quantity × UnitCost
// se congela al crearla y nunca se recalcula; DeliveryDate usa un plazo fijo
// de 7 días como sustituto de un modelo real de lead time de proveedor.
type Order struct {
	ID           string
	ItemID       string
	ItemName     string
	Quantity     int
	UnitCost     decimal.Decimal
	TotalCost    decimal.Decimal
	Status       OrderStatus
	OrderedDate  time.Time
	DeliveryDate time.Time
}

// LeadTime plazo fijo de entrega aplicado a toda orden nueva.
const LeadTime = 7 * 24 * time.Hour
