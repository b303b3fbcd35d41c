package entity

import "time"

// PickListStatus estados de una lista de picking.
type PickListStatus string

const (
	PickListPending   PickListStatus = "PENDING"
	PickListAssigned  PickListStatus = "ASSIGNED"
	PickListCompleted PickListStatus = "COMPLETED"
)

var pickListNext = map[PickListStatus]map[PickListStatus]bool{
	PickListPending:   {PickListAssigned: true},
	PickListAssigned:  {PickListCompleted: true},
	PickListCompleted: {},
}

// ParsePickListStatus valida que s pertenezca al conjunto permitido.
func ParsePickListStatus(s string) (PickListStatus, bool) {
	st := PickListStatus(s)
	_, ok := pickListNext[st]
	return st, ok
}

// CanTransition indica si el grafo de estados permite pasar de from a to.
func (from PickListStatus) CanTransition(to PickListStatus) bool {
	return pickListNext[from][to]
}

// PickList agrupa los ítems a recoger para despachar una orden.
type PickList struct {
	ID         string
	OrderID    string
	Status     PickListStatus
	AssignedTo string
	CreatedAt  time.Time
}

// PickListItem es una línea de la lista: cuánto se requiere y cuánto se recogió.
type PickListItem struct {
	ID               string
	PickListID       string
	ItemID           string
	QuantityRequired int
	QuantityPicked   int
}
