package entity

import "time"

// RequisitionStatus es el conjunto cerrado de estados de una requisición.
type RequisitionStatus string

const (
	RequisitionPending  RequisitionStatus = "PENDING"
	RequisitionApproved RequisitionStatus = "APPROVED"
	RequisitionRejected RequisitionStatus = "REJECTED"
)

// PENDING es el estado inicial implícito; APPROVED y REJECTED son terminales.
var requisitionNext = map[RequisitionStatus]map[RequisitionStatus]bool{
	RequisitionPending:  {RequisitionApproved: true, RequisitionRejected: true},
	RequisitionApproved: {},
	RequisitionRejected: {},
}

// ParseRequisitionStatus valida que s pertenezca al conjunto permitido.
func ParseRequisitionStatus(s string) (RequisitionStatus, bool) {
	st := RequisitionStatus(s)
	_, ok := requisitionNext[st]
	return st, ok
}

// CanTransition indica si el grafo de estados permite pasar de from a to.
// La repetición del mismo estado se trata aparte (idempotencia) en el caso de uso.
func (from RequisitionStatus) CanTransition(to RequisitionStatus) bool {
	return requisitionNext[from][to]
}

// IsTerminal indica si el estado no admite más transiciones.
func (s RequisitionStatus) IsTerminal() bool {
	return len(requisitionNext[s]) == 0
}

// Requisition es una solicitud de compra/reposición de un ítem, sujeta a
// aprobación. ItemName es snapshot del nombre al momento de crearla.
type Requisition struct {
	ID            string
	ItemID        string
	ItemName      string
	Quantity      int
	Status        RequisitionStatus
	CreatedBy     string
	Justification string
	CreatedAt     time.Time
}
