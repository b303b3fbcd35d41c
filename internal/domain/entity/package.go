package entity

import "time"

// PackageStatus estados de un paquete en la zona de empaque.
type PackageStatus string

const (
	PackagePacking  PackageStatus = "PACKING"
	PackageVerified PackageStatus = "VERIFIED"
	PackageLabeled  PackageStatus = "LABELED"
)

var packageNext = map[PackageStatus]map[PackageStatus]bool{
	PackagePacking:  {PackageVerified: true},
	PackageVerified: {PackageLabeled: true},
	PackageLabeled:  {},
}

// ParsePackageStatus valida que s pertenezca al conjunto permitido.
func ParsePackageStatus(s string) (PackageStatus, bool) {
	st := PackageStatus(s)
	_, ok := packageNext[st]
	return st, ok
}

// CanTransition indica si el grafo de estados permite pasar de from a to.
func (from PackageStatus) CanTransition(to PackageStatus) bool {
	return packageNext[from][to]
}

// Package es un paquete armado a partir de una lista de picking.
type Package struct {
	ID          string
	OrderID     string
	PickListID  string
	PackageType string
	Status      PackageStatus
	CreatedAt   time.Time
}
