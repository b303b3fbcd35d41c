package entity

// Warehouse representa una bodega física con su capacidad total y usada.
type Warehouse struct {
	ID            string
	Name          string
	Address       string
	TotalCapacity int
	UsedCapacity  int
}

// StorageLocation es una ubicación de almacenamiento dentro de una bodega.
type StorageLocation struct {
	ID          string
	WarehouseID string
	Capacity    int
	UsedSpace   int
}
