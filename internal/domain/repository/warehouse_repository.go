package repository

import "github.com/masab009/warehouse-api-server-EIS/internal/domain/entity"

// WarehouseRepository puerto de lectura de bodegas y ubicaciones.
type WarehouseRepository interface {
	GetByID(id string) (*entity.Warehouse, error)
	List() ([]*entity.Warehouse, error)
}
