package repository

import "github.com/masab009/warehouse-api-server-EIS/internal/domain/entity"

// InventoryRepository puerto sobre inventory_records.
//
// GetByItemForUpdate localiza el registro a incrementar al crear una orden:
// si warehouseID es vacío toma la primera coincidencia por id (el
// comportamiento histórico de actualizar solo por item_id);
// con warehouseID se desambigua explícitamente. Dentro de una transacción
// bloquea la fila (SELECT FOR UPDATE).
type InventoryRepository interface {
	GetByItemForUpdate(itemID, warehouseID string) (*entity.InventoryRecord, error)
	UpdateQuantity(id string, quantityOnHand int) error
	List() ([]*entity.InventoryRow, error)
	GetDetail(id string) (*entity.InventoryDetail, error)
}
