package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/masab009/warehouse-api-server-EIS/internal/domain/entity"
	"github.com/masab009/warehouse-api-server-EIS/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL
// (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de inventario. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// GetByItemForUpdate localiza el registro de inventario del ítem y bloquea la
// fila (SELECT FOR UPDATE). Con warehouseID vacío toma la primera coincidencia
// por id, que es el comportamiento histórico de actualizar solo por item_id.
// Devuelve nil si el ítem no tiene registro.
func (r *InventoryRepo) GetByItemForUpdate(itemID, warehouseID string) (*entity.InventoryRecord, error) {
	query := `
		SELECT id, item_id, warehouse_id, location_id, quantity_on_hand, last_updated
		FROM inventory_records
		WHERE item_id = $1 AND ($2 = '' OR warehouse_id = $2)
		ORDER BY id
		LIMIT 1
		FOR UPDATE`
	var rec entity.InventoryRecord
	err := r.q.QueryRow(context.Background(), query, itemID, warehouseID).Scan(
		&rec.ID, &rec.ItemID, &rec.WarehouseID, &rec.LocationID,
		&rec.QuantityOnHand, &rec.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory for update: %w", err)
	}
	return &rec, nil
}

// UpdateQuantity fija la cantidad disponible de un registro y refresca
// last_updated. El CHECK de la tabla rechaza cantidades negativas.
func (r *InventoryRepo) UpdateQuantity(id string, quantityOnHand int) error {
	query := `
		UPDATE inventory_records
		SET quantity_on_hand = $2, last_updated = now()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, quantityOnHand)
	if err != nil {
		return fmt.Errorf("update inventory quantity: %w", err)
	}
	return nil
}

// List lista los registros con los datos del ítem (JOIN items).
func (r *InventoryRepo) List() ([]*entity.InventoryRow, error) {
	query := `
		SELECT ir.id, ir.item_id, i.name, i.sku, i.unit_cost, i.reorder_point,
		       ir.warehouse_id, ir.location_id, ir.quantity_on_hand, ir.last_updated
		FROM inventory_records ir
		JOIN items i ON ir.item_id = i.id
		ORDER BY ir.id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryRow
	for rows.Next() {
		var row entity.InventoryRow
		if err := rows.Scan(&row.ID, &row.ItemID, &row.ItemName, &row.SKU, &row.UnitCost,
			&row.ReorderPoint, &row.WarehouseID, &row.LocationID,
			&row.QuantityOnHand, &row.LastUpdated); err != nil {
			return nil, fmt.Errorf("scan inventory row: %w", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}

// GetDetail obtiene el detalle de un registro con ítem, bodega y ubicación.
// Devuelve nil si no existe.
func (r *InventoryRepo) GetDetail(id string) (*entity.InventoryDetail, error) {
	query := `
		SELECT ir.id, ir.item_id, i.name, i.sku, i.category, i.unit_cost,
		       i.reorder_point, i.reorder_quantity,
		       ir.warehouse_id, w.name, w.address,
		       ir.location_id, sl.capacity, sl.used_space,
		       ir.quantity_on_hand, ir.last_updated
		FROM inventory_records ir
		JOIN items i ON ir.item_id = i.id
		JOIN warehouses w ON ir.warehouse_id = w.id
		JOIN storage_locations sl ON ir.location_id = sl.id
		WHERE ir.id = $1`
	var d entity.InventoryDetail
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.ItemID, &d.ItemName, &d.SKU, &d.Category, &d.UnitCost,
		&d.ReorderPoint, &d.ReorderQuantity,
		&d.WarehouseID, &d.WarehouseName, &d.WarehouseAddress,
		&d.LocationID, &d.LocationCapacity, &d.LocationUsedSpace,
		&d.QuantityOnHand, &d.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory detail: %w", err)
	}
	return &d, nil
}
