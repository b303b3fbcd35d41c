package usecase

import (
	"github.com/masab009/warehouse-api-server-EIS/internal/application/dto"
	"github.com/masab009/warehouse-api-server-EIS/internal/domain/entity"
	"github.com/masab009/warehouse-api-server-EIS/internal/domain/repository"
)

// InventoryUseCase vistas de inventario (listado con JOIN a ítems y detalle
// con bodega y ubicación). Las mutaciones de cantidad pasan por el motor de
// órdenes, nunca por aquí.
type InventoryUseCase struct {
	repo repository.InventoryRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(repo repository.InventoryRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo}
}

// List lista los registros de inventario con los datos del ítem.
func (uc *InventoryUseCase) List() ([]dto.InventoryRowResponse, error) {
	rows, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, toInventoryRowResponse(r))
	}
	return out, nil
}

// GetDetail obtiene el detalle de un registro. Devuelve nil si no existe.
func (uc *InventoryUseCase) GetDetail(id string) (*dto.InventoryDetailResponse, error) {
	d, err := uc.repo.GetDetail(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, nil
	}
	return &dto.InventoryDetailResponse{
		InventoryRowResponse: toInventoryRowResponse(&d.InventoryRow),
		Category:             d.Category,
		ReorderQuantity:      d.ReorderQuantity,
		WarehouseName:        d.WarehouseName,
		WarehouseAddress:     d.WarehouseAddress,
		LocationCapacity:     d.LocationCapacity,
		LocationUsedSpace:    d.LocationUsedSpace,
	}, nil
}

func toInventoryRowResponse(r *entity.InventoryRow) dto.InventoryRowResponse {
	return dto.InventoryRowResponse{
		ID:             r.ID,
		ItemID:         r.ItemID,
		ItemName:       r.ItemName,
		SKU:            r.SKU,
		UnitCost:       r.UnitCost,
		ReorderPoint:   r.ReorderPoint,
		WarehouseID:    r.WarehouseID,
		LocationID:     r.LocationID,
		QuantityOnHand: r.QuantityOnHand,
		LastUpdated:    r.LastUpdated,
	}
}
