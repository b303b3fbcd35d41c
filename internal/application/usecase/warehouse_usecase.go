package usecase

import (
	"github.com/masab009/warehouse-api-server-EIS/internal/application/dto"
	"github.com/masab009/warehouse-api-server-EIS/internal/domain/repository"
)

// WarehouseUseCase lecturas de bodegas.
type WarehouseUseCase struct {
	repo repository.WarehouseRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo}
}

// List lista bodegas ordenadas por nombre.
func (uc *WarehouseUseCase) List() ([]dto.WarehouseResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		out = append(out, dto.WarehouseResponse{
			ID:            w.ID,
			Name:          w.Name,
			Address:       w.Address,
			TotalCapacity: w.TotalCapacity,
			UsedCapacity:  w.UsedCapacity,
		})
	}
	return out, nil
}
