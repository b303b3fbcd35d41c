package usecase

import (
	"github.com/masab009/warehouse-api-server-EIS/internal/application/dto"
	"github.com/masab009/warehouse-api-server-EIS/internal/domain/entity"
	"github.com/masab009/warehouse-api-server-EIS/internal/domain/repository"
)

// ItemUseCase lecturas del catálogo de ítems.
type ItemUseCase struct {
	repo repository.ItemRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

// List lista el catálogo ordenado por nombre.
func (uc *ItemUseCase) List() ([]dto.ItemResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		out = append(out, toItemResponse(it))
	}
	return out, nil
}

func toItemResponse(i *entity.Item) dto.ItemResponse {
	return dto.ItemResponse{
		ID:              i.ID,
		Name:            i.Name,
		SKU:             i.SKU,
		Category:        i.Category,
		UnitCost:        i.UnitCost,
		ReorderPoint:    i.ReorderPoint,
		ReorderQuantity: i.ReorderQuantity,
		CreatedAt:       i.CreatedAt,
	}
}
