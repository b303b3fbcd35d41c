package usecase

import (
	"github.com/masab009/warehouse-api-server-EIS/internal/application/dto"
	"github.com/masab009/warehouse-api-server-EIS/internal/domain/entity"
	"github.com/masab009/warehouse-api-server-EIS/internal/domain/repository"
)

// PackageUseCase lecturas de paquetes.
type PackageUseCase struct {
	repo repository.PackageRepository
}

// NewPackageUseCase construye el caso de uso.
func NewPackageUseCase(repo repository.PackageRepository) *PackageUseCase {
	return &PackageUseCase{repo: repo}
}

// List lista paquetes (más recientes primero).
func (uc *PackageUseCase) List() ([]dto.PackageResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.PackageResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toPackageResponse(p))
	}
	return out, nil
}

// GetByID obtiene un paquete. Devuelve nil si no existe.
func (uc *PackageUseCase) GetByID(id string) (*dto.PackageResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	resp := toPackageResponse(p)
	return &resp, nil
}

func toPackageResponse(p *entity.Package) dto.PackageResponse {
	return dto.PackageResponse{
		ID:          p.ID,
		OrderID:     p.OrderID,
		PickListID:  p.PickListID,
		PackageType: p.PackageType,
		Status:      string(p.Status),
		CreatedAt:   p.CreatedAt,
	}
}
