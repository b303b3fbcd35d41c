package usecase

import (
	"context"

	"github.com/masab009/warehouse-api-server-EIS/internal/application/dto"
	"github.com/masab009/warehouse-api-server-EIS/internal/domain"
	"github.com/masab009/warehouse-api-server-EIS/internal/domain/entity"
	"github.com/masab009/warehouse-api-server-EIS/internal/domain/repository"
)

// PickingTxRunner ejecuta una función con el repo de picking atado a una
// transacción. Implementado por el mismo runner de postgres que atiende al
// motor de procurement.
type PickingTxRunner interface {
	RunPicking(ctx context.Context, fn func(pickRepo repository.PickListRepository) error) error
}

// PickListUseCase lecturas y transiciones de listas de picking.
// PENDING -> ASSIGNED -> COMPLETED; asignar exige un picker.
type PickListUseCase struct {
	txRunner PickingTxRunner
	repo     repository.PickListRepository
	strict   bool
}

// NewPickListUseCase construye el caso de uso.
func NewPickListUseCase(txRunner PickingTxRunner, repo repository.PickListRepository, strict bool) *PickListUseCase {
	return &PickListUseCase{txRunner: txRunner, repo: repo, strict: strict}
}

// List lista las listas de picking (más recientes primero).
func (uc *PickListUseCase) List() ([]dto.PickListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.PickListResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toPickListResponse(p))
	}
	return out, nil
}

// GetDetail obtiene una lista con sus líneas. Devuelve nil si no existe.
func (uc *PickListUseCase) GetDetail(id string) (*dto.PickListDetailResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	lines, err := uc.repo.ListItems(id)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PickListItemResponse, 0, len(lines))
	for _, l := range lines {
		items = append(items, dto.PickListItemResponse{
			ID:               l.ID,
			ItemID:           l.ItemID,
			QuantityRequired: l.QuantityRequired,
			QuantityPicked:   l.QuantityPicked,
		})
	}
	return &dto.PickListDetailResponse{
		PickListResponse: toPickListResponse(p),
		Items:            items,
	}, nil
}

// Transition aplica un estado destino a una lista de picking con la misma
// mecánica del motor de procurement: fila bloqueada, repetición idempotente,
// tabla de transiciones en modo estricto.
func (uc *PickListUseCase) Transition(ctx context.Context, id, targetStatus, assignedTo string) (*dto.PickListResponse, error) {
	if targetStatus == "" {
		return nil, domain.ErrInvalidInput
	}
	target, ok := entity.ParsePickListStatus(targetStatus)
	if !ok {
		return nil, domain.ErrInvalidStatus
	}
	if target == entity.PickListAssigned && assignedTo == "" {
		return nil, domain.ErrInvalidInput
	}

	var out *entity.PickList
	err := uc.txRunner.RunPicking(ctx, func(pickRepo repository.PickListRepository) error {
		p, err := pickRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		if p.Status == target {
			out = p
			return nil
		}
		if uc.strict && !p.Status.CanTransition(target) {
			return domain.ErrIllegalTransition
		}
		picker := p.AssignedTo
		if target == entity.PickListAssigned {
			picker = assignedTo
		}
		if err := pickRepo.UpdateStatus(id, target, picker); err != nil {
			return err
		}
		p.Status = target
		p.AssignedTo = picker
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := toPickListResponse(out)
	return &resp, nil
}

func toPickListResponse(p *entity.PickList) dto.PickListResponse {
	return dto.PickListResponse{
		ID:         p.ID,
		OrderID:    p.OrderID,
		Status:     string(p.Status),
		AssignedTo: p.AssignedTo,
		CreatedAt:  p.CreatedAt,
	}
}
